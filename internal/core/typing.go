package core

// RelayTyping builds the typing indicator from a client to a room. Like
// every room delivery it never reaches the sender.
func RelayTyping(from *Client, room string) Delivery {
	return Delivery{
		Target: TargetRoom,
		Room:   room,
		Event:  &Event{Kind: EventTyping, From: from.ID},
	}
}
