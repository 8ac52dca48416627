package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinRoom associates the client with a room key.
	CommandJoinRoom CommandKind = iota
	// CommandSendMessage routes a message to a peer room or the assistant.
	CommandSendMessage
	// CommandTyping relays a typing indicator to a room.
	CommandTyping
)

func (k CommandKind) String() string {
	switch k {
	case CommandJoinRoom:
		return "joinRoom"
	case CommandSendMessage:
		return "sendMessage"
	case CommandTyping:
		return "typing"
	default:
		return "unknown"
	}
}

// Command represents an action requested by a client.
type Command struct {
	Kind    CommandKind
	Room    string // join and typing target
	Message Message
}
