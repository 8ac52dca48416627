// Package proto defines the JSON envelopes exchanged over the WebSocket.
package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoinRoom    = "joinRoom"
	InboundTypeSendMessage = "sendMessage"
	InboundTypeTyping      = "typing"

	OutboundTypeEvent = "event"

	EventWelcome          = "welcome"
	EventReceiveMessage   = "receiveMessage"
	EventMessageSentiment = "messageSentiment"
	EventSmartReplies     = "smartReplies"
	EventTyping           = "typing"
)

// JoinRoomData asks to join the room with the given key.
type JoinRoomData struct {
	Room *string `json:"room"`
}

// SendMessageData is a chat message from the client. An absent or "AI"
// destination addresses the assistant.
type SendMessageData struct {
	Text *string `json:"text"`
	To   string  `json:"to,omitempty"`
}

// TypingData announces that the client is typing to a room.
type TypingData struct {
	To *string `json:"to"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// WelcomeEvent is sent once after the upgrade.
type WelcomeEvent struct {
	ID       string `json:"id"`
	Identity string `json:"identity,omitempty"`
}

// ReceiveMessageEvent carries a peer or assistant message.
type ReceiveMessageEvent struct {
	Text      string `json:"text"`
	From      string `json:"from"`
	Timestamp string `json:"timestamp"`
}

// MessageSentimentEvent returns the sentiment of the sender's text.
type MessageSentimentEvent struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// TypingEvent tells room members who is typing.
type TypingEvent struct {
	From string `json:"from"`
}
