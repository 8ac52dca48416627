package core

import "time"

// AssistantID is the reserved destination that routes a message to the
// assistant. It is also the sender id of assistant replies.
const AssistantID = "AI"

// Message is the domain model for a chat message.
type Message struct {
	From      string
	To        string
	Text      string
	CreatedAt time.Time
}

// ToAssistant reports whether the message is addressed to the assistant:
// To is empty or equal to AssistantID.
func (m Message) ToAssistant() bool {
	return m.To == "" || m.To == AssistantID
}
