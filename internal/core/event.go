package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventWelcome tells a freshly registered client its id and identity.
	EventWelcome EventKind = iota
	// EventReceiveMessage delivers a peer or assistant message.
	EventReceiveMessage
	// EventMessageSentiment returns the sentiment of the sender's own text.
	EventMessageSentiment
	// EventSmartReplies suggests canned replies to the sender.
	EventSmartReplies
	// EventTyping notifies room members that someone is typing.
	EventTyping
)

// Event is sent to clients to describe what happened in the system.
// Events are shared between recipients and must not be mutated.
type Event struct {
	Kind      EventKind
	Message   Message
	Sentiment Sentiment
	Replies   []string
	From      string // typing sender
	ClientID  string // welcome
	Identity  string // welcome
}

// Sentiment is the score of a text as returned to its sender.
type Sentiment struct {
	Text  string
	Score int
}
