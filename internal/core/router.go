package core

import "time"

// Responder produces the assistant's reply to a text.
type Responder interface {
	Respond(text string) string
}

// SentimentScorer scores the affect of a text.
type SentimentScorer interface {
	Score(text string) int
}

// ReplySuggester returns canned replies for texts it recognises.
type ReplySuggester interface {
	Suggest(text string) ([]string, bool)
}

// Target selects who receives a delivery.
type Target int

const (
	// TargetSender delivers to the client that issued the command.
	TargetSender Target = iota
	// TargetRoom delivers to every member of Room except the sender.
	TargetRoom
)

// Delivery is one outbound event produced by routing.
type Delivery struct {
	Target Target
	Room   string
	Event  *Event
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithClock overrides the time source used for message timestamps.
func WithClock(now func() time.Time) RouterOption {
	return func(r *Router) {
		r.now = now
	}
}

// Router decides where a message goes and what the sender gets back. It
// keeps no state between messages.
type Router struct {
	assistant Responder
	sentiment SentimentScorer
	replies   ReplySuggester
	now       func() time.Time
}

// NewRouter builds a router over immutable text services.
func NewRouter(assistant Responder, sentiment SentimentScorer, replies ReplySuggester, opts ...RouterOption) *Router {
	r := &Router{
		assistant: assistant,
		sentiment: sentiment,
		replies:   replies,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route returns the deliveries for msg, sent by msg.From. Peer messages go
// to the room named by msg.To and are echoed to the sender; assistant
// messages get a reply for the sender only. Sentiment and smart replies for
// the sender follow in both cases.
func (r *Router) Route(msg Message) []Delivery {
	now := r.now()
	deliveries := make([]Delivery, 0, 4)

	if msg.ToAssistant() {
		reply := &Event{
			Kind: EventReceiveMessage,
			Message: Message{
				From:      AssistantID,
				Text:      r.assistant.Respond(msg.Text),
				CreatedAt: now,
			},
		}
		deliveries = append(deliveries, Delivery{Target: TargetSender, Event: reply})
	} else {
		envelope := &Event{
			Kind: EventReceiveMessage,
			Message: Message{
				From:      msg.From,
				To:        msg.To,
				Text:      msg.Text,
				CreatedAt: now,
			},
		}
		deliveries = append(deliveries,
			Delivery{Target: TargetRoom, Room: msg.To, Event: envelope},
			Delivery{Target: TargetSender, Event: envelope},
		)
	}

	deliveries = append(deliveries, Delivery{
		Target: TargetSender,
		Event: &Event{
			Kind:      EventMessageSentiment,
			Sentiment: Sentiment{Text: msg.Text, Score: r.sentiment.Score(msg.Text)},
		},
	})

	if suggestions, ok := r.replies.Suggest(msg.Text); ok {
		deliveries = append(deliveries, Delivery{
			Target: TargetSender,
			Event:  &Event{Kind: EventSmartReplies, Replies: suggestions},
		})
	}

	return deliveries
}
