// Package assistant turns classified intents into canned assistant replies.
package assistant

import "github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/intent"

// DefaultReply answers every label without an entry in the reply table.
const DefaultReply = "I didn't understand that. Can you rephrase?"

var replies = map[intent.Label]string{
	intent.LabelGreeting:  "Hello! How can I help you today?",
	intent.LabelFarewell:  "Goodbye! Have a great day!",
	intent.LabelGratitude: "You're welcome! 😊",
	intent.LabelHelp:      "I can help with general questions. What do you need?",
}

// Classifier maps text onto an intent label.
type Classifier interface {
	Classify(text string) intent.Label
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithObserver registers fn to be called with every classified label.
func WithObserver(fn func(intent.Label)) Option {
	return func(a *Assistant) {
		a.observe = fn
	}
}

// Assistant composes a classifier with the reply table.
type Assistant struct {
	classifier Classifier
	observe    func(intent.Label)
}

// New builds an assistant backed by classifier.
func New(classifier Classifier, opts ...Option) *Assistant {
	a := &Assistant{classifier: classifier}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Reply returns the canned reply for label.
func Reply(label intent.Label) string {
	if r, ok := replies[label]; ok {
		return r
	}
	return DefaultReply
}

// Respond classifies text and returns the matching reply.
func (a *Assistant) Respond(text string) string {
	label := a.classifier.Classify(text)
	if a.observe != nil {
		a.observe(label)
	}
	return Reply(label)
}
