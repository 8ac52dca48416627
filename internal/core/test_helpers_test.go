package core

import (
	"context"
	"testing"
	"time"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/assistant"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/intent"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/sentiment"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/smartreply"
)

func newTestRouter(t testing.TB) *Router {
	t.Helper()

	corpus, err := intent.DefaultCorpus()
	if err != nil {
		t.Fatalf("corpus: %v", err)
	}
	classifier, err := intent.Train(corpus)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	lexicon, err := sentiment.DefaultLexicon()
	if err != nil {
		t.Fatalf("lexicon: %v", err)
	}
	scorer, err := sentiment.New(lexicon)
	if err != nil {
		t.Fatalf("scorer: %v", err)
	}
	table, err := smartreply.DefaultTable()
	if err != nil {
		t.Fatalf("reply table: %v", err)
	}
	suggester, err := smartreply.New(table)
	if err != nil {
		t.Fatalf("suggester: %v", err)
	}

	return NewRouter(assistant.New(classifier), scorer, suggester)
}

func startTestHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	hub := NewHub(newTestRouter(t), nil, nil)
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func connect(t *testing.T, hub *Hub, id string) *Client {
	t.Helper()

	c := NewClient(id, "", 0)
	hub.RegisterClient(c)
	mustEvent(t, c.Events, EventWelcome)
	return c
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// pending drains whatever is already buffered on ch without waiting.
func pending(ch <-chan *Event) []*Event {
	var out []*Event
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

// barrier sends an assistant message from c and waits for its sentiment,
// so every command c issued before has been handled by the hub.
func barrier(t *testing.T, c *Client) []*Event {
	t.Helper()

	c.Commands <- &Command{Kind: CommandSendMessage, Message: Message{Text: "zzz barrier"}}

	var seen []*Event
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-c.Events:
			if ev.Kind == EventMessageSentiment && ev.Sentiment.Text == "zzz barrier" {
				// Drop the assistant reply to the barrier itself.
				if n := len(seen); n > 0 && seen[n-1].Kind == EventReceiveMessage && seen[n-1].Message.From == AssistantID {
					seen = seen[:n-1]
				}
				return seen
			}
			seen = append(seen, ev)
		case <-deadline:
			t.Fatalf("barrier for %s timed out", c.ID)
			return nil
		}
	}
}

func countKind(events []*Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
