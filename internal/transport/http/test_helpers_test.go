package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/assistant"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/config"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/core"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/metrics"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/intent"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/sentiment"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/smartreply"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/proto"
)

// frame is an outbound envelope with its payload left undecoded.
type frame struct {
	Type  string          `json:"type"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.RateLimit = 0
	return cfg
}

func newTestRouter(t *testing.T) *core.Router {
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
	return core.NewRouter(assistant.New(classifier), scorer, suggester)
}

func startTestServer(t *testing.T, cfg config.Config, m *metrics.Metrics) *httptest.Server {
	t.Helper()

	disabledLogger := zerolog.New(nil)
	hub := core.NewHub(newTestRouter(t), &disabledLogger, m)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	server := NewServer(hub, &cfg, m, &disabledLogger)
	ts := httptest.NewServer(server.Handler)
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return ts
}

func wsURL(ts *httptest.Server) string {
	return strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
}

func dial(ctx context.Context, t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.Dial(ctx, wsURL(ts), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func send(ctx context.Context, t *testing.T, conn *websocket.Conn, typ string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s: %v", typ, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
		t.Fatalf("send %s: %v", typ, err)
	}
}

func sendMessage(ctx context.Context, t *testing.T, conn *websocket.Conn, text, to string) {
	t.Helper()
	send(ctx, t, conn, proto.InboundTypeSendMessage, proto.SendMessageData{Text: &text, To: to})
}

func readFrame(ctx context.Context, t *testing.T, conn *websocket.Conn) frame {
	t.Helper()

	var f frame
	if err := wsjson.Read(ctx, conn, &f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if f.Type != proto.OutboundTypeEvent {
		t.Fatalf("unexpected outbound type: %+v", f)
	}
	return f
}

// readEvent skips frames until one with the given event name arrives and
// decodes its payload into v.
func readEvent(ctx context.Context, t *testing.T, conn *websocket.Conn, event string, v any) {
	t.Helper()

	for {
		f := readFrame(ctx, t, conn)
		if f.Event != event {
			continue
		}
		if v != nil {
			if err := json.Unmarshal(f.Data, v); err != nil {
				t.Fatalf("decode %s: %v", event, err)
			}
		}
		return
	}
}

func welcome(ctx context.Context, t *testing.T, conn *websocket.Conn) proto.WelcomeEvent {
	t.Helper()

	var w proto.WelcomeEvent
	f := readFrame(ctx, t, conn)
	if f.Event != proto.EventWelcome {
		t.Fatalf("expected welcome, got %+v", f)
	}
	if err := json.Unmarshal(f.Data, &w); err != nil {
		t.Fatalf("decode welcome: %v", err)
	}
	return w
}

// syncHub sends an assistant message and waits for its sentiment, so every
// frame the connection wrote before has been handled by the hub.
func syncHub(ctx context.Context, t *testing.T, conn *websocket.Conn) {
	t.Helper()

	sendMessage(ctx, t, conn, "zzz sync", "")
	for {
		var s proto.MessageSentimentEvent
		readEvent(ctx, t, conn, proto.EventMessageSentiment, &s)
		if s.Text == "zzz sync" {
			return
		}
	}
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
