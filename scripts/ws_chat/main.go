package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/proto"
)

type incoming struct {
	Type  string          `json:"type"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	room := flag.String("room", "", "room to join (empty to skip)")
	to := flag.String("to", "AI", "message destination: a room key or AI")
	token := flag.String("token", "", "bearer token")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	var opts *websocket.DialOptions
	if *token != "" {
		opts = &websocket.DialOptions{
			HTTPHeader: http.Header{"Authorization": []string{"Bearer " + *token}},
		}
	}
	conn, _, err := websocket.Dial(ctx, *addr, opts)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	if *room != "" {
		if err := send(ctx, conn, proto.InboundTypeJoinRoom, proto.JoinRoomData{Room: room}); err != nil {
			return err
		}
	}

	fmt.Printf("Connected to %s, sending to %s\n", *addr, *to)
	fmt.Println("Type messages and press Enter. /join <room> and /to <dest> switch rooms. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn, *to)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func send(ctx context.Context, conn *websocket.Conn, typ string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", typ, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: typ, Data: payload}); err != nil {
		return fmt.Errorf("send %s: %w", typ, err)
	}
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var in incoming
		if err := wsjson.Read(ctx, conn, &in); err != nil {
			// Treat expected shutdowns quietly.
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		switch in.Event {
		case proto.EventWelcome:
			var evt proto.WelcomeEvent
			if decode(in, &evt) {
				fmt.Printf("* connected as %s %s\n", evt.ID, evt.Identity)
			}
		case proto.EventReceiveMessage:
			var evt proto.ReceiveMessageEvent
			if decode(in, &evt) {
				fmt.Printf("[%s] %s: %s\n", evt.Timestamp, evt.From, evt.Text)
			}
		case proto.EventMessageSentiment:
			var evt proto.MessageSentimentEvent
			if decode(in, &evt) {
				fmt.Printf("  (sentiment %+d)\n", evt.Score)
			}
		case proto.EventSmartReplies:
			var replies []string
			if decode(in, &replies) {
				fmt.Printf("  suggestions: %s\n", strings.Join(replies, " | "))
			}
		case proto.EventTyping:
			var evt proto.TypingEvent
			if decode(in, &evt) {
				fmt.Printf("  %s is typing...\n", evt.From)
			}
		default:
			fmt.Printf("event=%s data=%s\n", in.Event, in.Data)
		}
	}
}

func decode(in incoming, v any) bool {
	if err := json.Unmarshal(in.Data, v); err != nil {
		log.Printf("unmarshal %s: %v", in.Event, err)
		return false
	}
	return true
}

func writeLoop(ctx context.Context, conn *websocket.Conn, to string) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}

			var err error
			switch {
			case strings.HasPrefix(text, "/join "):
				room := strings.TrimSpace(strings.TrimPrefix(text, "/join "))
				err = send(ctx, conn, proto.InboundTypeJoinRoom, proto.JoinRoomData{Room: &room})
			case strings.HasPrefix(text, "/to "):
				to = strings.TrimSpace(strings.TrimPrefix(text, "/to "))
				fmt.Printf("* sending to %s\n", to)
			default:
				if to != "AI" {
					_ = send(ctx, conn, proto.InboundTypeTyping, proto.TypingData{To: &to})
				}
				err = send(ctx, conn, proto.InboundTypeSendMessage, proto.SendMessageData{Text: &text, To: to})
			}
			if err != nil {
				log.Printf("send error: %v", err)
				return
			}
		}
	}
}
