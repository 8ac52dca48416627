package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/core"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/proto"
)

var (
	errUnknownType  = errors.New("unknown message type")
	errMissingField = errors.New("missing required field")
)

// inboundToCommand maps a client envelope to a core command. Any error
// means the frame is malformed and must be discarded.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinRoom:
		var join proto.JoinRoomData
		if err := decodeData(inbound.Data, &join); err != nil {
			return nil, err
		}
		if join.Room == nil {
			return nil, fmt.Errorf("%w: room", errMissingField)
		}
		return &core.Command{Kind: core.CommandJoinRoom, Room: *join.Room}, nil
	case proto.InboundTypeSendMessage:
		var msg proto.SendMessageData
		if err := decodeData(inbound.Data, &msg); err != nil {
			return nil, err
		}
		if msg.Text == nil {
			return nil, fmt.Errorf("%w: text", errMissingField)
		}
		return &core.Command{
			Kind: core.CommandSendMessage,
			Message: core.Message{
				To:   msg.To,
				Text: *msg.Text,
			},
		}, nil
	case proto.InboundTypeTyping:
		var typing proto.TypingData
		if err := decodeData(inbound.Data, &typing); err != nil {
			return nil, err
		}
		if typing.To == nil {
			return nil, fmt.Errorf("%w: to", errMissingField)
		}
		return &core.Command{Kind: core.CommandTyping, Room: *typing.To}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownType, inbound.Type)
	}
}

func decodeData(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: data", errMissingField)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	out := proto.Outbound{Type: proto.OutboundTypeEvent}

	switch event.Kind {
	case core.EventWelcome:
		out.Event = proto.EventWelcome
		out.Data = proto.WelcomeEvent{ID: event.ClientID, Identity: event.Identity}
	case core.EventReceiveMessage:
		out.Event = proto.EventReceiveMessage
		out.Data = proto.ReceiveMessageEvent{
			Text:      event.Message.Text,
			From:      event.Message.From,
			Timestamp: event.Message.CreatedAt.UTC().Format(time.RFC3339),
		}
	case core.EventMessageSentiment:
		out.Event = proto.EventMessageSentiment
		out.Data = proto.MessageSentimentEvent{Text: event.Sentiment.Text, Score: event.Sentiment.Score}
	case core.EventSmartReplies:
		out.Event = proto.EventSmartReplies
		out.Data = event.Replies
	case core.EventTyping:
		out.Event = proto.EventTyping
		out.Data = proto.TypingEvent{From: event.From}
	}
	return out
}
