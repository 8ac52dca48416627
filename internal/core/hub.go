package core

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/metrics"
)

type inbound struct {
	client *Client
	cmd    *Command
}

// Hub is the single event loop of the chat core. It owns the client set
// and the room registry; every command from every client is handled on the
// Run goroutine, in arrival order per client.
type Hub struct {
	router  *Router
	log     *zerolog.Logger
	metrics *metrics.Metrics

	register   chan *Client
	unregister chan *Client
	inbox      chan inbound
	stopped    chan struct{}

	clients  map[*Client]struct{}
	registry *Registry
}

// NewHub creates a hub that routes messages with router. Logger and
// metrics may be nil.
func NewHub(router *Router, logger *zerolog.Logger, m *metrics.Metrics) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		router:     router,
		log:        logger,
		metrics:    m,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbox:      make(chan inbound, 64),
		stopped:    make(chan struct{}),
		clients:    make(map[*Client]struct{}),
		registry:   NewRegistry(),
	}
}

// Run processes events until ctx is cancelled. On exit every remaining
// client is unregistered.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.removeClient(c)
			}
			return
		case c := <-h.register:
			h.addClient(ctx, c)
		case c := <-h.unregister:
			h.removeClient(c)
		case in := <-h.inbox:
			h.handle(in.client, in.cmd)
		}
	}
}

// RegisterClient adds a client to the hub and starts consuming its commands.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.stopped:
	}
}

// UnregisterClient removes a client, clears its room and closes its Events channel.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.stopped:
	}
}

func (h *Hub) addClient(ctx context.Context, c *Client) {
	if _, exists := h.clients[c]; exists {
		return
	}
	h.clients[c] = struct{}{}
	h.metrics.ConnectionOpened()
	h.log.Debug().Str("client_id", c.ID).Str("identity", c.Identity).Msg("client registered")

	go h.forward(ctx, c)

	h.send(c, &Event{Kind: EventWelcome, ClientID: c.ID, Identity: c.Identity})
}

func (h *Hub) removeClient(c *Client) {
	if _, exists := h.clients[c]; !exists {
		return
	}
	h.registry.Leave(c)
	delete(h.clients, c)
	close(c.done)
	close(c.Events)
	h.metrics.ConnectionClosed()
	h.log.Debug().Str("client_id", c.ID).Msg("client unregistered")
}

// forward moves a client's commands into the hub inbox, preserving order.
func (h *Hub) forward(ctx context.Context, c *Client) {
	for {
		select {
		case cmd, ok := <-c.Commands:
			if !ok {
				return
			}
			if cmd == nil {
				continue
			}
			select {
			case h.inbox <- inbound{client: c, cmd: cmd}:
			case <-c.done:
				return
			case <-ctx.Done():
				return
			}
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) handle(c *Client, cmd *Command) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	h.metrics.InboundEvent(cmd.Kind.String())

	switch cmd.Kind {
	case CommandJoinRoom:
		h.registry.Join(c, cmd.Room)
		h.log.Debug().Str("client_id", c.ID).Str("room", cmd.Room).Msg("joined room")
	case CommandSendMessage:
		msg := cmd.Message
		msg.From = c.ID
		if msg.ToAssistant() {
			h.metrics.Routed("assistant")
		} else {
			h.metrics.Routed("peer")
		}
		h.deliver(c, h.router.Route(msg))
	case CommandTyping:
		h.deliver(c, []Delivery{RelayTyping(c, cmd.Room)})
	default:
		h.log.Warn().Str("client_id", c.ID).Int("kind", int(cmd.Kind)).Msg("unknown command")
	}
}

func (h *Hub) deliver(sender *Client, deliveries []Delivery) {
	for _, d := range deliveries {
		switch d.Target {
		case TargetSender:
			h.send(sender, d.Event)
		case TargetRoom:
			var sent, dropped int
			if room := h.registry.Room(d.Room); room != nil {
				sent, dropped = room.Broadcast(d.Event, sender)
			}
			for range dropped {
				h.metrics.EventDropped()
			}
			if sent+dropped == 0 && d.Event.Kind == EventReceiveMessage {
				h.metrics.PeerDropped()
				h.log.Debug().Str("client_id", sender.ID).Str("room", d.Room).Msg("no recipients, message dropped")
			}
		}
	}
}

func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		h.metrics.EventDropped()
		h.log.Debug().Str("client_id", c.ID).Msg("client buffer full, event dropped")
	}
}
