package core

const defaultClientBuffer = 32

// Client is a live connection as seen by the core layer.
type Client struct {
	ID       string
	Identity string // verified identity, empty for anonymous connections
	Commands chan *Command
	Events   chan *Event

	done chan struct{}
}

// NewClient constructs a client with buffered channels. A non-positive
// buffer selects the default size.
func NewClient(id, identity string, buffer int) *Client {
	if buffer <= 0 {
		buffer = defaultClientBuffer
	}
	return &Client{
		ID:       id,
		Identity: identity,
		Commands: make(chan *Command, buffer),
		Events:   make(chan *Event, buffer),
		done:     make(chan struct{}),
	}
}
