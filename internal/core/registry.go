package core

// Registry tracks the single room each client has joined. It is owned by
// the hub goroutine and is not safe for concurrent use.
type Registry struct {
	rooms       map[string]*Room
	memberships map[*Client]*Room
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms:       make(map[string]*Room),
		memberships: make(map[*Client]*Room),
	}
}

// Join associates c with key, replacing any previous association. Keys are
// not validated and may be shared by unrelated clients.
func (r *Registry) Join(c *Client, key string) {
	if current, ok := r.memberships[c]; ok {
		if current.Key == key {
			return
		}
		r.Leave(c)
	}

	room, ok := r.rooms[key]
	if !ok {
		room = NewRoom(key)
		r.rooms[key] = room
	}
	room.AddClient(c)
	r.memberships[c] = room
}

// Leave removes any association of c. It is a no-op for clients without a room.
func (r *Registry) Leave(c *Client) {
	room, ok := r.memberships[c]
	if !ok {
		return
	}
	delete(r.memberships, c)
	room.RemoveClient(c)
	if room.Empty() {
		delete(r.rooms, room.Key)
	}
}

// RoomOf returns the key of the room c has joined.
func (r *Registry) RoomOf(c *Client) (string, bool) {
	room, ok := r.memberships[c]
	if !ok {
		return "", false
	}
	return room.Key, true
}

// Room returns the room for key, or nil when nobody has joined it.
func (r *Registry) Room(key string) *Room {
	return r.rooms[key]
}
