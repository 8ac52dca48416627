package core

import "testing"

func TestRegistryJoinReplacesAndLeaveClears(t *testing.T) {
	r := NewRegistry()
	a := NewClient("a", "", 1)
	b := NewClient("b", "", 1)

	r.Join(a, "r1")
	r.Join(b, "r1")
	if room := r.Room("r1"); room == nil || room.Len() != 2 {
		t.Fatalf("expected two members in r1")
	}

	r.Join(a, "r2")
	if key, _ := r.RoomOf(a); key != "r2" {
		t.Fatalf("RoomOf(a) = %q, want r2", key)
	}
	if r.Room("r1").Len() != 1 {
		t.Fatalf("a should have left r1")
	}

	r.Leave(b)
	if r.Room("r1") != nil {
		t.Fatalf("empty room should be discarded")
	}
	if _, ok := r.RoomOf(b); ok {
		t.Fatalf("b should have no room after leave")
	}

	// Leaving twice is harmless.
	r.Leave(b)
}

func TestRegistryRejoinSameRoom(t *testing.T) {
	r := NewRegistry()
	a := NewClient("a", "", 1)

	r.Join(a, "r1")
	r.Join(a, "r1")
	if r.Room("r1").Len() != 1 {
		t.Fatalf("rejoin should not duplicate membership")
	}
}

func TestRoomBroadcastSkipsSenderAndCountsDrops(t *testing.T) {
	room := NewRoom("r")
	sender := NewClient("s", "", 1)
	fast := NewClient("f", "", 1)
	full := NewClient("x", "", 1)
	full.Events <- &Event{}

	room.AddClient(sender)
	room.AddClient(fast)
	room.AddClient(full)

	sent, dropped := room.Broadcast(&Event{Kind: EventTyping}, sender)
	if sent != 1 || dropped != 1 {
		t.Fatalf("sent=%d dropped=%d, want 1 and 1", sent, dropped)
	}
	if len(sender.Events) != 0 {
		t.Fatalf("sender should not receive its own broadcast")
	}
}
