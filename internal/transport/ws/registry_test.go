package ws

import (
	"sync"
	"testing"
)

type fakeConn struct {
	id string

	mu   sync.Mutex
	got  []Message
	fail bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (f *fakeConn) ID() string { return f.id }

func (f *fakeConn) Send(msg Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errBadPayload
	}
	f.got = append(f.got, msg)
	return nil
}

func (f *fakeConn) events() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.got))
	for _, m := range f.got {
		out = append(out, m.Event)
	}
	return out
}

func (f *fakeConn) byEvent(event string) []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Message
	for _, m := range f.got {
		if m.Event == event {
			out = append(out, m)
		}
	}
	return out
}

func TestRegistry_JoinReturnsPriorMembers(t *testing.T) {
	reg := NewRegistry()
	a := newFakeConn("a")
	b := newFakeConn("b")
	c := newFakeConn("c")

	if others := reg.Join("r1", a); len(others) != 0 {
		t.Fatalf("first join: expected 0 prior members, got %d", len(others))
	}
	if others := reg.Join("r1", b); len(others) != 1 || others[0].ID() != "a" {
		t.Fatalf("second join: expected prior [a], got %v", others)
	}
	if others := reg.Join("r1", c); len(others) != 2 {
		t.Fatalf("third join: expected 2 prior members, got %d", len(others))
	}
}

func TestRegistry_JoinIsIdempotentPerConn(t *testing.T) {
	reg := NewRegistry()
	a := newFakeConn("a")

	reg.Join("r1", a)
	if others := reg.Join("r1", a); len(others) != 0 {
		t.Fatalf("re-join of same conn must not count itself, got %d", len(others))
	}
	if got := len(reg.Members("r1")); got != 1 {
		t.Fatalf("expected 1 member after double join, got %d", got)
	}
}

func TestRegistry_LeaveNoopWhenAbsent(t *testing.T) {
	reg := NewRegistry()
	a := newFakeConn("a")

	remaining, was := reg.Leave("ghost", a.ID())
	if was || remaining != nil {
		t.Fatalf("leave of unknown room must be a no-op, got was=%v remaining=%v", was, remaining)
	}

	reg.Join("r1", a)
	if _, was := reg.Leave("r1", "someone-else"); was {
		t.Fatal("leave of non-member must be a no-op")
	}
}

func TestRegistry_RoomPrunedWhenEmpty(t *testing.T) {
	reg := NewRegistry()
	a := newFakeConn("a")

	reg.Join("r1", a)
	reg.Leave("r1", a.ID())

	// пустая комната должна исчезнуть; новый join снова видит 0 участников
	if others := reg.Join("r1", newFakeConn("b")); len(others) != 0 {
		t.Fatalf("room should have been pruned, got %d prior members", len(others))
	}
}

func TestRegistry_DropRemovesFromAllRooms(t *testing.T) {
	reg := NewRegistry()
	a := newFakeConn("a")
	b := newFakeConn("b")
	c := newFakeConn("c")

	reg.Join("r1", a)
	reg.Join("r1", b)
	reg.Join("r2", a)
	reg.Join("r2", c)

	affected := reg.Drop(a.ID())
	if len(affected) != 2 {
		t.Fatalf("expected 2 affected rooms, got %d", len(affected))
	}
	if rem := affected["r1"]; len(rem) != 1 || rem[0].ID() != "b" {
		t.Fatalf("r1 remaining: want [b], got %v", rem)
	}
	if rem := affected["r2"]; len(rem) != 1 || rem[0].ID() != "c" {
		t.Fatalf("r2 remaining: want [c], got %v", rem)
	}

	// повторный Drop безопасен и пуст
	if affected := reg.Drop(a.ID()); len(affected) != 0 {
		t.Fatalf("second drop must be empty, got %v", affected)
	}
}
