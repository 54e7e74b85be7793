package ws

import (
	"encoding/json"
	"testing"
)

func raw(s string) json.RawMessage { return json.RawMessage(s) }

func join(t *testing.T, r *Relay, c Conn, payload string) {
	t.Helper()
	r.HandleMessage(c, Message{Event: EventJoinRoom, Data: raw(payload)})
}

func TestRelay_ReadyFiresExactlyOnSecondJoin(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	y := newFakeConn("y")
	z := newFakeConn("z")

	join(t, relay, x, `"call-42"`)
	if got := x.byEvent(EventReady); len(got) != 0 {
		t.Fatalf("ready must not fire on first join, got %d", len(got))
	}

	join(t, relay, y, `"call-42"`)
	if got := x.byEvent(EventReady); len(got) != 1 {
		t.Fatalf("x: expected 1 ready, got %d", len(got))
	}
	if got := y.byEvent(EventReady); len(got) != 1 {
		t.Fatalf("y: expected 1 ready, got %d", len(got))
	}

	// третий участник принимается, но ready больше не срабатывает
	join(t, relay, z, `"call-42"`)
	if got := x.byEvent(EventReady); len(got) != 1 {
		t.Fatalf("ready fired again on third join: %d", len(got))
	}
	if got := z.byEvent(EventReady); len(got) != 0 {
		t.Fatalf("third joiner must not get ready, got %d", len(got))
	}
}

func TestRelay_JoinAcceptsBothPayloadForms(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	y := newFakeConn("y")

	join(t, relay, x, `"room-7"`)
	join(t, relay, y, `{"roomId":"room-7","isInitiator":true}`)

	joined := x.byEvent(EventUserJoined)
	if len(joined) != 1 {
		t.Fatalf("x: expected 1 user-joined, got %d", len(joined))
	}
	var id string
	if err := json.Unmarshal(joined[0].Data, &id); err != nil || id != "y" {
		t.Fatalf("user-joined should carry joiner id, got %s (%v)", joined[0].Data, err)
	}
	// новичку о самом себе не сообщается
	if got := y.byEvent(EventUserJoined); len(got) != 0 {
		t.Fatalf("y must not see its own join, got %d", len(got))
	}
}

func TestRelay_NoSelfDelivery(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	y := newFakeConn("y")

	join(t, relay, x, `"call-42"`)
	join(t, relay, y, `"call-42"`)

	relay.HandleMessage(x, Message{
		Event: EventOffer,
		Data:  raw(`{"roomId":"call-42","offer":{"sdp":"v=0..."}}`),
	})

	offers := y.byEvent(EventOffer)
	if len(offers) != 1 {
		t.Fatalf("y: expected 1 offer, got %d", len(offers))
	}
	if string(offers[0].Data) != `{"sdp":"v=0..."}` {
		t.Fatalf("offer must be relayed opaquely, got %s", offers[0].Data)
	}
	if got := x.byEvent(EventOffer); len(got) != 0 {
		t.Fatalf("sender must never get its own offer back, got %d", len(got))
	}
}

func TestRelay_AnswerAndCandidateRelayToOthers(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	y := newFakeConn("y")

	join(t, relay, x, `"r"`)
	join(t, relay, y, `"r"`)

	relay.HandleMessage(y, Message{
		Event: EventAnswer,
		Data:  raw(`{"roomId":"r","answer":{"sdp":"a"}}`),
	})
	relay.HandleMessage(y, Message{
		Event: EventICECandidate,
		Data:  raw(`{"roomId":"r","candidate":{"candidate":"c","sdpMid":"0"}}`),
	})

	if got := x.byEvent(EventAnswer); len(got) != 1 || string(got[0].Data) != `{"sdp":"a"}` {
		t.Fatalf("x answer: %v", got)
	}
	if got := x.byEvent(EventICECandidate); len(got) != 1 {
		t.Fatalf("x candidate: %v", got)
	}
	if got := y.byEvent(EventAnswer); len(got) != 0 {
		t.Fatal("answer must not come back to sender")
	}
}

func TestRelay_CandidateIntoEmptyRoomIsDropped(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")

	join(t, relay, x, `"lonely"`)

	// некому пересылать — молча дропается, без ошибок и без эха
	relay.HandleMessage(x, Message{
		Event: EventICECandidate,
		Data:  raw(`{"roomId":"lonely","candidate":{"candidate":"c"}}`),
	})

	if got := x.byEvent(EventICECandidate); len(got) != 0 {
		t.Fatalf("candidate must be dropped, got %d", len(got))
	}
}

func TestRelay_LeaveNotifiesRemaining(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	y := newFakeConn("y")

	join(t, relay, x, `"r"`)
	join(t, relay, y, `"r"`)

	relay.HandleMessage(x, Message{Event: EventLeaveRoom, Data: raw(`"r"`)})

	left := y.byEvent(EventUserLeft)
	if len(left) != 1 {
		t.Fatalf("y: expected exactly 1 user-left, got %d", len(left))
	}
	var id string
	if err := json.Unmarshal(left[0].Data, &id); err != nil || id != "x" {
		t.Fatalf("user-left should carry leaver id, got %s", left[0].Data)
	}
	if got := x.byEvent(EventUserLeft); len(got) != 0 {
		t.Fatal("leaver must not be notified about itself")
	}
}

func TestRelay_LeaveOfUnjoinedRoomIsNoop(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	y := newFakeConn("y")

	join(t, relay, x, `"r"`)
	join(t, relay, y, `"r"`)

	// z никогда не вступал: никто не должен получить уведомление
	z := newFakeConn("z")
	relay.HandleMessage(z, Message{Event: EventLeaveRoom, Data: raw(`"r"`)})

	if got := x.byEvent(EventUserLeft); len(got) != 0 {
		t.Fatalf("x got spurious user-left: %v", got)
	}
	if got := y.byEvent(EventUserLeft); len(got) != 0 {
		t.Fatalf("y got spurious user-left: %v", got)
	}
}

func TestRelay_DisconnectCleansAllRooms(t *testing.T) {
	relay := NewRelay(NewRegistry())
	a := newFakeConn("a")
	b := newFakeConn("b")
	c := newFakeConn("c")

	join(t, relay, a, `"r1"`)
	join(t, relay, b, `"r1"`)
	join(t, relay, a, `"r2"`)
	join(t, relay, c, `"r2"`)

	relay.HandleDisconnect(a)

	if got := b.byEvent(EventUserLeft); len(got) != 1 {
		t.Fatalf("b: expected 1 user-left, got %d", len(got))
	}
	if got := c.byEvent(EventUserLeft); len(got) != 1 {
		t.Fatalf("c: expected 1 user-left, got %d", len(got))
	}

	// повторный disconnect ничего не шлет
	relay.HandleDisconnect(a)
	if got := b.byEvent(EventUserLeft); len(got) != 1 {
		t.Fatalf("duplicate disconnect produced extra user-left: %d", len(got))
	}
}

func TestRelay_MalformedInputIsIgnored(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	y := newFakeConn("y")

	join(t, relay, x, `"r"`)
	join(t, relay, y, `"r"`)

	before := len(y.events())

	// ни одно из этих сообщений не должно ничего породить или уронить
	relay.HandleMessage(x, Message{Event: EventJoinRoom, Data: raw(`42`)})
	relay.HandleMessage(x, Message{Event: EventOffer, Data: raw(`"not an object"`)})
	relay.HandleMessage(x, Message{Event: EventOffer, Data: raw(`{"offer":{"sdp":"x"}}`)}) // без roomId
	relay.HandleMessage(x, Message{Event: EventLeaveRoom, Data: raw(`{}`)})
	relay.HandleMessage(x, Message{Event: "bogus-event", Data: raw(`{}`)})

	if got := len(y.events()); got != before {
		t.Fatalf("malformed input produced output: %d -> %d", before, got)
	}
}

// Сценарий из жизни: X и Y созваниваются, Y обрывается.
func TestRelay_TwoPartyCallScenario(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	y := newFakeConn("y")

	join(t, relay, x, `{"roomId":"call-42","isInitiator":true}`)
	join(t, relay, y, `"call-42"`)

	if got := x.events(); len(got) != 2 || got[0] != EventUserJoined || got[1] != EventReady {
		t.Fatalf("x: want [user-joined ready], got %v", got)
	}
	if got := y.events(); len(got) != 1 || got[0] != EventReady {
		t.Fatalf("y: want [ready], got %v", got)
	}

	relay.HandleMessage(x, Message{
		Event: EventOffer,
		Data:  raw(`{"roomId":"call-42","offer":{"sdp":"..."}}`),
	})
	if got := y.byEvent(EventOffer); len(got) != 1 || string(got[0].Data) != `{"sdp":"..."}` {
		t.Fatalf("y offer: %v", got)
	}

	relay.HandleDisconnect(y)
	left := x.byEvent(EventUserLeft)
	if len(left) != 1 {
		t.Fatalf("x: expected user-left after peer disconnect, got %d", len(left))
	}
	var id string
	if err := json.Unmarshal(left[0].Data, &id); err != nil || id != "y" {
		t.Fatalf("user-left carries wrong id: %s", left[0].Data)
	}
}

func TestRelay_SendFailureDoesNotStopFanout(t *testing.T) {
	relay := NewRelay(NewRegistry())
	x := newFakeConn("x")
	bad := newFakeConn("bad")
	bad.fail = true
	z := newFakeConn("z")

	join(t, relay, bad, `"r"`)
	join(t, relay, z, `"r"`)
	join(t, relay, x, `"r"`)

	relay.HandleMessage(x, Message{
		Event: EventOffer,
		Data:  raw(`{"roomId":"r","offer":{"sdp":"s"}}`),
	})

	if got := z.byEvent(EventOffer); len(got) != 1 {
		t.Fatalf("healthy peer must still get the offer, got %d", len(got))
	}
}
