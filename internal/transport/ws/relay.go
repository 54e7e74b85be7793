package ws

import "log/slog"

// Relay сводит ровно двух участников в комнате и пересылает их
// offer/answer/ice-candidate друг другу, не заглядывая в содержимое.
// Ни одно событие не может оборвать соединение: битый ввод логируется
// и отбрасывается.
type Relay struct {
	reg *Registry
}

func NewRelay(reg *Registry) *Relay {
	return &Relay{reg: reg}
}

// HandleMessage обрабатывает одно входящее событие соединения.
func (r *Relay) HandleMessage(c Conn, msg Message) {
	switch msg.Event {
	case EventJoinRoom:
		r.handleJoin(c, msg.Data)
	case EventOffer, EventAnswer, EventICECandidate:
		r.relaySignal(c, msg.Event, msg.Data)
	case EventLeaveRoom:
		r.handleLeave(c, msg.Data)
	default:
		slog.Debug("ws unknown event", "event", msg.Event, "conn", c.ID())
	}
}

func (r *Relay) handleJoin(c Conn, data []byte) {
	p, err := decodeJoin(data)
	if err != nil || p.RoomID == "" {
		slog.Debug("ws join-room bad payload", "conn", c.ID(), "err", err)
		return
	}

	// others снимается до вставки: ровно на переходе 1 -> 2 шлем ready
	others := r.reg.Join(p.RoomID, c)

	slog.Info("ws join",
		"room", p.RoomID, "conn", c.ID(),
		"initiator", p.IsInitiator, "prior", len(others))

	joined := connIDMessage(EventUserJoined, c.ID())
	for _, o := range others {
		if err := o.Send(joined); err != nil {
			slog.Debug("ws send user-joined failed", "room", p.RoomID, "to", o.ID(), "err", err)
		}
	}

	if len(others) == 1 {
		ready := Message{Event: EventReady}
		for _, m := range r.reg.Members(p.RoomID) {
			if err := m.Send(ready); err != nil {
				slog.Debug("ws send ready failed", "room", p.RoomID, "to", m.ID(), "err", err)
			}
		}
	}
}

// relaySignal пересылает тело события всем остальным участникам комнаты.
// Отправитель свое сообщение назад не получает; если других участников
// нет — сообщение молча отбрасывается.
func (r *Relay) relaySignal(c Conn, event string, data []byte) {
	var p SignalPayload
	if err := decodeSignal(data, &p); err != nil || p.RoomID == "" {
		slog.Debug("ws signal bad payload", "event", event, "conn", c.ID(), "err", err)
		return
	}

	out := Message{Event: event, Data: p.body(event)}
	for _, o := range r.reg.Others(p.RoomID, c.ID()) {
		if err := o.Send(out); err != nil {
			slog.Debug("ws relay failed", "event", event, "room", p.RoomID, "to", o.ID(), "err", err)
		}
	}
}

func (r *Relay) handleLeave(c Conn, data []byte) {
	roomID, err := decodeRoomID(data)
	if err != nil || roomID == "" {
		slog.Debug("ws leave-room bad payload", "conn", c.ID(), "err", err)
		return
	}

	remaining, wasMember := r.reg.Leave(roomID, c.ID())
	if !wasMember {
		return
	}

	slog.Info("ws leave", "room", roomID, "conn", c.ID())

	left := connIDMessage(EventUserLeft, c.ID())
	for _, o := range remaining {
		if err := o.Send(left); err != nil {
			slog.Debug("ws send user-left failed", "room", roomID, "to", o.ID(), "err", err)
		}
	}
}

// HandleDisconnect убирает соединение из всех его комнат и извещает
// оставшихся участников каждой. Безопасен при повторном вызове.
func (r *Relay) HandleDisconnect(c Conn) {
	affected := r.reg.Drop(c.ID())
	if len(affected) == 0 {
		return
	}

	slog.Info("ws disconnect", "conn", c.ID(), "rooms", len(affected))

	left := connIDMessage(EventUserLeft, c.ID())
	for roomID, remaining := range affected {
		for _, o := range remaining {
			if err := o.Send(left); err != nil {
				slog.Debug("ws send user-left failed", "room", roomID, "to", o.ID(), "err", err)
			}
		}
	}
}
