package ws

import "sync"

// Conn — ссылка на живое соединение. Реестр владеет только идентификатором
// и методом отправки; само соединение принадлежит транспорту.
type Conn interface {
	ID() string
	Send(msg Message) error
}

// Registry — членство комнат. Комната не создается и не удаляется явно:
// она появляется на первом join и исчезает, когда пустеет.
// Все мутации под одним мьютексом, так что снятие счетчика участников
// и вставка — одна критическая секция.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]map[string]Conn     // roomID -> connID -> conn
	conns map[string]map[string]struct{} // connID -> roomIDs
}

func NewRegistry() *Registry {
	return &Registry{
		rooms: make(map[string]map[string]Conn),
		conns: make(map[string]map[string]struct{}),
	}
}

// Join добавляет соединение в комнату и возвращает тех, кто состоял в ней
// до добавления. len(others) == 1 означает переход 1 -> 2.
func (r *Registry) Join(roomID string, c Conn) (others []Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[roomID]
	if !ok {
		room = make(map[string]Conn)
		r.rooms[roomID] = room
	}

	for id, o := range room {
		if id != c.ID() {
			others = append(others, o)
		}
	}

	room[c.ID()] = c

	set, ok := r.conns[c.ID()]
	if !ok {
		set = make(map[string]struct{})
		r.conns[c.ID()] = set
	}
	set[roomID] = struct{}{}

	return others
}

// Members — все текущие участники комнаты.
func (r *Registry) Members(roomID string) []Conn {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.rooms[roomID]
	out := make([]Conn, 0, len(room))
	for _, c := range room {
		out = append(out, c)
	}
	return out
}

// Others — участники комнаты без указанного соединения.
func (r *Registry) Others(roomID, connID string) []Conn {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Conn
	for id, c := range r.rooms[roomID] {
		if id != connID {
			out = append(out, c)
		}
	}
	return out
}

// Leave убирает соединение из комнаты. No-op если его там не было.
func (r *Registry) Leave(roomID, connID string) (remaining []Conn, wasMember bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.leaveLocked(roomID, connID)
}

// Drop убирает соединение из всех комнат сразу. Возвращает оставшихся
// участников каждой затронутой комнаты. Повторный вызов безопасен.
func (r *Registry) Drop(connID string) map[string][]Conn {
	r.mu.Lock()
	defer r.mu.Unlock()

	affected := make(map[string][]Conn)
	for roomID := range r.conns[connID] {
		remaining, was := r.leaveLocked(roomID, connID)
		if was {
			affected[roomID] = remaining
		}
	}
	delete(r.conns, connID)

	return affected
}

func (r *Registry) leaveLocked(roomID, connID string) (remaining []Conn, wasMember bool) {
	room, ok := r.rooms[roomID]
	if !ok {
		return nil, false
	}
	if _, ok := room[connID]; !ok {
		return nil, false
	}

	delete(room, connID)
	if len(room) == 0 {
		delete(r.rooms, roomID)
	} else {
		for _, c := range room {
			remaining = append(remaining, c)
		}
	}

	if set, ok := r.conns[connID]; ok {
		delete(set, roomID)
		if len(set) == 0 {
			delete(r.conns, connID)
		}
	}

	return remaining, true
}
