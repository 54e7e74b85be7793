package ws

import (
	"encoding/json"
	"errors"
)

// Имена событий сигнального протокола. Обе стороны используют одни и те же.
const (
	EventJoinRoom     = "join-room"     // client -> server
	EventUserJoined   = "user-joined"   // server -> client, data: conn id
	EventReady        = "ready"         // server -> client, без data
	EventOffer        = "offer"         // в обе стороны
	EventAnswer       = "answer"        // в обе стороны
	EventICECandidate = "ice-candidate" // в обе стороны
	EventLeaveRoom    = "leave-room"    // client -> server
	EventUserLeft     = "user-left"     // server -> client, data: conn id
)

type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

var errBadPayload = errors.New("bad payload")

// JoinPayload — клиент шлет либо голую строку с id комнаты,
// либо объект {roomId, isInitiator}. Обе формы принимаются.
type JoinPayload struct {
	RoomID      string `json:"roomId"`
	IsInitiator bool   `json:"isInitiator"`
}

func decodeJoin(data []byte) (JoinPayload, error) {
	var roomID string
	if err := json.Unmarshal(data, &roomID); err == nil {
		return JoinPayload{RoomID: roomID}, nil
	}

	var p JoinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return JoinPayload{}, errBadPayload
	}
	return p, nil
}

// decodeRoomID — для leave-room: строка или объект {roomId}.
func decodeRoomID(data []byte) (string, error) {
	var roomID string
	if err := json.Unmarshal(data, &roomID); err == nil {
		return roomID, nil
	}

	var p struct {
		RoomID string `json:"roomId"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return "", errBadPayload
	}
	return p.RoomID, nil
}

// SignalPayload — входящие offer/answer/ice-candidate.
// Тело не разбирается и не валидируется, пересылается как есть.
type SignalPayload struct {
	RoomID    string          `json:"roomId"`
	Offer     json.RawMessage `json:"offer,omitempty"`
	Answer    json.RawMessage `json:"answer,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

func decodeSignal(data []byte, p *SignalPayload) error {
	if err := json.Unmarshal(data, p); err != nil {
		return errBadPayload
	}
	return nil
}

func (p SignalPayload) body(event string) json.RawMessage {
	switch event {
	case EventOffer:
		return p.Offer
	case EventAnswer:
		return p.Answer
	case EventICECandidate:
		return p.Candidate
	}
	return nil
}

func connIDMessage(event, connID string) Message {
	data, _ := json.Marshal(connID)
	return Message{Event: event, Data: data}
}
