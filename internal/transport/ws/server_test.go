package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTestServer(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func writeMessage(t *testing.T, conn *websocket.Conn, event, data string) {
	t.Helper()
	msg := Message{Event: event}
	if data != "" {
		msg.Data = json.RawMessage(data)
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// Живой прогон двухстороннего звонка через настоящий websocket.
func TestServer_EndToEndCall(t *testing.T) {
	srv := NewServer(NewRelay(NewRegistry()), 0)
	ts := httptest.NewServer(http.HandlerFunc(srv.HandleWS))
	defer ts.Close()

	x := dialTestServer(t, ts)
	y := dialTestServer(t, ts)

	writeMessage(t, x, EventJoinRoom, `{"roomId":"call-42","isInitiator":true}`)
	// события разных соединений не упорядочены между собой: даем серверу
	// обработать join X прежде, чем присоединится Y
	time.Sleep(200 * time.Millisecond)
	writeMessage(t, y, EventJoinRoom, `"call-42"`)

	// X видит вход Y, затем ready
	msg := readMessage(t, x)
	if msg.Event != EventUserJoined {
		t.Fatalf("x: want user-joined, got %q", msg.Event)
	}
	var peerID string
	if err := json.Unmarshal(msg.Data, &peerID); err != nil || peerID == "" {
		t.Fatalf("user-joined must carry conn id, got %s", msg.Data)
	}
	if msg = readMessage(t, x); msg.Event != EventReady {
		t.Fatalf("x: want ready, got %q", msg.Event)
	}

	// Y получает только ready
	if msg = readMessage(t, y); msg.Event != EventReady {
		t.Fatalf("y: want ready, got %q", msg.Event)
	}

	// offer от X долетает до Y без изменений
	writeMessage(t, x, EventOffer, `{"roomId":"call-42","offer":{"sdp":"v=0"}}`)
	msg = readMessage(t, y)
	if msg.Event != EventOffer {
		t.Fatalf("y: want offer, got %q", msg.Event)
	}
	if string(msg.Data) != `{"sdp":"v=0"}` {
		t.Fatalf("offer payload changed in transit: %s", msg.Data)
	}

	// разрыв Y оборачивается user-left у X с id Y
	_ = y.Close()
	msg = readMessage(t, x)
	if msg.Event != EventUserLeft {
		t.Fatalf("x: want user-left after peer disconnect, got %q", msg.Event)
	}
	var leftID string
	if err := json.Unmarshal(msg.Data, &leftID); err != nil || leftID != peerID {
		t.Fatalf("user-left id mismatch: got %s, want %q", msg.Data, peerID)
	}
}

func TestServer_MalformedFramesDoNotKillConnection(t *testing.T) {
	srv := NewServer(NewRelay(NewRegistry()), 0)
	ts := httptest.NewServer(http.HandlerFunc(srv.HandleWS))
	defer ts.Close()

	x := dialTestServer(t, ts)

	if err := x.WriteMessage(websocket.TextMessage, []byte("not json at all")); err != nil {
		t.Fatalf("write: %v", err)
	}
	writeMessage(t, x, EventOffer, `{"bogus":true}`)

	// соединение живо: обычный join после мусора всё еще работает
	time.Sleep(100 * time.Millisecond)
	writeMessage(t, x, EventJoinRoom, `"still-alive"`)

	y := dialTestServer(t, ts)
	time.Sleep(100 * time.Millisecond)
	writeMessage(t, y, EventJoinRoom, `"still-alive"`)

	if msg := readMessage(t, x); msg.Event != EventUserJoined {
		t.Fatalf("x: want user-joined, got %q", msg.Event)
	}
	if msg := readMessage(t, x); msg.Event != EventReady {
		t.Fatalf("x: want ready, got %q", msg.Event)
	}
}
