package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// replyTimeout bounds how long one engine reply may take before the
// session is considered dead.
const replyTimeout = 10 * time.Second

// ServerEngine talks to a vosk-server instance over WebSocket. The wire
// protocol is one JSON config frame up front, then exactly one JSON reply
// per binary audio chunk: {"partial": ...} while a segment is open, a full
// result object once the engine finalizes one. {"eof": 1} flushes the
// closing segment.
type ServerEngine struct {
	url string
}

func NewServerEngine(url string) (*ServerEngine, error) {
	if url == "" {
		return nil, fmt.Errorf("empty recognition server url")
	}
	return &ServerEngine{url: url}, nil
}

func (e *ServerEngine) NewSession(ctx context.Context, sampleRate int) (Session, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, e.url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s (status %d): %w", e.url, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("dial %s: %w", e.url, err)
	}

	cfg := map[string]map[string]int{"config": {"sample_rate": sampleRate}}
	if err := conn.WriteJSON(cfg); err != nil {
		conn.Close()
		return nil, fmt.Errorf("send config: %w", err)
	}

	return &serverSession{conn: conn}, nil
}

// Close is a no-op; the engine holds no resources of its own. Sessions own
// their connections.
func (e *ServerEngine) Close() error { return nil }

type serverSession struct {
	conn    *websocket.Conn
	partial string
	result  string
	dead    bool
}

func (s *serverSession) Accept(chunk []byte) bool {
	if s.dead {
		return false
	}
	if err := s.conn.WriteMessage(websocket.BinaryMessage, chunk); err != nil {
		s.fail("write", err)
		return false
	}
	payload, err := s.readReply()
	if err != nil {
		s.fail("read", err)
		return false
	}
	if isPartial(payload) {
		s.partial = NormalizePartial(payload)
		return false
	}
	s.result = payload
	s.partial = ""
	return true
}

func (s *serverSession) Partial() string { return s.partial }

func (s *serverSession) Result() string { return s.result }

func (s *serverSession) Final() string {
	if s.dead {
		return ""
	}
	if err := s.conn.WriteJSON(map[string]int{"eof": 1}); err != nil {
		s.fail("write eof", err)
		return ""
	}
	payload, err := s.readReply()
	if err != nil {
		s.fail("read final", err)
		return ""
	}
	return payload
}

func (s *serverSession) Close() error {
	_ = s.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return s.conn.Close()
}

func (s *serverSession) readReply() (string, error) {
	if err := s.conn.SetReadDeadline(time.Now().Add(replyTimeout)); err != nil {
		return "", err
	}
	_, message, err := s.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(message), nil
}

// fail marks the session dead. Later calls degrade to empty results so the
// capture loop keeps running without recognition.
func (s *serverSession) fail(op string, err error) {
	if !s.dead {
		log.Printf("Recognizer: server %s: %v", op, err)
		s.dead = true
	}
}

func isPartial(payload string) bool {
	var p struct {
		Partial *string `json:"partial"`
	}
	return json.Unmarshal([]byte(payload), &p) == nil && p.Partial != nil
}
