package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const maxClientFrame = 4096

type Session struct {
	id     string
	userID int64
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	once   sync.Once

	// rooms is guarded by Hub.mu.
	rooms map[string]struct{}
}

func newSession(userID int64, conn *websocket.Conn, buffer int) *Session {
	if buffer <= 0 {
		buffer = 1
	}
	return &Session{
		id:     uuid.NewString(),
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, buffer),
		done:   make(chan struct{}),
	}
}

func (s *Session) close() {
	s.once.Do(func() { close(s.done) })
}

// writePump owns all writes to the connection.
func (s *Session) writePump(writeTimeout, pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()
	for {
		select {
		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		case <-s.done:
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
			return
		}
	}
}

func (s *Session) readPump(pongTimeout time.Duration, onFrame func(ClientFrame, error)) {
	s.conn.SetReadLimit(maxClientFrame)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		var frame ClientFrame
		decodeErr := json.Unmarshal(data, &frame)
		onFrame(frame, decodeErr)
	}
}
