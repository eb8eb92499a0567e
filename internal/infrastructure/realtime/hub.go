package realtime

import (
	"strconv"
	"sync"
	"sync/atomic"
	ports "training-hub/internal/domain/ports/output"
)

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

type sessionSet map[*Session]struct{}

// Hub is the in-memory membership table: user channels and chat rooms.
// Publishing never blocks; a session whose buffer is full loses the frame.
type Hub struct {
	mu    sync.RWMutex
	users map[int64]sessionSet
	rooms map[string]sessionSet
	log   ports.Logger

	dropped atomic.Uint64
}

func NewHub(log ports.Logger) *Hub {
	return &Hub{
		users: make(map[int64]sessionSet),
		rooms: make(map[string]sessionSet),
		log:   log,
	}
}

func (h *Hub) register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.users[s.userID]
	if !ok {
		set = make(sessionSet)
		h.users[s.userID] = set
	}
	set[s] = struct{}{}
}

func (h *Hub) unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.users[s.userID]; ok {
		delete(set, s)
		if len(set) == 0 {
			delete(h.users, s.userID)
		}
	}
	for room := range s.rooms {
		h.removeFromRoom(room, s)
	}
	s.rooms = nil
}

func (h *Hub) join(room string, s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.rooms[room]
	if !ok {
		set = make(sessionSet)
		h.rooms[room] = set
	}
	set[s] = struct{}{}
	if s.rooms == nil {
		s.rooms = make(map[string]struct{})
	}
	s.rooms[room] = struct{}{}
}

func (h *Hub) leave(room string, s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeFromRoom(room, s)
	delete(s.rooms, room)
}

// removeFromRoom expects h.mu held.
func (h *Hub) removeFromRoom(room string, s *Session) {
	set, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(set, s)
	if len(set) == 0 {
		delete(h.rooms, room)
	}
}

func (h *Hub) PublishToUser(userID int64, event string, payload any) error {
	msg, err := encode(event, payload)
	if err != nil {
		return err
	}
	h.mu.RLock()
	targets := snapshot(h.users[userID])
	h.mu.RUnlock()
	h.fanOut(userChannel(userID), targets, msg)
	return nil
}

func (h *Hub) PublishToRoom(room string, event string, payload any) error {
	msg, err := encode(event, payload)
	if err != nil {
		return err
	}
	h.mu.RLock()
	targets := snapshot(h.rooms[room])
	h.mu.RUnlock()
	h.fanOut("room:"+room, targets, msg)
	return nil
}

func (h *Hub) fanOut(channel string, targets []*Session, msg []byte) {
	for _, s := range targets {
		if !h.trySend(s, msg) {
			h.log.Warn("realtime frame dropped", "channel", channel, "session_id", s.id, "user_id", s.userID)
		}
	}
}

func (h *Hub) trySend(s *Session, msg []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- msg:
		return true
	default:
		h.dropped.Add(1)
		return false
	}
}

func (h *Hub) droppedFrames() uint64 {
	return h.dropped.Load()
}

func (h *Hub) sessionCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

func (h *Hub) roomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func snapshot(set sessionSet) []*Session {
	if len(set) == 0 {
		return nil
	}
	res := make([]*Session, 0, len(set))
	for s := range set {
		res = append(res, s)
	}
	return res
}

func (h *Hub) CloseAll() {
	h.mu.RLock()
	var all []*Session
	for _, set := range h.users {
		all = append(all, snapshot(set)...)
	}
	h.mu.RUnlock()
	for _, s := range all {
		s.close()
	}
	h.log.Info("realtime sessions closed", "count", len(all), "dropped_frames", h.droppedFrames())
}
