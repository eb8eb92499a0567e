package realtime

func (h *Hub) SessionCount(userID int64) int { return h.sessionCount(userID) }

func (h *Hub) RoomSize(room string) int { return h.roomSize(room) }
