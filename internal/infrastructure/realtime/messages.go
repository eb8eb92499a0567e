package realtime

import "encoding/json"

const (
	EventConnected  = "connected"
	EventRoomJoined = "room_joined"
	EventRoomLeft   = "room_left"
	EventError      = "error"
)

const (
	FrameJoinRoom  = "join_room"
	FrameLeaveRoom = "leave_room"
)

type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type ClientFrame struct {
	Type string `json:"type"`
	Room string `json:"room"`
}

type ConnectedPayload struct {
	UserID    int64  `json:"userId"`
	SessionID string `json:"sessionId"`
}

type RoomPayload struct {
	Room string `json:"room"`
}

type ErrorPayload struct {
	Message string `json:"message"`
	Room    string `json:"room,omitempty"`
}

func encode(event string, payload any) ([]byte, error) {
	return json.Marshal(Envelope{Event: event, Data: payload})
}

func userChannel(userID int64) string {
	return "user:" + itoa(userID)
}
