package realtime_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/logger"
	"training-hub/internal/infrastructure/realtime"
	"training-hub/mocks"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gatewayEnv struct {
	hub    *realtime.Hub
	rooms  *mocks.RoomAuthorizer
	jwt    *auth.JWTValidator
	server *httptest.Server
	wsURL  string
}

func newGatewayEnv(t *testing.T) *gatewayEnv {
	log := logger.New("test")
	env := &gatewayEnv{
		hub:   realtime.NewHub(log),
		rooms: mocks.NewRoomAuthorizer(t),
		jwt:   auth.NewJWTValidator("secret", "training-hub"),
	}
	gw := realtime.NewGateway(env.hub, env.jwt, env.rooms, realtime.Options{
		SendBuffer:   8,
		WriteTimeout: time.Second,
		PongTimeout:  5 * time.Second,
		PingInterval: time.Second,
	}, log)
	env.server = httptest.NewServer(gw)
	t.Cleanup(env.server.Close)
	env.wsURL = "ws" + strings.TrimPrefix(env.server.URL, "http")
	return env
}

func (e *gatewayEnv) dial(t *testing.T, userID int64) *websocket.Conn {
	t.Helper()
	token, err := e.jwt.Sign(userID, models.RoleTrainee, time.Minute)
	require.NoError(t, err)
	conn, resp, err := websocket.DefaultDialer.Dial(e.wsURL+"?token="+token, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })

	env := readEnvelope(t, conn)
	require.Equal(t, realtime.EventConnected, env.Event)
	return conn
}

type testEnvelope struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

func readEnvelope(t *testing.T, conn *websocket.Conn) testEnvelope {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var env testEnvelope
	require.NoError(t, conn.ReadJSON(&env))
	return env
}

func TestGateway_RejectsMissingCredential(t *testing.T) {
	env := newGatewayEnv(t)
	_, resp, err := websocket.DefaultDialer.Dial(env.wsURL, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateway_RejectsForgedCredential(t *testing.T) {
	env := newGatewayEnv(t)
	token, err := auth.NewJWTValidator("forged", "training-hub").Sign(5, models.RoleTrainee, time.Minute)
	require.NoError(t, err)
	header := http.Header{"Authorization": []string{"Bearer " + token}}
	_, resp, err := websocket.DefaultDialer.Dial(env.wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateway_DeliversUserNotifications(t *testing.T) {
	env := newGatewayEnv(t)
	first := env.dial(t, 5)
	second := env.dial(t, 5)
	require.Eventually(t, func() bool { return env.hub.SessionCount(5) == 2 }, time.Second, 10*time.Millisecond)

	link := "/pull-requests/abc"
	require.NoError(t, env.hub.PublishToUser(5, models.EventNotification, models.NotificationEvent{
		ID: "abc", Type: models.NotificationTypePR, Title: "Pull Request Approved", Message: "m", LinkTo: &link,
	}))

	for _, conn := range []*websocket.Conn{first, second} {
		got := readEnvelope(t, conn)
		assert.Equal(t, models.EventNotification, got.Event)
		assert.Equal(t, "Pull Request Approved", got.Data["title"])
		assert.Equal(t, link, got.Data["linkTo"])
	}
}

func TestGateway_RoomMembership(t *testing.T) {
	env := newGatewayEnv(t)
	env.rooms.EXPECT().IsParticipant(mock.Anything, "chat-1", int64(5)).Return(true, nil)
	env.rooms.EXPECT().IsParticipant(mock.Anything, "chat-2", int64(5)).Return(false, nil)
	conn := env.dial(t, 5)

	require.NoError(t, conn.WriteJSON(realtime.ClientFrame{Type: realtime.FrameJoinRoom, Room: "chat-2"}))
	got := readEnvelope(t, conn)
	assert.Equal(t, realtime.EventError, got.Event)

	require.NoError(t, conn.WriteJSON(realtime.ClientFrame{Type: realtime.FrameJoinRoom, Room: "chat-1"}))
	got = readEnvelope(t, conn)
	assert.Equal(t, realtime.EventRoomJoined, got.Event)
	assert.Equal(t, 1, env.hub.RoomSize("chat-1"))

	require.NoError(t, env.hub.PublishToRoom("chat-1", "message", map[string]string{"text": "hi"}))
	got = readEnvelope(t, conn)
	assert.Equal(t, "message", got.Event)

	require.NoError(t, conn.WriteJSON(realtime.ClientFrame{Type: realtime.FrameLeaveRoom, Room: "chat-1"}))
	got = readEnvelope(t, conn)
	assert.Equal(t, realtime.EventRoomLeft, got.Event)
	assert.Equal(t, 0, env.hub.RoomSize("chat-1"))
}

func TestGateway_MalformedFrame(t *testing.T) {
	env := newGatewayEnv(t)
	conn := env.dial(t, 5)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{nope")))
	got := readEnvelope(t, conn)
	assert.Equal(t, realtime.EventError, got.Event)
}

func TestGateway_DisconnectRemovesSession(t *testing.T) {
	env := newGatewayEnv(t)
	env.rooms.EXPECT().IsParticipant(mock.Anything, "chat-1", int64(5)).Return(true, nil)
	conn := env.dial(t, 5)
	require.NoError(t, conn.WriteJSON(realtime.ClientFrame{Type: realtime.FrameJoinRoom, Room: "chat-1"}))
	_ = readEnvelope(t, conn)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool {
		return env.hub.SessionCount(5) == 0 && env.hub.RoomSize("chat-1") == 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.NoError(t, env.hub.PublishToUser(5, models.EventNotification, nil))
}
