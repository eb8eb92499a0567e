package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	courseapp "training-hub/internal/application/course"
	notificationapp "training-hub/internal/application/notification"
	prapp "training-hub/internal/application/pr"
	"training-hub/internal/application/resolver"
	userapp "training-hub/internal/application/user"
	"training-hub/internal/domain/models"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/infrastructure/config"
	"training-hub/internal/infrastructure/github"
	httpserver "training-hub/internal/infrastructure/http"
	"training-hub/internal/infrastructure/logger"
	chatrepo "training-hub/internal/infrastructure/persistence/postgres/chat"
	pguow "training-hub/internal/infrastructure/persistence/postgres/uow"
	"training-hub/internal/infrastructure/realtime"
)

const (
	e2eWebhookSecret = "webhook-secret"
	e2eJWTSecret     = "jwt-secret"
)

const e2eReadyPayload = `{
	"action": "created",
	"issue": {"number": 12, "title": "Week 2 homework", "body": "Solution\n\ntrainee_id:5",
		"html_url": "https://github.com/acme/bootcamp/pull/12",
		"user": {"login": "octo", "id": 42},
		"pull_request": {"url": "https://api.github.com/repos/acme/bootcamp/pulls/12"}},
	"comment": {"body": "ready for review", "user": {"login": "octo", "id": 42}},
	"repository": {"full_name": "acme/bootcamp", "html_url": "https://github.com/acme/bootcamp"}
}`

type e2eEnv struct {
	server *httptest.Server
	hub    *realtime.Hub
	tokens *auth.JWTValidator
}

func newE2E(t *testing.T) *e2eEnv {
	t.Helper()
	log := logger.New("test")
	u := pguow.NewPostgresUOW(pgC.Pool, log)
	hub := realtime.NewHub(log)
	tokens := auth.NewJWTValidator(e2eJWTSecret, "training-hub")

	notifications := notificationapp.NewService(u, hub, log)
	prService := prapp.NewService(u,
		resolver.NewIdentityResolver(log, resolver.DefaultExtractors()...),
		resolver.NewRepositoryResolver(log),
		notifications, log)
	gateway := realtime.NewGateway(hub, tokens, chatrepo.NewParticipantRepository(pgC.Pool, log),
		realtime.Options{SendBuffer: 16}, log)

	router := httpserver.NewRouter(log, httpserver.Services{
		PR:           prService,
		Notification: notifications,
		Course:       courseapp.NewService(u, log),
		User:         userapp.NewService(u, log),
		Tokens:       tokens,
		Realtime:     gateway,
		DB:           pgC.Pool,
	})
	router.Setup(&config.Config{
		HTTPServer: config.HTTPServer{RequestTimeout: 5 * time.Second},
		GitHub:     config.GitHub{WebhookSecret: e2eWebhookSecret},
	})

	srv := httptest.NewServer(router.GetRouter())
	t.Cleanup(func() {
		hub.CloseAll()
		srv.Close()
	})
	return &e2eEnv{server: srv, hub: hub, tokens: tokens}
}

func (e *e2eEnv) token(t *testing.T, userID int64, role models.Role) string {
	t.Helper()
	tok, err := e.tokens.Sign(userID, role, time.Minute)
	require.NoError(t, err)
	return tok
}

func (e *e2eEnv) dial(t *testing.T, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(e.server.URL, "http") + "/ws?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	env := readFrame(t, conn)
	require.Equal(t, realtime.EventConnected, env.Event)
	return conn
}

func (e *e2eEnv) deliver(t *testing.T, event, body string) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, e.server.URL+"/webhooks/github", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-GitHub-Delivery", "e2e")
	req.Header.Set("X-Hub-Signature-256", github.Sign([]byte(body), []byte(e2eWebhookSecret)))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode
}

type wireFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func readFrame(t *testing.T, conn *websocket.Conn) wireFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var f wireFrame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestWebhookToWebSocket_E2E(t *testing.T) {
	mustTruncate(t)
	seedBootcamp(t)
	linkBootcampRepo(t)
	env := newE2E(t)

	trainer := env.dial(t, env.token(t, 2, models.RoleTrainer))

	assert.Equal(t, http.StatusOK, env.deliver(t, github.EventIssueComment, e2eReadyPayload))
	assert.Equal(t, http.StatusOK, env.deliver(t, github.EventIssueComment, e2eReadyPayload))

	f := readFrame(t, trainer)
	require.Equal(t, models.EventNotification, f.Event)
	var n models.NotificationEvent
	require.NoError(t, json.Unmarshal(f.Data, &n))
	assert.Equal(t, "New Pull Request Ready for Review", n.Title)
	assert.Equal(t, models.NotificationTypePR, n.Type)

	assert.Equal(t, 1, countPRs(t))
	assert.Equal(t, 1, countNotifications(t, 2))

	// The duplicate delivery must not reach the socket.
	require.NoError(t, trainer.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err := trainer.ReadMessage()
	assert.Error(t, err)
}

func TestWebSocketGateway_E2E(t *testing.T) {
	mustTruncate(t)
	seedBootcamp(t)
	require.NoError(t, AddChatParticipant(testCtx, pgC.Pool, "course-7", 5))
	env := newE2E(t)

	t.Run("handshake without token is refused", func(t *testing.T) {
		url := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws"
		_, resp, err := websocket.DefaultDialer.Dial(url, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("participants join rooms", func(t *testing.T) {
		conn := env.dial(t, env.token(t, 5, models.RoleTrainee))

		require.NoError(t, conn.WriteJSON(realtime.ClientFrame{Type: realtime.FrameJoinRoom, Room: "course-7"}))
		f := readFrame(t, conn)
		assert.Equal(t, realtime.EventRoomJoined, f.Event)

		require.NoError(t, conn.WriteJSON(realtime.ClientFrame{Type: realtime.FrameJoinRoom, Room: "course-8"}))
		f = readFrame(t, conn)
		assert.Equal(t, realtime.EventError, f.Event)

		require.NoError(t, env.hub.PublishToRoom("course-7", "message", map[string]string{"text": "hi"}))
		f = readFrame(t, conn)
		assert.Equal(t, "message", f.Event)
	})

	t.Run("health reports the database", func(t *testing.T) {
		resp, err := http.Get(env.server.URL + "/health")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
