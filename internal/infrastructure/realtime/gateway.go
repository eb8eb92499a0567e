package realtime

import (
	"context"
	"net/http"
	"strings"
	"time"
	ports "training-hub/internal/domain/ports/output"
	"training-hub/internal/domain/ports/output/realtime"
	"training-hub/internal/infrastructure/auth"
	"training-hub/internal/utils"

	"github.com/gorilla/websocket"
)

const (
	maxRoomName      = 128
	roomCheckTimeout = 5 * time.Second
)

type Authenticator interface {
	Validate(token string) (auth.Principal, error)
}

type Options struct {
	SendBuffer     int
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration
	AllowedOrigins []string
}

type Gateway struct {
	hub      *Hub
	authn    Authenticator
	rooms    realtime.RoomAuthorizer
	opts     Options
	upgrader websocket.Upgrader
	log      ports.Logger
}

func NewGateway(hub *Hub, authn Authenticator, rooms realtime.RoomAuthorizer, opts Options, log ports.Logger) *Gateway {
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	if opts.PongTimeout <= 0 {
		opts.PongTimeout = 60 * time.Second
	}
	if opts.PingInterval <= 0 || opts.PingInterval >= opts.PongTimeout {
		opts.PingInterval = opts.PongTimeout * 9 / 10
	}
	g := &Gateway{hub: hub, authn: authn, rooms: rooms, opts: opts, log: log}
	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     g.checkOrigin,
	}
	return g
}

func (g *Gateway) checkOrigin(r *http.Request) bool {
	if len(g.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range g.opts.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, err := g.authn.Validate(auth.TokenFromRequest(r))
	if err != nil {
		g.log.Debug("realtime handshake rejected", "remote", r.RemoteAddr, "err", err)
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPStatusToCode(http.StatusUnauthorized), utils.ErrUnauthorized.Error())
		return
	}
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("websocket upgrade failed", "user_id", principal.UserID, "err", err)
		return
	}

	s := newSession(principal.UserID, conn, g.opts.SendBuffer)
	g.hub.register(s)
	log := g.log.With("user_id", s.userID, "session_id", s.id)
	log.Info("realtime session opened")

	go s.writePump(g.opts.WriteTimeout, g.opts.PingInterval)
	g.reply(s, EventConnected, ConnectedPayload{UserID: s.userID, SessionID: s.id})

	s.readPump(g.opts.PongTimeout, func(frame ClientFrame, err error) {
		g.handleFrame(s, frame, err)
	})

	g.hub.unregister(s)
	s.close()
	log.Info("realtime session closed")
}

func (g *Gateway) reply(s *Session, event string, payload any) {
	msg, err := encode(event, payload)
	if err != nil {
		return
	}
	g.hub.trySend(s, msg)
}

func (g *Gateway) handleFrame(s *Session, frame ClientFrame, decodeErr error) {
	if decodeErr != nil {
		g.reply(s, EventError, ErrorPayload{Message: "malformed frame"})
		return
	}
	room := strings.TrimSpace(frame.Room)
	switch frame.Type {
	case FrameJoinRoom:
		if room == "" || len(room) > maxRoomName {
			g.reply(s, EventError, ErrorPayload{Message: "invalid room", Room: room})
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), roomCheckTimeout)
		ok, err := g.rooms.IsParticipant(ctx, room, s.userID)
		cancel()
		if err != nil {
			g.log.Error("room authorization failed", "room", room, "user_id", s.userID, "err", err)
			g.reply(s, EventError, ErrorPayload{Message: "room check failed", Room: room})
			return
		}
		if !ok {
			g.reply(s, EventError, ErrorPayload{Message: "not a participant", Room: room})
			return
		}
		g.hub.join(room, s)
		g.reply(s, EventRoomJoined, RoomPayload{Room: room})
	case FrameLeaveRoom:
		g.hub.leave(room, s)
		g.reply(s, EventRoomLeft, RoomPayload{Room: room})
	default:
		g.reply(s, EventError, ErrorPayload{Message: "unknown frame type"})
	}
}
