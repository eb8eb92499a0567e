package http

import (
	"context"
	"net/http"
	"time"
	input "training-hub/internal/domain/ports/input"
	ports "training-hub/internal/domain/ports/output"
	"training-hub/internal/infrastructure/config"
	"training-hub/internal/infrastructure/http/handlers/course"
	"training-hub/internal/infrastructure/http/handlers/notification"
	"training-hub/internal/infrastructure/http/handlers/pr"
	"training-hub/internal/infrastructure/http/handlers/user"
	"training-hub/internal/infrastructure/http/handlers/webhook"
	middlewares "training-hub/internal/infrastructure/http/middleware"
	"training-hub/internal/utils"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Services struct {
	PR           input.PRInputPort
	Notification input.NotificationInputPort
	Course       input.CourseInputPort
	User         input.UserInputPort
	Tokens       middlewares.TokenValidator
	Realtime     http.Handler
	DB           Pinger
}

type Router struct {
	router   *chi.Mux
	log      ports.Logger
	services Services
}

func NewRouter(log ports.Logger, services Services) *Router {
	return &Router{
		router:   chi.NewRouter(),
		log:      log,
		services: services,
	}
}

func (r *Router) Setup(cfg *config.Config) {
	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))

	// Long-lived and fire-to-completion routes stay outside the request timeout.
	if r.services.Realtime != nil {
		r.router.Handle("/ws", r.services.Realtime)
	}
	r.router.Mount("/webhooks", r.setupWebhookRoutes(cfg))

	r.router.Group(func(g chi.Router) {
		g.Use(chiMiddleware.Timeout(cfg.HTTPServer.RequestTimeout))
		g.Get("/health", r.health)

		g.Group(func(authed chi.Router) {
			authed.Use(middlewares.Authenticate(r.services.Tokens))
			authed.Mount("/notifications", r.setupNotificationRoutes())
			authed.Mount("/pull-requests", r.setupPRRoutes())
			authed.Mount("/courses", r.setupCourseRoutes())
			authed.Mount("/users", r.setupUserRoutes())
		})
	})
}

func (r *Router) setupWebhookRoutes(cfg *config.Config) http.Handler {
	h := webhook.NewWebhookHandler(r.services.PR, cfg.GitHub.WebhookSecret, r.log)
	sub := chi.NewRouter()
	sub.Post("/github", h.GitHub)
	return sub
}

func (r *Router) setupNotificationRoutes() http.Handler {
	h := notification.NewNotificationHandler(r.services.Notification, r.log)
	sub := chi.NewRouter()
	sub.Get("/", h.List)
	sub.Post("/read-all", h.MarkAllRead)
	sub.Post("/{id}/read", h.MarkRead)
	return sub
}

func (r *Router) setupPRRoutes() http.Handler {
	h := pr.NewPRHandler(r.services.PR, r.log)
	sub := chi.NewRouter()
	sub.Get("/{id}", h.GetPR)
	sub.Post("/{id}/review", h.Review)
	return sub
}

func (r *Router) setupCourseRoutes() http.Handler {
	prHandler := pr.NewPRHandler(r.services.PR, r.log)
	h := course.NewCourseHandler(r.services.Course, r.log)
	sub := chi.NewRouter()
	sub.Get("/{courseID}/pull-requests", prHandler.ListByCourse)
	sub.Post("/{courseID}/repos", h.LinkCourseRepo)
	sub.Post("/{courseID}/trainee-repos", h.LinkTraineeRepo)
	return sub
}

func (r *Router) setupUserRoutes() http.Handler {
	h := user.NewUserHandler(r.services.User, r.log)
	sub := chi.NewRouter()
	sub.Get("/me", h.GetMe)
	sub.Put("/me/github", h.LinkGitHub)
	return sub
}

type healthResponse struct {
	Status string `json:"status"`
}

func (r *Router) health(w http.ResponseWriter, req *http.Request) {
	if r.services.DB != nil {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := r.services.DB.Ping(ctx); err != nil {
			r.log.Warn("health check failed", "err", err)
			_ = utils.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
	}
	_ = utils.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
