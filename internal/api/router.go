package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Wheel/internal/config"
	"github.com/MikeSquared-Agency/Wheel/internal/hermes"
	"github.com/MikeSquared-Agency/Wheel/internal/options"
	"github.com/MikeSquared-Agency/Wheel/internal/session"
)

func NewRouter(svc *options.Service, sessions *session.Store, h hermes.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimit))
	r.Use(Compression)
	r.Use(SessionMiddleware(sessions))

	style := cfg.Style()
	page := NewPageHandler(svc, sessions, style, logger)
	opts := NewOptionsHandler(svc)
	wh := NewWheelHandler(svc, style)
	spin := NewSpinHandler(svc, sessions, h, cfg.Animation(), cfg.FrameDelay(), style, logger)
	sess := NewSessionHandler(sessions, cfg.Server.AdminPassword, logger)
	admin := NewAdminHandler(svc, sessions)

	r.Get("/", page.Index)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", opts.List)
		r.Get("/wheel", wh.Geometry)
		r.Get("/wheel.svg", wh.SVG)

		r.Post("/spin", spin.Spin)
		r.Get("/spin/stream", spin.Stream)
		r.Post("/spin/reset", spin.Reset)

		r.Get("/session", sess.Get)
		r.Post("/session/login", sess.Login)
		r.Post("/session/logout", sess.Logout)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken, sessions))
			r.Post("/options", opts.Create)
			r.Put("/options", opts.Replace)
			r.Put("/options/{index}", opts.Update)
			r.Delete("/options/{index}", opts.Delete)
			r.Get("/stats", admin.Stats)
			r.Get("/simulate", admin.Simulate)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
