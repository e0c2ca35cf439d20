package http

import (
	"net/http"
	"time"

	obsmw "guild-dashboard/internal/observability/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	CORSOrigins []string
	RateLimit   int           // requests per RatePeriod per IP on /api
	RatePeriod  time.Duration
}

func NewRouter(h *Handler, sessions *SessionValidator, cfg RouterConfig) *chi.Mux {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 100
	}
	if cfg.RatePeriod <= 0 {
		cfg.RatePeriod = time.Minute
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(obsmw.WithRequestAndTrace)
	r.Use(obsmw.WithMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(httprate.LimitByIP(cfg.RateLimit, cfg.RatePeriod))
		api.Use(sessions.Middleware)

		api.Get("/guilds", h.Guilds)

		api.Route("/settings", func(sr chi.Router) {
			sr.Get("/{guildID}", h.GetSettings)
			sr.Patch("/{guildID}", h.UpdateSettings)
			sr.Put("/{guildID}/{settingKey}", h.PutSetting)
			sr.Delete("/{guildID}", h.ResetSettings)
		})

		api.Route("/admin", func(ar chi.Router) {
			ar.Get("/{guildID}/audit-logs", h.AuditLogs)
			ar.Get("/{guildID}/stats", h.Stats)
		})
	})

	return r
}
