package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"guild-dashboard/internal/config"
	"guild-dashboard/internal/discord"
	"guild-dashboard/internal/observability/logging"
	"guild-dashboard/internal/observability/metrics"
	impl "guild-dashboard/internal/service/impl"
	"guild-dashboard/internal/store"
	httpx "guild-dashboard/internal/transport/http"
	"guild-dashboard/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "dashboard",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	cfg := config.Load()

	metrics.MustRegister("dashboard")

	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("gorm open", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Error("migrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	dc := discord.NewClient(cfg.DiscordAPIBase, cfg.DiscordBotToken, cfg.ResolverTimeout)

	authority := impl.NewAuthorityService(dc, cfg.ResolverTimeout)
	settings := impl.NewSettingsService(st, authority)
	audit := impl.NewAuditService(st, authority)

	h := httpx.NewHandler(settings, authority, audit)
	sessions := httpx.NewSessionValidator(cfg.SessionSecret, cfg.SessionIssuer)

	router := httpx.NewRouter(h, sessions, httpx.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		RatePeriod:  cfg.RatePeriod,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("dashboard listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
