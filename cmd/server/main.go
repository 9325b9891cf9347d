package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/thunderguard-ph/thunderguard/modules/alerts"
	"github.com/thunderguard-ph/thunderguard/pkg/config"
	"github.com/thunderguard-ph/thunderguard/pkg/dispatch"
	"github.com/thunderguard-ph/thunderguard/pkg/hotline"
	"github.com/thunderguard-ph/thunderguard/pkg/httpserver"
	"github.com/thunderguard-ph/thunderguard/pkg/logger"
	"github.com/thunderguard-ph/thunderguard/pkg/presence"
	"github.com/thunderguard-ph/thunderguard/pkg/sender"
	"github.com/thunderguard-ph/thunderguard/pkg/userstore"
)

type appConfig struct {
	Env                 string        `env:"APP_ENV" envDefault:"development"`
	MaxEmailConcurrency int           `env:"MAX_EMAIL_CONCURRENCY" envDefault:"16"`
	EmailTimeout        time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`
	DrainTimeout        time.Duration `env:"DRAIN_TIMEOUT" envDefault:"30s"`
}

func main() {
	var (
		appCfg   appConfig
		httpCfg  httpserver.Config
		dbCfg    userstore.Config
		emailCfg sender.EmailConfig
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&dbCfg)
	config.MustLoad(&emailCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Env, "thunderguard"))
	logger.SetAsDefault(log)

	store, err := userstore.Open(dbCfg)
	if err != nil {
		log.Error("failed to open user store", logger.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	registry := presence.NewRegistry()

	var emailSender sender.Sender
	if emailCfg.HasPostmark() {
		emailSender = sender.MustNewEmailSender(emailCfg)
		log.Info("email channel: postmark", logger.Channel("email"))
	} else {
		emailSender = sender.NewDevEmailSender(emailCfg.DevOutputDir)
		log.Warn("email channel: dev sender, alerts written to disk",
			logger.Channel("email"),
			slog.String("dir", emailCfg.DevOutputDir),
		)
	}

	dispatcher, err := dispatch.NewDispatcher(
		hotline.New(),
		userstore.NewPresenceFilteredSource(store, registry),
		sender.NewSMSGateway(sender.WithSMSLogger(log)),
		emailSender,
		dispatch.WithLogger(log),
		dispatch.WithEmailTimeout(appCfg.EmailTimeout),
		dispatch.WithMaxConcurrentDeliveries(appCfg.MaxEmailConcurrency),
	)
	if err != nil {
		log.Error("failed to build dispatcher", logger.Error(err))
		os.Exit(1)
	}

	svc := alerts.NewService(store, registry, dispatcher, alerts.WithLogger(log))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/api", svc.Handle())

	srv := httpserver.New(httpCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("http server failed", logger.Error(err))
		os.Exit(1)
	}

	// The listener is down; give in-flight deliveries a bounded window to
	// finish before the process exits.
	drainCtx, cancel := context.WithTimeout(context.Background(), appCfg.DrainTimeout)
	defer cancel()
	if err := dispatcher.Shutdown(drainCtx); err != nil {
		log.Warn("dropped in-flight deliveries on shutdown", logger.Error(err))
	}
}
