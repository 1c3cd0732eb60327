package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"osgb/internal/domain/audit"
	"osgb/internal/domain/auth"
	"osgb/internal/domain/company"
	"osgb/internal/domain/document"
	"osgb/internal/domain/healthtest"
	"osgb/internal/domain/notifications"
	"osgb/internal/domain/quote"
	"osgb/internal/domain/report"
	"osgb/internal/domain/screening"
	"osgb/internal/platform/config"
	cryptoutil "osgb/internal/platform/crypto"
	"osgb/internal/platform/db"
	"osgb/internal/platform/email"
	"osgb/internal/platform/jobs"
	"osgb/internal/platform/metrics"
	authhandler "osgb/internal/transport/http/handlers/auth"
	companyhandler "osgb/internal/transport/http/handlers/company"
	documenthandler "osgb/internal/transport/http/handlers/document"
	healthtesthandler "osgb/internal/transport/http/handlers/healthtest"
	notificationshandler "osgb/internal/transport/http/handlers/notifications"
	quotehandler "osgb/internal/transport/http/handlers/quote"
	reporthandler "osgb/internal/transport/http/handlers/report"
	screeninghandler "osgb/internal/transport/http/handlers/screening"
	"osgb/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	crypto, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		log.Fatalf("encryption setup failed: %v", err)
	}

	authStore := auth.NewStore(pool)
	screeningStore := screening.NewStore(pool)
	screeningService := screening.NewService(screeningStore)
	documentService := document.NewService(document.NewStore(pool), crypto, cfg.StorageDir)
	companyService := company.NewService(company.NewStore(pool))
	healthTestStore := healthtest.NewStore(pool)
	quoteService := quote.NewService(quote.NewStore(pool))
	auditService := audit.New(pool)
	reportService := report.NewService(screeningService, documentService)

	mailer := email.New(cfg)
	notifyService := notifications.NewService(notifications.NewStore(pool), mailer, slog.Default())

	jobService := jobs.New(pool, cfg, documentService, screeningStore, notifyService)
	jobService.Start(ctx)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if collector != nil {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authStore, cfg.JWTSecret, mailer)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRateLimit(cfg.RateLimitPerMinute, time.Minute))
			r.Post("/auth/login", authHandler.HandleLogin)
			r.Post("/auth/logout", authHandler.HandleLogout)
			r.Post("/auth/request-reset", authHandler.HandleRequestReset)
			r.Post("/auth/reset", authHandler.HandleResetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

			companyhandler.NewHandler(companyService, auditService).RegisterRoutes(r)
			screeninghandler.NewHandler(screeningService, notifyService, auditService).RegisterRoutes(r)
			documenthandler.NewHandler(documentService, auditService).RegisterRoutes(r)
			healthtesthandler.NewHandler(healthTestStore, auditService).RegisterRoutes(r)
			quotehandler.NewHandler(quoteService, notifyService, auditService).RegisterRoutes(r)
			reporthandler.NewHandler(reportService, screeningService, auditService, jobService, collector).RegisterRoutes(r)
			notificationshandler.NewHandler(notifyService).RegisterRoutes(r)
		})
	})

	log.Printf("OSGB server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
