package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"aprendiz/internal/auth"
	"aprendiz/internal/db"
	"aprendiz/internal/domain/apprentice"
	"aprendiz/internal/domain/attendance"
	"aprendiz/internal/domain/configset"
	"aprendiz/internal/domain/employee"
	"aprendiz/internal/domain/evaluation"
	"aprendiz/internal/domain/recognition"
	"aprendiz/internal/domain/reports"
	"aprendiz/internal/platform/config"
	cryptoutil "aprendiz/internal/platform/crypto"
	"aprendiz/internal/platform/jobs"
	"aprendiz/internal/platform/metrics"
	"aprendiz/internal/transport/http/api"
	apprenticehandler "aprendiz/internal/transport/http/handlers/apprentice"
	attendancehandler "aprendiz/internal/transport/http/handlers/attendance"
	authhandler "aprendiz/internal/transport/http/handlers/auth"
	configsethandler "aprendiz/internal/transport/http/handlers/configset"
	employeehandler "aprendiz/internal/transport/http/handlers/employee"
	evaluationhandler "aprendiz/internal/transport/http/handlers/evaluation"
	recognitionhandler "aprendiz/internal/transport/http/handlers/recognition"
	reportshandler "aprendiz/internal/transport/http/handlers/reports"
	webhookhandler "aprendiz/internal/transport/http/handlers/webhook"
	"aprendiz/internal/transport/http/middleware"
	"aprendiz/internal/transport/ws"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
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

	cryptoSvc, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		log.Fatalf("encryption key invalid: %v", err)
	}

	collector := metrics.New()
	hub := ws.NewHub()

	apprenticeSvc := apprentice.NewService(apprentice.NewStore(pool))
	evaluationSvc := evaluation.NewService(evaluation.NewStore(pool))
	employeeSvc := employee.NewService(employee.NewStore(pool))
	attendanceStore := attendance.NewStore(pool)
	configStore := configset.NewStore(pool)
	recognitionSvc := recognition.NewService(
		recognition.NewStore(pool, cryptoSvc),
		recognition.NewCloudClient(cfg.RecognitionURL, cfg.RecognitionTimeout),
		cfg.FaceMatchThreshold,
	)
	reportSvc := reports.NewService(apprenticeSvc, employeeSvc)

	jobRunner := jobs.New(pool, attendanceStore)
	jobRunner.Start(ctx, cfg.AttendanceAuditEvery)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

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

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Get("/ws/clock", hub.HandleWS)

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Get("/auth/me", authHandler.HandleMe)

		staff := r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleRH))
		apprenticehandler.NewHandler(apprenticeSvc).RegisterRoutes(staff)
		evaluationhandler.NewHandler(evaluationSvc).RegisterRoutes(staff)
		employeehandler.NewHandler(employeeSvc).RegisterRoutes(staff)
		configsethandler.NewHandler(configStore).RegisterRoutes(staff)
		reportshandler.NewHandler(reportSvc).RegisterRoutes(staff)

		terminal := r.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleRH, auth.RoleKiosk))
		attendancehandler.NewHandler(attendanceStore, hub, collector).RegisterRoutes(terminal)
		recognitionhandler.NewHandler(recognitionSvc, collector).RegisterRoutes(terminal)
	})

	webhook := &webhookhandler.Handler{
		Apprentices: apprenticeSvc,
		Evaluations: evaluationSvc,
		Employees:   employeeSvc,
		Attendance:  attendanceStore,
		Recognition: recognitionSvc,
		Configs:     configStore,
		Hub:         hub,
		Collector:   collector,
	}
	router.With(middleware.RequireRole(auth.RoleAdmin, auth.RoleRH, auth.RoleKiosk)).
		HandleFunc("/exec", webhook.HandleExec)

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
