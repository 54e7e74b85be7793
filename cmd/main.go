package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swasthya-setu/backend/internal/config"
	"github.com/swasthya-setu/backend/internal/pg"
	"github.com/swasthya-setu/backend/internal/postgres"
	"github.com/swasthya-setu/backend/internal/security"
	"github.com/swasthya-setu/backend/internal/service"
	httpx "github.com/swasthya-setu/backend/internal/transport/http"
	"github.com/swasthya-setu/backend/internal/transport/ws"
	"github.com/swasthya-setu/backend/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting swasthya-setu backend",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- postgres ---
	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Postgres.ToPGConfig())
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// --- security ---
	priv, err := security.LoadRSAPrivateKeyFromPEM(cfg.Security.JWT.PrivateKeyPath)
	if err != nil {
		log.Fatalf("jwt private key: %v", err)
	}
	pub, err := security.LoadRSAPublicKeyFromPEM(cfg.Security.JWT.PublicKeyPath)
	if err != nil {
		log.Fatalf("jwt public key: %v", err)
	}
	jwtSigner := security.NewJWTSigner(priv, pub,
		cfg.Security.JWT.Issuer, cfg.Security.JWT.Audience,
		cfg.Security.JWT.AccessTTL, cfg.Security.JWT.ClockSkew)

	// --- repos ---
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	maternalRepo := postgres.NewMaternalRepository(pool)
	immunizationRepo := postgres.NewImmunizationRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	prescriptionRepo := postgres.NewPrescriptionRepository(pool)
	bloodRepo := postgres.NewBloodRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)

	// --- services ---
	authSvc := service.NewAuthService(userRepo, sessionRepo, jwtSigner,
		cfg.Security.JWT.RefreshTTL,
		security.BcryptConfig{Cost: cfg.Security.Password.BcryptCost, MinLength: cfg.Security.Password.MinLength},
		nil)
	patientSvc := service.NewPatientService(patientRepo)
	taskSvc := service.NewTaskService(taskRepo)
	maternalSvc := service.NewMaternalService(maternalRepo)
	immunizationSvc := service.NewImmunizationService(immunizationRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo)
	prescriptionSvc := service.NewPrescriptionService(prescriptionRepo)
	bloodSvc := service.NewBloodService(bloodRepo, alertRepo, slog.Default())
	alertSvc := service.NewAlertService(alertRepo)

	// --- signaling ---
	registry := ws.NewRegistry()
	relay := ws.NewRelay(registry)
	signaling := ws.NewServer(relay, cfg.Signaling.PingEvery)

	// --- HTTP ---
	router := httpx.NewRouter(httpx.Deps{
		JWT:           jwtSigner,
		Auth:          authSvc,
		Patients:      patientSvc,
		Tasks:         taskSvc,
		Maternal:      maternalSvc,
		Immunizations: immunizationSvc,
		Appointments:  appointmentSvc,
		Prescriptions: prescriptionSvc,
		Blood:         bloodSvc,
		Alerts:        alertSvc,
		Signaling:     signaling,
	})
	httpSrv := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http listen", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctxShutdown, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}
