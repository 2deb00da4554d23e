// Package main is the entry point of the campus event hub API: colleges
// register students and events, students register, attend, and leave
// feedback, and admins pull the aggregate reports.
//
// The layout follows Clean Architecture:
//   - Domain: business rules with no external dependencies
//   - Application: command and query use cases
//   - Infrastructure: PostgreSQL repositories, Redis report cache
//   - Interface: the REST API
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/campus-hub/campus-event-hub/config"
	"github.com/campus-hub/campus-event-hub/internal/application/command"
	"github.com/campus-hub/campus-event-hub/internal/application/query"
	"github.com/campus-hub/campus-event-hub/internal/infrastructure/persistence/postgres"
	"github.com/campus-hub/campus-event-hub/internal/infrastructure/persistence/redis"
	httpserver "github.com/campus-hub/campus-event-hub/internal/interface/http"
	"github.com/campus-hub/campus-event-hub/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(logger.Options{
		Output:    os.Stdout,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.IsDevelopment(),
	})
	log.Info("starting campus event hub",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. POSTGRESQL
	// ─────────────────────────────────────────────────────────────────────────
	conn, err := postgres.NewConnectionFromURL(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close()
	log.Info("connected to PostgreSQL")

	if err := postgres.NewMigrator(conn).Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("database migrations applied")

	// ─────────────────────────────────────────────────────────────────────────
	// 4. REDIS (optional report cache)
	// ─────────────────────────────────────────────────────────────────────────
	var reportCache query.ReportCache
	if !cfg.Redis.Disabled {
		redisCfg := redis.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB

		cache, err := redis.NewCache(redisCfg)
		if err != nil {
			log.Warn("redis unavailable, report caching disabled", logger.Err(err))
		} else {
			defer cache.Close()
			reportCache = redis.NewReportCache(cache, cfg.Redis.ReportTTL, log)
			log.Info("report cache enabled",
				logger.String("addr", redisCfg.Addr()),
				logger.Duration("ttl", cfg.Redis.ReportTTL),
			)
		}
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. REPOSITORIES AND USE CASES
	// ─────────────────────────────────────────────────────────────────────────
	colleges := postgres.NewCollegeRepository(conn)
	students := postgres.NewStudentRepository(conn)
	events := postgres.NewEventRepository(conn)
	registrations := postgres.NewRegistrationRepository(conn)
	attendance := postgres.NewAttendanceRepository(conn)
	feedback := postgres.NewFeedbackRepository(conn)
	reports := postgres.NewReportRepository(conn)

	gate := command.NewEventGate(events)

	deps := httpserver.Dependencies{
		CreateCollege:   command.NewCreateCollegeHandler(colleges),
		CreateStudent:   command.NewCreateStudentHandler(students),
		CreateEvent:     command.NewCreateEventHandler(events),
		UpdateEvent:     command.NewUpdateEventHandler(events),
		RegisterStudent: command.NewRegisterStudentHandler(gate, registrations),
		MarkAttendance:  command.NewMarkAttendanceHandler(gate, attendance),
		SubmitFeedback:  command.NewSubmitFeedbackHandler(gate, feedback),

		EventPopularity:      query.NewEventPopularityHandler(reports, reportCache),
		AttendanceSummary:    query.NewAttendanceSummaryHandler(reports),
		AvgFeedback:          query.NewAvgFeedbackHandler(reports),
		StudentParticipation: query.NewStudentParticipationHandler(reports),
		TopActiveStudents:    query.NewTopActiveStudentsHandler(reports, reportCache),

		Logger:        log,
		HealthChecker: conn,
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. HTTP SERVER
	// ─────────────────────────────────────────────────────────────────────────
	serverCfg := httpserver.DefaultConfig()
	serverCfg.Host = cfg.HTTP.Host
	serverCfg.Port = cfg.HTTP.Port
	serverCfg.ReadTimeout = cfg.HTTP.ReadTimeout
	serverCfg.WriteTimeout = cfg.HTTP.WriteTimeout
	serverCfg.IdleTimeout = cfg.HTTP.IdleTimeout

	server := httpserver.NewServer(serverCfg, deps)
	serverErr := server.StartAsync()

	// ─────────────────────────────────────────────────────────────────────────
	// 7. GRACEFUL SHUTDOWN
	// ─────────────────────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", logger.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("context cancelled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	log.Info("shutdown complete")
	return nil
}
