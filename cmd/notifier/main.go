package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/notifications"
	"github.com/m04kA/SMC-CourtBookingService/pkg/jwtauth"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
)

// Воркер доставки писем о бронированиях из очереди asynq
func main() {
	cfgPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewWithOptions(logger.Options{
		File:   cfg.Logs.File,
		Level:  cfg.Logs.Level,
		Format: cfg.Logs.Format,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	var metricsCollector *metrics.Metrics
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName + "-notifier")

		metricsServer = metrics.NewServer(
			fmt.Sprintf(":%d", cfg.Notifications.MetricsPort),
			cfg.Metrics.Path,
			prometheus.DefaultGatherer,
		)
		go func() {
			log.Info("Notifier metrics exposed at %s%s", metricsServer.Addr, cfg.Metrics.Path)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("Notifier metrics server failed: %v", err)
			}
		}()
	}

	if cfg.Notifications.AdminEmail == "" {
		log.Warn("notifications.admin_email is empty, new booking notices will be skipped")
	}

	mailClient := mailer.NewClient(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
		Timeout:  time.Duration(cfg.Mail.Timeout) * time.Second,
	}, log)

	// Без публичного адреса ссылки approve/reject в письмо не добавляются
	var links notifications.LinkBuilder
	if cfg.Server.PublicURL != "" {
		links = notifications.NewActionLinks(
			cfg.Server.PublicURL,
			jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
			time.Duration(cfg.Auth.ActionLinkHours)*time.Hour,
		)
	} else {
		log.Warn("server.public_url is empty, admin notices will not carry approve/reject links")
	}

	handler := notifications.NewHandler(mailClient, cfg.Notifications.AdminEmail, links, metricsCollector, log)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.QueueDB,
		},
		asynq.Config{
			Concurrency: cfg.Notifications.Concurrency,
			Queues: map[string]int{
				cfg.Notifications.Queue: 1,
			},
			Logger: log.Zap().Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	handler.Register(mux)

	log.Info("Starting notification worker (queue=%s, concurrency=%d)",
		cfg.Notifications.Queue, cfg.Notifications.Concurrency)

	// Run блокируется до SIGINT/SIGTERM и сам завершает обработку текущих задач
	if err := srv.Run(mux); err != nil {
		log.Fatal("Notification worker stopped: %v", err)
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Error("Notifier metrics server forced to shutdown: %v", err)
		}
	}

	log.Info("Notification worker stopped gracefully")
}
