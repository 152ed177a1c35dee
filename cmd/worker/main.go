package main

import (
	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/queue/asynqserver"
	"github.com/skyticket/backend/internal/worker"
	"github.com/skyticket/backend/pkg/email"
	"github.com/skyticket/backend/pkg/email/smtp"
	"github.com/skyticket/backend/pkg/logger"
	"github.com/skyticket/backend/pkg/sms"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting queue worker", zap.String("env", cfg.Env))

	var emailSender email.Sender
	if cfg.Email.Enabled {
		smtpSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
		if err != nil {
			logger.Fatal("smtp sender creation failed", zap.Error(err))
		}
		emailSender = smtpSender
	}

	workers := worker.NewWorkers(worker.Deps{
		SMSProvider:   sms.NewHTTPSender(cfg.SMS.BaseURL, cfg.SMS.APIKey, cfg.SMS.Sender, cfg.SMS.Timeout),
		EmailProvider: emailSender,
		Config:        cfg,
	})

	srv, mux := asynqserver.New(cfg.Cache, workers)

	// Run blocks until SIGTERM or SIGINT and shuts the server down gracefully.
	if err := srv.Run(mux); err != nil {
		logger.Fatal("asynq server stopped with error", zap.Error(err))
	}

	logger.Info("worker stopped")
}
