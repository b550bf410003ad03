// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slack-charity-donate/internal/config"
	"slack-charity-donate/internal/infra/logging"
	"slack-charity-donate/internal/infra/metrics"
	slackapi "slack-charity-donate/internal/infra/slack"
	stripeapi "slack-charity-donate/internal/infra/stripe"
	"slack-charity-donate/internal/infra/web"
	"slack-charity-donate/internal/usecase"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Runtime.Dev {
		log.Printf("[DEV MODE] Enabled")
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)

	// ---- Metrics ----
	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Outbound adapters ----
	slackClient := slackapi.NewClient(cfg.Slack.BotToken, cfg.Slack.APIBaseURL, logger)
	gateway := stripeapi.NewGateway(cfg.Stripe.SecretKey, cfg.Stripe.APIBaseURL, cfg.Stripe.Currency, logger)

	// ---- Flow orchestrator ----
	flowUC := usecase.NewFlowUseCase(slackClient, gateway, cfg.Server.PublicURL, logger)

	// ---- HTTP server ----
	srv := web.NewServer(flowUC, cfg.Slack.ShortcutCallbackID, cfg.Stripe.PublishableKey, cfg.Server.CallTimeout, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Str("public_url", cfg.Server.PublicURL).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}
	cancel()
}
