// Package main starts the certificate onboarding web service.
//
// The service renders the onboarding page and serves the CA certificate
// artifacts from the configuration directory.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trustgate/onboard/internal/platform/otel"
	"github.com/trustgate/onboard/internal/services/onboard"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to an optional TOML config file")
	flag.Parse()

	log.SetPrefix("[ONBOARD] ")
	cfg, err := onboard.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otel.Setup(ctx, "onboard", otel.Config{
		Endpoint: cfg.OTelEndpoint,
		Disabled: cfg.OTelDisabled,
	})
	if err != nil {
		log.Fatalf("otel setup: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	srv, err := onboard.NewServer(cfg)
	if err != nil {
		log.Fatalf("build server: %v", err)
	}
	log.Printf("onboarding service listening on %s", cfg.HTTPAddr)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
