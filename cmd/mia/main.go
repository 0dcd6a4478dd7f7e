package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ZIZO17z/mia/agents"
	"github.com/ZIZO17z/mia/bootstrap"
	"github.com/ZIZO17z/mia/config"
	"github.com/ZIZO17z/mia/log"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	log.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(ctx, "Failed to load config: %v", err)
	}

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Failed to initialize: %v", err)
	}

	session := agents.NewConsoleSession(app.Genkit, app.Model, os.Stdin, os.Stdout)

	if err := app.Assistant.Start(ctx, session); err != nil {
		log.Fatalf(ctx, "Failed to start assistant: %v", err)
	}

	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf(ctx, "Session ended with error: %v", err)
	}
}
