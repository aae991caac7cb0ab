package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/weatherunion/weatherunion-go/internal/app"
	"github.com/weatherunion/weatherunion-go/internal/config"
	"github.com/weatherunion/weatherunion-go/internal/services/metrics"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := zap.NewProduction()
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	met := metrics.NewMetrics("weather_union")

	application := app.New(*cfg, l, met)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		log.Panicf("Application failed to run: %v", err)
	}
}
