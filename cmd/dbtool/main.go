package main

import (
	"context"
	"fmt"
	"os"
	"planet-positions-service/internal/adapters/repositories"
	"planet-positions-service/internal/config"
	"planet-positions-service/internal/platform/db"
	"planet-positions-service/internal/platform/obs"
	"strings"
	"time"

	"go.uber.org/zap"
)

// dbtool creates the calculation log schema in Postgres ahead of deployment.
func main() {
	foundEnv := config.LoadDotEnv()

	logger, err := obs.NewLogger(config.Get("LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if !foundEnv {
		logger.Info("no .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info("initializing database schema")
	if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}
	logger.Info("schema ready")
}
