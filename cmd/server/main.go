package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"planet-positions-service/internal/adapters/cache"
	"planet-positions-service/internal/adapters/catalog"
	"planet-positions-service/internal/adapters/repositories"
	"planet-positions-service/internal/api"
	"planet-positions-service/internal/config"
	"planet-positions-service/internal/domain"
	"planet-positions-service/internal/locale"
	"planet-positions-service/internal/platform/db"
	"planet-positions-service/internal/platform/metrics"
	"planet-positions-service/internal/platform/obs"
	"planet-positions-service/internal/ports"
	"planet-positions-service/internal/services"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// main is the application composition root.
// It wires the city catalog, calculation log, result cache and metrics behind
// ports and starts the HTTP server.
func main() {
	foundEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := obs.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if !foundEnv {
		logger.Info("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, calcLog, err := openCalculationLog(ctx, cfg)
	if err != nil {
		logger.Fatal("open calculation log", zap.Error(err))
	}
	defer conn.Close()

	m := metrics.NewCollector("planet_positions")

	opts := []services.Option{services.WithLogger(logger)}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		opts = append(opts, services.WithCache(cache.NewRedisResultCache(client, cfg.CacheTTL, m)))
		logger.Info("result cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}

	// A broken table keeps the server up in a 503 state instead of exiting,
	// so the failure is visible to clients.
	calc, initErr := newCalculator(cfg.CitiesPath, opts...)
	if initErr != nil {
		logger.Error("calculation engine unavailable", zap.Error(initErr))
	}

	router := api.NewRouter(api.Deps{
		Calc:        calc,
		InitErr:     initErr,
		Log:         calcLog,
		Metrics:     m,
		Logger:      logger,
		DefaultLang: locale.Parse(cfg.DefaultLang, language.Russian),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("server listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}

func newCalculator(citiesPath string, opts ...services.Option) (*services.Calculator, error) {
	cities, err := catalog.Load(citiesPath)
	if err != nil {
		return nil, fmt.Errorf("new calculator: %w: %w", domain.ErrEngineUnavailable, err)
	}
	return services.NewCalculator(cities, opts...)
}

func openCalculationLog(ctx context.Context, cfg config.Config) (*sql.DB, ports.CalculationLog, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return conn, repositories.NewSQLCalculationLog(conn), nil
	default:
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSqliteSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return conn, repositories.NewSqliteCalculationLog(conn), nil
	}
}
