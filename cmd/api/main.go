// @title Match Analytics API
// @version 1.0
// @description Team statistics, Poisson match predictions, form and league trend detection.
// @BasePath /api/v1
// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/betanalytics/analytics-api/docs"
	"github.com/betanalytics/analytics-api/internal/cache"
	"github.com/betanalytics/analytics-api/internal/config"
	"github.com/betanalytics/analytics-api/internal/handlers"
	"github.com/betanalytics/analytics-api/internal/logic"
	"github.com/betanalytics/analytics-api/internal/scheduler"
	"github.com/betanalytics/analytics-api/internal/store"
	"github.com/betanalytics/analytics-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := run(cfg, logger); err != nil {
		sugar.Fatalw("Server exited with error", "error", err)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checks := map[string]handlers.HealthCheck{}

	// Relational store
	var (
		st     *store.Store
		pgPool logic.PgPool
	)
	driverName, dsn, err := cfg.DatabaseDriver()
	if err != nil {
		return err
	}
	switch driverName {
	case "postgres":
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			return fmt.Errorf("ping postgres: %w", err)
		}
		st = store.NewPostgresStore(pool)
		pgPool = pool
	case "sqlite":
		var db *sql.DB
		st, db, err = store.OpenSQLite(ctx, dsn)
		if err != nil {
			return err
		}
		defer db.Close()
	}
	sugar.Infow("Connected to database", "driver", driverName)

	// Redis trend cache
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		sugar.Warnw("Redis unavailable at startup; trend scans will not be cached until it recovers", "error", err)
	}
	checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	trendCache := cache.NewTrendCache(rdb, cfg.TrendCacheTTL)

	// Optional ClickHouse prediction log
	var (
		chConn  driver.Conn
		history logic.PredictionHistoryService
		sink    logic.SnapshotSink = worker.NopSink{}
		queue   handlers.SnapshotQueue
	)
	if cfg.ClickHouseURL != "" {
		opts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
		if err != nil {
			return fmt.Errorf("parse CLICKHOUSE_URL: %w", err)
		}
		conn, err := clickhouse.Open(opts)
		if err != nil {
			return fmt.Errorf("connect clickhouse: %w", err)
		}
		defer conn.Close()
		if err := conn.Ping(ctx); err != nil {
			sugar.Warnw("ClickHouse unavailable at startup", "error", err)
		}
		chConn = conn
		history = logic.NewPredictionHistoryService(conn)
		checks["clickhouse"] = conn.Ping

		pool := worker.NewPool(worker.PoolConfig{
			WorkerCount:   cfg.WorkerCount,
			QueueSize:     cfg.QueueSize,
			BatchSize:     cfg.BatchSize,
			FlushInterval: cfg.FlushInterval,
			ClickHouse:    conn,
			Logger:        sugar,
		})
		pool.Start(context.Background())
		defer pool.Stop()
		sink, queue = pool, pool
	} else {
		sugar.Info("CLICKHOUSE_URL not set; prediction log disabled")
	}

	// Services
	stats := logic.NewStatisticsService(st, sugar)
	trends := logic.NewTrendService(st, logic.DefaultTrendRegistry(), trendCache, cfg.TrendConfidenceLevel, sugar)
	analysis := logic.NewAnalysisService(logic.AnalysisDeps{
		Repo: st,
		Predictor: logic.NewPredictor(logic.PredictorConfig{
			HomeAdvantage: cfg.PredictionHomeAdvantage,
			MaxGoals:      cfg.PredictionMaxGoals,
		}),
		Trends: trends,
		Form:   logic.NewFormService(st),
		Sink:   sink,
		Logger: sugar,
	})

	sched := scheduler.New(scheduler.Config{
		RecomputeInterval: cfg.StatsRecomputeInterval,
		AnnotateInterval:  cfg.AnalyzeUpcomingInterval,
		AnnotateLimit:     cfg.AnalyzeUpcomingLimit,
	}, scheduler.Deps{
		Repo:     st,
		Stats:    stats,
		Trends:   trends,
		Analysis: analysis,
		Logger:   sugar,
	})
	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		sched.Run(ctx)
	}()

	h := handlers.New(handlers.Config{
		Store:             st,
		Logger:            logger,
		Stats:             stats,
		Trends:            trends,
		Analysis:          analysis,
		History:           history,
		Queue:             queue,
		Checks:            checks,
		Postgres:          pgPool,
		ClickHouse:        chConn,
		AdminToken:        cfg.AdminToken,
		FormDefaultWindow: cfg.FormDefaultWindow,
		MigrationsDir:     cfg.MigrationsDir,
	})

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: h.Router(handlers.RouterOptions{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		sugar.Infow("Server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
		sugar.Info("Shutdown signal received")
	}

	stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
	<-schedDone
	sugar.Info("Server stopped")
	return nil
}
