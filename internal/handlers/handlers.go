package handlers

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/betanalytics/analytics-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// HealthCheck probes one dependency for /ready.
type HealthCheck func(ctx context.Context) error

// SnapshotQueue reports the depth of the prediction snapshot queue.
type SnapshotQueue interface {
	QueueDepth() int
}

type Config struct {
	Store  logic.Store
	Logger *zap.Logger

	// Services
	Stats    logic.StatisticsService
	Trends   logic.TrendService
	Analysis logic.AnalysisService
	History  logic.PredictionHistoryService // nil when the prediction log is disabled

	// Optional infrastructure
	Queue      SnapshotQueue
	Checks     map[string]HealthCheck
	Postgres   logic.PgPool
	ClickHouse driver.Conn

	AdminToken        string
	FormDefaultWindow int
	MigrationsDir     string
}

type Handler struct {
	store      logic.Store
	stats      logic.StatisticsService
	trends     logic.TrendService
	analysis   logic.AnalysisService
	history    logic.PredictionHistoryService
	queue      SnapshotQueue
	checks     map[string]HealthCheck
	pg         logic.PgPool
	ch         driver.Conn
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	adminHash  string
	formWindow int
	migrations string
}

func New(cfg Config) *Handler {
	h := &Handler{
		store:      cfg.Store,
		stats:      cfg.Stats,
		trends:     cfg.Trends,
		analysis:   cfg.Analysis,
		history:    cfg.History,
		queue:      cfg.Queue,
		checks:     cfg.Checks,
		pg:         cfg.Postgres,
		ch:         cfg.ClickHouse,
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		formWindow: cfg.FormDefaultWindow,
		migrations: cfg.MigrationsDir,
	}
	if cfg.AdminToken != "" {
		h.adminHash = hashToken(cfg.AdminToken)
	}
	if h.formWindow <= 0 {
		h.formWindow = 5
	}
	if h.migrations == "" {
		h.migrations = "migrations"
	}
	return h
}
