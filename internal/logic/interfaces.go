package logic

import (
	"context"

	"github.com/betanalytics/analytics-api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// Repository is the read/aggregate-write surface the analytics services need.
// Implementations return *NotFoundError for unknown ids.
type Repository interface {
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	ListTeams(ctx context.Context, filter models.TeamFilter) ([]models.Team, error)
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
	GetMatches(ctx context.Context, filter models.MatchFilter) ([]models.Match, error)

	// SaveTeamAggregate replaces the counters and averages of a team in a
	// single statement so readers never see a partial aggregate.
	SaveTeamAggregate(ctx context.Context, team *models.Team) error
	SaveMatchAnnotation(ctx context.Context, matchID int64, a models.MatchAnnotation) error
}

// Store adds the CRUD operations used by the HTTP layer.
type Store interface {
	Repository

	CreateTeam(ctx context.Context, team *models.Team) error
	UpdateTeamProfile(ctx context.Context, team *models.Team) error
	DeactivateTeam(ctx context.Context, id int64) error
	CreateMatch(ctx context.Context, match *models.Match) error
	UpdateMatch(ctx context.Context, match *models.Match) error
	Ping(ctx context.Context) error
}

// TrendCache memoizes trend scans. A miss is reported with ok=false.
// Get returns the cache version it read; Set writes under that version so
// an Invalidate that lands mid-scan is not undone.
type TrendCache interface {
	Get(ctx context.Context, filter models.TrendFilter) (results []models.TrendResult, version int64, ok bool, err error)
	Set(ctx context.Context, version int64, filter models.TrendFilter, results []models.TrendResult) error
	Invalidate(ctx context.Context) error
}

// SnapshotSink receives prediction snapshots for the analytics log.
// Enqueue must not block; it reports false when the snapshot was dropped.
type SnapshotSink interface {
	Enqueue(snapshot *models.PredictionSnapshot) bool
}
