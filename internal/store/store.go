package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/betanalytics/analytics-api/internal/logic"
	"github.com/jackc/pgx/v5"
)

var errNoRows = errors.New("no rows in result set")

type rowScanner interface {
	Scan(dest ...any) error
}

type rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// querier hides the difference between pgx and database/sql.
type querier interface {
	query(ctx context.Context, sql string, args ...any) (rows, error)
	queryRow(ctx context.Context, sql string, args ...any) rowScanner
	exec(ctx context.Context, sql string, args ...any) (int64, error)
	ping(ctx context.Context) error
}

// Store is the SQL-backed logic.Store shared by the Postgres and SQLite backends.
type Store struct {
	q       querier
	dialect Dialect
}

var _ logic.Store = (*Store)(nil)

// NewPostgresStore wraps a pgx pool.
func NewPostgresStore(pool logic.PgPool) *Store {
	return &Store{q: pgxQuerier{pool: pool}, dialect: Postgres}
}

// NewSQLStore wraps a database/sql handle speaking the given dialect.
func NewSQLStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{q: sqlQuerier{db: db}, dialect: dialect}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.q.ping(ctx)
}

type pgxQuerier struct {
	pool logic.PgPool
}

func (p pgxQuerier) query(ctx context.Context, sql string, args ...any) (rows, error) {
	r, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p pgxQuerier) queryRow(ctx context.Context, sql string, args ...any) rowScanner {
	return pgxRow{row: p.pool.QueryRow(ctx, sql, args...)}
}

func (p pgxQuerier) exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (p pgxQuerier) ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

type pgxRow struct {
	row pgx.Row
}

func (r pgxRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errNoRows
		}
		return err
	}
	return nil
}

type sqlQuerier struct {
	db *sql.DB
}

func (q sqlQuerier) query(ctx context.Context, query string, args ...any) (rows, error) {
	r, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{r}, nil
}

func (q sqlQuerier) queryRow(ctx context.Context, query string, args ...any) rowScanner {
	return sqlRow{row: q.db.QueryRowContext(ctx, query, args...)}
}

func (q sqlQuerier) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := q.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (q sqlQuerier) ping(ctx context.Context) error {
	return q.db.PingContext(ctx)
}

type sqlRows struct {
	*sql.Rows
}

func (r sqlRows) Close() {
	_ = r.Rows.Close()
}

type sqlRow struct {
	row *sql.Row
}

func (r sqlRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errNoRows
		}
		return err
	}
	return nil
}
