// Package worker implements the buffered worker pool that ships prediction
// snapshots to ClickHouse. Analysis requests never wait on the analytics
// store: snapshots are queued, batched and flushed in the background, and
// dropped (counted) when the queue is full.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/betanalytics/analytics-api/internal/models"
)

// Prometheus metrics
var (
	snapshotsQueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analytics_snapshots_queued_total",
		Help: "Prediction snapshots accepted by the worker pool",
	})

	snapshotsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analytics_snapshots_written_total",
		Help: "Prediction snapshots written to ClickHouse",
	})

	snapshotsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analytics_snapshots_failed_total",
		Help: "Prediction snapshots lost to failed batch inserts",
	})

	snapshotsShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analytics_snapshots_load_shed_total",
		Help: "Prediction snapshots dropped because the queue was full or stopped",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "analytics_worker_queue_depth",
		Help: "Current depth of the snapshot queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analytics_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to ClickHouse",
		Buckets: prometheus.DefBuckets,
	})
)

const insertSnapshots = `
	INSERT INTO prediction_log (
		run_id, match_id, home_team_id, away_team_id, league_name, computed_at,
		lambda_home, lambda_away,
		home_win_probability, draw_probability, away_win_probability, btts_probability,
		data_sufficient
	)`

// BatchConn is the part of a ClickHouse connection the pool writes through.
type BatchConn interface {
	PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	ClickHouse    BatchConn
	Logger        *zap.SugaredLogger
}

// Pool manages a pool of workers that batch snapshots into ClickHouse
type Pool struct {
	config  PoolConfig
	queue   chan *models.PredictionSnapshot
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	stopped atomic.Bool
	logger  *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		config: cfg,
		queue:  make(chan *models.PredictionSnapshot, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
		logger: cfg.Logger,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop drains the queue, flushes every pending batch and waits for the workers.
func (p *Pool) Stop() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	p.logger.Info("Stopping worker pool...")
	close(p.queue)
	p.wg.Wait()
	p.cancel()
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a snapshot without blocking. It returns false when the
// snapshot was shed because the queue is full or the pool is stopped.
func (p *Pool) Enqueue(snap *models.PredictionSnapshot) (ok bool) {
	if p.stopped.Load() {
		snapshotsShed.Inc()
		return false
	}

	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue snapshot (pool stopped)", "error", r)
			snapshotsShed.Inc()
			ok = false
		}
	}()

	select {
	case p.queue <- snap:
		snapshotsQueued.Inc()
		return true
	case <-p.ctx.Done():
		snapshotsShed.Inc()
		return false
	default:
		snapshotsShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.queue)
}

// worker collects snapshots into batches and flushes on size or interval.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]*models.PredictionSnapshot, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		written, err := p.processBatch(batch)
		if err != nil {
			p.logger.Errorw("Batch processing failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
		} else {
			p.logger.Debugw("Batch processed", "worker", id, "batchSize", len(batch), "written", written, "duration", time.Since(start))
		}
		snapshotsWritten.Add(float64(written))
		snapshotsFailed.Add(float64(len(batch) - written))
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case snap, ok := <-p.queue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, snap)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			flush()
			return
		}
	}
}

// processBatch writes one batch with a single ClickHouse round trip and
// returns how many snapshots reached the table. Rows the driver refuses to
// append are skipped; a failed send loses the whole batch.
func (p *Pool) processBatch(batch []*models.PredictionSnapshot) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	chBatch, err := p.config.ClickHouse.PrepareBatch(ctx, insertSnapshots)
	if err != nil {
		return 0, err
	}

	appended := 0
	for _, s := range batch {
		var sufficient uint8
		if s.DataSufficient {
			sufficient = 1
		}
		err := chBatch.Append(
			s.RunID,
			s.MatchID,
			s.HomeTeamID,
			s.AwayTeamID,
			s.League,
			s.ComputedAt,
			s.LambdaHome,
			s.LambdaAway,
			s.HomeWinProbability,
			s.DrawProbability,
			s.AwayWinProbability,
			s.BTTSProbability,
			sufficient,
		)
		if err != nil {
			p.logger.Warnw("Failed to append snapshot to batch", "error", err, "match_id", s.MatchID)
			continue
		}
		appended++
	}

	if appended == 0 {
		// Release the connection PrepareBatch took
		return 0, chBatch.Abort()
	}
	if err := chBatch.Send(); err != nil {
		return 0, err
	}
	return appended, nil
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.queue)))
		case <-p.ctx.Done():
			return
		}
	}
}

// NopSink discards snapshots; used when no ClickHouse URL is configured.
type NopSink struct{}

func (NopSink) Enqueue(*models.PredictionSnapshot) bool { return true }
