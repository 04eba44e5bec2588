package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// MockClickHouseConn records every row appended across batches
type MockClickHouseConn struct {
	mu       sync.Mutex
	rows     [][]interface{}
	batches  int
	SendErr  error
	Prepared []string
	// Append rejects rows for this match id
	RejectMatchID int64
}

func (m *MockClickHouseConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	m.mu.Lock()
	m.Prepared = append(m.Prepared, query)
	m.mu.Unlock()
	return &MockBatch{conn: m}, nil
}

func (m *MockClickHouseConn) Rows() [][]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]interface{}, len(m.rows))
	copy(out, m.rows)
	return out
}

func (m *MockClickHouseConn) Batches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batches
}

// MockBatch implements driver.Batch for testing
type MockBatch struct {
	driver.Batch
	conn    *MockClickHouseConn
	pending [][]interface{}
	sent    bool
}

func (b *MockBatch) IsSent() bool { return b.sent }

func (b *MockBatch) Rows() int { return len(b.pending) }

func (b *MockBatch) Abort() error {
	b.pending = nil
	return nil
}

func (b *MockBatch) Append(v ...interface{}) error {
	if len(v) != 13 {
		return errors.New("unexpected column count")
	}
	if id, ok := v[1].(int64); ok && b.conn.RejectMatchID != 0 && id == b.conn.RejectMatchID {
		return errors.New("cannot convert column")
	}
	b.pending = append(b.pending, v)
	return nil
}

func (b *MockBatch) Send() error {
	if b.conn.SendErr != nil {
		return b.conn.SendErr
	}
	b.conn.mu.Lock()
	defer b.conn.mu.Unlock()
	b.conn.rows = append(b.conn.rows, b.pending...)
	b.conn.batches++
	b.sent = true
	return nil
}
