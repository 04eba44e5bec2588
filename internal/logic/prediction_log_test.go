package logic

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
)

// MockCHConn implements driver.Conn for testing
type MockCHConn struct {
	driver.Conn
	QueryFunc func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error)
}

func (m *MockCHConn) Query(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, query, args...)
	}
	return &MockCHRows{}, nil
}

// MockCHRows implements driver.Rows over in-memory data
type MockCHRows struct {
	driver.Rows
	Data  [][]interface{}
	Index int
}

func (m *MockCHRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockCHRows) Scan(dest ...interface{}) error {
	if m.Index > len(m.Data) {
		return nil
	}
	for i, val := range m.Data[m.Index-1] {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

func (m *MockCHRows) Close() error { return nil }
func (m *MockCHRows) Err() error   { return nil }

func setDest(dest interface{}, val interface{}) {
	v := reflect.ValueOf(dest).Elem()
	valV := reflect.ValueOf(val)
	if valV.Type().ConvertibleTo(v.Type()) {
		v.Set(valV.Convert(v.Type()))
	} else {
		v.Set(valV)
	}
}

func logRow(matchID int64, at time.Time, homeWin float64, sufficient uint8) []interface{} {
	return []interface{}{
		uuid.New(), matchID, int64(1), int64(2), "Premier League", at,
		1.6, 1.1, homeWin, 0.25, 0.75 - homeWin, 0.5, sufficient,
	}
}

func TestPredictionHistory(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		rows      [][]interface{}
		wantCount int
		wantDrift float64
	}{
		{
			name: "Drift Between Newest And Oldest",
			rows: [][]interface{}{
				logRow(9, now, 0.52, 1),
				logRow(9, now.Add(-time.Hour), 0.47, 1),
				logRow(9, now.Add(-2*time.Hour), 0.40, 0),
			},
			wantCount: 3,
			wantDrift: 0.12,
		},
		{
			name:      "Single Snapshot Has No Drift",
			rows:      [][]interface{}{logRow(9, now, 0.52, 1)},
			wantCount: 1,
		},
		{
			name:      "Empty Log",
			rows:      [][]interface{}{},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotArgs []interface{}
			conn := &MockCHConn{
				QueryFunc: func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
					if !strings.Contains(query, "FROM prediction_log") {
						return nil, errors.New("unexpected table")
					}
					gotArgs = args
					return &MockCHRows{Data: tt.rows}, nil
				},
			}

			got, err := NewPredictionHistoryService(conn).History(context.Background(), 9, 0)
			if err != nil {
				t.Fatalf("History() error = %v", err)
			}
			if len(got.Snapshots) != tt.wantCount {
				t.Fatalf("len(Snapshots) = %d, want %d", len(got.Snapshots), tt.wantCount)
			}
			if d := got.HomeWinDrift - tt.wantDrift; d > 1e-9 || d < -1e-9 {
				t.Errorf("HomeWinDrift = %v, want %v", got.HomeWinDrift, tt.wantDrift)
			}
			if !reflect.DeepEqual(gotArgs, []interface{}{int64(9), maxHistoryRows}) {
				t.Errorf("query args = %v", gotArgs)
			}
			if tt.wantCount > 0 && !got.Snapshots[0].DataSufficient {
				t.Error("DataSufficient not decoded from UInt8")
			}
		})
	}
}

func TestPredictionHistory_QueryError(t *testing.T) {
	conn := &MockCHConn{
		QueryFunc: func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
			return nil, errors.New("connection refused")
		},
	}
	if _, err := NewPredictionHistoryService(conn).History(context.Background(), 1, 10); err == nil {
		t.Error("expected error")
	}
}
