package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestPool_RaceCondition(t *testing.T) {
	conn := &MockClickHouseConn{}
	p := NewPool(PoolConfig{
		WorkerCount:   2,
		QueueSize:     1000,
		BatchSize:     10,
		FlushInterval: 10 * time.Millisecond,
		ClickHouse:    conn,
		Logger:        zap.NewNop().Sugar(),
	})
	p.Start(context.Background())

	wg := sync.WaitGroup{}
	producers := 10
	perProducer := 100

	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for j := int64(0); j < int64(perProducer); j++ {
				p.Enqueue(snapshot(base*1000 + j))
				if j%10 == 0 {
					time.Sleep(time.Millisecond)
				}
			}
		}(int64(i))
	}

	// Stop concurrently with the tail of the producers
	time.Sleep(20 * time.Millisecond)
	p.Stop()
	wg.Wait()

	if got := len(conn.Rows()); got > producers*perProducer {
		t.Errorf("wrote %d rows, more than were produced", got)
	}
}
