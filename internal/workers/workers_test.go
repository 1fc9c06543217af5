// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/promptdock/promptdock/internal/logger"
)

// mockWorker tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(_ context.Context) {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	NewWorkers(w1, w2, w3).Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on empty workers list
	NewWorkers().Run(context.Background())
}

// countingPruner signals on every PruneBackups call.
type countingPruner struct {
	mu     sync.Mutex
	calls  int
	swept  chan struct{}
	cutoff time.Time
}

func (p *countingPruner) PruneBackups(_ context.Context, cutoff time.Time) (int64, error) {
	p.mu.Lock()
	p.calls++
	p.cutoff = cutoff
	p.mu.Unlock()

	select {
	case p.swept <- struct{}{}:
	default:
	}
	return 1, nil
}

func TestRetentionWorker_SweepsImmediately(t *testing.T) {
	pruner := &countingPruner{swept: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	NewRetentionWorker(pruner, 24*time.Hour, time.Hour, logger.Nop()).Run(ctx)

	select {
	case <-pruner.swept:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate retention sweep")
	}

	pruner.mu.Lock()
	defer pruner.mu.Unlock()
	if pruner.calls < 1 {
		t.Fatalf("expected at least one sweep, got %d", pruner.calls)
	}
	if time.Since(pruner.cutoff) < 23*time.Hour {
		t.Errorf("cutoff should lie maxAge in the past, got %v", pruner.cutoff)
	}
}

func TestRetentionWorker_StopsOnCancel(t *testing.T) {
	pruner := &countingPruner{swept: make(chan struct{}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	NewRetentionWorker(pruner, time.Hour, 10*time.Millisecond, logger.Nop()).Run(ctx)

	<-pruner.swept
	cancel()

	// allow the goroutine to observe cancellation
	time.Sleep(50 * time.Millisecond)
	pruner.mu.Lock()
	callsAfterCancel := pruner.calls
	pruner.mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	pruner.mu.Lock()
	defer pruner.mu.Unlock()
	if pruner.calls > callsAfterCancel+1 {
		t.Errorf("worker kept sweeping after cancel: %d -> %d", callsAfterCancel, pruner.calls)
	}
}
