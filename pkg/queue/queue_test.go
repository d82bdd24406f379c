package queue_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/joycybakery/fournil/pkg/queue"
)

// ─── Job types ────────────────────────────────────────────────────────────────

var (
	echoRuns    atomic.Int32
	failRuns    atomic.Int32
	delayedRuns atomic.Int32
)

type echoJob struct {
	Val string `json:"val"`
}

func (j *echoJob) Handle() error {
	echoRuns.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	failRuns.Add(1)
	return errors.New("always fails")
}

type delayedJob struct{}

func (j *delayedJob) Handle() error {
	delayedRuns.Add(1)
	return nil
}

func init() {
	// Start workers so jobs actually get processed in tests. Registry keys
	// are bare type names — no package path, no pointer marker.
	ctx, cancel := context.WithCancel(context.Background())
	_ = cancel
	queue.StartWorkers(ctx, 2)

	queue.Register("echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("failJob", func() queue.Job { return &failJob{} })
	queue.Register("delayedJob", func() queue.Job { return &delayedJob{} })
}

// ─── Tests ────────────────────────────────────────────────────────────────────

func TestDispatchAndProcess(t *testing.T) {
	before := echoRuns.Load()

	if err := queue.Dispatch(&echoJob{Val: "hello"}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for echoRuns.Load() == before {
		select {
		case <-deadline:
			t.Fatal("job was never processed")
		case <-time.After(20 * time.Millisecond):
		}
	}
}

func TestFailedJobRetry(t *testing.T) {
	queue.SetMaxRetry(1)
	defer queue.SetMaxRetry(3)

	if err := queue.Dispatch(&failJob{}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	// 1 attempt + 1s backoff + slack.
	time.Sleep(2500 * time.Millisecond)

	if failRuns.Load() == 0 {
		t.Error("expected the failing job to have run")
	}
	if len(queue.FailedJobs()) == 0 {
		t.Error("expected at least one failed job")
	}
}

func TestDispatchAfter(t *testing.T) {
	before := delayedRuns.Load()

	queue.DispatchAfter(&delayedJob{}, 100*time.Millisecond)

	if delayedRuns.Load() != before {
		t.Error("delayed job must not run immediately")
	}

	deadline := time.After(3 * time.Second)
	for delayedRuns.Load() == before {
		select {
		case <-deadline:
			t.Fatal("delayed job was never processed")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestDispatchConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func() {
			defer wg.Done()
			queue.Dispatch(&echoJob{Val: "c"}) //nolint:errcheck
		}()
	}
	wg.Wait()
}
