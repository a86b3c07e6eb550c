package node

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/j0taaa/tp1-CD/mutex"
	"github.com/j0taaa/tp1-CD/transport"
)

// JobLoop generates print jobs at randomized intervals and sequences each
// one as acquire -> print -> release. Release always runs once per
// successful acquire, even when the printer call fails: the critical section
// must never leak.
type JobLoop struct {
	nodeID  int32
	coord   *mutex.Coordinator
	fanout  *transport.Fanout
	printer *transport.PrinterClient

	intervalMin time.Duration
	intervalMax time.Duration
	retry       transport.RetryPolicy

	counter atomic.Int32
	logf    func(format string, args ...interface{})
}

// NewJobLoop builds the loop from a node's parts.
func NewJobLoop(nodeID int32, coord *mutex.Coordinator, fanout *transport.Fanout, printer *transport.PrinterClient, config *Config) *JobLoop {
	return &JobLoop{
		nodeID:      nodeID,
		coord:       coord,
		fanout:      fanout,
		printer:     printer,
		intervalMin: config.JobIntervalMin,
		intervalMax: config.JobIntervalMax,
		retry:       config.Retry,
		logf:        clientLogf(nodeID),
	}
}

// Run generates jobs until ctx is cancelled. A failed job is logged and
// abandoned; the loop keeps going.
func (j *JobLoop) Run(ctx context.Context) {
	for {
		if err := j.sleepInterval(ctx); err != nil {
			return
		}
		if err := j.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			j.logf("print job failed: %v", err)
		}
	}
}

// RunOnce executes one complete print job.
func (j *JobLoop) RunOnce(ctx context.Context) error {
	jobID := uuid.NewString()[:8]
	n := j.counter.Add(1)
	message := fmt.Sprintf("Documento #%d do cliente %d", n, j.nodeID)

	j.logf("job %s: starting print workflow: %s", jobID, message)

	if err := j.coord.Acquire(ctx, j.fanout); err != nil {
		return fmt.Errorf("job %s: acquire: %w", jobID, err)
	}
	seq := j.coord.Snapshot().Seq

	// Release unconditionally, whatever the printer said.
	defer func() {
		if err := j.coord.Release(); err != nil {
			j.logf("job %s: release: %v", jobID, err)
			return
		}
		j.fanout.NotifyRelease(ctx, j.nodeID, seq)
	}()

	var confirmation string
	err := j.retry.Do(ctx, func(ctx context.Context) error {
		var perr error
		confirmation, perr = j.printer.Print(ctx, message, seq)
		return perr
	})
	if err != nil {
		return fmt.Errorf("job %s: print: %w", jobID, err)
	}

	j.logf("job %s: completed: %s", jobID, confirmation)
	return nil
}

// sleepInterval waits a uniform random duration within the configured range.
func (j *JobLoop) sleepInterval(ctx context.Context) error {
	interval := j.intervalMin
	if span := j.intervalMax - j.intervalMin; span > 0 {
		interval += time.Duration(rand.Int63n(int64(span)))
	}
	if interval <= 0 {
		// Still yield to cancellation between back-to-back jobs.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	timer := time.NewTimer(interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
