package state

import (
	"context"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultWriters      = 4
	DefaultQueueSize    = 256
	DefaultWriteTimeout = 10 * time.Second
	// DefaultEnqueueTimeout is how long a mutation waits for room in a full
	// queue before its write is dropped.
	DefaultEnqueueTimeout = 250 * time.Millisecond
)

// writeJob is one durable write. Jobs for the same player always land on the
// same shard so they apply in submission order.
type writeJob struct {
	id uuid.UUID
	op string
	fn func(context.Context) error
}

// writer runs durable writes off the caller's goroutine.
type writer struct {
	shards         []chan writeJob
	timeout        time.Duration
	enqueueTimeout time.Duration
}

func newWriter(shards, queueSize int, timeout, enqueueTimeout time.Duration) *writer {
	if shards < 1 {
		shards = 1
	}
	w := &writer{
		shards:         make([]chan writeJob, shards),
		timeout:        timeout,
		enqueueTimeout: enqueueTimeout,
	}
	for i := range w.shards {
		w.shards[i] = make(chan writeJob, queueSize)
	}
	return w
}

// submit queues a job. A full shard gets enqueueTimeout to make room before
// the job is dropped; the player's next write, disconnect flush or the
// shutdown flush then reconciles the store.
func (w *writer) submit(j writeJob) {
	ch := w.shards[w.shardFor(j.id)]

	select {
	case ch <- j:
		return
	default:
	}

	timer := time.NewTimer(w.enqueueTimeout)
	defer timer.Stop()

	select {
	case ch <- j:
	case <-timer.C:
		slog.Warn("write queue full, dropping write", "op", j.op, "id", j.id, "waited", w.enqueueTimeout)
	}
}

func (w *writer) shardFor(id uuid.UUID) int {
	h := fnv.New32a()
	_, _ = h.Write(id[:])
	return int(h.Sum32() % uint32(len(w.shards)))
}

// run processes jobs until ctx is canceled, then drains what is queued.
func (w *writer) run(ctx context.Context) error {
	g := new(errgroup.Group)
	for _, ch := range w.shards {
		g.Go(func() error {
			w.loop(ctx, ch)
			return nil
		})
	}
	return g.Wait()
}

func (w *writer) loop(ctx context.Context, ch chan writeJob) {
	for {
		select {
		case <-ctx.Done():
			w.drain(ch)
			return
		case j := <-ch:
			w.exec(j)
		}
	}
}

func (w *writer) drain(ch chan writeJob) {
	for {
		select {
		case j := <-ch:
			w.exec(j)
		default:
			return
		}
	}
}

// exec runs a job on its own context so draining still works after shutdown
// has canceled the worker context.
func (w *writer) exec(j writeJob) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := j.fn(ctx); err != nil {
		slog.Error("persisting player state", "op", j.op, "id", j.id, "error", err)
	}
}
