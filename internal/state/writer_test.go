package state

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-testutil"
)

func noopJob(id uuid.UUID, op string) writeJob {
	return writeJob{id: id, op: op, fn: func(context.Context) error { return nil }}
}

func TestWriter_Submit(t *testing.T) {
	tests := map[string]struct {
		enqueueTimeout time.Duration
		consumeAfter   time.Duration
		expQueued      string
	}{
		"waits for room": {
			enqueueTimeout: 2 * time.Second,
			consumeAfter:   20 * time.Millisecond,
			expQueued:      "second",
		},
		"drops after waiting": {
			enqueueTimeout: 10 * time.Millisecond,
			expQueued:      "first",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			id := uuid.New()
			w := newWriter(1, 1, time.Second, tc.enqueueTimeout)
			w.submit(noopJob(id, "first"))

			consumed := make(chan struct{})
			if tc.consumeAfter > 0 {
				go func() {
					defer close(consumed)
					time.Sleep(tc.consumeAfter)
					<-w.shards[0]
				}()
			} else {
				close(consumed)
			}

			w.submit(noopJob(id, "second"))
			<-consumed

			testutil.AssertEqual(t, "queued", len(w.shards[0]), 1)
			j := <-w.shards[0]
			testutil.AssertEqual(t, "op", j.op, tc.expQueued)
		})
	}
}

func TestWriter_RunDrainsOnCancel(t *testing.T) {
	var ran atomic.Int32
	w := newWriter(2, 8, time.Second, time.Millisecond)
	for i := 0; i < 5; i++ {
		w.submit(writeJob{id: uuid.New(), op: "count", fn: func(context.Context) error {
			ran.Add(1)
			return nil
		}})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := w.run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "ran", int(ran.Load()), 5)
}
