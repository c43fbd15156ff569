package driver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

type countingManager struct {
	ticks atomic.Int32
	err   error
	order *[]string
	name  string
}

func (m *countingManager) Tick(context.Context) error {
	m.ticks.Add(1)
	if m.order != nil {
		*m.order = append(*m.order, m.name)
	}
	return m.err
}

func TestTickDriver_TickOrder(t *testing.T) {
	var order []string
	first := &countingManager{name: "world", order: &order}
	second := &countingManager{name: "refresher", order: &order}

	d := NewTickDriver([]Manager{first, second})
	if err := d.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "calls", len(order), 2)
	testutil.AssertEqual(t, "first", order[0], "world")
	testutil.AssertEqual(t, "second", order[1], "refresher")
}

func TestTickDriver_TickStopsOnError(t *testing.T) {
	failing := &countingManager{err: errors.New("boom")}
	after := &countingManager{}

	d := NewTickDriver([]Manager{failing, after})
	testutil.AssertErrorContains(t, d.Tick(context.Background()), "boom")
	testutil.AssertEqual(t, "skipped", after.ticks.Load(), int32(0))
}

func TestTickDriver_Start(t *testing.T) {
	m := &countingManager{}
	d := NewTickDriver([]Manager{m}, WithTickLength(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Start(ctx) }()

	deadline := time.After(time.Second)
	for m.ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("driver did not tick")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithTickLength_IgnoresZero(t *testing.T) {
	d := NewTickDriver(nil, WithTickLength(0))
	testutil.AssertEqual(t, "tick", d.tickLength, DefaultTickLength)
}
