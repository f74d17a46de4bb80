package cron

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestEvaluate_FiresMatchingTriggersInOrder(t *testing.T) {
	s := NewScheduler(time.UTC, testLogger())

	var mu sync.Mutex
	var fired []string
	record := func(name string) Action {
		return func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			fired = append(fired, name)
			return nil
		}
	}

	s.Register("first", MustParse("0 0 28 3 *"), record("first"))
	s.Register("never", MustParse("30 12 * * *"), record("never"))
	s.Register("second", MustParse("* * * * *"), record("second"))

	tick := time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC)
	s.evaluate(context.Background(), tick)
	s.wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 2 {
		t.Fatalf("fired %v, want exactly the two matching triggers", fired)
	}
	for _, name := range fired {
		if name == "never" {
			t.Fatal("non-matching trigger fired")
		}
	}
}

func TestEvaluate_ActionErrorDoesNotStopOthers(t *testing.T) {
	s := NewScheduler(time.UTC, testLogger())

	var mu sync.Mutex
	var ok bool
	s.Register("failing", MustParse("* * * * *"), func(context.Context) error {
		return errors.New("smtp down")
	})
	s.Register("panicking", MustParse("* * * * *"), func(context.Context) error {
		panic("boom")
	})
	s.Register("healthy", MustParse("* * * * *"), func(context.Context) error {
		mu.Lock()
		defer mu.Unlock()
		ok = true
		return nil
	})

	s.evaluate(context.Background(), time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC))
	s.wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if !ok {
		t.Fatal("healthy trigger did not fire alongside failing ones")
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(time.UTC, testLogger())
	s.Register("noop", MustParse("* * * * *"), func(context.Context) error { return nil })

	s.Start()
	// Stop before the next minute boundary; must return promptly.
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
