package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Action is a trigger callback. Errors are logged by the scheduler and
// never retried; a failed action fires again on its next matching minute.
type Action func(ctx context.Context) error

// Trigger pairs a pattern with a named action.
type Trigger struct {
	Name    string
	Pattern Pattern
	Action  Action
}

// Scheduler evaluates registered triggers once per minute boundary in a
// fixed timezone. Triggers are registered before Start and live for the
// process lifetime; matching actions are launched asynchronously in
// registration order, with no coordination beyond initiation order.
type Scheduler struct {
	loc      *time.Location
	triggers []Trigger
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a scheduler evaluating wall-clock time in loc.
func NewScheduler(loc *time.Location, logger *slog.Logger) *Scheduler {
	return &Scheduler{loc: loc, logger: logger}
}

// Register adds a trigger. Not safe to call after Start.
func (s *Scheduler) Register(name string, pattern Pattern, action Action) {
	s.triggers = append(s.triggers, Trigger{Name: name, Pattern: pattern, Action: action})
}

// Start launches the tick loop.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop cancels the tick loop and waits for it and any in-flight actions
// to finish.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	for {
		// Sleep to the next minute boundary and evaluate exactly there, so
		// each pattern fires at most once per matching minute. Minutes that
		// pass while the process is down are never backfilled.
		now := time.Now().In(s.loc)
		next := now.Truncate(time.Minute).Add(time.Minute)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		s.evaluate(ctx, next)
	}
}

// evaluate fires every trigger matching the tick minute. Actions run in
// their own goroutines; initiation follows registration order.
func (s *Scheduler) evaluate(ctx context.Context, tick time.Time) {
	for _, tr := range s.triggers {
		if !tr.Pattern.Matches(tick) {
			continue
		}
		s.wg.Add(1)
		go func(tr Trigger) {
			defer s.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.logger.Error("trigger action panicked", "trigger", tr.Name, "panic", r)
				}
			}()
			if err := tr.Action(ctx); err != nil {
				s.logger.Error("trigger action failed", "trigger", tr.Name, "err", err)
			}
		}(tr)
	}
}
