package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/alfredjeanlab/bdayd/internal/catalog"
	"github.com/alfredjeanlab/bdayd/internal/session"
)

// Dispatcher is the slice of the email dispatcher the HTTP layer needs.
type Dispatcher interface {
	SendCountdown(ctx context.Context, daysLeft int) error
	SendBirthday(ctx context.Context) error
}

// Server carries the app state behind the HTTP surface.
type Server struct {
	catalog    *catalog.Catalog
	dispatcher Dispatcher
	sessions   *session.Store
	logger     *slog.Logger

	target time.Time
	loc    *time.Location
	apiKey string

	// now is swappable in tests.
	now func() time.Time
}

// New returns a server anchored to the given target date and timezone.
func New(c *catalog.Catalog, d Dispatcher, sessions *session.Store, target time.Time, loc *time.Location, apiKey string, logger *slog.Logger) *Server {
	return &Server{
		catalog:    c,
		dispatcher: d,
		sessions:   sessions,
		logger:     logger,
		target:     target,
		loc:        loc,
		apiKey:     apiKey,
		now:        time.Now,
	}
}
