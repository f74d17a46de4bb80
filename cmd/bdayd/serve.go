package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/bdayd/internal/catalog"
	"github.com/alfredjeanlab/bdayd/internal/config"
	"github.com/alfredjeanlab/bdayd/internal/countdown"
	"github.com/alfredjeanlab/bdayd/internal/cron"
	"github.com/alfredjeanlab/bdayd/internal/dispatch"
	"github.com/alfredjeanlab/bdayd/internal/events"
	"github.com/alfredjeanlab/bdayd/internal/mailer"
	"github.com/alfredjeanlab/bdayd/internal/server"
	"github.com/alfredjeanlab/bdayd/internal/session"
)

// keepAlivePattern pings every 13 minutes so hosting platforms that idle
// out quiet processes keep the server warm.
const keepAlivePattern = "*/13 * * * *"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the birthday countdown server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		// Load configuration.
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		loc, err := countdown.Location(cfg.Timezone)
		if err != nil {
			return err
		}
		target, err := countdown.ParseTarget(cfg.TargetDate, loc)
		if err != nil {
			return err
		}

		// Load the catalog, or fall back to the built-in one.
		cat := catalog.Default()
		if cfg.CatalogPath != "" {
			cat, err = catalog.Load(cfg.CatalogPath)
			if err != nil {
				return err
			}
			logger.Info("catalog loaded", "path", cfg.CatalogPath)
		}

		// Create the SMTP mailer.
		smtp, err := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
		if err != nil {
			return err
		}

		// Create event publisher.
		var publisher events.Publisher
		if cfg.NATSURL != "" {
			pub, err := events.NewNATSPublisher(cfg.NATSURL)
			if err != nil {
				return err
			}
			publisher = pub
			logger.Info("events enabled", "nats_url", cfg.NATSURL)
		} else {
			publisher = &events.NoopPublisher{}
			logger.Info("events disabled (BDAY_NATS_URL not set)")
		}

		dispatcher := dispatch.New(smtp, publisher, cat, dispatch.Config{
			From:       cfg.SMTPUser,
			Recipients: cfg.Recipients,
			Operator:   cfg.Operator,
			Name:       cfg.Name,
		}, logger)

		// Gate sessions with background eviction.
		sessions := session.New(cfg.GateSecrets(), cfg.SessionTTL)
		sessions.StartReaper(session.DefaultSweepInterval)

		// Start HTTP server.
		app := server.New(cat, dispatcher, sessions, target, loc, cfg.APIKey, logger)
		httpServer := &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: app.NewHTTPHandler(),
		}

		go func() {
			logger.Info("HTTP server listening", "addr", cfg.HTTPAddr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP server error", "err", err)
			}
		}()

		// Start the email scheduler.
		scheduler := cron.NewScheduler(loc, logger)
		registerTriggers(scheduler, cfg, dispatcher, publisher, target, loc, logger)
		scheduler.Start()
		logger.Info("scheduler started", "timezone", cfg.Timezone, "target_date", cfg.TargetDate)

		logger.Info("birthday server started", "http_addr", cfg.HTTPAddr, "name", cfg.Name)

		// Wait for SIGINT or SIGTERM.
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received signal, shutting down", "signal", sig)

		// Graceful shutdown.
		scheduler.Stop()
		logger.Info("scheduler stopped")

		sessions.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "err", err)
		}
		logger.Info("HTTP server stopped")

		if err := publisher.Close(); err != nil {
			logger.Error("error closing publisher", "err", err)
		}
		if err := smtp.Close(); err != nil {
			logger.Error("error closing mailer", "err", err)
		}

		logger.Info("shutdown complete")
		return nil
	},
}

// registerTriggers wires the five scheduled jobs: the keep-alive ping, the
// daily preparation notice, the daily countdown email, the eve-of-birthday
// alert, and the birthday email at midnight.
func registerTriggers(s *cron.Scheduler, cfg *config.Config, d *dispatch.Dispatcher, publisher events.Publisher, target time.Time, loc *time.Location, logger *slog.Logger) {
	sendHour, sendMinute, _ := config.ParseClock(cfg.DailySendTime)
	prep := time.Date(0, 1, 1, sendHour, sendMinute, 0, 0, time.UTC).Add(-5 * time.Minute)
	eve := target.AddDate(0, 0, -1)

	fired := func(ctx context.Context, name string) {
		if err := publisher.Publish(ctx, events.TopicTriggerFired, events.TriggerFired{Trigger: name, At: time.Now().In(loc)}); err != nil {
			logger.Warn("failed to publish event", "topic", events.TopicTriggerFired, "err", err)
		}
	}

	s.Register("keepalive", cron.MustParse(keepAlivePattern), func(ctx context.Context) error {
		logger.Info("keep-alive ping")
		if err := publisher.Publish(ctx, events.TopicKeepAlive, events.KeepAlive{At: time.Now().In(loc)}); err != nil {
			logger.Warn("failed to publish event", "topic", events.TopicKeepAlive, "err", err)
		}
		return nil
	})

	prepPattern := fmt.Sprintf("%d %d * * *", prep.Minute(), prep.Hour())
	s.Register("daily-prep", cron.MustParse(prepPattern), func(ctx context.Context) error {
		if countdown.DaysUntil(target, time.Now().In(loc)) <= 0 {
			return nil
		}
		fired(ctx, "daily-prep")
		d.NotifyOperator(ctx, "The daily countdown email goes out in 5 minutes.")
		return nil
	})

	dailyPattern := fmt.Sprintf("%d %d * * *", sendMinute, sendHour)
	s.Register("daily-countdown", cron.MustParse(dailyPattern), func(ctx context.Context) error {
		now := time.Now().In(loc)
		daysLeft := countdown.DaysUntil(target, now)
		// The birthday trigger owns the day itself; past the date there is
		// nothing left to count down to.
		if daysLeft <= 0 || countdown.SameCalendarDay(target, now, loc) {
			return nil
		}
		fired(ctx, "daily-countdown")
		if err := d.SendCountdown(ctx, daysLeft); err != nil {
			d.Escalate(ctx, fmt.Sprintf("The countdown email for %d days left failed to send.", daysLeft), err)
			return err
		}
		return nil
	})

	evePattern := fmt.Sprintf("55 23 %d %d *", eve.Day(), int(eve.Month()))
	s.Register("eve-alert", cron.MustParse(evePattern), func(ctx context.Context) error {
		fired(ctx, "eve-alert")
		d.NotifyOperator(ctx, "Tomorrow is the big day. The birthday email goes out at midnight.")
		return nil
	})

	birthdayPattern := fmt.Sprintf("0 0 %d %d *", target.Day(), int(target.Month()))
	s.Register("birthday", cron.MustParse(birthdayPattern), func(ctx context.Context) error {
		fired(ctx, "birthday")
		if err := d.SendBirthday(ctx); err != nil {
			d.Escalate(ctx, "The birthday email failed to send.", err)
			return err
		}
		return nil
	})
}
