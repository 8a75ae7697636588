// Package app wires the dashboard components together and manages their
// lifecycle: the Telegram report bot, the task scheduler, and shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"golang.org/x/sync/errgroup"

	"telestat/internal/config"
	"telestat/internal/dashboard"
	"telestat/internal/database"
)

// App is the running service. The bot is optional; without it the app only
// runs scheduled fetch/snapshot work.
type App struct {
	logger    *slog.Logger
	cfg       *config.Config
	store     database.Store
	cache     *dashboard.MessageCache
	tgBot     *tgbot.Bot
	scheduler *Scheduler
}

// NewApp assembles the application from its components.
func NewApp(
	logger *slog.Logger,
	cfg *config.Config,
	store database.Store,
	cache *dashboard.MessageCache,
	tgBot *tgbot.Bot,
	scheduler *Scheduler,
) *App {
	return &App{
		logger:    logger.With("component", "app"),
		cfg:       cfg,
		store:     store,
		cache:     cache,
		tgBot:     tgBot,
		scheduler: scheduler,
	}
}

// WarmCache restores the message cache from the latest stored snapshot, if
// any, before the first backend load. Failures degrade to a cold start.
func (a *App) WarmCache(ctx context.Context) {
	takenAt, count, err := a.store.LastSnapshot(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "Could not read snapshot metadata, starting cold", "error", err)
		return
	}
	if count == 0 {
		a.logger.InfoContext(ctx, "No stored snapshot, starting cold")
		return
	}

	messages, err := a.store.LoadMessages(ctx)
	if err != nil {
		a.logger.WarnContext(ctx, "Could not load snapshot, starting cold", "error", err)
		return
	}

	a.cache.Restore(messages)
	a.logger.InfoContext(ctx, "Cache warmed from snapshot", "count", len(messages), "taken_at", takenAt)
}

// Run starts all components and blocks until the context is cancelled or a
// component fails.
func (a *App) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	if a.tgBot != nil {
		g.Go(func() error {
			a.logger.Info("Starting Telegram bot listener...")
			a.tgBot.Start(gCtx)
			a.logger.Info("Telegram bot listener stopped")

			if gCtx.Err() == nil {
				return fmt.Errorf("telegram listener stopped unexpectedly")
			}
			return nil
		})
	}

	g.Go(func() error {
		if err := a.scheduler.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		<-gCtx.Done()
		a.logger.Info("Shutdown signal received, stopping scheduler...")
		if err := a.scheduler.Stop(); err != nil {
			a.logger.Error("Error stopping scheduler", "error", err)
		}
		return nil
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Error("Application stopped due to error", "error", err)
		return err
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
