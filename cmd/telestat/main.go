// Package main contains the entrypoint for the telestat dashboard service.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbot "github.com/go-telegram/bot"

	"telestat/internal/api"
	"telestat/internal/app"
	"telestat/internal/app/handlers"
	"telestat/internal/app/tasks"
	"telestat/internal/config"
	"telestat/internal/dashboard"
	"telestat/internal/database"
	"telestat/internal/insights"
	"telestat/internal/logger"
	"telestat/internal/telegram"

	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components (config, logger, db, api client, cache,
// insights, bot, scheduler), handles graceful shutdown, and returns the
// process exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Logger.Level, cfg.Logger.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Logger.Level, "json", cfg.Logger.JSON)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to open snapshot database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	apiClient := api.NewClient(cfg.API, log)
	cache := dashboard.NewMessageCache(apiClient, cfg.API.PageSize, log)
	view := dashboard.NewFilteredView(cache)

	insightsClient, err := insights.NewClient(ctx, cfg.Gemini, log)
	if err != nil {
		log.Error("Failed to initialize insights client", "error", err)
		return 1
	}

	var tg *tgbot.Bot
	if cfg.Telegram.Token != "" {
		hDeps := handlers.HandlerDeps{
			Logger:         log,
			Config:         cfg,
			APIClient:      apiClient,
			Cache:          cache,
			View:           view,
			InsightsClient: insightsClient,
		}

		botOpts := []tgbot.Option{
			tgbot.WithMiddlewares(logger.Middleware(log)),
		}
		tg, err = telegram.NewTelegramBot(cfg.Telegram.Token, log, botOpts...)
		if err != nil {
			log.Error("Failed to create Telegram bot", "error", err)
			return 1
		}

		cfg.Telegram.BotInfo, err = tg.GetMe(ctx)
		if err != nil {
			log.Error("Failed to get bot info", "error", err)
			return 1
		}
		log.Info("Retrieved bot info", "bot_id", cfg.Telegram.BotInfo.ID, "bot_username", cfg.Telegram.BotInfo.Username)

		if err := telegram.RegisterHandlers(tg, log, handlers.RegisterAllCommands(hDeps)); err != nil {
			log.Error("Failed to register Telegram handlers", "error", err)
			return 1
		}
	} else {
		log.Info("No Telegram token configured, running without report bot")
	}

	tDeps := tasks.TaskDeps{
		Logger:         log,
		Config:         cfg,
		APIClient:      apiClient,
		Cache:          cache,
		View:           view,
		Store:          store,
		InsightsClient: insightsClient,
		Bot:            tg,
	}

	sched, err := app.NewScheduler(log, &cfg.Scheduler, tasks.RegisterAllTasks(tDeps))
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}

	a := app.NewApp(log, cfg, store, cache, tg, sched)
	a.WarmCache(ctx)

	if _, err := cache.Load(ctx); err != nil {
		// The service stays up on a failed initial load; panels render
		// empty until a refresh succeeds.
		log.Warn("Initial message load failed", "error", err)
	}
	view.Refresh()

	log.Info("Starting telestat...")
	runErr := a.Run(ctx)
	if runErr != nil {
		log.Error("Service stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Service stopped gracefully.")
	return 0
}
