package handlers

import (
	"log/slog"

	"telestat/internal/api"
	"telestat/internal/config"
	"telestat/internal/dashboard"
	"telestat/internal/insights"
)

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger         *slog.Logger
	Config         *config.Config
	APIClient      *api.Client
	Cache          *dashboard.MessageCache
	View           *dashboard.FilteredView
	InsightsClient insights.Client
}
