package tasks

import (
	"log/slog"

	tgbot "github.com/go-telegram/bot"

	"telestat/internal/api"
	"telestat/internal/config"
	"telestat/internal/dashboard"
	"telestat/internal/database"
	"telestat/internal/insights"
)

// TaskDeps provides dependencies for scheduled tasks. Bot may be nil when
// the service runs without a Telegram token; tasks that deliver reports
// skip sending in that case.
type TaskDeps struct {
	Logger         *slog.Logger
	Config         *config.Config
	APIClient      *api.Client
	Cache          *dashboard.MessageCache
	View           *dashboard.FilteredView
	Store          database.Store
	InsightsClient insights.Client
	Bot            *tgbot.Bot
}
