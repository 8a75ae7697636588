package handlers

import (
	"context"
	"errors"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"telestat/internal/dashboard"
	"telestat/internal/insights"
)

const (
	insightsUnavailableMessage = "AI tahlil sozlanmagan."
	insightsErrorMessage       = "AI tahlil amalga oshmadi. Keyinroq urinib ko'ring."
)

// NewInsightsHandler returns a handler for the /insights command.
func NewInsightsHandler(deps HandlerDeps) bot.HandlerFunc {
	return insightsHandler{deps}.Handle
}

type insightsHandler struct {
	deps HandlerDeps
}

func (h insightsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "insights")

	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /insights command", "chat_id", chatID)

	bundle := dashboard.FetchStatsBundle(ctx, h.deps.APIClient, statsTopUserLimit, statsWordLimit, statsDays, h.deps.Logger)

	text, err := h.deps.InsightsClient.GenerateInsights(ctx, bundle)
	if err != nil {
		if errors.Is(err, insights.ErrUnavailable) {
			text = insightsUnavailableMessage
		} else {
			log.ErrorContext(ctx, "Insight generation failed", "error", err, "chat_id", chatID)
			text = insightsErrorMessage
		}
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
		log.ErrorContext(ctx, "Failed to send insights", "error", err, "chat_id", chatID)
	}
}
