package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"telestat/internal/dashboard"
	"telestat/internal/model"
)

const (
	statsTopUserLimit = 5
	statsWordLimit    = 10
	statsDays         = 30
)

// NewStatsHandler returns a handler for the /stats command. It fetches the
// dashboard panels and replies with a plain-text summary.
func NewStatsHandler(deps HandlerDeps) bot.HandlerFunc {
	return statsHandler{deps}.Handle
}

type statsHandler struct {
	deps HandlerDeps
}

func (h statsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "stats")

	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /stats command", "chat_id", chatID)

	bundle := dashboard.FetchStatsBundle(ctx, h.deps.APIClient, statsTopUserLimit, statsWordLimit, statsDays, h.deps.Logger)

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   formatBundle(bundle, h.deps.Cache.Messages()),
	}); err != nil {
		log.ErrorContext(ctx, "Failed to send stats summary", "error", err, "chat_id", chatID)
	}
}

// formatBundle renders the bundle plus the cached-message facets as a
// plain-text summary. Panels that failed to load are reported as unavailable
// rather than omitted silently.
func formatBundle(bundle *dashboard.StatsBundle, messages []model.Message) string {
	var sb strings.Builder
	sb.WriteString("Guruh statistikasi\n\n")

	if groups := dashboard.GroupTitles(messages); len(groups) > 0 {
		sb.WriteString("Kuzatilayotgan guruhlar:\n")
		for _, group := range groups {
			members := dashboard.UserNamesInGroup(messages, group)
			fmt.Fprintf(&sb, "%s: %d faol foydalanuvchi\n", group, len(members))
		}
	}

	if o := bundle.Overview; o != nil {
		fmt.Fprintf(&sb, "Xabarlar: %d\nFoydalanuvchilar: %d\nGuruhlar: %d\n", o.TotalMessages, o.TotalUsers, o.TotalGroups)
		fmt.Fprintf(&sb, "Tahrirlangan: %d, Ochirilgan: %d\n", o.EditedMessages, o.DeletedMessages)
	} else {
		sb.WriteString("Umumiy statistika mavjud emas\n")
	}

	if len(bundle.TopUsers) > 0 {
		sb.WriteString("\nEng faol foydalanuvchilar:\n")
		for i, u := range bundle.TopUsers {
			name := u.FullName
			if name == "" {
				name = u.Username
			}
			fmt.Fprintf(&sb, "%d. %s: %d\n", i+1, name, u.MessageCount)
		}
	}

	if len(bundle.MediaDistribution) > 0 {
		sb.WriteString("\nMedia turlari:\n")
		for _, m := range bundle.MediaDistribution {
			fmt.Fprintf(&sb, "%s: %d\n", model.MediaLabel(m.MediaType), m.Count)
		}
	}

	if s := bundle.Sentiment; s != nil && len(s.Distribution) > 0 {
		sb.WriteString("\nKayfiyat:\n")
		for _, d := range s.Distribution {
			fmt.Fprintf(&sb, "%s: %d\n", d.Sentiment, d.Count)
		}
	}

	if r := bundle.ReplyChain; r != nil {
		fmt.Fprintf(&sb, "\nJavoblar: %d (%.1f%%)\n", r.TotalReplies, r.ReplyPercentage)
	}

	return sb.String()
}
