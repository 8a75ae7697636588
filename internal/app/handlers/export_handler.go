package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"telestat/internal/export"
)

const (
	emptyExportMessage = "Ma'lumot yo'q!"
	exportErrorMessage = "Eksport amalga oshmadi. Keyinroq urinib ko'ring."
)

// NewExportHandler returns a handler for the /export command. It reloads the
// message cache and uploads the current filtered view as a CSV document.
func NewExportHandler(deps HandlerDeps) bot.HandlerFunc {
	return exportHandler{deps}.Handle
}

type exportHandler struct {
	deps HandlerDeps
}

func (h exportHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "export")

	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling /export command", "chat_id", chatID)

	if _, err := h.deps.Cache.Load(ctx); err != nil {
		// Stale cache contents are still exportable; only warn.
		log.WarnContext(ctx, "Cache reload failed before export, using cached data", "error", err)
	}
	messages := h.deps.View.Refresh()

	csv, err := export.Serialize(messages)
	if err != nil {
		if errors.Is(err, export.ErrEmptyExport) {
			h.sendText(ctx, b, chatID, emptyExportMessage, log)
			return
		}
		log.ErrorContext(ctx, "Export serialization failed", "error", err, "chat_id", chatID)
		h.sendText(ctx, b, chatID, exportErrorMessage, log)
		return
	}

	filename := export.Filename(h.deps.Config.Export.FilenameBase, time.Now())
	if _, err := b.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: filename,
			Data:     bytes.NewReader([]byte(csv)),
		},
	}); err != nil {
		log.ErrorContext(ctx, "Failed to send export document", "error", err, "chat_id", chatID)
		h.sendText(ctx, b, chatID, exportErrorMessage, log)
		return
	}

	log.InfoContext(ctx, "Export sent", "chat_id", chatID, "rows", len(messages), "filename", filename)
}

func (h exportHandler) sendText(ctx context.Context, b *bot.Bot, chatID int64, text string, log *slog.Logger) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text}); err != nil {
		log.ErrorContext(ctx, "Failed to send export notice", "error", err, "chat_id", chatID)
	}
}
