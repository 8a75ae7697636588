package tasks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"telestat/internal/dashboard"
	"telestat/internal/export"
	"telestat/internal/insights"
)

const (
	reportTopUserLimit = 5
	reportWordLimit    = 10
	reportDays         = 7
)

// newDailyReportTask sends the admin a CSV export of the full cache plus an
// AI insight summary. Without a bot instance the task is a no-op.
func newDailyReportTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "daily_report")

	return func(ctx context.Context) error {
		if deps.Bot == nil {
			log.InfoContext(ctx, "No bot configured, skipping report delivery")
			return nil
		}
		adminID := deps.Config.Telegram.AdminID

		if _, err := deps.Cache.Load(ctx); err != nil {
			log.WarnContext(ctx, "Cache reload failed before report, using cached data", "error", err)
		}
		messages := deps.Cache.Messages()

		csv, err := export.Serialize(messages)
		if err != nil && !errors.Is(err, export.ErrEmptyExport) {
			return fmt.Errorf("report serialization failed: %w", err)
		}

		if errors.Is(err, export.ErrEmptyExport) {
			log.InfoContext(ctx, "Nothing to report, cache empty")
		} else {
			filename := export.Filename(deps.Config.Export.FilenameBase, time.Now())
			if _, err := deps.Bot.SendDocument(ctx, &tgbot.SendDocumentParams{
				ChatID: adminID,
				Document: &models.InputFileUpload{
					Filename: filename,
					Data:     bytes.NewReader([]byte(csv)),
				},
			}); err != nil {
				return fmt.Errorf("failed to send report document: %w", err)
			}
			log.InfoContext(ctx, "Report document sent", "rows", len(messages), "filename", filename)
		}

		bundle := dashboard.FetchStatsBundle(ctx, deps.APIClient, reportTopUserLimit, reportWordLimit, reportDays, deps.Logger)
		summary, err := deps.InsightsClient.GenerateInsights(ctx, bundle)
		if err != nil {
			if errors.Is(err, insights.ErrUnavailable) {
				log.InfoContext(ctx, "Insights disabled, report sent without summary")
				return nil
			}
			return fmt.Errorf("report insight generation failed: %w", err)
		}

		if _, err := deps.Bot.SendMessage(ctx, &tgbot.SendMessageParams{ChatID: adminID, Text: summary}); err != nil {
			return fmt.Errorf("failed to send report summary: %w", err)
		}

		log.InfoContext(ctx, "Report summary sent")
		return nil
	}
}
