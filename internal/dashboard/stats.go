package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"telestat/internal/model"
)

// StatsFetcher is the slice of the backend client the stats bundle uses.
type StatsFetcher interface {
	Overview(ctx context.Context) (*model.Overview, error)
	TopUsers(ctx context.Context, limit int) ([]model.TopUser, error)
	WordFrequency(ctx context.Context, limit int) ([]model.WordCount, error)
	MessagesPerDay(ctx context.Context, days int) ([]model.DayCount, error)
	MessagesPerHour(ctx context.Context) ([]model.HourCount, error)
	MediaDistribution(ctx context.Context) ([]model.MediaCount, error)
	GroupComparison(ctx context.Context) (*model.GroupComparison, error)
	SentimentOverall(ctx context.Context) (*model.SentimentOverall, error)
	ReplyChainStats(ctx context.Context) (*model.ReplyChainStats, error)
}

// StatsBundle is the set of panels the dashboard page renders. A panel whose
// fetch failed is left at its zero value; the dashboard never fails as a
// whole because one panel did.
type StatsBundle struct {
	Overview          *model.Overview
	TopUsers          []model.TopUser
	WordFrequency     []model.WordCount
	MessagesPerDay    []model.DayCount
	MessagesPerHour   []model.HourCount
	MediaDistribution []model.MediaCount
	GroupComparison   *model.GroupComparison
	Sentiment         *model.SentimentOverall
	ReplyChain        *model.ReplyChainStats
}

// FetchStatsBundle fetches all dashboard panels in parallel. Panel failures
// are logged and degrade that panel to its empty state.
func FetchStatsBundle(ctx context.Context, fetcher StatsFetcher, topUserLimit, wordLimit, days int, logger *slog.Logger) *StatsBundle {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "stats_bundle")

	bundle := &StatsBundle{}
	g, gCtx := errgroup.WithContext(ctx)

	panel := func(name string, fetch func(context.Context) error) {
		g.Go(func() error {
			if err := fetch(gCtx); err != nil {
				log.WarnContext(gCtx, "Stats panel fetch failed, rendering empty", "panel", name, "error", err)
			}
			return nil
		})
	}

	panel("overview", func(ctx context.Context) error {
		out, err := fetcher.Overview(ctx)
		if err == nil {
			bundle.Overview = out
		}
		return err
	})
	panel("top_users", func(ctx context.Context) error {
		out, err := fetcher.TopUsers(ctx, topUserLimit)
		if err == nil {
			bundle.TopUsers = out
		}
		return err
	})
	panel("word_frequency", func(ctx context.Context) error {
		out, err := fetcher.WordFrequency(ctx, wordLimit)
		if err == nil {
			bundle.WordFrequency = out
		}
		return err
	})
	panel("messages_per_day", func(ctx context.Context) error {
		out, err := fetcher.MessagesPerDay(ctx, days)
		if err == nil {
			bundle.MessagesPerDay = out
		}
		return err
	})
	panel("messages_per_hour", func(ctx context.Context) error {
		out, err := fetcher.MessagesPerHour(ctx)
		if err == nil {
			bundle.MessagesPerHour = out
		}
		return err
	})
	panel("media_distribution", func(ctx context.Context) error {
		out, err := fetcher.MediaDistribution(ctx)
		if err == nil {
			bundle.MediaDistribution = out
		}
		return err
	})
	panel("group_comparison", func(ctx context.Context) error {
		out, err := fetcher.GroupComparison(ctx)
		if err == nil {
			bundle.GroupComparison = out
		}
		return err
	})
	panel("sentiment_overall", func(ctx context.Context) error {
		out, err := fetcher.SentimentOverall(ctx)
		if err == nil {
			bundle.Sentiment = out
		}
		return err
	})
	panel("reply_chain", func(ctx context.Context) error {
		out, err := fetcher.ReplyChainStats(ctx)
		if err == nil {
			bundle.ReplyChain = out
		}
		return err
	})

	// Panel closures never return errors, so Wait only synchronizes.
	_ = g.Wait()
	return bundle
}
