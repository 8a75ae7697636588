package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"telestat/internal/dashboard"
	"telestat/internal/model"
)

// fakeStats serves canned panels and fails the ones listed in failing.
type fakeStats struct {
	failing map[string]bool
}

func (f *fakeStats) fail(panel string) error {
	if f.failing[panel] {
		return errors.New(panel + " unavailable")
	}
	return nil
}

func (f *fakeStats) Overview(context.Context) (*model.Overview, error) {
	if err := f.fail("overview"); err != nil {
		return nil, err
	}
	return &model.Overview{TotalMessages: 42}, nil
}

func (f *fakeStats) TopUsers(_ context.Context, limit int) ([]model.TopUser, error) {
	if err := f.fail("top_users"); err != nil {
		return nil, err
	}
	users := make([]model.TopUser, limit)
	return users, nil
}

func (f *fakeStats) WordFrequency(_ context.Context, limit int) ([]model.WordCount, error) {
	if err := f.fail("word_frequency"); err != nil {
		return nil, err
	}
	return []model.WordCount{{Word: "salom", Count: 7}}, nil
}

func (f *fakeStats) MessagesPerDay(context.Context, int) ([]model.DayCount, error) {
	if err := f.fail("messages_per_day"); err != nil {
		return nil, err
	}
	return []model.DayCount{{Count: 3}}, nil
}

func (f *fakeStats) MessagesPerHour(context.Context) ([]model.HourCount, error) {
	if err := f.fail("messages_per_hour"); err != nil {
		return nil, err
	}
	return []model.HourCount{{Hour: "09", Count: 5}}, nil
}

func (f *fakeStats) MediaDistribution(context.Context) ([]model.MediaCount, error) {
	if err := f.fail("media_distribution"); err != nil {
		return nil, err
	}
	return []model.MediaCount{{MediaType: model.MediaPhoto, Count: 2}}, nil
}

func (f *fakeStats) GroupComparison(context.Context) (*model.GroupComparison, error) {
	if err := f.fail("group_comparison"); err != nil {
		return nil, err
	}
	return &model.GroupComparison{
		Status:      "success",
		TotalGroups: 1,
		Groups:      []model.GroupStats{{Name: "Sales", MessageCount: 42, UserCount: 3}},
	}, nil
}

func (f *fakeStats) SentimentOverall(context.Context) (*model.SentimentOverall, error) {
	if err := f.fail("sentiment_overall"); err != nil {
		return nil, err
	}
	return &model.SentimentOverall{}, nil
}

func (f *fakeStats) ReplyChainStats(context.Context) (*model.ReplyChainStats, error) {
	if err := f.fail("reply_chain"); err != nil {
		return nil, err
	}
	return &model.ReplyChainStats{}, nil
}

func TestFetchStatsBundleAllPanels(t *testing.T) {
	t.Parallel()

	bundle := dashboard.FetchStatsBundle(context.Background(), &fakeStats{}, 5, 10, 30, nil)

	if bundle.Overview == nil || bundle.Overview.TotalMessages != 42 {
		t.Errorf("overview panel not populated: %+v", bundle.Overview)
	}
	if len(bundle.TopUsers) != 5 {
		t.Errorf("top users panel has %d entries, want 5", len(bundle.TopUsers))
	}
	if len(bundle.WordFrequency) != 1 {
		t.Errorf("word frequency panel has %d entries, want 1", len(bundle.WordFrequency))
	}
	if bundle.Sentiment == nil || bundle.ReplyChain == nil {
		t.Error("sentiment or reply chain panel not populated")
	}
	if bundle.GroupComparison == nil || bundle.GroupComparison.TotalGroups != 1 {
		t.Errorf("group comparison panel not populated: %+v", bundle.GroupComparison)
	}
}

func TestFetchStatsBundleDegradesFailedPanels(t *testing.T) {
	t.Parallel()

	fetcher := &fakeStats{failing: map[string]bool{
		"overview":  true,
		"top_users": true,
	}}
	bundle := dashboard.FetchStatsBundle(context.Background(), fetcher, 5, 10, 30, nil)

	if bundle.Overview != nil {
		t.Errorf("failed overview panel should stay empty, got %+v", bundle.Overview)
	}
	if bundle.TopUsers != nil {
		t.Errorf("failed top users panel should stay empty, got %v", bundle.TopUsers)
	}
	if len(bundle.WordFrequency) != 1 {
		t.Error("healthy panels should still populate when others fail")
	}
}
