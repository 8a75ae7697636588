package dashboard_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"telestat/internal/api"
	"telestat/internal/dashboard"
	"telestat/internal/model"
)

// staticFetcher serves a fixed message slice.
type staticFetcher struct {
	messages []model.Message
	err      error
}

func (f *staticFetcher) Messages(_ context.Context, _ api.MessageQuery) ([]model.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.Message(nil), f.messages...), nil
}

func sampleMessages() []model.Message {
	groups := []*model.Group{
		{ID: 1, Title: "Sales"},
		{ID: 2, Title: "Support"},
	}
	users := []*model.User{
		{ID: 10, FullName: "Alisher Usmonov"},
		{ID: 11, FirstName: "Botir"},
	}
	sentiments := []string{"positive", "negative", "neutral"}

	messages := make([]model.Message, 30)
	for i := range messages {
		messages[i] = model.Message{
			MessageID: int64(i + 1),
			Text:      fmt.Sprintf("xabar %d", i+1),
			Group:     groups[i%2],
			User:      users[i%2],
			Sentiment: sentiments[i%3],
			CreatedAt: time.Date(2024, 1, 1+i%10, 9, 30, 0, 0, time.UTC),
		}
	}
	return messages
}

func loadedView(t *testing.T, messages []model.Message) *dashboard.FilteredView {
	t.Helper()

	cache := dashboard.NewMessageCache(&staticFetcher{messages: messages}, 1000, nil)
	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return dashboard.NewFilteredView(cache)
}

func TestFilteredViewEmptyCriteriaIdentity(t *testing.T) {
	t.Parallel()

	messages := sampleMessages()
	view := loadedView(t, messages)

	got := view.SetCriteria(dashboard.Criteria{})
	if len(got) != len(messages) {
		t.Fatalf("empty criteria yielded %d messages, want %d", len(got), len(messages))
	}
	for i := range got {
		if got[i].MessageID != messages[i].MessageID {
			t.Fatalf("position %d: got message %d, want %d", i, got[i].MessageID, messages[i].MessageID)
		}
	}
}

func TestFilteredViewPreservesOrder(t *testing.T) {
	t.Parallel()

	view := loadedView(t, sampleMessages())

	filtered := view.SetCriteria(dashboard.Criteria{Group: "Sales"})
	if len(filtered) == 0 {
		t.Fatal("expected matches for Sales group")
	}
	for i := 1; i < len(filtered); i++ {
		if filtered[i].MessageID <= filtered[i-1].MessageID {
			t.Fatalf("order not preserved: %d after %d",
				filtered[i].MessageID, filtered[i-1].MessageID)
		}
	}
}

func TestFilteredViewNarrowThenWiden(t *testing.T) {
	t.Parallel()

	view := loadedView(t, sampleMessages())
	total := view.Len()

	narrow := view.SetCriteria(dashboard.Criteria{Group: "Sales", Sentiment: "positive"})
	widened := view.SetCriteria(dashboard.Criteria{Group: "Sales"})

	if len(narrow) > len(widened) {
		t.Fatalf("narrowing grew the result: %d > %d", len(narrow), len(widened))
	}

	all := view.SetCriteria(dashboard.Criteria{})
	if len(all) != total {
		t.Fatalf("clearing criteria yielded %d, want %d", len(all), total)
	}
}

func TestFilteredViewSetCriteriaResetsPage(t *testing.T) {
	t.Parallel()

	view := loadedView(t, sampleMessages())
	view.SetPage(3, 5)
	if got := view.CurrentPage(); got != 3 {
		t.Fatalf("cursor = %d, want 3", got)
	}

	view.SetCriteria(dashboard.Criteria{Sentiment: "positive"})
	if got := view.CurrentPage(); got != 1 {
		t.Fatalf("cursor after SetCriteria = %d, want 1", got)
	}
}

func TestFilteredViewPage(t *testing.T) {
	t.Parallel()

	// 30 messages, page size 7: pages of 7,7,7,7,2.
	view := loadedView(t, sampleMessages())

	tests := []struct {
		name       string
		pageNumber int
		pageSize   int
		wantLen    int
		wantFirst  int64
	}{
		{"first page", 1, 7, 7, 1},
		{"middle page", 3, 7, 7, 15},
		{"last partial page", 5, 7, 2, 29},
		{"out of range", 6, 7, 0, 0},
		{"zero page number", 0, 7, 0, 0},
		{"zero page size", 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := view.Page(tt.pageNumber, tt.pageSize)
			if len(page) != tt.wantLen {
				t.Fatalf("Page(%d, %d) has %d messages, want %d",
					tt.pageNumber, tt.pageSize, len(page), tt.wantLen)
			}
			if tt.wantLen > 0 && page[0].MessageID != tt.wantFirst {
				t.Fatalf("Page(%d, %d) starts at %d, want %d",
					tt.pageNumber, tt.pageSize, page[0].MessageID, tt.wantFirst)
			}
		})
	}
}

func TestFilteredViewPageIsIdempotent(t *testing.T) {
	t.Parallel()

	view := loadedView(t, sampleMessages())

	first := view.Page(2, 7)
	second := view.Page(2, 7)
	if len(first) != len(second) {
		t.Fatalf("repeated Page call changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].MessageID != second[i].MessageID {
			t.Fatalf("repeated Page call changed contents at %d", i)
		}
	}
}

func TestFilteredViewPageCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"empty collection still has one page", 0, 10, 1},
		{"exact multiple", 30, 10, 3},
		{"remainder adds a page", 30, 7, 5},
		{"page size larger than collection", 3, 10, 1},
		{"invalid page size", 30, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view := loadedView(t, sampleMessages()[:tt.total])
			if got := view.PageCount(tt.pageSize); got != tt.want {
				t.Fatalf("PageCount(%d) over %d messages = %d, want %d",
					tt.pageSize, tt.total, got, tt.want)
			}
		})
	}
}

func TestFilteredViewPagesCoverSequence(t *testing.T) {
	t.Parallel()

	view := loadedView(t, sampleMessages())
	view.SetCriteria(dashboard.Criteria{Group: "Support"})

	const pageSize = 4
	var collected []model.Message
	for p := 1; p <= view.PageCount(pageSize); p++ {
		collected = append(collected, view.Page(p, pageSize)...)
	}

	want := view.Messages()
	if len(collected) != len(want) {
		t.Fatalf("pages concatenate to %d messages, want %d", len(collected), len(want))
	}
	for i := range want {
		if collected[i].MessageID != want[i].MessageID {
			t.Fatalf("position %d: got %d, want %d", i, collected[i].MessageID, want[i].MessageID)
		}
	}
}

func TestFilteredViewSetPageClamps(t *testing.T) {
	t.Parallel()

	view := loadedView(t, sampleMessages())

	if got := view.SetPage(99, 7); got != view.PageCount(7) {
		t.Fatalf("SetPage(99) = %d, want %d", got, view.PageCount(7))
	}
	if got := view.SetPage(-1, 7); got != 1 {
		t.Fatalf("SetPage(-1) = %d, want 1", got)
	}
}

func TestFilteredViewRefreshPicksUpReload(t *testing.T) {
	t.Parallel()

	messages := sampleMessages()
	fetcher := &staticFetcher{messages: messages[:10]}
	cache := dashboard.NewMessageCache(fetcher, 1000, nil)
	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	view := dashboard.NewFilteredView(cache)
	view.SetCriteria(dashboard.Criteria{Group: "Sales"})
	before := view.Len()

	fetcher.messages = messages
	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	after := len(view.Refresh())
	if after <= before {
		t.Fatalf("refresh after reload kept %d messages, want more than %d", after, before)
	}
	if got := view.Criteria(); got.Group != "Sales" {
		t.Fatalf("refresh changed criteria to %+v", got)
	}
}
