package dashboard_test

import (
	"testing"
	"time"

	"telestat/internal/dashboard"
	"telestat/internal/model"
)

func msg(opts func(*model.Message)) model.Message {
	m := model.Message{
		MessageID: 1,
		CreatedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	if opts != nil {
		opts(&m)
	}
	return m
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildPredicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		criteria dashboard.Criteria
		message  model.Message
		want     bool
	}{
		{
			name:     "empty criteria accepts anything",
			criteria: dashboard.Criteria{},
			message:  msg(nil),
			want:     true,
		},
		{
			name:     "group match on title",
			criteria: dashboard.Criteria{Group: "Sales"},
			message: msg(func(m *model.Message) {
				m.Group = &model.Group{Title: "Sales"}
			}),
			want: true,
		},
		{
			name:     "group falls back to name",
			criteria: dashboard.Criteria{Group: "Sales"},
			message: msg(func(m *model.Message) {
				m.Group = &model.Group{Name: "Sales"}
			}),
			want: true,
		},
		{
			name:     "group is case-sensitive",
			criteria: dashboard.Criteria{Group: "sales"},
			message: msg(func(m *model.Message) {
				m.Group = &model.Group{Title: "Sales"}
			}),
			want: false,
		},
		{
			name:     "group mismatch with nil group",
			criteria: dashboard.Criteria{Group: "Sales"},
			message:  msg(nil),
			want:     false,
		},
		{
			name:     "user matches resolved full name",
			criteria: dashboard.Criteria{User: "Alisher Usmonov"},
			message: msg(func(m *model.Message) {
				m.User = &model.User{FullName: "Alisher Usmonov", Username: "alisher"}
			}),
			want: true,
		},
		{
			name:     "user resolution prefers full name over username",
			criteria: dashboard.Criteria{User: "alisher"},
			message: msg(func(m *model.Message) {
				m.User = &model.User{FullName: "Alisher Usmonov", Username: "alisher"}
			}),
			want: false,
		},
		{
			name:     "user matches first name when full name empty",
			criteria: dashboard.Criteria{User: "Alisher"},
			message: msg(func(m *model.Message) {
				m.User = &model.User{FirstName: "Alisher", Username: "alisher"}
			}),
			want: true,
		},
		{
			name:     "sentiment exact match",
			criteria: dashboard.Criteria{Sentiment: "positive"},
			message: msg(func(m *model.Message) {
				m.Sentiment = "positive"
			}),
			want: true,
		},
		{
			name:     "sentiment mismatch on unanalyzed message",
			criteria: dashboard.Criteria{Sentiment: "neutral"},
			message:  msg(nil),
			want:     false,
		},
		{
			name:     "topic substring is case-insensitive",
			criteria: dashboard.Criteria{Topic: "YORDAM"},
			message: msg(func(m *model.Message) {
				m.Text = "Menga yordam kerak"
			}),
			want: true,
		},
		{
			name:     "topic never matches absent text",
			criteria: dashboard.Criteria{Topic: "yordam"},
			message: msg(func(m *model.Message) {
				m.Text = ""
				m.MediaType = model.MediaPhoto
			}),
			want: false,
		},
		{
			name: "date range includes end of to-day",
			criteria: dashboard.Criteria{
				DateFrom: date(2024, 1, 10),
				DateTo:   date(2024, 1, 10),
			},
			message: msg(func(m *model.Message) {
				m.CreatedAt = time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
			}),
			want: true,
		},
		{
			name: "date range excludes start of next day",
			criteria: dashboard.Criteria{
				DateFrom: date(2024, 1, 10),
				DateTo:   date(2024, 1, 10),
			},
			message: msg(func(m *model.Message) {
				m.CreatedAt = time.Date(2024, 1, 11, 0, 0, 1, 0, time.UTC)
			}),
			want: false,
		},
		{
			name:     "open-ended from bound",
			criteria: dashboard.Criteria{DateFrom: date(2024, 1, 1)},
			message: msg(func(m *model.Message) {
				m.CreatedAt = time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
			}),
			want: true,
		},
		{
			name: "conjunction requires every dimension",
			criteria: dashboard.Criteria{
				Group:     "Sales",
				Sentiment: "positive",
			},
			message: msg(func(m *model.Message) {
				m.Group = &model.Group{Title: "Sales"}
				m.Sentiment = "negative"
			}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pred := dashboard.BuildPredicate(tt.criteria)
			m := tt.message
			if got := pred(&m); got != tt.want {
				t.Errorf("predicate(%+v) = %v, want %v", tt.criteria, got, tt.want)
			}
		})
	}
}

func TestCriteriaIsZero(t *testing.T) {
	t.Parallel()

	if !(dashboard.Criteria{}).IsZero() {
		t.Error("zero criteria should report IsZero")
	}
	if (dashboard.Criteria{Topic: "x"}).IsZero() {
		t.Error("criteria with topic should not report IsZero")
	}
	if (dashboard.Criteria{DateTo: date(2024, 1, 1)}).IsZero() {
		t.Error("criteria with date bound should not report IsZero")
	}
}
