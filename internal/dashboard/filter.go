package dashboard

import (
	"strings"
	"time"

	"telestat/internal/model"
)

// Criteria narrows the message collection along independent dimensions.
// A zero-valued field means no constraint on that dimension, never "match
// the empty value".
type Criteria struct {
	// Group matches the resolved group title exactly, case-sensitive.
	Group string

	// User matches the resolved display name exactly. Identity is by
	// display name, not stable id: two users sharing a name are
	// indistinguishable here. Kept for compatibility with the backend's
	// filter semantics.
	User string

	// Sentiment matches the message sentiment exactly.
	Sentiment string

	// Topic is a case-insensitive substring match against the message
	// text. Messages without text never match a non-empty topic.
	Topic string

	// DateFrom and DateTo bound the creation timestamp inclusively,
	// expanded to the start and end of their respective days. A zero
	// bound drops that side of the range.
	DateFrom time.Time
	DateTo   time.Time
}

// IsZero reports whether no dimension is constrained.
func (c Criteria) IsZero() bool {
	return c.Group == "" && c.User == "" && c.Sentiment == "" && c.Topic == "" &&
		c.DateFrom.IsZero() && c.DateTo.IsZero()
}

// Predicate is a pure message filter.
type Predicate func(*model.Message) bool

// BuildPredicate composes the conjunction of the criteria's field
// predicates. Empty fields contribute no constraint, so the zero Criteria
// yields a predicate that accepts every message.
func BuildPredicate(c Criteria) Predicate {
	var preds []Predicate

	if c.Group != "" {
		group := c.Group
		preds = append(preds, func(m *model.Message) bool {
			return m.Group.DisplayTitle() == group
		})
	}

	if c.User != "" {
		user := c.User
		preds = append(preds, func(m *model.Message) bool {
			return m.User.DisplayName() == user
		})
	}

	if c.Sentiment != "" {
		sentiment := c.Sentiment
		preds = append(preds, func(m *model.Message) bool {
			return m.Sentiment == sentiment
		})
	}

	if c.Topic != "" {
		topic := strings.ToLower(c.Topic)
		preds = append(preds, func(m *model.Message) bool {
			return m.Text != "" && strings.Contains(strings.ToLower(m.Text), topic)
		})
	}

	if !c.DateFrom.IsZero() {
		from := startOfDay(c.DateFrom)
		preds = append(preds, func(m *model.Message) bool {
			return !m.CreatedAt.Before(from)
		})
	}

	if !c.DateTo.IsZero() {
		to := endOfDay(c.DateTo)
		preds = append(preds, func(m *model.Message) bool {
			return !m.CreatedAt.After(to)
		})
	}

	return func(m *model.Message) bool {
		for _, p := range preds {
			if !p(m) {
				return false
			}
		}
		return true
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
