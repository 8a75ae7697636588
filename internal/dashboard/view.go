package dashboard

import (
	"sync"

	"telestat/internal/model"
)

// FilteredView is the derived, paginated projection of the cache under the
// current criteria. It only ever reads a snapshot of the cache at call time
// and holds its pagination cursor explicitly.
type FilteredView struct {
	cache *MessageCache

	mu       sync.Mutex
	criteria Criteria
	filtered []model.Message
	page     int
}

// NewFilteredView creates a view over the cache with no constraints and the
// cursor on page 1.
func NewFilteredView(cache *MessageCache) *FilteredView {
	v := &FilteredView{cache: cache, page: 1}
	v.SetCriteria(Criteria{})
	return v
}

// SetCriteria recomputes the filtered sequence from the cache's current
// contents, preserving the original relative order, and resets the cursor
// to page 1. It returns the filtered sequence.
func (v *FilteredView) SetCriteria(c Criteria) []model.Message {
	pred := BuildPredicate(c)
	source := v.cache.Messages()

	filtered := make([]model.Message, 0, len(source))
	for i := range source {
		if pred(&source[i]) {
			filtered = append(filtered, source[i])
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria = c
	v.filtered = filtered
	v.page = 1
	return append([]model.Message(nil), filtered...)
}

// Refresh reapplies the current criteria, picking up cache reloads.
func (v *FilteredView) Refresh() []model.Message {
	v.mu.Lock()
	c := v.criteria
	v.mu.Unlock()
	return v.SetCriteria(c)
}

// Criteria returns the currently applied criteria.
func (v *FilteredView) Criteria() Criteria {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.criteria
}

// Messages returns the full filtered sequence.
func (v *FilteredView) Messages() []model.Message {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.Message(nil), v.filtered...)
}

// Len returns the filtered sequence length.
func (v *FilteredView) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.filtered)
}

// Page returns the pageNumber-th slice of the filtered sequence, clipped to
// the available length. Page numbers start at 1; an out-of-range page yields
// an empty slice, never an error.
func (v *FilteredView) Page(pageNumber, pageSize int) []model.Message {
	v.mu.Lock()
	defer v.mu.Unlock()

	if pageNumber < 1 || pageSize < 1 {
		return nil
	}
	start := (pageNumber - 1) * pageSize
	if start >= len(v.filtered) {
		return nil
	}
	end := start + pageSize
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return append([]model.Message(nil), v.filtered[start:end]...)
}

// PageCount returns ceil(len/pageSize), with a minimum of 1 so an empty
// result still renders one (empty) page.
func (v *FilteredView) PageCount(pageSize int) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	if pageSize < 1 || len(v.filtered) == 0 {
		return 1
	}
	return (len(v.filtered) + pageSize - 1) / pageSize
}

// CurrentPage returns the cursor position.
func (v *FilteredView) CurrentPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// SetPage moves the cursor, clamping to [1, PageCount(pageSize)].
func (v *FilteredView) SetPage(pageNumber, pageSize int) int {
	count := v.PageCount(pageSize)

	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case pageNumber < 1:
		v.page = 1
	case pageNumber > count:
		v.page = count
	default:
		v.page = pageNumber
	}
	return v.page
}
