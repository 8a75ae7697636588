package dashboard

import (
	"sort"

	"telestat/internal/model"
)

// GroupTitles returns the sorted set of distinct group titles present in the
// messages. Messages without a group contribute nothing.
func GroupTitles(messages []model.Message) []string {
	seen := map[string]struct{}{}
	for i := range messages {
		title := messages[i].Group.DisplayTitle()
		if title == "" {
			continue
		}
		seen[title] = struct{}{}
	}

	titles := make([]string, 0, len(seen))
	for title := range seen {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// UserNames returns the sorted set of distinct resolved display names in the
// messages. Authors that resolve to the unknown fallback are skipped; they
// would conflate every anonymous sender into one facet entry.
func UserNames(messages []model.Message) []string {
	seen := map[string]struct{}{}
	for i := range messages {
		name := messages[i].User.DisplayName()
		if name == model.UnknownUserName {
			continue
		}
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UserNamesInGroup returns the sorted display names of users who posted in
// the named group.
func UserNamesInGroup(messages []model.Message, group string) []string {
	var inGroup []model.Message
	for i := range messages {
		if messages[i].Group.DisplayTitle() == group {
			inGroup = append(inGroup, messages[i])
		}
	}
	return UserNames(inGroup)
}
