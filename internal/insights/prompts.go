package insights

import (
	"fmt"
	"strings"

	"telestat/internal/dashboard"
)

const systemInstruction = `You are an analytics assistant for a Telegram group dashboard.
You receive aggregate statistics and write a short, factual summary for group
administrators: notable activity levels, most active members, dominant media
types, overall mood, and anything unusual. Keep it under 200 words, plain
text, no markdown.`

// buildPrompt flattens the stats bundle into a textual report for the model.
// Panels that failed to load are simply omitted.
func buildPrompt(bundle *dashboard.StatsBundle) string {
	var b strings.Builder
	b.WriteString("Current dashboard statistics:\n")

	if o := bundle.Overview; o != nil {
		fmt.Fprintf(&b, "Totals: %d messages, %d users, %d groups, %d deleted, %d edited.\n",
			o.TotalMessages, o.TotalUsers, o.TotalGroups, o.DeletedMessages, o.EditedMessages)
	}

	if len(bundle.TopUsers) > 0 {
		b.WriteString("Most active users:\n")
		for _, u := range bundle.TopUsers {
			name := u.FullName
			if name == "" {
				name = u.Username
			}
			fmt.Fprintf(&b, "- %s: %d messages\n", name, u.MessageCount)
		}
	}

	if len(bundle.MediaDistribution) > 0 {
		b.WriteString("Media distribution:\n")
		for _, m := range bundle.MediaDistribution {
			fmt.Fprintf(&b, "- %s: %d\n", m.MediaType, m.Count)
		}
	}

	if s := bundle.Sentiment; s != nil && len(s.Distribution) > 0 {
		b.WriteString("Sentiment distribution:\n")
		for _, d := range s.Distribution {
			fmt.Fprintf(&b, "- %s: %d\n", d.Sentiment, d.Count)
		}
		fmt.Fprintf(&b, "Average sentiment score: %.2f\n", s.AverageScore)
	}

	if r := bundle.ReplyChain; r != nil {
		fmt.Fprintf(&b, "Replies: %d total (%.1f%% of messages).\n", r.TotalReplies, r.ReplyPercentage)
	}

	if len(bundle.MessagesPerDay) > 0 {
		last := bundle.MessagesPerDay[len(bundle.MessagesPerDay)-1]
		fmt.Fprintf(&b, "Latest day (%s): %d messages.\n", last.Date, last.Count)
	}

	return b.String()
}
