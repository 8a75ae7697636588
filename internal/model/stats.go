package model

// Overview is the aggregate counters panel returned by /api/stats/overview/.
type Overview struct {
	TotalMessages     int          `json:"total_messages"`
	TotalUsers        int          `json:"total_users"`
	TotalGroups       int          `json:"total_groups"`
	DeletedMessages   int          `json:"deleted_messages"`
	EditedMessages    int          `json:"edited_messages"`
	MediaDistribution []MediaCount `json:"media_distribution"`
}

// MediaCount is one bucket of the media-type distribution.
type MediaCount struct {
	MediaType string `json:"media_type"`
	Count     int    `json:"count"`
}

// TopUser is one row of the most-active-users ranking.
type TopUser struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	FirstName    string `json:"first_name"`
	MessageCount int    `json:"message_count"`
}

// WordCount is one entry of the word-frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// DayCount is the message count for one calendar day.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// HourCount is the message count for one hour bucket. Hour may be empty when
// the backend could not truncate the timestamp.
type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

// TopicCount is one entry of the top-topics ranking.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// SentimentCount is one bucket of a sentiment distribution.
type SentimentCount struct {
	Sentiment string `json:"sentiment"`
	Count     int    `json:"count"`
}

// SentimentOverall is the overall sentiment panel.
type SentimentOverall struct {
	Distribution []SentimentCount `json:"distribution"`
	AverageScore float64          `json:"average_score"`
	AIPowered    bool             `json:"ai_powered"`
}

// RepliedMessage is one entry of the most-replied-messages ranking.
type RepliedMessage struct {
	MessageID  int64  `json:"message_id"`
	Text       string `json:"text"`
	User       string `json:"user"`
	ReplyCount int    `json:"reply_count"`
}

// ReplyChainStats is the reply-chain panel.
type ReplyChainStats struct {
	TotalReplies       int              `json:"total_replies"`
	ReplyPercentage    float64          `json:"reply_percentage"`
	TopRepliedMessages []RepliedMessage `json:"top_replied_messages"`
}

// GroupStats is one group's row in the comparison panel. Groups with fewer
// than five messages are omitted server-side.
type GroupStats struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	MessageCount       int          `json:"message_count"`
	UserCount          int          `json:"user_count"`
	AvgMessagesPerUser float64      `json:"avg_messages_per_user"`
	DeletedCount       int          `json:"deleted_count"`
	EditedCount        int          `json:"edited_count"`
	MediaDistribution  []MediaCount `json:"media_distribution"`
}

// GroupComparison is the cross-group comparison panel, ordered by message
// count descending.
type GroupComparison struct {
	Status      string       `json:"status"`
	TotalGroups int          `json:"total_groups"`
	Groups      []GroupStats `json:"groups"`
}

// UserProfile is the per-user statistics panel.
type UserProfile struct {
	UserID                int64            `json:"user_id"`
	Username              string           `json:"username"`
	FullName              string           `json:"full_name"`
	FirstName             string           `json:"first_name"`
	TotalMessages         int              `json:"total_messages"`
	TextMessages          int              `json:"text_messages"`
	MediaMessages         int              `json:"media_messages"`
	MediaDistribution     []MediaCount     `json:"media_distribution"`
	QuestionsAsked        int              `json:"questions_asked"`
	SentimentDistribution []SentimentCount `json:"sentiment_distribution"`
}
