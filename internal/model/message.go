// Package model defines the JSON data types served by the analytics backend
// and the fallback resolution rules shared by every consumer of them.
package model

import "time"

// UnknownUserName is the display fallback when no name field is populated.
const UnknownUserName = "Unknown User"

// User is the message author as embedded in a Message payload.
type User struct {
	ID         int64  `json:"id"`
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	FullName   string `json:"full_name"`
	IsBot      bool   `json:"is_bot"`
	Department string `json:"department"`
}

// DisplayName resolves the user's display name in the fixed order
// full name, first name, username. It falls back to UnknownUserName
// when every field is empty or the user itself is nil.
func (u *User) DisplayName() string {
	if u == nil {
		return UnknownUserName
	}
	switch {
	case u.FullName != "":
		return u.FullName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	}
	return UnknownUserName
}

// Group is the chat group as embedded in a Message payload. Depending on the
// backend version either Title or Name carries the group's display title;
// the two keys are synonyms.
type Group struct {
	ID          int64  `json:"id"`
	TelegramID  int64  `json:"telegram_id"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
}

// DisplayTitle resolves the group title, preferring Title over Name.
// Returns an empty string for a nil group.
func (g *Group) DisplayTitle() string {
	if g == nil {
		return ""
	}
	if g.Title != "" {
		return g.Title
	}
	return g.Name
}

// Message is a single chat event record. It is immutable once fetched.
// ID is the backend's row identifier; MessageID is the Telegram-assigned
// identifier used for edit-history and media-file lookups.
type Message struct {
	ID        int64  `json:"id"`
	MessageID int64  `json:"message_id"`
	User      *User  `json:"user"`
	Group     *Group `json:"group"`
	Text      string `json:"text"`

	MediaType     string `json:"media_type"`
	MediaFileName string `json:"media_file_name"`
	MediaFileSize int64  `json:"media_file_size"`
	MediaMimeType string `json:"media_mime_type"`

	ReplyToMessageID *int64 `json:"reply_to_message_id"`

	IsDeleted bool `json:"is_deleted"`
	IsEdited  bool `json:"is_edited"`

	// CreatedAt is the source-of-truth ordering key, but the fetched
	// sequence is not guaranteed sorted by it.
	CreatedAt time.Time  `json:"telegram_created_at"`
	EditedAt  *time.Time `json:"telegram_edited_at"`

	// Sentiment is one of "positive", "negative", "neutral"; empty means
	// not analyzed and is treated as neutral for display.
	Sentiment string `json:"sentiment"`
}

// EffectiveMediaType returns the media type, defaulting to "text" when the
// field is absent.
func (m *Message) EffectiveMediaType() string {
	if m.MediaType == "" {
		return MediaText
	}
	return m.MediaType
}

// EffectiveSentiment returns the sentiment, defaulting to "neutral" when the
// message has not been analyzed.
func (m *Message) EffectiveSentiment() string {
	if m.Sentiment == "" {
		return SentimentNeutral
	}
	return m.Sentiment
}

// HasMedia reports whether the message carries anything besides plain text.
func (m *Message) HasMedia() bool {
	return m.EffectiveMediaType() != MediaText
}

// IsReply reports whether the message replies to another message.
func (m *Message) IsReply() bool {
	return m.ReplyToMessageID != nil
}

// EditHistoryEntry is one revision of an edited message.
type EditHistoryEntry struct {
	OldText  string    `json:"old_text"`
	NewText  string    `json:"new_text"`
	EditedAt time.Time `json:"edited_at"`
}
