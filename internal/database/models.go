package database

import (
	"database/sql"
	"time"

	"telestat/internal/model"
)

// messageRow is the flattened storage shape of a cached message. The nested
// user and group value objects are denormalized into columns; only the
// fields the dashboard core reads are persisted.
type messageRow struct {
	// Seq is the storage insertion position. id is the backend's row
	// identifier and carries no ordering guarantee.
	Seq int64 `db:"seq"`

	ID        int64 `db:"id"`
	MessageID int64 `db:"message_id"`

	UserTelegramID sql.NullInt64 `db:"user_telegram_id"`
	UserUsername   string        `db:"user_username"`
	UserFirstName  string        `db:"user_first_name"`
	UserFullName   string        `db:"user_full_name"`

	GroupTelegramID sql.NullInt64 `db:"group_telegram_id"`
	GroupTitle      string        `db:"group_title"`

	Text          string `db:"text"`
	MediaType     string `db:"media_type"`
	MediaFileName string `db:"media_file_name"`
	MediaFileSize int64  `db:"media_file_size"`

	ReplyToMessageID sql.NullInt64 `db:"reply_to_message_id"`

	IsEdited  bool `db:"is_edited"`
	IsDeleted bool `db:"is_deleted"`

	CreatedAt time.Time    `db:"created_at"`
	EditedAt  sql.NullTime `db:"edited_at"`

	Sentiment string `db:"sentiment"`
}

func rowFromMessage(m *model.Message) messageRow {
	row := messageRow{
		ID:            m.ID,
		MessageID:     m.MessageID,
		Text:          m.Text,
		MediaType:     m.MediaType,
		MediaFileName: m.MediaFileName,
		MediaFileSize: m.MediaFileSize,
		IsEdited:      m.IsEdited,
		IsDeleted:     m.IsDeleted,
		CreatedAt:     m.CreatedAt,
		Sentiment:     m.Sentiment,
	}
	if m.User != nil {
		row.UserTelegramID = sql.NullInt64{Int64: m.User.TelegramID, Valid: true}
		row.UserUsername = m.User.Username
		row.UserFirstName = m.User.FirstName
		row.UserFullName = m.User.FullName
	}
	if m.Group != nil {
		row.GroupTelegramID = sql.NullInt64{Int64: m.Group.TelegramID, Valid: true}
		row.GroupTitle = m.Group.DisplayTitle()
	}
	if m.ReplyToMessageID != nil {
		row.ReplyToMessageID = sql.NullInt64{Int64: *m.ReplyToMessageID, Valid: true}
	}
	if m.EditedAt != nil {
		row.EditedAt = sql.NullTime{Time: *m.EditedAt, Valid: true}
	}
	return row
}

func (r *messageRow) toMessage() model.Message {
	m := model.Message{
		ID:            r.ID,
		MessageID:     r.MessageID,
		Text:          r.Text,
		MediaType:     r.MediaType,
		MediaFileName: r.MediaFileName,
		MediaFileSize: r.MediaFileSize,
		IsEdited:      r.IsEdited,
		IsDeleted:     r.IsDeleted,
		CreatedAt:     r.CreatedAt,
		Sentiment:     r.Sentiment,
	}
	if r.UserTelegramID.Valid || r.UserUsername != "" || r.UserFirstName != "" || r.UserFullName != "" {
		m.User = &model.User{
			TelegramID: r.UserTelegramID.Int64,
			Username:   r.UserUsername,
			FirstName:  r.UserFirstName,
			FullName:   r.UserFullName,
		}
	}
	if r.GroupTelegramID.Valid || r.GroupTitle != "" {
		m.Group = &model.Group{
			TelegramID: r.GroupTelegramID.Int64,
			Title:      r.GroupTitle,
		}
	}
	if r.ReplyToMessageID.Valid {
		id := r.ReplyToMessageID.Int64
		m.ReplyToMessageID = &id
	}
	if r.EditedAt.Valid {
		t := r.EditedAt.Time
		m.EditedAt = &t
	}
	return m
}
