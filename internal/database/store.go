package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"telestat/internal/model"
)

// Store is the snapshot persistence interface. A snapshot mirrors the cache
// lifecycle: it is replaced wholesale, never merged.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// ReplaceMessages replaces the stored snapshot with the given
	// messages in one transaction.
	ReplaceMessages(ctx context.Context, messages []model.Message) error

	// LoadMessages returns the stored snapshot in insertion order.
	LoadMessages(ctx context.Context) ([]model.Message, error)

	// LastSnapshot returns when the latest snapshot was taken and how
	// many messages it held. Returns zero values when none exists.
	LastSnapshot(ctx context.Context) (time.Time, int, error)

	// RunMaintenance performs VACUUM and related housekeeping.
	RunMaintenance(ctx context.Context) error
}

type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store backed by sqlx.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) ReplaceMessages(ctx context.Context, messages []model.Message) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages`); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	const insert = `
        INSERT INTO messages (
            id, message_id,
            user_telegram_id, user_username, user_first_name, user_full_name,
            group_telegram_id, group_title,
            text, media_type, media_file_name, media_file_size,
            reply_to_message_id, is_edited, is_deleted,
            created_at, edited_at, sentiment
        ) VALUES (
            :id, :message_id,
            :user_telegram_id, :user_username, :user_first_name, :user_full_name,
            :group_telegram_id, :group_title,
            :text, :media_type, :media_file_name, :media_file_size,
            :reply_to_message_id, :is_edited, :is_deleted,
            :created_at, :edited_at, :sentiment
        );`

	for i := range messages {
		row := rowFromMessage(&messages[i])
		if _, err := tx.NamedExecContext(ctx, insert, row); err != nil {
			s.logger.ErrorContext(ctx, "Error inserting snapshot row", "message_id", row.MessageID, "error", err)
			return fmt.Errorf("failed to insert message %d: %w", row.MessageID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (taken_at, message_count) VALUES (?, ?)`,
		time.Now().UTC(), len(messages)); err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "Snapshot replaced", "count", len(messages))
	return nil
}

func (s *sqlxStore) LoadMessages(ctx context.Context) ([]model.Message, error) {
	var rows []messageRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM messages ORDER BY seq`); err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	messages := make([]model.Message, len(rows))
	for i := range rows {
		messages[i] = rows[i].toMessage()
	}
	return messages, nil
}

func (s *sqlxStore) LastSnapshot(ctx context.Context) (time.Time, int, error) {
	var row struct {
		TakenAt      time.Time `db:"taken_at"`
		MessageCount int       `db:"message_count"`
	}
	err := s.db.GetContext(ctx, &row,
		`SELECT taken_at, message_count FROM snapshots ORDER BY id DESC LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, 0, nil
		}
		return time.Time{}, 0, fmt.Errorf("failed to read snapshot metadata: %w", err)
	}
	return row.TakenAt, row.MessageCount, nil
}

func (s *sqlxStore) RunMaintenance(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("vacuum failed: %w", err)
	}
	s.logger.InfoContext(ctx, "Database maintenance completed")
	return nil
}
