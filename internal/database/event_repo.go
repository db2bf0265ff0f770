package database

import (
	"context"
	"fmt"
	"time"
)

// Event types recorded in the journal
const (
	EventMailboxCreated = "mailbox_created"
	EventCodesFetched   = "codes_fetched"
)

// MailboxEvent is one journal entry
type MailboxEvent struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	Event        string    `db:"event"`
	Address      string    `db:"address"`
	MessageCount int       `db:"message_count"`
	CreatedAt    time.Time `db:"created_at"`
}

// RecordMailboxCreated journals a freshly created mailbox
func (db *DB) RecordMailboxCreated(ctx context.Context, userID int64, address string) error {
	query := `INSERT INTO mailbox_events (user_id, event, address) VALUES (?, ?, ?)`
	if _, err := db.ExecContext(ctx, query, userID, EventMailboxCreated, address); err != nil {
		return fmt.Errorf("failed to record mailbox creation: %w", err)
	}
	return nil
}

// RecordCodesFetched journals one fetch-codes run and how many messages it saw
func (db *DB) RecordCodesFetched(ctx context.Context, userID int64, messageCount int) error {
	query := `INSERT INTO mailbox_events (user_id, event, message_count) VALUES (?, ?, ?)`
	if _, err := db.ExecContext(ctx, query, userID, EventCodesFetched, messageCount); err != nil {
		return fmt.Errorf("failed to record fetch: %w", err)
	}
	return nil
}

// RecentMailboxes returns the user's most recently created addresses
func (db *DB) RecentMailboxes(ctx context.Context, userID int64, limit int) ([]MailboxEvent, error) {
	var events []MailboxEvent
	query := `
		SELECT * FROM mailbox_events
		WHERE user_id = ? AND event = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	err := db.SelectContext(ctx, &events, query, userID, EventMailboxCreated, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent mailboxes: %w", err)
	}
	return events, nil
}
