package database

const schema = `
CREATE TABLE IF NOT EXISTS mailbox_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    event TEXT NOT NULL,
    address TEXT,
    message_count INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_events_user ON mailbox_events(user_id);
CREATE INDEX IF NOT EXISTS idx_events_event ON mailbox_events(event);
`
