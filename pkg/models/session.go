package models

// Session binds one Telegram user to one mail.tm account.
// Immutable once created; creating a new mailbox replaces it wholesale.
type Session struct {
	Address   string
	Password  string
	Token     string
	AccountID string
}
