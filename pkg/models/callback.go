package models

// CallbackAction type of callback action
type CallbackAction string

const (
	CallbackNewMailbox     CallbackAction = "new"
	CallbackCurrentMailbox CallbackAction = "cur"
	CallbackFetchCodes     CallbackAction = "code"
	CallbackMenu           CallbackAction = "menu"
)

// CallbackData structure for inline button callback
type CallbackData struct {
	Action CallbackAction `json:"a"`
}
