package models

// CodeResult is the outcome of processing one inbox message.
type CodeResult struct {
	Service string // matched service label
	Subject string // message subject as received
	Time    string // HH:MM from the provider timestamp
	Code    string // 6-digit code, empty if none found
}
