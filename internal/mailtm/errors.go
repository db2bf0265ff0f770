package mailtm

import "errors"

// ErrUnavailable is returned on transport failures, 5xx responses and
// unparseable payloads
var ErrUnavailable = errors.New("mail provider unavailable")

// ErrRejected is returned when the provider refuses the request (4xx),
// e.g. the address is already taken
var ErrRejected = errors.New("request rejected by provider")

// ErrAuthFailed is returned on invalid credentials or an expired token
var ErrAuthFailed = errors.New("authentication failed")

// ErrNotFound is returned when the requested message no longer exists
var ErrNotFound = errors.New("message not found")
