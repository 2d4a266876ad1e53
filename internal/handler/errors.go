package handler

// Generic HTTP error messages for client responses.
// Internal failures intentionally do not expose details; handlers and
// tests should reference these constants to stay consistent.
const (
	ErrMsgInvalidRequest = "Invalid request body"
	ErrMsgInternalError  = "Internal server error"
)
