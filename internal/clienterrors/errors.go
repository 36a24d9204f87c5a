package clienterrors

import "errors"

// Transport-level errors. Both are recovered locally and surfaced as a
// generic notification plus a placeholder in the affected region.
var (
	ErrTransport = errors.New("transport failure")
	ErrDecode    = errors.New("malformed server payload")
)

// Application-level errors
var (
	ErrRejected        = errors.New("request rejected")
	ErrAuctionNotFound = errors.New("auction not found")
)
