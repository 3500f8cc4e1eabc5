package histogram

import "errors"

var (
	ErrChannelMismatch   = errors.New("channel dimension mismatch")
	ErrNoMatchingChannel = errors.New("no channel matches")
	ErrDivisionByZero    = errors.New("histogram division by zero")
	ErrKeyNotFound       = errors.New("channel not found")
)
