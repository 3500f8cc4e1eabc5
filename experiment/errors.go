package experiment

import "errors"

var (
	ErrNoMatchingChannel = errors.New("no channel matches")
	ErrInvalidDistance   = errors.New("invalid distance")
	ErrChannelMismatch   = errors.New("channel dimension mismatch")
)
