package linear

import "errors"

var (
	ErrOutOfRange  = errors.New("index out of range")
	ErrUnsupported = errors.New("value cannot be exported")
)
