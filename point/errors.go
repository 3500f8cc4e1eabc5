package point

import "errors"

var (
	ErrOutOfRange = errors.New("coordinate index out of range")
)
