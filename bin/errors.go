package bin

import "errors"

var (
	ErrInvalidDivision = errors.New("division by zero or default divisor")
	ErrOutOfRange      = errors.New("edge index out of range")
	ErrDimension       = errors.New("dimension mismatch")
)
