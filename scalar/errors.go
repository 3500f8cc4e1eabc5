package scalar

import "errors"

var (
	ErrDivisionByZero   = errors.New("scalar division by zero")
	ErrNegativeVariance = errors.New("negative deviation")
)
