package binner

import "errors"

var (
	ErrInvalidAxis  = errors.New("invalid axis")
	ErrInvalidIndex = errors.New("invalid bin index")
)
