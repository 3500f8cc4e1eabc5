package bin

import (
	"fmt"

	"github.com/sgostarter/libbinning/point"
	"github.com/spf13/cast"
)

// Interval is the half-open range [Low, Up).
type Interval[T point.Number] struct {
	Low T `yaml:"low" json:"low"`
	Up  T `yaml:"up" json:"up"`
}

func NewInterval[T point.Number](low, up T) Interval[T] {
	return Interval[T]{
		Low: low,
		Up:  up,
	}
}

// Contains excludes the upper edge, so adjacent intervals tile without overlap.
func (iv Interval[T]) Contains(v T) bool {
	return v >= iv.Low && v < iv.Up
}

func (iv Interval[T]) Center() T {
	return (iv.Low + iv.Up) / 2
}

func (iv Interval[T]) Width() T {
	return iv.Up - iv.Low
}

// Divide returns the spacing obtained by splitting the width in count parts.
func (iv Interval[T]) Divide(count int) (spacing T, err error) {
	if count == 0 {
		err = ErrInvalidDivision

		return
	}

	spacing = iv.Width() / T(count)

	return
}

func (iv *Interval[T]) SetEdges(low, up T) {
	iv.Low = low
	iv.Up = up
}

func (iv *Interval[T]) Shift(delta T) *Interval[T] {
	iv.Low += delta
	iv.Up += delta

	return iv
}

// Less compares centers only.
func (iv Interval[T]) Less(other Interval[T]) bool {
	return iv.Center() < other.Center()
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%s, %s]", cast.ToString(iv.Low), cast.ToString(iv.Up))
}

func ShiftInterval[T point.Number](iv Interval[T], delta T) Interval[T] {
	iv.Shift(delta)

	return iv
}
