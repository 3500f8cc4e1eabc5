package point

import (
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Point is an ordered tuple of coordinates, one per dimension.
type Point[T Number] struct {
	coordinates []T
}

func New[T Number](coordinates ...T) Point[T] {
	return Point[T]{
		coordinates: append([]T(nil), coordinates...),
	}
}

func (p Point[T]) Dimension() int {
	return len(p.coordinates)
}

func (p Point[T]) Coordinate(k int) (T, error) {
	if k < 0 || k >= len(p.coordinates) {
		var zero T

		return zero, ErrOutOfRange
	}

	return p.coordinates[k], nil
}

func (p *Point[T]) SetCoordinate(k int, coordinate T) error {
	if k < 0 || k >= len(p.coordinates) {
		return ErrOutOfRange
	}

	p.coordinates[k] = coordinate

	return nil
}

func (p *Point[T]) AddCoordinate(coordinate T) {
	p.coordinates = append(p.coordinates, coordinate)
}

// Coordinates returns a copy of the coordinates.
func (p Point[T]) Coordinates() []T {
	return append([]T(nil), p.coordinates...)
}

func (p Point[T]) Clone() Point[T] {
	return New(p.coordinates...)
}

func (p Point[T]) Equal(other Point[T]) bool {
	if len(p.coordinates) != len(other.coordinates) {
		return false
	}

	for idx, c := range p.coordinates {
		if c != other.coordinates[idx] {
			return false
		}
	}

	return true
}

// Key is a stable textual form of the coordinates, usable as a map or cache key.
func (p Point[T]) Key() string {
	ss := make([]string, 0, len(p.coordinates))
	for _, c := range p.coordinates {
		ss = append(ss, cast.ToString(c))
	}

	return strings.Join(ss, ";")
}

func (p Point[T]) String() string {
	ss := make([]string, 0, len(p.coordinates))
	for _, c := range p.coordinates {
		ss = append(ss, cast.ToString(c))
	}

	return "(" + strings.Join(ss, ", ") + ")"
}

// ZipLen is the number of positions visited when two sequences of lengths a and b
// are walked together: iteration stops at the shorter one.
func ZipLen(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// Weigh returns the sum of weight_i * value_i, stopping at the shorter of the two sequences.
func Weigh[T Number](weights Point[T], values []T) (sum T) {
	n := ZipLen(len(weights.coordinates), len(values))

	for idx := 0; idx < n; idx++ {
		sum += weights.coordinates[idx] * values[idx]
	}

	return
}
