package scalar

import (
	"math"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

var logger = l.NewNopLoggerWrapper()

// SetLogger sets the logger used to report degenerate scalar operations.
func SetLogger(wrapper l.Wrapper) {
	if wrapper == nil {
		wrapper = l.NewNopLoggerWrapper()
	}

	logger = wrapper.WithFields(l.StringField(l.ClsKey, "scalar"))
}

// Scalar is a value with its variance and a correlation identity.
//
// Two scalars with the same identity are the same statistical quantity and are
// treated as fully correlated; opposite identities mark X and -X. Any other pair
// is assumed independent. The zero Scalar has identity 0 and never correlates.
type Scalar[T constraints.Float] struct {
	value    T
	variance T
	identity int64
}

// New returns an exact value: its error is zero.
func New[T constraints.Float](value T) Scalar[T] {
	return Scalar[T]{
		value:    value,
		identity: nextIdentity(),
	}
}

func NewWithError[T constraints.Float](value, deviation T) Scalar[T] {
	if deviation < 0 {
		logger.WithFields(l.ErrorField(ErrNegativeVariance), l.StringField("deviation", cast.ToString(deviation))).
			Warn("deviation is negative, absolute value used")
	}

	return Scalar[T]{
		value:    value,
		variance: deviation * deviation,
		identity: nextIdentity(),
	}
}

func NewWithVariance[T constraints.Float](value, variance T) Scalar[T] {
	if variance < 0 {
		logger.WithFields(l.ErrorField(ErrNegativeVariance), l.StringField("variance", cast.ToString(variance))).
			Warn("variance is negative, absolute value used")

		variance = -variance
	}

	return Scalar[T]{
		value:    value,
		variance: variance,
		identity: nextIdentity(),
	}
}

func derived[T constraints.Float](value, variance T) Scalar[T] {
	if variance < 0 {
		variance = 0
	}

	return Scalar[T]{
		value:    value,
		variance: variance,
		identity: nextIdentity(),
	}
}

func (s Scalar[T]) Value() T {
	return s.value
}

func (s Scalar[T]) Variance() T {
	return s.variance
}

func (s Scalar[T]) Error() T {
	return T(math.Sqrt(float64(s.variance)))
}

func (s Scalar[T]) Identity() int64 {
	return s.identity
}

type correlation int

const (
	independent correlation = iota
	correlated
	anticorrelated
)

func correlationOf[T constraints.Float](a, b Scalar[T]) correlation {
	if a.identity == 0 || b.identity == 0 {
		return independent
	}

	if a.identity == b.identity {
		return correlated
	}

	if a.identity == -b.identity {
		return anticorrelated
	}

	return independent
}

// Neg keeps the quantity but flips its identity, so that X + (-X) is exactly zero.
func (s Scalar[T]) Neg() Scalar[T] {
	return Scalar[T]{
		value:    -s.value,
		variance: s.variance,
		identity: -s.identity,
	}
}

func (s Scalar[T]) Add(other Scalar[T]) Scalar[T] {
	value := s.value + other.value

	switch correlationOf(s, other) {
	case correlated:
		// Var(2X) = 4 Var(X)
		return derived(value, 4*s.variance)
	case anticorrelated:
		return derived(value, 0)
	default:
		return derived(value, s.variance+other.variance)
	}
}

func (s Scalar[T]) Sub(other Scalar[T]) Scalar[T] {
	return s.Add(other.Neg())
}

func (s Scalar[T]) Mul(other Scalar[T]) Scalar[T] {
	value := s.value * other.value

	switch correlationOf(s, other) {
	case correlated, anticorrelated:
		// Var(X^2) = 4 X^2 Var(X) + 2 Var(X)^2
		return derived(value, 4*s.value*s.value*s.variance+2*s.variance*s.variance)
	default:
		return derived(value, other.value*other.value*s.variance+s.value*s.value*other.variance+s.variance*other.variance)
	}
}

// Div leaves s unchanged when other is exactly zero.
func (s Scalar[T]) Div(other Scalar[T]) Scalar[T] {
	if other.value == 0 {
		logger.WithFields(l.ErrorField(ErrDivisionByZero), l.StringField("dividend", s.String())).
			Warn("scalar division by zero not allowed")

		return s
	}

	switch correlationOf(s, other) {
	case correlated:
		return derived[T](1, 0)
	case anticorrelated:
		return derived[T](-1, 0)
	default:
		ratio := s.value / other.value

		return derived(ratio, (s.variance+ratio*ratio*other.variance)/(other.value*other.value))
	}
}

// AddFactor adds an exact value.
func (s Scalar[T]) AddFactor(factor T) Scalar[T] {
	return derived(s.value+factor, s.variance)
}

// MulFactor multiplies by an exact value.
func (s Scalar[T]) MulFactor(factor T) Scalar[T] {
	return derived(s.value*factor, s.variance*factor*factor)
}

// DivFactor divides by an exact value and leaves s unchanged when factor is zero.
func (s Scalar[T]) DivFactor(factor T) Scalar[T] {
	if factor == 0 {
		logger.WithFields(l.ErrorField(ErrDivisionByZero), l.StringField("dividend", s.String())).
			Warn("scalar division by zero not allowed")

		return s
	}

	return derived(s.value/factor, s.variance/(factor*factor))
}

// Equal compares value and variance, not identity.
func (s Scalar[T]) Equal(other Scalar[T]) bool {
	return s.value == other.value && s.variance == other.variance
}

// Less ignores the errors.
func (s Scalar[T]) Less(other Scalar[T]) bool {
	return s.value < other.value
}

func (s Scalar[T]) IsZero() bool {
	return s.value == 0
}

func (s Scalar[T]) String() string {
	return cast.ToString(s.value) + " +/- " + cast.ToString(s.Error())
}
