package histogram

import (
	"github.com/sgostarter/libbinning/point"
	"github.com/sgostarter/libbinning/scalar"
	"golang.org/x/exp/constraints"
)

// Ops is the arithmetic a histogram needs from its value type.
type Ops[V any] interface {
	Zero() V
	// Unit is what one counted entry adds to a channel.
	Unit() V
	Add(a, b V) V
	Sub(a, b V) V
	Mul(a, b V) V
	Div(a, b V) V
	IsZero(v V) bool
	FromFloat64(f float64) V
}

// SupportsUncertainty is implemented by the Ops of values that carry an error.
// Central strips the error from v, leaving an exact value.
type SupportsUncertainty[V any] interface {
	Central(v V) V
}

type NumberOps[V point.Number] struct {
}

func (NumberOps[V]) Zero() V {
	return 0
}

func (NumberOps[V]) Unit() V {
	return 1
}

func (NumberOps[V]) Add(a, b V) V {
	return a + b
}

func (NumberOps[V]) Sub(a, b V) V {
	return a - b
}

func (NumberOps[V]) Mul(a, b V) V {
	return a * b
}

func (NumberOps[V]) Div(a, b V) V {
	return a / b
}

func (NumberOps[V]) IsZero(v V) bool {
	return v == 0
}

func (NumberOps[V]) FromFloat64(f float64) V {
	return V(f)
}

type ScalarOps[V constraints.Float] struct {
}

func (ScalarOps[V]) Zero() scalar.Scalar[V] {
	return scalar.Scalar[V]{}
}

// Unit is one count with its own unit variance.
func (ScalarOps[V]) Unit() scalar.Scalar[V] {
	return scalar.NewWithError[V](1, 1)
}

func (ScalarOps[V]) Add(a, b scalar.Scalar[V]) scalar.Scalar[V] {
	return a.Add(b)
}

func (ScalarOps[V]) Sub(a, b scalar.Scalar[V]) scalar.Scalar[V] {
	return a.Sub(b)
}

func (ScalarOps[V]) Mul(a, b scalar.Scalar[V]) scalar.Scalar[V] {
	return a.Mul(b)
}

func (ScalarOps[V]) Div(a, b scalar.Scalar[V]) scalar.Scalar[V] {
	return a.Div(b)
}

func (ScalarOps[V]) IsZero(v scalar.Scalar[V]) bool {
	return v.IsZero()
}

func (ScalarOps[V]) FromFloat64(f float64) scalar.Scalar[V] {
	return scalar.New(V(f))
}

func (ScalarOps[V]) Central(v scalar.Scalar[V]) scalar.Scalar[V] {
	return scalar.New(v.Value())
}
