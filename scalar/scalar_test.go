package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-12

func TestNew(t *testing.T) {
	s := New(3.5)
	assert.Equal(t, 3.5, s.Value())
	assert.Equal(t, 0.0, s.Error())
	assert.NotEqual(t, int64(0), s.Identity())

	s = NewWithError(2.0, 0.5)
	assert.Equal(t, 0.25, s.Variance())
	assert.Equal(t, 0.5, s.Error())

	s = NewWithVariance(2.0, -4.0)
	assert.Equal(t, 4.0, s.Variance())

	assert.NotEqual(t, New(1.0).Identity(), New(1.0).Identity())
	assert.Equal(t, "2 +/- 2", s.String())
}

func TestSelfCorrelation(t *testing.T) {
	x := NewWithError(3.0, 2.0)

	sum := x.Add(x)
	assert.Equal(t, 6.0, sum.Value())
	assert.Equal(t, 16.0, sum.Variance())

	diff := x.Sub(x)
	assert.Equal(t, 0.0, diff.Value())
	assert.Equal(t, 0.0, diff.Variance())

	ratio := x.Div(x)
	assert.Equal(t, 1.0, ratio.Value())
	assert.Equal(t, 0.0, ratio.Error())

	ratio = x.Div(x.Neg())
	assert.Equal(t, -1.0, ratio.Value())
	assert.Equal(t, 0.0, ratio.Error())

	square := x.Mul(x)
	assert.Equal(t, 9.0, square.Value())
	assert.Equal(t, 4*9*4.0+2*4*4.0, square.Variance())

	// results are new quantities
	assert.NotEqual(t, x.Identity(), sum.Identity())
	assert.Equal(t, 16.0+4.0, sum.Add(x).Variance())
}

func TestIndependent(t *testing.T) {
	a := NewWithError(4.0, 1.0)
	b := NewWithError(2.0, 0.5)

	assert.Equal(t, 1.25, a.Add(b).Variance())
	assert.Equal(t, 1.25, a.Sub(b).Variance())
	assert.Equal(t, 2.0, a.Sub(b).Value())

	prod := a.Mul(b)
	assert.Equal(t, 8.0, prod.Value())
	assert.InDelta(t, 4*1.0+16*0.25+0.25, prod.Variance(), epsilon)

	quot := a.Div(b)
	assert.Equal(t, 2.0, quot.Value())
	assert.InDelta(t, (1+4*0.25)/4, quot.Variance(), epsilon)
}

func TestZeroNeverCorrelates(t *testing.T) {
	var zero Scalar[float64]

	assert.Equal(t, int64(0), zero.Identity())
	assert.True(t, zero.IsZero())

	x := NewWithError(1.0, 1.0)
	assert.Equal(t, 1.0, zero.Add(x).Variance())
	assert.Equal(t, 0.0, zero.Add(zero).Variance())
}

func TestDivisionByZero(t *testing.T) {
	x := NewWithError(5.0, 1.0)

	assert.True(t, x.Div(New(0.0)).Equal(x))
	assert.Equal(t, x.Identity(), x.Div(New(0.0)).Identity())
	assert.True(t, x.DivFactor(0).Equal(x))
}

func TestFactors(t *testing.T) {
	x := NewWithError(2.0, 1.0)

	assert.True(t, x.MulFactor(3).Equal(NewWithError(6.0, 3.0)))
	assert.True(t, x.DivFactor(2).Equal(NewWithError(1.0, 0.5)))
	assert.True(t, x.AddFactor(1).Equal(NewWithError(3.0, 1.0)))

	neg := x.Neg()
	assert.Equal(t, -2.0, neg.Value())
	assert.Equal(t, x.Variance(), neg.Variance())
	assert.Equal(t, -x.Identity(), neg.Identity())

	assert.True(t, neg.Less(x))
	assert.False(t, x.Less(x))
}

func TestFloat32(t *testing.T) {
	x := NewWithError[float32](9, 3)

	assert.Equal(t, float32(3), x.Error())
	assert.False(t, math.IsNaN(float64(x.Div(x).Error())))
}
