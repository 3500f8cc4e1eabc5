package histogram

import (
	"testing"

	"github.com/sgostarter/libbinning/bin"
	"github.com/sgostarter/libbinning/point"
	"github.com/sgostarter/libbinning/scalar"
	"github.com/stretchr/testify/assert"
)

func TestWeigh(t *testing.T) {
	h1 := NewCounts[float64, float64](fourChannels(), nil)
	fill(h1, 1, 3)

	h2 := NewCounts[float64, float64](fourChannels(), nil)
	fill(h2, 3, 5, 5)

	h3 := NewCounts[float64, float64](fourChannels(), nil)
	fill(h3, 7)

	mixed := Weigh[float64, float64](NumberOps[float64]{}, point.New(2.0, 0.5),
		[]*Histogram[float64, float64]{h1, h2, h3}, nil)

	assert.Equal(t, []float64{2, 2.5, 1, 0}, mixed.Values())
	assert.Equal(t, []float64{1, 1, 0, 0}, h1.Values())
}

func TestWeighScalar(t *testing.T) {
	h := NewScalarCounts[int, float64]([]bin.Bin[int]{bin.NewRange(0, 2), bin.NewRange(2, 4)}, nil)
	h.AddCount(point.New(0))
	h.AddCount(point.New(3))

	mixed := Weigh[int, scalar.Scalar[float64]](ScalarOps[float64]{}, point.New(3),
		[]*Histogram[int, scalar.Scalar[float64]]{h, h}, nil)

	values := mixed.Values()
	assert.Len(t, values, 2)
	assert.Equal(t, 3.0, values[0].Value())
	assert.InDelta(t, 9.0, values[0].Variance(), 1e-12)

	empty := Weigh[int, float64](NumberOps[float64]{}, point.New(1),
		[]*Histogram[int, float64]{NewCounts[int, float64](nil, nil)}, nil)
	assert.True(t, empty.IsEmpty())
}
