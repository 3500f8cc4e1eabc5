package linear

import (
	"testing"

	"github.com/sgostarter/libbinning/binner"
	"github.com/sgostarter/libbinning/histogram"
	"github.com/sgostarter/libbinning/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid() *histogram.Histogram[int, int] {
	bins := binner.NewBinner([]binner.Axis[int]{
		binner.NewAxisRange(2, 0, 4),
		binner.NewAxisRange(3, 0, 30),
	}, nil).GenerateBinning()

	h := histogram.NewCounts[int, int](bins, nil)
	h.AddCount(point.New(1, 5))
	h.AddCount(point.New(3, 25))
	h.AddCount(point.New(3, 25))

	return h
}

func TestLinearise(t *testing.T) {
	lh := Linearise(grid(), nil)

	require.Equal(t, 2, lh.NumberOfAxes())
	assert.Equal(t, []int{0, 2, 4}, lh.Axis(0))
	assert.Equal(t, []int{0, 10, 20, 30}, lh.Axis(1))
	assert.Len(t, lh.Axes(), 2)
	assert.Equal(t, 2, lh.NumberOfBins(0))
	assert.Equal(t, 3, lh.NumberOfBins(1))
	assert.Equal(t, 0, lh.NumberOfBins(2))
	assert.Nil(t, lh.Axis(2))

	require.Equal(t, 6, lh.NumberOfValues())
	assert.Equal(t, []int{1, 0, 0, 0, 0, 2}, lh.Values())
	assert.Equal(t, 2, lh.Value(5))
	assert.Equal(t, 0, lh.Value(6))
	assert.Contains(t, lh.String(), "axis 1: [0 10 20 30]")
}

func TestLineariseEmpty(t *testing.T) {
	lh := Linearise[int, int](nil, nil)

	assert.Equal(t, 0, lh.NumberOfAxes())
	assert.Equal(t, 0, lh.NumberOfValues())
	assert.Equal(t, 0, lh.Value(0))

	s := NewSnapshot[int, int](nil, nil)
	assert.Equal(t, 0, s.Dimension)
	assert.Empty(t, s.Rows)
}

func TestSnapshot(t *testing.T) {
	s := NewSnapshot(grid(), nil)
	require.Len(t, s.Rows, 6)
	assert.Equal(t, 2, s.Dimension)

	assert.Equal(t, Row{
		Center: []float64{3, 25},
		Low:    []float64{2, 20},
		Up:     []float64{4, 30},
		Value:  2,
	}, s.Rows[5])

	d, err := s.Marshal()
	require.Nil(t, err)

	back, err := UnmarshalSnapshot(d)
	require.Nil(t, err)
	assert.Equal(t, s, back)
}

func TestScalarSnapshot(t *testing.T) {
	bins := binner.NewBinner([]binner.Axis[float64]{binner.NewAxisRange(2, 0.0, 2.0)}, nil).GenerateBinning()

	h := histogram.NewScalarCounts[float64, float64](bins, nil)
	for i := 0; i < 4; i++ {
		h.AddCount(point.New(0.5))
	}

	s := NewSnapshot(h, nil)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, 4.0, s.Rows[0].Value)
	assert.Equal(t, 2.0, s.Rows[0].Error)
	assert.Equal(t, 0.0, s.Rows[1].Error)
}
