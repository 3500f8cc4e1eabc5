package experiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	r := NewRun(10, 2, 3, 4)
	assert.Equal(t, Run{Candidates: 10, Duration: 2, Exposure1: 6, Exposure2: 8}, r)
	assert.False(t, r.IsEmpty())
	assert.True(t, Run{}.IsEmpty())

	r.Add(NewRun(5, 1, 1, 1))
	assert.Equal(t, Run{Candidates: 15, Duration: 3, Exposure1: 7, Exposure2: 9}, r)
}

func TestRunRate(t *testing.T) {
	r := Run{Candidates: 12, Duration: 4, Exposure1: 2, Exposure2: 8}

	// (2*2^2 + 8*1^2) / (1*2)
	assert.Equal(t, 8.0, r.MeanExposure(1, 2))
	assert.Equal(t, 1.0, r.Rate(1, 2, 1))
	assert.Equal(t, math.Sqrt(8)/8, r.RateError(1, 2, 1))

	s := r.RateScalar(1, 2, 1)
	assert.Equal(t, 1.0, s.Value())
	assert.InDelta(t, 8.0/64, s.Variance(), 1e-12)

	assert.True(t, math.IsInf(r.RateError(1, 2, 3), 1))
	assert.Equal(t, 0.0, Run{Candidates: 3}.Rate(1, 2, 0))
	assert.True(t, math.IsInf(Run{Candidates: 3}.RateError(1, 2, 0), 1))
	assert.Equal(t, 0.0, r.MeanExposure(0, 2))
}
