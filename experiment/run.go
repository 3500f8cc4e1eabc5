package experiment

import (
	"fmt"
	"math"

	"github.com/sgostarter/libbinning/scalar"
)

// Run aggregates the candidates counted over a data taking period together with
// the exposure of the two sources during it.
type Run struct {
	Candidates uint64  `yaml:"candidates" json:"candidates"`
	Duration   float64 `yaml:"duration" json:"duration"`
	Exposure1  float64 `yaml:"exposure1" json:"exposure1"`
	Exposure2  float64 `yaml:"exposure2" json:"exposure2"`
}

// NewRun fills the exposures as power * duration.
func NewRun(candidates uint64, duration, power1, power2 float64) Run {
	return Run{
		Candidates: candidates,
		Duration:   duration,
		Exposure1:  power1 * duration,
		Exposure2:  power2 * duration,
	}
}

func (r *Run) Add(other Run) *Run {
	r.Candidates += other.Candidates
	r.Duration += other.Duration
	r.Exposure1 += other.Exposure1
	r.Exposure2 += other.Exposure2

	return r
}

func (r Run) IsEmpty() bool {
	return r == Run{}
}

// MeanExposure weighs each exposure by the inverse square of its source distance.
func (r Run) MeanExposure(distance1, distance2 float64) float64 {
	if distance1 == 0 || distance2 == 0 {
		return 0
	}

	return (r.Exposure1*distance2*distance2 + r.Exposure2*distance1*distance1) / distance1 / distance2
}

func (r Run) correctedCandidates(backgroundRate float64) float64 {
	return float64(r.Candidates) - backgroundRate*r.Duration
}

// Rate is the background subtracted candidate count per unit of mean exposure,
// 0 without exposure.
func (r Run) Rate(distance1, distance2, backgroundRate float64) float64 {
	mean := r.MeanExposure(distance1, distance2)
	if mean <= 0 {
		return 0
	}

	return r.correctedCandidates(backgroundRate) / mean
}

// RateError is +Inf when there is no exposure or nothing left after the
// background subtraction.
func (r Run) RateError(distance1, distance2, backgroundRate float64) float64 {
	mean := r.MeanExposure(distance1, distance2)
	n := r.correctedCandidates(backgroundRate)

	if mean <= 0 || n <= 0 {
		return math.Inf(1)
	}

	return math.Sqrt(n) / mean
}

func (r Run) RateScalar(distance1, distance2, backgroundRate float64) scalar.Scalar[float64] {
	return scalar.NewWithError(r.Rate(distance1, distance2, backgroundRate),
		r.RateError(distance1, distance2, backgroundRate))
}

func (r Run) String() string {
	return fmt.Sprintf("candidates: %d, duration: %v, exposure1: %v, exposure2: %v",
		r.Candidates, r.Duration, r.Exposure1, r.Exposure2)
}
