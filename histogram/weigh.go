package histogram

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/point"
	"github.com/spf13/cast"
)

// Weigh returns sum(w_i * h_i). Weights and histograms are paired up to the
// shorter of the two; the inputs are not modified.
func Weigh[T point.Number, V any](ops Ops[V], weights point.Point[T], histograms []*Histogram[T, V],
	logger l.Wrapper) *Histogram[T, V] {
	result := New[T, V](ops, logger)

	coordinates := weights.Coordinates()

	n := point.ZipLen(len(coordinates), len(histograms))
	for idx := 0; idx < n; idx++ {
		if histograms[idx] == nil {
			continue
		}

		weight := ops.FromFloat64(cast.ToFloat64(coordinates[idx]))

		result.Add(histograms[idx].Clone().MulFactor(weight))
	}

	return result
}
