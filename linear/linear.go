package linear

import (
	"fmt"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/bin"
	"github.com/sgostarter/libbinning/histogram"
	"github.com/sgostarter/libbinning/point"
	"golang.org/x/exp/slices"
)

// Linearised flattens a histogram: one sorted list of distinct edges per axis
// and the values in channel order.
type Linearised[T point.Number, V any] struct {
	logger l.Wrapper

	axes   [][]T
	values []V
}

func Linearise[T point.Number, V any](h *histogram.Histogram[T, V], logger l.Wrapper) *Linearised[T, V] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	lh := &Linearised[T, V]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "linearised")),
	}

	if h != nil {
		lh.prepare(h)
	}

	return lh
}

func (lh *Linearised[T, V]) prepare(h *histogram.Histogram[T, V]) {
	lh.axes = make([][]T, h.Dimension())
	lh.values = make([]V, 0, h.NumberOfChannels())

	h.Range(func(b bin.Bin[T], v V) bool {
		for k := range lh.axes {
			edge := b.Edge(k)
			lh.axes[k] = append(lh.axes[k], edge.Low, edge.Up)
		}

		lh.values = append(lh.values, v)

		return true
	})

	for k := range lh.axes {
		slices.Sort(lh.axes[k])
		lh.axes[k] = slices.Compact(lh.axes[k])
	}
}

// Axes returns the edges of every axis; the slices must not be modified.
func (lh *Linearised[T, V]) Axes() [][]T {
	return lh.axes
}

func (lh *Linearised[T, V]) Axis(k int) []T {
	if k < 0 || k >= len(lh.axes) {
		lh.logger.WithFields(l.ErrorField(ErrOutOfRange), l.IntField("axis", k)).Warn("no such axis")

		return nil
	}

	return lh.axes[k]
}

func (lh *Linearised[T, V]) NumberOfAxes() int {
	return len(lh.axes)
}

// NumberOfBins is the number of intervals between the edges of axis k.
func (lh *Linearised[T, V]) NumberOfBins(k int) int {
	if k < 0 || k >= len(lh.axes) || len(lh.axes[k]) == 0 {
		return 0
	}

	return len(lh.axes[k]) - 1
}

func (lh *Linearised[T, V]) Values() []V {
	return lh.values
}

// Value returns the zero value when k is out of range.
func (lh *Linearised[T, V]) Value(k int) (v V) {
	if k < 0 || k >= len(lh.values) {
		lh.logger.WithFields(l.ErrorField(ErrOutOfRange), l.IntField("value", k)).Warn("returning zero value")

		return
	}

	return lh.values[k]
}

func (lh *Linearised[T, V]) NumberOfValues() int {
	return len(lh.values)
}

func (lh *Linearised[T, V]) String() string {
	var ss strings.Builder

	for k, axis := range lh.axes {
		ss.WriteString(fmt.Sprintf("axis %d: %v\n", k, axis))
	}

	for k, v := range lh.values {
		ss.WriteString(fmt.Sprintf("%d      -->      %v\n", k, v))
	}

	return ss.String()
}
