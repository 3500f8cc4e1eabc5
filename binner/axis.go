package binner

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/bin"
	"github.com/sgostarter/libbinning/point"
)

var logger = l.NewNopLoggerWrapper()

// SetLogger sets the logger used by axes, and by binners built without one.
func SetLogger(wrapper l.Wrapper) {
	if wrapper == nil {
		wrapper = l.NewNopLoggerWrapper()
	}

	logger = wrapper.WithFields(l.StringField(l.ClsKey, "binner"))
}

// Axis is an interval split into equal-width divisions.
type Axis[T point.Number] struct {
	bin.Interval[T]

	divisions int
}

func NewAxis[T point.Number](divisions int, interval bin.Interval[T]) Axis[T] {
	return Axis[T]{
		Interval:  interval,
		divisions: divisions,
	}
}

func NewAxisRange[T point.Number](divisions int, low, up T) Axis[T] {
	return NewAxis(divisions, bin.NewInterval(low, up))
}

func (a Axis[T]) Divisions() int {
	return a.divisions
}

// Spacing is width / divisions, or zero when the axis has no divisions.
func (a Axis[T]) Spacing() T {
	spacing, err := a.Divide(a.divisions)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("axis", a.Interval.String())).Warn("axis spacing")

		var zero T

		return zero
	}

	return spacing
}

// Edges returns the contiguous division intervals of the axis.
func (a Axis[T]) Edges() []bin.Interval[T] {
	if a.divisions <= 0 {
		return nil
	}

	spacing := a.Spacing()
	edges := make([]bin.Interval[T], 0, a.divisions)

	for k := 0; k < a.divisions; k++ {
		edges = append(edges, bin.NewInterval(a.Low+T(k)*spacing, a.Low+T(k+1)*spacing))
	}

	return edges
}
