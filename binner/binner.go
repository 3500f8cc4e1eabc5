package binner

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/bin"
	"github.com/sgostarter/libbinning/point"
)

// Binner generates the cartesian product of its axes as bins.
type Binner[T point.Number] struct {
	logger l.Wrapper

	axes []Axis[T]
}

func NewBinner[T point.Number](axes []Axis[T], logger l.Wrapper) *Binner[T] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Binner[T]{
		logger: logger.WithFields(l.StringField(l.ClsKey, "binner")),
		axes:   append([]Axis[T](nil), axes...),
	}
}

func (b *Binner[T]) Axes() []Axis[T] {
	return append([]Axis[T](nil), b.axes...)
}

func (b *Binner[T]) SetAxes(axes ...Axis[T]) {
	b.axes = append([]Axis[T](nil), axes...)
}

func (b *Binner[T]) AddAxis(axis Axis[T]) {
	b.axes = append(b.axes, axis)
}

// SetAxis replaces all the axes by a single one.
func (b *Binner[T]) SetAxis(divisions int, low, up T) {
	b.SetAxes(NewAxisRange(divisions, low, up))
}

// Size is the product of all the division counts.
func (b *Binner[T]) Size() int {
	if len(b.axes) == 0 {
		return 0
	}

	size := 1

	for _, axis := range b.axes {
		if axis.Divisions() <= 0 {
			return 0
		}

		size *= axis.Divisions()
	}

	return size
}

// Multipliers are the mixed-radix weights of the axes: m[k] is the product of
// the division counts of the axes before k.
func (b *Binner[T]) Multipliers() []int {
	multipliers := make([]int, len(b.axes))

	m := 1

	for k, axis := range b.axes {
		multipliers[k] = m
		m *= axis.Divisions()
	}

	return multipliers
}

// Index flattens per-axis division indices into the linear bin index.
func (b *Binner[T]) Index(indices []int) (int, error) {
	if len(indices) != len(b.axes) {
		return 0, ErrInvalidIndex
	}

	multipliers := b.Multipliers()

	linear := 0

	for k, idx := range indices {
		if idx < 0 || idx >= b.axes[k].Divisions() {
			return 0, ErrInvalidIndex
		}

		linear += idx * multipliers[k]
	}

	return linear, nil
}

// Indices is the inverse of Index.
func (b *Binner[T]) Indices(linear int) ([]int, error) {
	if linear < 0 || linear >= b.Size() {
		return nil, ErrInvalidIndex
	}

	indices := make([]int, len(b.axes))

	for k, axis := range b.axes {
		indices[k] = linear % axis.Divisions()
		linear /= axis.Divisions()
	}

	return indices, nil
}

// GenerateBinning returns every bin of the product space. Axis 0 varies fastest:
// the bin made of divisions idx[k] sits at index sum(idx[k] * m[k]).
func (b *Binner[T]) GenerateBinning() []bin.Bin[T] {
	size := b.Size()
	if size == 0 {
		if len(b.axes) > 0 {
			b.logger.WithFields(l.ErrorField(ErrInvalidAxis)).Warn("binning has an axis without divisions")
		}

		return nil
	}

	multipliers := b.Multipliers()

	spacings := make([]T, len(b.axes))
	for k, axis := range b.axes {
		spacings[k] = axis.Spacing()
	}

	bins := make([]bin.Bin[T], size)
	indices := make([]int, len(b.axes))

	for filled := 0; filled < size; filled++ {
		slot := 0

		edges := make([]bin.Interval[T], len(b.axes))

		for k, axis := range b.axes {
			slot += indices[k] * multipliers[k]
			edges[k] = bin.NewInterval(axis.Low+T(indices[k])*spacings[k], axis.Low+T(indices[k]+1)*spacings[k])
		}

		bins[slot] = bin.New(edges...)

		for k := range indices {
			indices[k]++
			if indices[k] < b.axes[k].Divisions() {
				break
			}

			indices[k] = 0
		}
	}

	b.logger.WithFields(l.IntField("bins", size), l.IntField("axes", len(b.axes))).Debug("binning generated")

	return bins
}
