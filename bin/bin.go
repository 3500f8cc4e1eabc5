package bin

import (
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/point"
	"golang.org/x/exp/slices"
)

var logger = l.NewNopLoggerWrapper()

// SetLogger sets the logger used to report degenerate edge operations.
func SetLogger(wrapper l.Wrapper) {
	if wrapper == nil {
		wrapper = l.NewNopLoggerWrapper()
	}

	logger = wrapper.WithFields(l.StringField(l.ClsKey, "bin"))
}

// Bin is a multi-dimensional cell: one Interval per dimension.
type Bin[T point.Number] struct {
	edges []Interval[T]
}

func New[T point.Number](edges ...Interval[T]) Bin[T] {
	return Bin[T]{
		edges: append([]Interval[T](nil), edges...),
	}
}

// NewRange builds a one dimensional bin.
func NewRange[T point.Number](low, up T) Bin[T] {
	return New(NewInterval(low, up))
}

func (b Bin[T]) Dimension() int {
	return len(b.edges)
}

// Edge returns the k-th interval, or the zero interval when k is out of range.
func (b Bin[T]) Edge(k int) Interval[T] {
	if k < 0 || k >= len(b.edges) {
		logger.WithFields(l.ErrorField(ErrOutOfRange), l.IntField("index", k),
			l.IntField("dimension", len(b.edges))).Warn("bin has no such edge, returning default edge")

		return Interval[T]{}
	}

	return b.edges[k]
}

func (b Bin[T]) Edges() []Interval[T] {
	return append([]Interval[T](nil), b.edges...)
}

func (b Bin[T]) Center() point.Point[T] {
	center := point.New[T]()

	for _, edge := range b.edges {
		center.AddCoordinate(edge.Center())
	}

	return center
}

// Contains checks every interval against the coordinate at the same position,
// stopping at the shorter of the two.
func (b Bin[T]) Contains(p point.Point[T]) bool {
	coordinates := p.Coordinates()

	n := point.ZipLen(len(b.edges), len(coordinates))
	for idx := 0; idx < n; idx++ {
		if !b.edges[idx].Contains(coordinates[idx]) {
			return false
		}
	}

	return true
}

func (b *Bin[T]) AddEdge(edge Interval[T]) {
	b.edges = append(b.edges, edge)
}

func (b *Bin[T]) EmplaceEdge(low, up T) {
	b.AddEdge(NewInterval(low, up))
}

// InsertEdge inserts the interval before position k; k == Dimension() appends.
func (b *Bin[T]) InsertEdge(k int, edge Interval[T]) {
	if k < 0 || k > len(b.edges) {
		logger.WithFields(l.ErrorField(ErrOutOfRange), l.IntField("index", k),
			l.IntField("dimension", len(b.edges))).Warn("cannot insert edge")

		return
	}

	b.edges = slices.Insert(b.edges, k, edge)
}

func (b *Bin[T]) SetEdge(k int, edge Interval[T]) {
	if k < 0 || k >= len(b.edges) {
		logger.WithFields(l.ErrorField(ErrOutOfRange), l.IntField("index", k),
			l.IntField("dimension", len(b.edges))).Warn("cannot set edge")

		return
	}

	b.edges[k] = edge
}

// Shift moves every interval by the coordinate at the same position.
func (b *Bin[T]) Shift(shift point.Point[T]) *Bin[T] {
	if shift.Dimension() != len(b.edges) {
		logger.WithFields(l.ErrorField(ErrDimension), l.StringField("shift", shift.String()),
			l.IntField("dimension", len(b.edges))).Warn("shifting bin with point of wrong dimension")
	}

	coordinates := shift.Coordinates()

	n := point.ZipLen(len(b.edges), len(coordinates))
	for idx := 0; idx < n; idx++ {
		b.edges[idx].Shift(coordinates[idx])
	}

	return b
}

// Compact returns a copy of the bin without the intervals at dimensions.
// Indices may come in any order; duplicates count once and out of range
// indices are skipped.
func (b Bin[T]) Compact(dimensions ...int) Bin[T] {
	dims := append([]int(nil), dimensions...)
	slices.Sort(dims)
	dims = slices.Compact(dims)

	edges := b.Edges()

	for idx := len(dims) - 1; idx >= 0; idx-- {
		k := dims[idx]
		if k < 0 || k >= len(edges) {
			logger.WithFields(l.ErrorField(ErrOutOfRange), l.IntField("index", k),
				l.IntField("dimension", len(b.edges))).Warn("cannot remove dimension")

			continue
		}

		edges = slices.Delete(edges, k, k+1)
	}

	return Bin[T]{edges: edges}
}

func (b Bin[T]) Clone() Bin[T] {
	return New(b.edges...)
}

// Less reports whether b sorts before other. Bins are compared by the centers of
// their first differing edges, so bins with equal center sequences are equivalent.
func (b Bin[T]) Less(other Bin[T]) bool {
	return Compare(b, other) < 0
}

func (b Bin[T]) String() string {
	ss := make([]string, 0, len(b.edges))
	for _, edge := range b.edges {
		ss = append(ss, edge.String())
	}

	return strings.Join(ss, " x ")
}

func Compare[T point.Number](a, b Bin[T]) int {
	n := point.ZipLen(len(a.edges), len(b.edges))

	for idx := 0; idx < n; idx++ {
		ca, cb := a.edges[idx].Center(), b.edges[idx].Center()

		if ca < cb {
			return -1
		}

		if ca > cb {
			return 1
		}
	}

	return 0
}

// Comparator adapts Compare to ordered containers keyed by Bin[T].
func Comparator[T point.Number]() utils.Comparator {
	return func(a, b interface{}) int {
		// nolint: forcetypeassert
		return Compare(a.(Bin[T]), b.(Bin[T]))
	}
}

func Shift[T point.Number](b Bin[T], shift point.Point[T]) Bin[T] {
	shifted := b.Clone()
	shifted.Shift(shift)

	return shifted
}

func Compact[T point.Number](b Bin[T], dimensions ...int) Bin[T] {
	return b.Compact(dimensions...)
}
