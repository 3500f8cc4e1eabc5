package histogram

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/bin"
	"github.com/sgostarter/libbinning/point"
	"github.com/sgostarter/libbinning/scalar"
	"golang.org/x/exp/constraints"
)

// Histogram maps bins to values, ordered by bin.Compare. All its channels share
// one dimension. Channels may be declared before anything is counted; changing
// channels after counting has started is left to the caller.
type Histogram[T point.Number, V any] struct {
	logger l.Wrapper
	ops    Ops[V]

	counts *treemap.Map
	lookup *cache.Cache
}

func New[T point.Number, V any](ops Ops[V], logger l.Wrapper) *Histogram[T, V] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "histogram"))

	if ops == nil {
		logger.Fatal("no value ops")
	}

	return &Histogram[T, V]{
		logger: logger,
		ops:    ops,
		counts: treemap.NewWith(bin.Comparator[T]()),
		lookup: cache.New(cache.NoExpiration, 0),
	}
}

// NewFromBins declares one channel per bin; bins whose dimension differs from the
// first accepted one are dropped.
func NewFromBins[T point.Number, V any](ops Ops[V], bins []bin.Bin[T], logger l.Wrapper) *Histogram[T, V] {
	h := New[T, V](ops, logger)
	h.AddChannels(bins...)

	return h
}

func NewCounts[T, V point.Number](bins []bin.Bin[T], logger l.Wrapper) *Histogram[T, V] {
	return NewFromBins[T, V](NumberOps[V]{}, bins, logger)
}

func NewScalarCounts[T point.Number, V constraints.Float](bins []bin.Bin[T], logger l.Wrapper) *Histogram[T, scalar.Scalar[V]] {
	return NewFromBins[T, scalar.Scalar[V]](ScalarOps[V]{}, bins, logger)
}

func (h *Histogram[T, V]) Ops() Ops[V] {
	return h.ops
}

func (h *Histogram[T, V]) Dimension() int {
	if h.counts.Empty() {
		return 0
	}

	k, _ := h.counts.Min()

	// nolint: forcetypeassert
	return k.(bin.Bin[T]).Dimension()
}

func (h *Histogram[T, V]) NumberOfChannels() int {
	return h.counts.Size()
}

func (h *Histogram[T, V]) IsEmpty() bool {
	return h.counts.Empty()
}

func (h *Histogram[T, V]) accepts(b bin.Bin[T]) bool {
	return h.counts.Empty() || b.Dimension() == h.Dimension()
}

// stored returns the key already in the map that is equivalent to b.
func (h *Histogram[T, V]) stored(b bin.Bin[T]) (key bin.Bin[T], value V, ok bool) {
	k, v := h.counts.Floor(b)
	if k == nil {
		return
	}

	// nolint: forcetypeassert
	key = k.(bin.Bin[T])
	if bin.Compare(key, b) != 0 {
		return
	}

	// nolint: forcetypeassert
	return key, v.(V), true
}

func (h *Histogram[T, V]) channelsChanged() {
	h.lookup.Flush()
}

// AddChannel declares b with a zero value. A bin of another dimension is ignored,
// an existing channel keeps its value.
func (h *Histogram[T, V]) AddChannel(b bin.Bin[T]) {
	if !h.accepts(b) {
		h.logger.WithFields(l.ErrorField(ErrChannelMismatch), l.StringField("bin", b.String()),
			l.IntField("dimension", h.Dimension())).Warn("channel not added")

		return
	}

	if _, _, ok := h.stored(b); ok {
		return
	}

	h.counts.Put(b.Clone(), h.ops.Zero())
	h.channelsChanged()
}

func (h *Histogram[T, V]) AddChannels(bins ...bin.Bin[T]) {
	for _, b := range bins {
		h.AddChannel(b)
	}
}

// Find returns the first channel, in map order, that contains p.
func (h *Histogram[T, V]) Find(p point.Point[T]) (b bin.Bin[T], ok bool) {
	key := p.Key()

	if i, hit := h.lookup.Get(key); hit {
		// nolint: forcetypeassert
		return i.(bin.Bin[T]), true
	}

	it := h.counts.Iterator()
	for it.Next() {
		// nolint: forcetypeassert
		candidate := it.Key().(bin.Bin[T])
		if candidate.Contains(p) {
			h.lookup.Set(key, candidate, cache.NoExpiration)

			return candidate, true
		}
	}

	return
}

// AddCount adds one unit to the channel containing p.
func (h *Histogram[T, V]) AddCount(p point.Point[T]) {
	b, ok := h.Find(p)
	if !ok {
		h.logger.WithFields(l.ErrorField(ErrNoMatchingChannel), l.StringField("point", p.String())).
			Warn("count not added")

		return
	}

	_, v, _ := h.stored(b)
	h.counts.Put(b, h.ops.Add(v, h.ops.Unit()))
}

// SetCount sets the value of b, declaring the channel if needed.
func (h *Histogram[T, V]) SetCount(b bin.Bin[T], v V) {
	if !h.accepts(b) {
		h.logger.WithFields(l.ErrorField(ErrChannelMismatch), l.StringField("bin", b.String()),
			l.IntField("dimension", h.Dimension())).Warn("count not set")

		return
	}

	if key, _, ok := h.stored(b); ok {
		h.counts.Put(key, v)

		return
	}

	h.counts.Put(b.Clone(), v)
	h.channelsChanged()
}

// CountAt returns the value of the channel containing p. When none does, it
// falls back to the first channel's value.
func (h *Histogram[T, V]) CountAt(p point.Point[T]) V {
	if b, ok := h.Find(p); ok {
		_, v, _ := h.stored(b)

		return v
	}

	h.logger.WithFields(l.ErrorField(ErrNoMatchingChannel), l.StringField("point", p.String())).
		Warn("returning first content")

	if h.counts.Empty() {
		return h.ops.Zero()
	}

	_, v := h.counts.Min()

	// nolint: forcetypeassert
	return v.(V)
}

func (h *Histogram[T, V]) Count(b bin.Bin[T]) (v V, err error) {
	_, v, ok := h.stored(b)
	if !ok {
		err = ErrKeyNotFound
	}

	return
}

func (h *Histogram[T, V]) TotalCounts() V {
	total := h.ops.Zero()

	it := h.counts.Iterator()
	for it.Next() {
		// nolint: forcetypeassert
		total = h.ops.Add(total, it.Value().(V))
	}

	return total
}

// Add merges other channel by channel. Channels missing here are added, so
// histograms filled over disjoint bins can be summed.
func (h *Histogram[T, V]) Add(other *Histogram[T, V]) *Histogram[T, V] {
	if other == nil {
		return h
	}

	keys, values := other.counts.Keys(), other.counts.Values()

	for idx, k := range keys {
		// nolint: forcetypeassert
		b, v := k.(bin.Bin[T]), values[idx].(V)

		if key, cur, ok := h.stored(b); ok {
			h.counts.Put(key, h.ops.Add(cur, v))

			continue
		}

		if !h.accepts(b) {
			h.logger.WithFields(l.ErrorField(ErrChannelMismatch), l.StringField("bin", b.String()),
				l.IntField("dimension", h.Dimension())).Warn("channel not added")

			continue
		}

		h.counts.Put(b.Clone(), h.ops.Add(h.ops.Zero(), v))
		h.channelsChanged()
	}

	return h
}

// zip walks both histograms in map order up to the shorter one, replacing each
// value of h with fn's result when fn accepts it.
func (h *Histogram[T, V]) zip(other *Histogram[T, V], fn func(mine, theirs V) (V, bool)) *Histogram[T, V] {
	if other == nil {
		return h
	}

	keys, values := h.counts.Keys(), h.counts.Values()
	otherValues := other.counts.Values()

	if len(keys) != len(otherValues) {
		h.logger.WithFields(l.ErrorField(ErrChannelMismatch), l.IntField("channels", len(keys)),
			l.IntField("otherChannels", len(otherValues))).Debug("channel counts differ, extra channels ignored")
	}

	n := point.ZipLen(len(keys), len(otherValues))
	for idx := 0; idx < n; idx++ {
		// nolint: forcetypeassert
		if v, ok := fn(values[idx].(V), otherValues[idx].(V)); ok {
			h.counts.Put(keys[idx], v)
		}
	}

	return h
}

func (h *Histogram[T, V]) Sub(other *Histogram[T, V]) *Histogram[T, V] {
	return h.zip(other, func(mine, theirs V) (V, bool) {
		return h.ops.Sub(mine, theirs), true
	})
}

func (h *Histogram[T, V]) Mul(other *Histogram[T, V]) *Histogram[T, V] {
	return h.zip(other, func(mine, theirs V) (V, bool) {
		return h.ops.Mul(mine, theirs), true
	})
}

// Div leaves a channel unchanged where the divisor is zero.
func (h *Histogram[T, V]) Div(other *Histogram[T, V]) *Histogram[T, V] {
	return h.zip(other, func(mine, theirs V) (V, bool) {
		if h.ops.IsZero(theirs) {
			h.logger.WithFields(l.ErrorField(ErrDivisionByZero)).Warn("histogram division by zero not allowed")

			return mine, false
		}

		return h.ops.Div(mine, theirs), true
	})
}

func (h *Histogram[T, V]) apply(fn func(v V) V) {
	keys, values := h.counts.Keys(), h.counts.Values()

	for idx, k := range keys {
		// nolint: forcetypeassert
		h.counts.Put(k, fn(values[idx].(V)))
	}
}

func (h *Histogram[T, V]) AddFactor(factor V) *Histogram[T, V] {
	h.apply(func(v V) V {
		return h.ops.Add(v, factor)
	})

	return h
}

func (h *Histogram[T, V]) SubFactor(factor V) *Histogram[T, V] {
	h.apply(func(v V) V {
		return h.ops.Sub(v, factor)
	})

	return h
}

func (h *Histogram[T, V]) MulFactor(factor V) *Histogram[T, V] {
	h.apply(func(v V) V {
		return h.ops.Mul(v, factor)
	})

	return h
}

func (h *Histogram[T, V]) DivFactor(factor V) *Histogram[T, V] {
	if h.ops.IsZero(factor) {
		h.logger.WithFields(l.ErrorField(ErrDivisionByZero)).Warn("histogram division by zero not allowed")

		return h
	}

	h.apply(func(v V) V {
		return h.ops.Div(v, factor)
	})

	return h
}

// central drops the error of a total so the fluctuation it shares with every
// channel is not counted twice.
func (h *Histogram[T, V]) central(v V) V {
	if u, ok := h.ops.(SupportsUncertainty[V]); ok {
		return u.Central(v)
	}

	return v
}

// Normalise divides every value by the total. An empty total leaves h unchanged.
func (h *Histogram[T, V]) Normalise() *Histogram[T, V] {
	total := h.central(h.TotalCounts())
	if h.ops.IsZero(total) {
		h.logger.WithFields(l.ErrorField(ErrDivisionByZero)).Warn("histogram has no counts: already normalised")

		return h
	}

	return h.DivFactor(total)
}

// ScaleCountsTo rescales the values so that they sum to norm.
func (h *Histogram[T, V]) ScaleCountsTo(norm V) *Histogram[T, V] {
	total := h.central(h.TotalCounts())
	if h.ops.IsZero(total) {
		h.logger.WithFields(l.ErrorField(ErrDivisionByZero)).Warn("histogram has no counts: cannot scale")

		return h
	}

	return h.MulFactor(h.ops.Div(norm, total))
}

// rebuild moves every entry to the key returned by fn, summing values whose new
// keys collide. Keys of the tree cannot change in place.
func (h *Histogram[T, V]) rebuild(fn func(b bin.Bin[T]) bin.Bin[T], sum bool) {
	rebuilt := treemap.NewWith(bin.Comparator[T]())

	it := h.counts.Iterator()
	for it.Next() {
		// nolint: forcetypeassert
		b, v := fn(it.Key().(bin.Bin[T])), it.Value().(V)

		if !sum {
			rebuilt.Put(b, v)

			continue
		}

		cur := h.ops.Zero()

		if k, found := rebuilt.Floor(b); k != nil {
			// nolint: forcetypeassert
			if key := k.(bin.Bin[T]); bin.Compare(key, b) == 0 {
				b = key
				// nolint: forcetypeassert
				cur = found.(V)
			}
		}

		rebuilt.Put(b, h.ops.Add(cur, v))
	}

	h.counts = rebuilt
	h.channelsChanged()
}

func (h *Histogram[T, V]) ShiftChannels(shift point.Point[T]) *Histogram[T, V] {
	h.rebuild(func(b bin.Bin[T]) bin.Bin[T] {
		return bin.Shift(b, shift)
	}, false)

	return h
}

func (h *Histogram[T, V]) IntegrateDimension(dimension int) *Histogram[T, V] {
	return h.IntegrateDimensions(dimension)
}

// IntegrateDimensions drops the given axes, summing the channels that become
// the same bin.
func (h *Histogram[T, V]) IntegrateDimensions(dimensions ...int) *Histogram[T, V] {
	h.rebuild(func(b bin.Bin[T]) bin.Bin[T] {
		return b.Compact(dimensions...)
	}, true)

	return h
}

// Range calls fn for every channel in map order until fn returns false.
func (h *Histogram[T, V]) Range(fn func(b bin.Bin[T], v V) bool) {
	it := h.counts.Iterator()
	for it.Next() {
		// nolint: forcetypeassert
		if !fn(it.Key().(bin.Bin[T]).Clone(), it.Value().(V)) {
			return
		}
	}
}

func (h *Histogram[T, V]) Bins() []bin.Bin[T] {
	bins := make([]bin.Bin[T], 0, h.counts.Size())

	h.Range(func(b bin.Bin[T], _ V) bool {
		bins = append(bins, b)

		return true
	})

	return bins
}

func (h *Histogram[T, V]) Values() []V {
	values := make([]V, 0, h.counts.Size())

	h.Range(func(_ bin.Bin[T], v V) bool {
		values = append(values, v)

		return true
	})

	return values
}

func (h *Histogram[T, V]) Clear() {
	h.counts.Clear()
	h.channelsChanged()
}

func (h *Histogram[T, V]) Clone() *Histogram[T, V] {
	c := &Histogram[T, V]{
		logger: h.logger,
		ops:    h.ops,
		counts: treemap.NewWith(bin.Comparator[T]()),
		lookup: cache.New(cache.NoExpiration, 0),
	}

	h.Range(func(b bin.Bin[T], v V) bool {
		c.counts.Put(b, v)

		return true
	})

	return c
}

func (h *Histogram[T, V]) String() string {
	var ss strings.Builder

	h.Range(func(b bin.Bin[T], v V) bool {
		ss.WriteString(fmt.Sprintf("%s      -->      %v\n", b.String(), v))

		return true
	})

	return ss.String()
}
