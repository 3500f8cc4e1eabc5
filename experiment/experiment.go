package experiment

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/bin"
	"github.com/sgostarter/libbinning/binner"
	"github.com/sgostarter/libbinning/histogram"
	"github.com/sgostarter/libbinning/point"
	"github.com/sgostarter/libbinning/scalar"
)

// Record is one run taken in a given configuration. Exposures are the energies
// spent by each source over the run.
type Record[T point.Number] struct {
	Configuration point.Point[T]
	Candidates    uint64
	Duration      float64
	Exposure1     float64
	Exposure2     float64
}

func (r Record[T]) Run() Run {
	return Run{
		Candidates: r.Candidates,
		Duration:   r.Duration,
		Exposure1:  r.Exposure1,
		Exposure2:  r.Exposure2,
	}
}

// Experiment holds the runs taken in each configuration channel.
type Experiment[T point.Number] struct {
	logger l.Wrapper

	Distance1      float64
	Distance2      float64
	BackgroundRate float64

	runs *treemap.Map
}

func NewExperiment[T point.Number](distance1, distance2, backgroundRate float64, logger l.Wrapper) *Experiment[T] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Experiment[T]{
		logger:         logger.WithFields(l.StringField(l.ClsKey, "experiment")),
		Distance1:      distance1,
		Distance2:      distance2,
		BackgroundRate: backgroundRate,
		runs:           treemap.NewWith(bin.Comparator[T]()),
	}
}

func NewExperimentFromConfig[T point.Number](cfg *Config, logger l.Wrapper) (*Experiment[T], error) {
	if cfg == nil {
		return nil, fmt.Errorf("no config: %w", ErrInvalidDistance)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := NewExperiment[T](cfg.Distance1, cfg.Distance2, cfg.BackgroundRate, logger)

	if cfg.Channels != nil {
		b, err := binner.NewBinnerFromConfig[T](cfg.Channels, logger)
		if err != nil {
			return nil, err
		}

		e.AddChannels(b.GenerateBinning()...)
	}

	return e, nil
}

// ConfigurationSize is the dimension of the channels, 0 when there is none.
func (e *Experiment[T]) ConfigurationSize() int {
	if e.runs.Empty() {
		return 0
	}

	k, _ := e.runs.Min()

	// nolint: forcetypeassert
	return k.(bin.Bin[T]).Dimension()
}

func (e *Experiment[T]) NumberOfChannels() int {
	return e.runs.Size()
}

// AddChannel declares b with an empty run; an existing channel is kept and a bin
// of another dimension is ignored.
func (e *Experiment[T]) AddChannel(b bin.Bin[T]) {
	if !e.runs.Empty() && b.Dimension() != e.ConfigurationSize() {
		e.logger.WithFields(l.ErrorField(ErrChannelMismatch), l.StringField("bin", b.String()),
			l.IntField("dimension", e.ConfigurationSize())).Warn("channel not added")

		return
	}

	if _, found := e.runs.Get(b); found {
		return
	}

	e.runs.Put(b.Clone(), Run{})
}

func (e *Experiment[T]) AddChannels(bins ...bin.Bin[T]) {
	for _, b := range bins {
		e.AddChannel(b)
	}
}

func (e *Experiment[T]) EmplaceChannel(low, up T) {
	e.AddChannel(bin.NewRange(low, up))
}

func (e *Experiment[T]) find(configuration point.Point[T]) (key interface{}, run Run, ok bool) {
	it := e.runs.Iterator()
	for it.Next() {
		// nolint: forcetypeassert
		if it.Key().(bin.Bin[T]).Contains(configuration) {
			// nolint: forcetypeassert
			return it.Key(), it.Value().(Run), true
		}
	}

	return
}

// AddRun adds run to the first channel containing configuration.
func (e *Experiment[T]) AddRun(configuration point.Point[T], run Run) {
	key, cur, ok := e.find(configuration)
	if !ok {
		e.logger.WithFields(l.ErrorField(ErrNoMatchingChannel), l.StringField("configuration", configuration.String())).
			Warn("run not added")

		return
	}

	e.runs.Put(key, *cur.Add(run))
}

func (e *Experiment[T]) Ingest(records ...Record[T]) {
	for _, record := range records {
		e.AddRun(record.Configuration, record.Run())
	}

	e.logger.WithFields(l.IntField("records", len(records))).Debug("records ingested")
}

// RunAt returns the run of the first channel containing configuration, or the
// first run when none does.
func (e *Experiment[T]) RunAt(configuration point.Point[T]) Run {
	if _, run, ok := e.find(configuration); ok {
		return run
	}

	e.logger.WithFields(l.ErrorField(ErrNoMatchingChannel), l.StringField("configuration", configuration.String())).
		Error("returning first run")

	if e.runs.Empty() {
		return Run{}
	}

	_, v := e.runs.Min()

	// nolint: forcetypeassert
	return v.(Run)
}

// Slim drops the channels that never received a run.
func (e *Experiment[T]) Slim() *Experiment[T] {
	keys, values := e.runs.Keys(), e.runs.Values()

	for idx, k := range keys {
		// nolint: forcetypeassert
		if values[idx].(Run).IsEmpty() {
			e.runs.Remove(k)
		}
	}

	return e
}

func (e *Experiment[T]) Clear() {
	e.runs.Clear()
}

func (e *Experiment[T]) IntegrateChannel(dimension int) *Experiment[T] {
	return e.IntegrateChannels(dimension)
}

// IntegrateChannels drops the given configuration axes and sums the runs of the
// channels that become the same bin.
func (e *Experiment[T]) IntegrateChannels(dimensions ...int) *Experiment[T] {
	integrated := treemap.NewWith(bin.Comparator[T]())

	it := e.runs.Iterator()
	for it.Next() {
		// nolint: forcetypeassert
		b, run := bin.Compact(it.Key().(bin.Bin[T]), dimensions...), it.Value().(Run)

		if cur, found := integrated.Get(b); found {
			// nolint: forcetypeassert
			acc := cur.(Run)
			run = *acc.Add(run)
		}

		integrated.Put(b, run)
	}

	e.runs = integrated

	return e
}

// Range calls fn for every channel in order until fn returns false.
func (e *Experiment[T]) Range(fn func(b bin.Bin[T], run Run) bool) {
	it := e.runs.Iterator()
	for it.Next() {
		// nolint: forcetypeassert
		if !fn(it.Key().(bin.Bin[T]).Clone(), it.Value().(Run)) {
			return
		}
	}
}

// RateHistogram is the rate of every channel with its statistical error.
func (e *Experiment[T]) RateHistogram() *histogram.Histogram[T, scalar.Scalar[float64]] {
	h := histogram.New[T, scalar.Scalar[float64]](histogram.ScalarOps[float64]{}, e.logger)

	e.Range(func(b bin.Bin[T], run Run) bool {
		h.SetCount(b, run.RateScalar(e.Distance1, e.Distance2, e.BackgroundRate))

		return true
	})

	return h
}

func (e *Experiment[T]) PlainRateHistogram() *histogram.Histogram[T, float64] {
	h := histogram.New[T, float64](histogram.NumberOps[float64]{}, e.logger)

	e.Range(func(b bin.Bin[T], run Run) bool {
		h.SetCount(b, run.Rate(e.Distance1, e.Distance2, e.BackgroundRate))

		return true
	})

	return h
}

func (e *Experiment[T]) String() string {
	var ss strings.Builder

	e.Range(func(b bin.Bin[T], run Run) bool {
		ss.WriteString(fmt.Sprintf("%s      -->      %s\n", b.String(), run.RateScalar(e.Distance1, e.Distance2, e.BackgroundRate)))

		return true
	})

	return ss.String()
}
