package linear

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/bin"
	"github.com/sgostarter/libbinning/histogram"
	"github.com/sgostarter/libbinning/point"
	"github.com/sgostarter/libbinning/scalar"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type Row struct {
	Center []float64 `yaml:"center" json:"center"`
	Low    []float64 `yaml:"low" json:"low"`
	Up     []float64 `yaml:"up" json:"up"`
	Value  float64   `yaml:"value" json:"value"`
	Error  float64   `yaml:"error" json:"error"`
}

// Snapshot is a plain, exportable copy of a histogram.
type Snapshot struct {
	Dimension int   `yaml:"dimension" json:"dimension"`
	Rows      []Row `yaml:"rows" json:"rows"`
}

func valueAndError(v any) (value, err float64, e error) {
	switch s := v.(type) {
	case scalar.Scalar[float64]:
		return s.Value(), s.Error(), nil
	case scalar.Scalar[float32]:
		return float64(s.Value()), float64(s.Error()), nil
	default:
		value, e = cast.ToFloat64E(v)

		return
	}
}

// NewSnapshot copies h. Values that are neither numbers nor scalars are exported
// as zero; a nil histogram gives an empty snapshot.
func NewSnapshot[T point.Number, V any](h *histogram.Histogram[T, V], logger l.Wrapper) *Snapshot {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if h == nil {
		return &Snapshot{}
	}

	snapshot := &Snapshot{
		Dimension: h.Dimension(),
		Rows:      make([]Row, 0, h.NumberOfChannels()),
	}

	h.Range(func(b bin.Bin[T], v V) bool {
		row := Row{
			Center: make([]float64, 0, b.Dimension()),
			Low:    make([]float64, 0, b.Dimension()),
			Up:     make([]float64, 0, b.Dimension()),
		}

		for _, edge := range b.Edges() {
			row.Center = append(row.Center, cast.ToFloat64(edge.Center()))
			row.Low = append(row.Low, cast.ToFloat64(edge.Low))
			row.Up = append(row.Up, cast.ToFloat64(edge.Up))
		}

		var err error

		row.Value, row.Error, err = valueAndError(v)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("bin", b.String())).Warn(ErrUnsupported.Error())
		}

		snapshot.Rows = append(snapshot.Rows, row)

		return true
	})

	return snapshot
}

func (s *Snapshot) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func UnmarshalSnapshot(d []byte) (*Snapshot, error) {
	var s Snapshot

	if err := yaml.Unmarshal(d, &s); err != nil {
		return nil, err
	}

	return &s, nil
}
