package binner

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libbinning/point"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type AxisConfig struct {
	Divisions int     `yaml:"divisions" json:"divisions"`
	Low       float64 `yaml:"low" json:"low"`
	Up        float64 `yaml:"up" json:"up"`
}

type Config struct {
	Axes []AxisConfig `yaml:"axes" json:"axes"`
}

func ParseConfig(d []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(d, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every invalid axis, not only the first one.
func (cfg *Config) Validate() (err error) {
	if len(cfg.Axes) == 0 {
		return fmt.Errorf("no axes: %w", ErrInvalidAxis)
	}

	for idx, axis := range cfg.Axes {
		if axis.Divisions < 1 {
			err = multierr.Append(err, fmt.Errorf("axis %d: %d divisions: %w", idx, axis.Divisions, ErrInvalidAxis))
		}

		if axis.Up < axis.Low {
			err = multierr.Append(err, fmt.Errorf("axis %d: upper edge %v below lower edge %v: %w",
				idx, axis.Up, axis.Low, ErrInvalidAxis))
		}
	}

	return
}

func NewBinnerFromConfig[T point.Number](cfg *Config, logger l.Wrapper) (*Binner[T], error) {
	if cfg == nil {
		return nil, fmt.Errorf("no config: %w", ErrInvalidAxis)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	axes := make([]Axis[T], 0, len(cfg.Axes))
	for _, axis := range cfg.Axes {
		axes = append(axes, NewAxisRange(axis.Divisions, T(axis.Low), T(axis.Up)))
	}

	return NewBinner(axes, logger), nil
}
