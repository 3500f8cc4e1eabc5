package experiment

import (
	"fmt"

	"github.com/sgostarter/libbinning/binner"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Distance1      float64 `yaml:"distance1" json:"distance1"`
	Distance2      float64 `yaml:"distance2" json:"distance2"`
	BackgroundRate float64 `yaml:"background_rate" json:"background_rate"`

	// Channels, when present, are generated from the binner axes.
	Channels *binner.Config `yaml:"channels,omitempty" json:"channels,omitempty"`
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

func (cfg *Config) Validate() (err error) {
	if cfg.Distance1 <= 0 {
		err = multierr.Append(err, fmt.Errorf("distance1 %v: %w", cfg.Distance1, ErrInvalidDistance))
	}

	if cfg.Distance2 <= 0 {
		err = multierr.Append(err, fmt.Errorf("distance2 %v: %w", cfg.Distance2, ErrInvalidDistance))
	}

	if cfg.Channels != nil {
		err = multierr.Append(err, cfg.Channels.Validate())
	}

	return
}
