package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestNewExperimentFromConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
distance1: 300
distance2: 500
background_rate: 0.5
channels:
  axes:
    - divisions: 4
      low: 0
      up: 100
`))
	require.Nil(t, err)
	assert.Equal(t, 0.5, cfg.BackgroundRate)

	e, err := NewExperimentFromConfig[float64](cfg, nil)
	require.Nil(t, err)
	assert.Equal(t, 300.0, e.Distance1)
	assert.Equal(t, 4, e.NumberOfChannels())
	assert.Equal(t, 1, e.ConfigurationSize())
}

func TestConfigValidate(t *testing.T) {
	_, err := ParseConfig([]byte(`
distance1: 0
distance2: -1
channels:
  axes: []
`))
	assert.ErrorIs(t, err, ErrInvalidDistance)
	assert.Len(t, multierr.Errors(err), 3)

	_, err = NewExperimentFromConfig[float64](nil, nil)
	assert.ErrorIs(t, err, ErrInvalidDistance)

	e, err := NewExperimentFromConfig[int](&Config{Distance1: 1, Distance2: 1}, nil)
	require.Nil(t, err)
	assert.Equal(t, 0, e.NumberOfChannels())
}
