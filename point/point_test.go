package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := New(1.0, 2.0, 3.0)
	assert.Equal(t, 3, p.Dimension())

	c, err := p.Coordinate(1)
	assert.Nil(t, err)
	assert.Equal(t, 2.0, c)

	_, err = p.Coordinate(3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	assert.ErrorIs(t, p.SetCoordinate(-1, 0), ErrOutOfRange)
	assert.Nil(t, p.SetCoordinate(0, 5))
	assert.Equal(t, []float64{5, 2, 3}, p.Coordinates())

	p.AddCoordinate(4)
	assert.Equal(t, 4, p.Dimension())
	assert.Equal(t, "(5, 2, 3, 4)", p.String())
	assert.Equal(t, "5;2;3;4", p.Key())
}

func TestPointCopies(t *testing.T) {
	coordinates := []int{1, 2}
	p := New(coordinates...)
	coordinates[0] = 9

	c, _ := p.Coordinate(0)
	assert.Equal(t, 1, c)

	q := p.Clone()
	_ = q.SetCoordinate(0, 7)
	assert.False(t, p.Equal(q))
	assert.True(t, p.Equal(New(1, 2)))
	assert.False(t, p.Equal(New(1)))
}

func TestWeigh(t *testing.T) {
	assert.Equal(t, 0, ZipLen(0, 3))
	assert.Equal(t, 2, ZipLen(5, 2))

	assert.Equal(t, 1*4+2*5, Weigh(New(1, 2), []int{4, 5, 6}))
	assert.Equal(t, 1.5, Weigh(New(0.5, 1, 1), []float64{3}))
}
