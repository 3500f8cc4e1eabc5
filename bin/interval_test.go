package bin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	iv := NewInterval(2.0, 6.0)

	assert.True(t, iv.Contains(2))
	assert.True(t, iv.Contains(5.999))
	assert.False(t, iv.Contains(6))
	assert.False(t, iv.Contains(1))
	assert.Equal(t, 4.0, iv.Center())
	assert.Equal(t, 4.0, iv.Width())
	assert.Equal(t, "[2, 6]", iv.String())

	spacing, err := iv.Divide(4)
	assert.Nil(t, err)
	assert.Equal(t, 1.0, spacing)

	_, err = iv.Divide(0)
	assert.ErrorIs(t, err, ErrInvalidDivision)

	shifted := ShiftInterval(iv, 1)
	assert.Equal(t, NewInterval(3.0, 7.0), shifted)
	assert.Equal(t, NewInterval(2.0, 6.0), iv)

	iv.Shift(-2).SetEdges(iv.Low, 10)
	assert.Equal(t, NewInterval(0.0, 10.0), iv)

	assert.True(t, NewInterval(0, 2).Less(NewInterval(0, 4)))
	assert.False(t, NewInterval(0, 4).Less(NewInterval(1, 3)))
}
