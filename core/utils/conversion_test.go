package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	assert.Equal(t, int64(42), ToInt64(42))
	assert.Equal(t, int64(42), ToInt64(int64(42)))
	assert.Equal(t, int64(42), ToInt64(float64(42.7)))
	assert.Equal(t, int64(42), ToInt64("42"))
	assert.Equal(t, int64(0), ToInt64("not a number"))
	assert.Equal(t, int64(0), ToInt64(nil))
}

func TestToFloat64(t *testing.T) {
	assert.InDelta(t, 4.2, ToFloat64(4.2), 1e-9)
	assert.InDelta(t, 42, ToFloat64(42), 1e-9)
	assert.InDelta(t, 4.2, ToFloat64("4.2"), 1e-9)
	assert.Zero(t, ToFloat64(nil))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "", ToString(nil))
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(1))
	assert.True(t, ToBool("true"))
	assert.True(t, ToBool("1"))
	assert.False(t, ToBool("no"))
	assert.False(t, ToBool(0))
	assert.False(t, ToBool(nil))
}
