package dcql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualValue_NumericCrossType(t *testing.T) {
	assert.True(t, equalValue(float64(18), int64(18)))
	assert.True(t, equalValue(uint64(21), float64(21)))
	assert.False(t, equalValue(float64(18), float64(19)))
}

func TestEqualValue_StringAndBool(t *testing.T) {
	assert.True(t, equalValue("John", "John"))
	assert.False(t, equalValue("John", "Jane"))
	assert.True(t, equalValue(true, true))
	assert.False(t, equalValue(true, false))
}

func TestEqualValue_MixedKindsNeverEqual(t *testing.T) {
	assert.False(t, equalValue(float64(1), "1"))
	assert.False(t, equalValue(true, float64(1)))
}

func TestIsBool(t *testing.T) {
	b, ok := isBool(true)
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = isBool("true")
	assert.False(t, ok)

	_, ok = isBool(nil)
	assert.False(t, ok)
}
