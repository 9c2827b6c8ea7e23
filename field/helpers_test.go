package field

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jarede-dev/flatfiledecoder/config"
)

func TestIsAllSpaces(t *testing.T) {
	assert.True(t, IsAllSpaces("    "))
	assert.True(t, IsAllSpaces(""))
	assert.False(t, IsAllSpaces(" x "))
}

func TestIsAllZeros(t *testing.T) {
	assert.True(t, IsAllZeros("0000"))
	assert.True(t, IsAllZeros("00.00"))
	assert.False(t, IsAllZeros(""))
	assert.False(t, IsAllZeros("0 00"))
	assert.False(t, IsAllZeros("00a0"))
}

func TestApplyTrim(t *testing.T) {
	assert.Equal(t, "x", ApplyTrim("  x  ", config.TrimBoth))
	assert.Equal(t, "x  ", ApplyTrim("  x  ", config.TrimLeft))
	assert.Equal(t, "  x", ApplyTrim("  x  ", config.TrimRight))
	assert.Equal(t, "  x  ", ApplyTrim("  x  ", config.TrimNone))
}

func TestApplyCase(t *testing.T) {
	assert.Equal(t, "X", ApplyCase("x", config.CaseUpper))
	assert.Equal(t, "x", ApplyCase("X", config.CaseLower))
	assert.Equal(t, "X", ApplyCase("X", config.CaseNone))
}
