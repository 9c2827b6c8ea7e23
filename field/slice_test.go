package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_withinBounds(t *testing.T) {
	assert.Equal(t, "ABCDE", Slice("XXABCDEYY", 2, 5))
}

func TestSlice_pastEndOfLine(t *testing.T) {
	assert.Equal(t, "AB   ", Slice("XXAB", 2, 5))
}

func TestSlice_startPastEndOfLine(t *testing.T) {
	assert.Equal(t, "     ", Slice("XX", 10, 5))
}

func TestSlice_zeroLength(t *testing.T) {
	assert.Equal(t, "", Slice("ABCDEF", 0, 0))
}
