package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarede-dev/flatfiledecoder/config"
)

func TestInteger_allSpacesNull(t *testing.T) {
	p := integerParser{}
	rules := config.ParsingRules{Integer: config.IntegerRules{TreatAllSpacesAsNull: true}}
	v, err := p.Parse("Count", "     ", config.FieldOptions{}, rules)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestInteger_basic(t *testing.T) {
	p := integerParser{}
	v, err := p.Parse("Count", "  042", config.FieldOptions{}, config.ParsingRules{})
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestInteger_negative(t *testing.T) {
	p := integerParser{}
	v, err := p.Parse("Count", "-7", config.FieldOptions{}, config.ParsingRules{})
	require.NoError(t, err)
	assert.Equal(t, int64(-7), v)
}

func TestInteger_tooWide(t *testing.T) {
	p := integerParser{}
	_, err := p.Parse("Count", "123456789012", config.FieldOptions{}, config.ParsingRules{})
	assert.Error(t, err)
}

func TestInteger_allZerosDefaultNull(t *testing.T) {
	p := integerParser{}
	v, err := p.Parse("Count", "0000", config.FieldOptions{}, config.ParsingRules{})
	require.NoError(t, err)
	assert.Nil(t, v)
}
