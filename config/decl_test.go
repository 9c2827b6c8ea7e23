package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSpec_startIndex0(t *testing.T) {
	assert.Equal(t, 0, FieldSpec{Start: 1}.StartIndex0())
	assert.Equal(t, 9, FieldSpec{Start: 10}.StartIndex0())
}

func TestSequenceSpec_valueAt(t *testing.T) {
	s := SequenceSpec{Start: 100, Step: 5}
	assert.Equal(t, int64(100), s.ValueAt(0))
	assert.Equal(t, int64(105), s.ValueAt(1))
	assert.Equal(t, int64(110), s.ValueAt(2))
}

func TestOccursGroupSpec_effectiveMaxItems(t *testing.T) {
	assert.Equal(t, 4, OccursGroupSpec{MaxItems: 4}.EffectiveMaxItems())
	assert.Greater(t, OccursGroupSpec{MaxItems: -1}.EffectiveMaxItems(), 1<<30)
}

func TestFieldOptions_accessors(t *testing.T) {
	o := FieldOptions{"trim": "right", "anyNonBlankIsTrue": "true", "replacements": "a=b|c=d"}
	assert.Equal(t, "right", o.String("trim", "both"))
	assert.Equal(t, "both", o.String("missing", "both"))
	assert.True(t, o.Bool("anyNonBlankIsTrue", false))
	assert.False(t, o.Bool("missing", false))
	assert.Equal(t, []string{"a=b", "c=d"}, o.StringSlice("replacements"))
	assert.Nil(t, o.StringSlice("missing"))
	v := o.StringPtr("trim")
	assert.NotNil(t, v)
	assert.Equal(t, "right", *v)
	assert.Nil(t, o.StringPtr("missing"))
}
