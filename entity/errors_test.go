package entity

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoercionError_message(t *testing.T) {
	err := &CoercionError{Path: "Home.City", Value: 42}
	assert.Contains(t, err.Error(), "Home.City")
	assert.Contains(t, err.Error(), "42")
}

func TestSetter_coercionErrorOnIncompatibleType(t *testing.T) {
	type target struct {
		Count int
	}
	setter, err := GetSetter(reflect.TypeOf(target{}), "Count")
	assert.NoError(t, err)
	p := &target{}
	err = setter(p, struct{ X int }{X: 1})
	assert.Error(t, err)
	var coerceErr *CoercionError
	assert.ErrorAs(t, err, &coerceErr)
}
