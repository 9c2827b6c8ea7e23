package entity

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGetter_readsWrittenValue(t *testing.T) {
	setter, err := GetSetter(reflect.TypeOf(testPerson{}), "Age")
	require.NoError(t, err)
	getter, err := GetGetter(reflect.TypeOf(testPerson{}), "Age")
	require.NoError(t, err)

	p := &testPerson{}
	require.NoError(t, setter(p, 7))
	v, err := getter(p)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestGetGetter_nilIntermediateReturnsNilNotError(t *testing.T) {
	getter, err := GetGetter(reflect.TypeOf(testPerson{}), "Home.City")
	require.NoError(t, err)
	p := &testPerson{}
	v, err := getter(p)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGetGetter_requiresNonNilPointer(t *testing.T) {
	getter, err := GetGetter(reflect.TypeOf(testPerson{}), "Age")
	require.NoError(t, err)
	_, err = getter(testPerson{})
	assert.Error(t, err)
}

func TestGetGetter_unknownPathIsConfigError(t *testing.T) {
	_, err := GetGetter(reflect.TypeOf(testPerson{}), "Nope")
	assert.Error(t, err)
}
