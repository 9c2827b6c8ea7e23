package entity

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLineItem struct {
	Code string
}

type testLineItems []testLineItem

func (l *testLineItems) Add(item testLineItem) {
	*l = append(*l, item)
}

type testBatch struct {
	Items testLineItems
}

func TestGetAdder_appendsChild(t *testing.T) {
	adder, err := GetAdder(reflect.TypeOf(testBatch{}), "Items", reflect.TypeOf(testLineItem{}))
	require.NoError(t, err)
	batch := &testBatch{}
	require.NoError(t, adder(batch, &testLineItem{Code: "A"}))
	require.NoError(t, adder(batch, &testLineItem{Code: "B"}))
	require.Len(t, batch.Items, 2)
	assert.Equal(t, "A", batch.Items[0].Code)
	assert.Equal(t, "B", batch.Items[1].Code)
}

func TestGetAdder_acceptsValueChildToo(t *testing.T) {
	adder, err := GetAdder(reflect.TypeOf(testBatch{}), "Items", reflect.TypeOf(testLineItem{}))
	require.NoError(t, err)
	batch := &testBatch{}
	require.NoError(t, adder(batch, testLineItem{Code: "C"}))
	require.Len(t, batch.Items, 1)
}

func TestGetAdder_noAddMethodIsConfigError(t *testing.T) {
	type noAddCollection []int
	type parent struct{ Nums noAddCollection }
	_, err := GetAdder(reflect.TypeOf(parent{}), "Nums", reflect.TypeOf(0))
	assert.Error(t, err)
}

func TestGetAdder_unknownPathIsConfigError(t *testing.T) {
	_, err := GetAdder(reflect.TypeOf(testBatch{}), "Nope", reflect.TypeOf(testLineItem{}))
	assert.Error(t, err)
}
