package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayoutYAML = `
headerFields:
  - name: BatchId
    target: BatchID
    start: 1
    length: 8
    type: string
occursGroups:
  - name: Items
    parentCollectionTarget: Items
    childEntity: LineItem
    start: 9
    length: 10
    itemLength: 5
    maxItems: 2
    terminationMode: padding
    itemFields:
      - name: Code
        target: Code
        start: 1
        length: 5
        type: string
`

func TestLoadLayout_valid(t *testing.T) {
	l, err := LoadLayout(strings.NewReader(sampleLayoutYAML))
	require.NoError(t, err)
	require.Len(t, l.HeaderFields, 1)
	require.Len(t, l.OccursGroups, 1)
	assert.Equal(t, "BatchID", l.HeaderFields[0].Target)
}

func TestLoadLayout_invalidYAML(t *testing.T) {
	_, err := LoadLayout(strings.NewReader("not: [valid"))
	assert.Error(t, err)
}

func TestLoadLayout_failsValidation(t *testing.T) {
	_, err := LoadLayout(strings.NewReader("headerFields:\n  - name: X\n    target: X\n    start: 0\n    length: 1\n    type: string\n"))
	assert.Error(t, err)
}

const sampleManifestYAML = `
jobs:
  - name: batch-demo
    inputGlob: "*.txt"
    layoutPath: layout.yaml
    mode: graph
    targetEntity: BatchHeader
`

func TestLoadManifest_valid(t *testing.T) {
	jobs, err := LoadManifest(strings.NewReader(sampleManifestYAML))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "batch-demo", jobs[0].Name)
}

func TestLoadManifest_failsValidation(t *testing.T) {
	_, err := LoadManifest(strings.NewReader("jobs:\n  - name: \"\"\n"))
	assert.Error(t, err)
}
