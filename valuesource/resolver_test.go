package valuesource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarede-dev/flatfiledecoder/config"
	"github.com/jarede-dev/flatfiledecoder/importctx"
)

func TestResolve_fixedWidthDefault(t *testing.T) {
	r := Resolve("ABCDEFGHIJ", 2, 4, config.FieldOptions{}, importctx.ImportContext{})
	assert.True(t, r.FixedWidth)
	assert.Equal(t, "CDEF", r.Value)
}

func TestResolve_constantWithTokenSubstitution(t *testing.T) {
	ctx := importctx.ImportContext{BatchID: "B42", SourceSystem: "MAINFRAME1"}
	opts := config.FieldOptions{"source": "constant", "constantValue": "${BatchId}-X-${SourceSystem}"}
	r := Resolve("irrelevant", 0, 0, opts, ctx)
	require.False(t, r.FixedWidth)
	assert.Equal(t, "B42-X-MAINFRAME1", r.Value)
}

func TestResolve_constantTokenCaseInsensitive(t *testing.T) {
	ctx := importctx.ImportContext{BatchID: "B1"}
	opts := config.FieldOptions{"source": "constant", "constantValue": "${BATCHID}"}
	r := Resolve("irrelevant", 0, 0, opts, ctx)
	assert.Equal(t, "B1", r.Value)
}

func TestResolve_now(t *testing.T) {
	at := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	ctx := importctx.ImportContext{ImportedAtUTC: at}
	opts := config.FieldOptions{"source": "now"}
	r := Resolve("irrelevant", 0, 0, opts, ctx)
	require.False(t, r.FixedWidth)
	assert.Equal(t, at, r.Value)
}

func TestResolve_nowLocal(t *testing.T) {
	at := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	ctx := importctx.ImportContext{ImportedAtUTC: at}
	opts := config.FieldOptions{"source": "now", "nowKind": "local"}
	r := Resolve("irrelevant", 0, 0, opts, ctx)
	got := r.Value.(time.Time)
	assert.True(t, got.Equal(at))
}
