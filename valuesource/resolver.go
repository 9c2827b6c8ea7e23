// Package valuesource implements the field value-source resolver: it
// produces the raw input for a field, either a fixed-width slice of the
// line, a constant with token substitution, or the job's shared import
// timestamp.
package valuesource

import (
	"strings"

	"github.com/jarede-dev/flatfiledecoder/config"
	"github.com/jarede-dev/flatfiledecoder/field"
	"github.com/jarede-dev/flatfiledecoder/importctx"
)

const (
	SourceFixedWidth = "fixedWidth"
	SourceConstant   = "constant"
	SourceNow        = "now"
)

// Resolved is the value-source resolver's output: the raw value, and
// whether it came from a fixed-width slice (in which case the caller must
// still run it through the type-dispatched field parser; any other source
// is used verbatim).
type Resolved struct {
	Value      interface{}
	FixedWidth bool
}

// Resolve produces the raw input for one field. line is the byte range to
// slice from for fixed-width fields; for item-block-relative fields,
// callers pass the item block as line and a StartIndex0 relative to it.
func Resolve(line string, startIndex0, length int, opts config.FieldOptions, ctx importctx.ImportContext) Resolved {
	switch opts.String("source", SourceFixedWidth) {
	case SourceConstant:
		return Resolved{Value: substituteTokens(opts.String("constantValue", ""), ctx), FixedWidth: false}
	case SourceNow:
		t := ctx.ImportedAtUTC
		if opts.String("nowKind", "") == "local" {
			t = t.Local()
		}
		return Resolved{Value: t, FixedWidth: false}
	default:
		return Resolved{Value: field.Slice(line, startIndex0, length), FixedWidth: true}
	}
}

// substituteTokens replaces ${BatchId} and ${SourceSystem} (case-insensitive
// token match) with the job's context values.
func substituteTokens(s string, ctx importctx.ImportContext) string {
	s = replaceFold(s, "${batchid}", ctx.BatchID)
	s = replaceFold(s, "${sourcesystem}", ctx.SourceSystem)
	return s
}

// replaceFold replaces every case-insensitive occurrence of token in s with
// value. Plain strings.ToLower/Index-driven scan, not regex: the token
// set is fixed and small, so a compiled pattern buys nothing.
func replaceFold(s, token, value string) string {
	lower := strings.ToLower(s)
	lowerToken := strings.ToLower(token)
	var b strings.Builder
	for {
		idx := strings.Index(lower, lowerToken)
		if idx < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:idx])
		b.WriteString(value)
		s = s[idx+len(token):]
		lower = lower[idx+len(token):]
	}
	return b.String()
}
