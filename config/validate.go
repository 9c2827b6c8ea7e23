package config

import (
	"fmt"

	"github.com/jf-tech/go-corelib/strs"
)

const fqdnDelim = "/"

// Error is a configuration error: a layout references an unknown entity,
// an unresolvable property path, a missing count field, or otherwise
// malformed declarative input. Configuration errors are fatal at job start
// and must never be silently swallowed.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Errorf builds a configuration error. Exported so other packages
// (entity, record) that raise the same fatal-at-first-use error kind
// (missing registry entry, unresolvable property path, missing append
// operation) don't need their own parallel error type.
func Errorf(format string, args ...interface{}) *Error {
	return configErrorf(format, args...)
}

// ErrUnknownFieldType builds the configuration error for an unrecognized
// FieldType tag. Shared between Validate (caught at layout-load time) and
// field.NewParser (caught on first use), since both paths must reject an
// unrecognized type outright rather than silently falling back to the
// String parser.
func ErrUnknownFieldType(t FieldType) *Error {
	return configErrorf("unknown field type '%s'", t)
}

// validateCtx walks a Layout once, assigning fqdns to occurs groups and
// checking every structural invariant a layout must satisfy before any
// line is parsed against it: a small stateful walker, not a pile of free
// functions, so cross-cutting state (seen header targets so far) has
// somewhere to live.
type validateCtx struct {
	headerTargets map[string]bool // header FieldSpec.Target seen so far
}

// Validate checks every structural invariant a Layout must satisfy. It
// must be called once per Layout before any line is parsed; a Layout that
// fails Validate must never be handed to record.ParseSingle/ParseGraph.
func Validate(l *Layout) error {
	ctx := &validateCtx{headerTargets: map[string]bool{}}
	for i, f := range l.HeaderFields {
		if err := ctx.validateFieldSpec(fmt.Sprintf("headerFields[%d]", i), f); err != nil {
			return err
		}
		ctx.headerTargets[f.Target] = true
	}
	for i := range l.OccursGroups {
		g := &l.OccursGroups[i]
		g.fqdn = strs.BuildFQDN2(fqdnDelim, "occursGroups", fmt.Sprintf("%d:%s", i, g.Name))
		if err := ctx.validateOccursGroup(g); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *validateCtx) validateFieldSpec(fqdn string, f FieldSpec) error {
	// start/length only address a byte range on the line for the default
	// fixedWidth source; constant- and now-sourced fields carry their
	// value a different way and need neither.
	if src := f.Options.String("source", "fixedWidth"); src != "constant" && src != "now" {
		if f.Start < 1 {
			return configErrorf("field '%s': start must be >= 1, got %d", fqdn, f.Start)
		}
		if f.Length < 0 {
			return configErrorf("field '%s': length must be >= 0, got %d", fqdn, f.Length)
		}
	}
	if strs.FirstNonBlank(f.Target, "") == "" {
		return configErrorf("field '%s': target must not be blank", fqdn)
	}
	switch f.Type {
	case FieldTypeDate, FieldTypeNumeric, FieldTypeInteger, FieldTypeString, FieldTypeBoolean:
	default:
		return configErrorf("field '%s': %s", fqdn, ErrUnknownFieldType(f.Type).Error())
	}
	return nil
}

func (ctx *validateCtx) validateOccursGroup(g *OccursGroupSpec) error {
	if g.Start < 1 {
		return configErrorf("occurs group '%s': start must be >= 1, got %d", g.fqdn, g.Start)
	}
	if g.Length <= 0 {
		return configErrorf("occurs group '%s': length must be > 0, got %d", g.fqdn, g.Length)
	}
	if g.ItemLength <= 0 {
		return configErrorf("occurs group '%s': itemLength must be > 0, got %d", g.fqdn, g.ItemLength)
	}
	if g.MaxItems == 0 || g.MaxItems < -1 {
		return configErrorf(
			"occurs group '%s': maxItems must be > 0, or -1 for unbounded, got %d", g.fqdn, g.MaxItems)
	}
	if len(g.ItemFields) == 0 {
		return configErrorf("occurs group '%s': itemFields must not be empty", g.fqdn)
	}
	if strs.FirstNonBlank(g.ParentCollectionTarget, "") == "" {
		return configErrorf("occurs group '%s': parentCollectionTarget must not be blank", g.fqdn)
	}
	if strs.FirstNonBlank(g.ChildEntity, "") == "" {
		return configErrorf("occurs group '%s': childEntity must not be blank", g.fqdn)
	}
	switch g.TerminationMode {
	case TerminationPadding:
	case TerminationCount:
		if strs.FirstNonBlank(g.CountFieldTarget, "") == "" {
			return configErrorf(
				"occurs group '%s': terminationMode 'count' requires countFieldTarget", g.fqdn)
		}
		if !ctx.headerTargets[g.CountFieldTarget] {
			return configErrorf(
				"occurs group '%s': countFieldTarget '%s' is not a headerFields target declared "+
					"before this group — the count must be populated by a header field before the group expands", g.fqdn, g.CountFieldTarget)
		}
	default:
		return configErrorf("occurs group '%s': unknown terminationMode '%s'", g.fqdn, g.TerminationMode)
	}
	for i, fd := range g.ItemFields {
		fqdn := strs.BuildFQDN2(fqdnDelim, g.fqdn, fmt.Sprintf("itemFields[%d]", i))
		if err := ctx.validateFieldSpec(fqdn, fd); err != nil {
			return err
		}
	}
	if g.Sequence.Enabled && strs.FirstNonBlank(g.Sequence.Target, "") == "" {
		return configErrorf("occurs group '%s': sequence.target must not be blank when sequence.enabled", g.fqdn)
	}
	return nil
}
