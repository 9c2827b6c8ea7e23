// Package record implements the top-level record parser: the two entry
// points, ParseSingle and ParseGraph, that drive header fields and, in
// graph mode, occurs-group expansion. The occurs-group walk is a
// sequential scan over item offsets within one group's byte range of a
// single line, tracking how many occurrences have been produced against
// a termination condition — see DESIGN.md for how this shape traces back
// to a multi-line record walk.
package record

import (
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jarede-dev/flatfiledecoder/config"
	"github.com/jarede-dev/flatfiledecoder/entity"
	"github.com/jarede-dev/flatfiledecoder/field"
	"github.com/jarede-dev/flatfiledecoder/importctx"
	"github.com/jarede-dev/flatfiledecoder/valuesource"
)

// RecordParser decodes single lines into typed entity graphs against a
// shared entity.Registry. It holds no other mutable state: layouts,
// rules and the registry are read-only after job start, and the setter/
// adder caches they exercise live in package entity, so a RecordParser may
// be shared across any number of concurrent callers.
type RecordParser struct {
	Registry *entity.Registry
}

// NewRecordParser returns a RecordParser backed by registry.
func NewRecordParser(registry *entity.Registry) *RecordParser {
	return &RecordParser{Registry: registry}
}

// ParseSingle decodes line into a new entityType instance using only
// layout.HeaderFields; layout.OccursGroups is ignored.
func (p *RecordParser) ParseSingle(
	line string, entityType reflect.Type, layout *config.Layout, ctx importctx.ImportContext,
) (interface{}, error) {
	instance := reflect.New(entityType).Interface()
	if err := applyHeaderFields(instance, entityType, line, layout, ctx); err != nil {
		return nil, err
	}
	return instance, nil
}

// ParseGraph decodes line into a new parentType instance, applying header
// fields and then expanding every occurs group in declaration order.
func (p *RecordParser) ParseGraph(
	line string, parentType reflect.Type, layout *config.Layout, ctx importctx.ImportContext,
) (interface{}, error) {
	instance := reflect.New(parentType).Interface()
	if err := applyHeaderFields(instance, parentType, line, layout, ctx); err != nil {
		return nil, err
	}
	for _, group := range layout.OccursGroups {
		if err := p.expandGroup(instance, parentType, line, group, layout.Rules, ctx); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func applyHeaderFields(
	instance interface{}, t reflect.Type, line string, layout *config.Layout, ctx importctx.ImportContext,
) error {
	for _, spec := range layout.HeaderFields {
		if err := applyField(instance, t, line, spec, layout.Rules, ctx); err != nil {
			return err
		}
	}
	return nil
}

// applyField resolves a field's raw input (fixed-width slice / constant /
// now) off line, runs it through the type-dispatched parser when it came
// from a fixed-width slice, and writes the result via the property writer.
// It's shared between header fields and occurs-group item fields; the only
// difference between the two call sites is what "line" means (the full
// line, or one item block sliced out of a group).
func applyField(
	instance interface{}, t reflect.Type, line string, spec config.FieldSpec,
	rules config.ParsingRules, ctx importctx.ImportContext,
) error {
	resolved := valuesource.Resolve(line, spec.StartIndex0(), spec.Length, spec.Options, ctx)
	value := resolved.Value
	if resolved.FixedWidth {
		raw, _ := resolved.Value.(string)
		parser, err := field.NewParser(spec.Type)
		if err != nil {
			return err
		}
		v, err := parser.Parse(spec.Name, raw, spec.Options, rules)
		if err != nil {
			return err
		}
		value = v
	}
	setter, err := entity.GetSetter(t, spec.Target)
	if err != nil {
		return err
	}
	return setter(instance, value)
}

// expandGroup resolves the child type and collection adder, slices the
// group's absolute byte range out of line, determines how many items to
// parse, then iterates item offsets: scanning stops at itemsToParse, at an
// out-of-bounds offset, or (padding mode only) at the first all-spaces
// item block.
func (p *RecordParser) expandGroup(
	parent interface{}, parentType reflect.Type, line string, group config.OccursGroupSpec,
	rules config.ParsingRules, ctx importctx.ImportContext,
) error {
	childType, err := p.Registry.Resolve(group.ChildEntity)
	if err != nil {
		return err
	}
	adder, err := entity.GetAdder(parentType, group.ParentCollectionTarget, childType)
	if err != nil {
		return err
	}
	itemsToParse, err := p.itemsToParse(parent, parentType, group)
	if err != nil {
		return err
	}

	groupBlock := field.Slice(line, group.StartIndex0(), group.Length)
	bound := utf8.RuneCountInString(groupBlock) // field.Slice always returns exactly group.Length runes

	for i := 0; i < itemsToParse; i++ {
		offset := i * group.ItemLength
		if offset >= bound {
			break
		}
		itemRaw := field.Slice(groupBlock, offset, group.ItemLength)
		if group.TerminationMode == config.TerminationPadding && field.IsAllSpaces(itemRaw) {
			break
		}
		child, err := p.Registry.New(group.ChildEntity)
		if err != nil {
			return err
		}
		for _, fs := range group.ItemFields {
			if err := applyField(child, childType, itemRaw, fs, rules, ctx); err != nil {
				return err
			}
		}
		if group.Sequence.Enabled {
			seqSetter, err := entity.GetSetter(childType, group.Sequence.Target)
			if err != nil {
				return err
			}
			if err := seqSetter(child, group.Sequence.ValueAt(i)); err != nil {
				return err
			}
		}
		if err := adder(parent, child); err != nil {
			return err
		}
	}
	return nil
}

// itemsToParse determines the upper bound on items to scan: padding mode
// always offers up to maxItems; count mode reads the already-populated
// parent count field, coerces it, and clamps to [0, maxItems].
func (p *RecordParser) itemsToParse(
	parent interface{}, parentType reflect.Type, group config.OccursGroupSpec,
) (int, error) {
	switch group.TerminationMode {
	case config.TerminationPadding:
		return group.EffectiveMaxItems(), nil
	case config.TerminationCount:
		getter, err := entity.GetGetter(parentType, group.CountFieldTarget)
		if err != nil {
			return 0, err
		}
		v, err := getter(parent)
		if err != nil {
			return 0, err
		}
		count, err := coerceToInt(v, group.UniqueName())
		if err != nil {
			return 0, err
		}
		return clamp(count, 0, group.EffectiveMaxItems()), nil
	default:
		return 0, config.Errorf("occurs group '%s': unknown terminationMode '%s'", group.UniqueName(), group.TerminationMode)
	}
}

func coerceToInt(v interface{}, fqdn string) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, config.Errorf("occurs group '%s': count field value %q is not parsable as int", fqdn, n)
		}
		return i, nil
	default:
		return 0, config.Errorf("occurs group '%s': count field has unsupported type %T", fqdn, v)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
