// Package config holds the declarative layout/manifest types loaded from
// YAML and the structural validation performed once per job before any
// line is decoded.
package config

import "github.com/jf-tech/go-corelib/maths"

// variable/func naming guide:
//
// full name      | short name
// -----------------------------------
// declaration    | decl
// specification  | spec
// field          | fld
// occurs group   | group

// FieldType enumerates the field value-semantics a FieldSpec can request.
type FieldType string

const (
	FieldTypeDate    FieldType = "date"
	FieldTypeNumeric FieldType = "numeric"
	FieldTypeInteger FieldType = "integer"
	FieldTypeString  FieldType = "string"
	FieldTypeBoolean FieldType = "boolean"
)

// TerminationMode enumerates how an occurs group decides it has seen its
// last item.
type TerminationMode string

const (
	TerminationPadding TerminationMode = "padding"
	TerminationCount   TerminationMode = "count"
)

// FieldOptions is a free-form string->string options bag attached to a
// FieldSpec. Recognized keys are enumerated per field type; unrecognized
// keys are ignored.
type FieldOptions map[string]string

func (o FieldOptions) get(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	v, ok := o[key]
	return v, ok
}

// String returns the value for key, or def if absent.
func (o FieldOptions) String(key, def string) string {
	if v, ok := o.get(key); ok {
		return v
	}
	return def
}

// StringPtr returns a pointer to the value for key, or nil if absent. Used
// for options that should override a rules-level default only when present.
func (o FieldOptions) StringPtr(key string) *string {
	if v, ok := o.get(key); ok {
		return &v
	}
	return nil
}

// Bool returns the value for key parsed as a bool, or def if absent or
// unparseable.
func (o FieldOptions) Bool(key string, def bool) bool {
	v, ok := o.get(key)
	if !ok {
		return def
	}
	switch v {
	case "true", "True", "TRUE", "1":
		return true
	case "false", "False", "FALSE", "0":
		return false
	default:
		return def
	}
}

// StringSlice splits a pipe-separated option value. Returns nil if absent.
func (o FieldOptions) StringSlice(key string) []string {
	v, ok := o.get(key)
	if !ok || v == "" {
		return nil
	}
	return splitPipe(v)
}

func splitPipe(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '|' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// FieldSpec describes one fixed-width field: where it lives on the line (or
// item block), what value semantics to apply, and where the parsed value
// gets written.
type FieldSpec struct {
	Name    string       `yaml:"name"`
	Target  string       `yaml:"target"`
	Start   int          `yaml:"start"`
	Length  int          `yaml:"length"`
	Type    FieldType    `yaml:"type"`
	Options FieldOptions `yaml:"options"`
}

// StartIndex0 converts the 1-based column position to a 0-based index.
func (f FieldSpec) StartIndex0() int {
	return f.Start - 1
}

// SequenceSpec describes an auto-incrementing value written into each
// occurs-group child as it's emitted.
type SequenceSpec struct {
	Enabled bool   `yaml:"enabled"`
	Target  string `yaml:"target"`
	Start   int64  `yaml:"start"`
	Step    int64  `yaml:"step"`
}

// ValueAt returns the sequence value for the i-th emitted item (0-based).
func (s SequenceSpec) ValueAt(i int) int64 {
	return s.Start + int64(i)*s.Step
}

// OccursGroupSpec describes one COBOL OCCURS-style repeating subgroup
// within a single line.
type OccursGroupSpec struct {
	Name                   string          `yaml:"name"`
	ParentCollectionTarget string          `yaml:"parentCollectionTarget"`
	ChildEntity            string          `yaml:"childEntity"`
	Start                  int             `yaml:"start"`
	Length                 int             `yaml:"length"`
	ItemLength             int             `yaml:"itemLength"`
	MaxItems               int             `yaml:"maxItems"`
	TerminationMode        TerminationMode `yaml:"terminationMode"`
	CountFieldTarget       string          `yaml:"countFieldTarget"`
	Sequence               SequenceSpec    `yaml:"sequence"`
	ItemFields             []FieldSpec     `yaml:"itemFields"`

	fqdn string // assigned by Validate; used in error messages only.
}

// StartIndex0 converts the 1-based column position to a 0-based index.
func (g OccursGroupSpec) StartIndex0() int {
	return g.Start - 1
}

// UniqueName returns the fully-qualified name assigned during Validate.
func (g OccursGroupSpec) UniqueName() string {
	return g.fqdn
}

// EffectiveMaxItems returns MaxItems, treating -1 as the layout author's
// declaration of "no ceiling": a padding-terminated group that should keep
// scanning until its block runs out rather than stopping at a fixed count.
func (g OccursGroupSpec) EffectiveMaxItems() int {
	if g.MaxItems < 0 {
		return maths.MaxIntValue
	}
	return g.MaxItems
}

// DateRules carries the defaults applied to a date field unless overridden
// via FieldSpec.Options.
type DateRules struct {
	Formats              []string `yaml:"formats"`
	TreatAllZerosAsNull  bool     `yaml:"treatAllZerosAsNull"`
	TreatAllSpacesAsNull bool     `yaml:"treatAllSpacesAsNull"`
}

// AllZerosBehavior enumerates what a numeric/integer field does when its
// raw value is all zeros.
type AllZerosBehavior string

const (
	AllZerosNull AllZerosBehavior = "null"
	AllZerosZero AllZerosBehavior = "zero"
)

// NumericRules carries the defaults applied to a numeric field.
type NumericRules struct {
	AllowOverpunch              bool             `yaml:"allowOverpunch"`
	TreatAllSpacesAsNull        bool             `yaml:"treatAllSpacesAsNull"`
	AllZerosBehavior            AllZerosBehavior `yaml:"allZerosBehavior"`
	DefaultImpliedDecimalPlaces int              `yaml:"defaultImpliedDecimalPlaces"`
}

// IntegerRules carries the defaults applied to an integer field.
type IntegerRules struct {
	TreatAllSpacesAsNull bool             `yaml:"treatAllSpacesAsNull"`
	AllZerosBehavior     AllZerosBehavior `yaml:"allZerosBehavior"`
}

// TrimMode enumerates string trimming behaviors.
type TrimMode string

const (
	TrimLeft  TrimMode = "left"
	TrimRight TrimMode = "right"
	TrimBoth  TrimMode = "both"
	TrimNone  TrimMode = "none"
)

// AllSpacesBehaviorString enumerates what a string field does with an
// all-spaces raw value.
type AllSpacesBehaviorString string

const (
	AllSpacesStringNull  AllSpacesBehaviorString = "null"
	AllSpacesStringEmpty AllSpacesBehaviorString = "empty"
	AllSpacesStringKeep  AllSpacesBehaviorString = "keep"
)

// CaseNormalization enumerates string case-folding behaviors.
type CaseNormalization string

const (
	CaseUpper CaseNormalization = "upper"
	CaseLower CaseNormalization = "lower"
	CaseNone  CaseNormalization = "none"
)

// StringRules carries the defaults applied to a string field.
type StringRules struct {
	DefaultTrim       TrimMode                `yaml:"defaultTrim"`
	AllSpacesBehavior AllSpacesBehaviorString `yaml:"allSpacesBehavior"`
	CaseNormalization CaseNormalization       `yaml:"caseNormalization"`
	Replacements      map[string]string       `yaml:"replacements"`
}

// AllSpacesBehaviorBool enumerates what a boolean field does with an
// all-spaces raw value.
type AllSpacesBehaviorBool string

const (
	AllSpacesBoolNull  AllSpacesBehaviorBool = "null"
	AllSpacesBoolFalse AllSpacesBehaviorBool = "false"
	AllSpacesBoolTrue  AllSpacesBehaviorBool = "true"
)

// BooleanRules carries the defaults applied to a boolean field.
type BooleanRules struct {
	TrueValues        []string              `yaml:"trueValues"`
	FalseValues       []string              `yaml:"falseValues"`
	AnyNonBlankIsTrue bool                  `yaml:"anyNonBlankIsTrue"`
	AllSpacesBehavior AllSpacesBehaviorBool `yaml:"allSpacesBehavior"`
}

// ParsingRules bundles the per-type default rules applied when a field does
// not override via its own options.
type ParsingRules struct {
	Date    DateRules    `yaml:"date"`
	Numeric NumericRules `yaml:"numeric"`
	Integer IntegerRules `yaml:"integer"`
	String  StringRules  `yaml:"string"`
	Boolean BooleanRules `yaml:"boolean"`
}

// Layout describes one source file format: its header fields, its occurs
// groups, and the parsing rule defaults they draw from.
type Layout struct {
	HeaderFields []FieldSpec       `yaml:"headerFields"`
	OccursGroups []OccursGroupSpec `yaml:"occursGroups"`
	Rules        ParsingRules      `yaml:"rules"`
}
