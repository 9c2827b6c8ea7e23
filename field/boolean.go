package field

import (
	"strings"

	"github.com/jarede-dev/flatfiledecoder/config"
)

type booleanParser struct{}

// Parse implements the Boolean decoder: all-spaces handling, trim,
// anyNonBlankIsTrue short-circuit, then case-insensitive match against
// trueValues/falseValues.
func (booleanParser) Parse(
	fieldName, raw string, opts config.FieldOptions, rules config.ParsingRules) (interface{}, error) {
	br := rules.Boolean
	if IsAllSpaces(raw) {
		switch config.AllSpacesBehaviorBool(
			opts.String("allSpacesBehavior", string(br.AllSpacesBehavior))) {
		case config.AllSpacesBoolTrue:
			return true, nil
		case config.AllSpacesBoolFalse:
			return false, nil
		default:
			return nil, nil
		}
	}
	trimmed := strings.TrimSpace(raw)
	anyNonBlankIsTrue := opts.Bool("anyNonBlankIsTrue", br.AnyNonBlankIsTrue)
	if anyNonBlankIsTrue {
		return true, nil
	}
	trueValues := firstNonEmptySlice(opts.StringSlice("trueValues"), br.TrueValues)
	falseValues := firstNonEmptySlice(opts.StringSlice("falseValues"), br.FalseValues)
	for _, v := range trueValues {
		if strings.EqualFold(trimmed, v) {
			return true, nil
		}
	}
	for _, v := range falseValues {
		if strings.EqualFold(trimmed, v) {
			return false, nil
		}
	}
	return nil, parseErrorf(fieldName, raw, "value %q matches neither trueValues nor falseValues", trimmed)
}

func firstNonEmptySlice(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}
