package field

import (
	"sort"
	"strings"

	"github.com/jarede-dev/flatfiledecoder/config"
)

type stringParser struct{}

// Parse implements the String decoder: all-spaces null/empty/keep, then
// trim, then case, then every literal replacement (field-options-
// overrides-rules order, applied ordinally).
func (stringParser) Parse(
	fieldName, raw string, opts config.FieldOptions, rules config.ParsingRules) (interface{}, error) {
	sr := rules.String
	if IsAllSpaces(raw) {
		switch config.AllSpacesBehaviorString(
			opts.String("allSpacesBehavior", string(sr.AllSpacesBehavior))) {
		case config.AllSpacesStringEmpty:
			return "", nil
		case config.AllSpacesStringKeep:
			return raw, nil
		default:
			return nil, nil
		}
	}
	trimMode := config.TrimMode(opts.String("trim", string(sr.DefaultTrim)))
	out := ApplyTrim(raw, trimMode)
	caseMode := config.CaseNormalization(opts.String("case", string(sr.CaseNormalization)))
	out = ApplyCase(out, caseMode)

	replacements := mergeReplacements(sr.Replacements, opts.StringSlice("replacements"))
	for _, kv := range replacements {
		out = strings.ReplaceAll(out, kv[0], kv[1])
	}
	return out, nil
}

// mergeReplacements merges field-option overrides ("k=v" pairs) over the
// rule-level replacement map: rule keys come first in sorted order, a field
// pair whose key is already a rule key replaces that entry's value in
// place, and field pairs with new keys are appended in their given order.
func mergeReplacements(ruleMap map[string]string, fieldPairs []string) [][2]string {
	var out [][2]string
	keys := make([]string, 0, len(ruleMap))
	for k := range ruleMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, [2]string{k, ruleMap[k]})
	}
	for _, pair := range fieldPairs {
		idx := strings.Index(pair, "=")
		if idx < 0 {
			continue
		}
		k, v := pair[:idx], pair[idx+1:]
		if _, ok := ruleMap[k]; ok {
			for i := range out {
				if out[i][0] == k {
					out[i][1] = v
				}
			}
			continue
		}
		out = append(out, [2]string{k, v})
	}
	return out
}
