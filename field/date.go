package field

import (
	"strings"
	"time"

	"github.com/jinzhu/now"

	"github.com/jarede-dev/flatfiledecoder/config"
)

type dateParser struct{}

// copybookFormatToGoLayout translates the pipe-separated copybook token
// vocabulary (yyyy, MM, dd, HH, mm, ss) into Go's reference-time layout.
// Tokens are matched longest-first so "yyyy" isn't mistaken for four "y"s.
var dateTokenReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"MM", "01",
	"dd", "02",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

func copybookFormatToGoLayout(f string) string {
	return dateTokenReplacer.Replace(f)
}

func (dateParser) tryParseExact(raw string, formats []string) (time.Time, bool) {
	for _, f := range formats {
		if t, err := time.Parse(copybookFormatToGoLayout(f), raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Parse implements the Date decoder: all-spaces / all-zeros null
// handling, then an exact try against the configured format list, then a
// permissive fallback parse via jinzhu/now rather than a hard failure —
// see DESIGN.md for why the fallback is kept rather than tightened away.
func (p dateParser) Parse(
	fieldName, raw string, opts config.FieldOptions, rules config.ParsingRules) (interface{}, error) {
	dr := rules.Date
	if IsAllSpaces(raw) && dr.TreatAllSpacesAsNull {
		return nil, nil
	}
	collapsed := CollapseSpaces(raw)
	if collapsed == "" {
		return nil, nil
	}
	if IsAllZeros(collapsed) && dr.TreatAllZerosAsNull {
		return nil, nil
	}
	formats := dr.Formats
	if override := opts.StringSlice("formats"); override != nil {
		formats = override
	}
	if t, ok := p.tryParseExact(collapsed, formats); ok {
		return t, nil
	}
	t, err := now.New(time.Now().UTC()).Parse(collapsed)
	if err != nil {
		return nil, parseErrorf(fieldName, raw, "not a recognized date: %s", err.Error())
	}
	return t.UTC(), nil
}
