package field

import (
	"strconv"

	"github.com/jarede-dev/flatfiledecoder/config"
)

type integerParser struct{}

// Parse implements the Integer decoder: same blank/zero handling as
// Numeric, then digits-only with no implied decimals and no overpunch,
// and a width check (1-11 digits) before strconv.ParseInt.
func (integerParser) Parse(
	fieldName, raw string, opts config.FieldOptions, rules config.ParsingRules) (interface{}, error) {
	ir := rules.Integer
	treatAllSpacesAsNull := opts.Bool("treatAllSpacesAsNull", ir.TreatAllSpacesAsNull)
	allZerosBehavior := config.AllZerosBehavior(
		opts.String("allZerosBehavior", string(ir.AllZerosBehavior)))

	if IsAllSpaces(raw) && treatAllSpacesAsNull {
		return nil, nil
	}
	if IsAllZeros(raw) {
		switch allZerosBehavior {
		case config.AllZerosZero:
			return int64(0), nil
		default:
			return nil, nil
		}
	}
	collapsed := CollapseSpaces(raw)
	if collapsed == "" {
		return nil, nil
	}
	sign := int64(1)
	if collapsed[0] == '+' || collapsed[0] == '-' {
		if collapsed[0] == '-' {
			sign = -1
		}
		collapsed = collapsed[1:]
	}
	digits := onlyDigits(collapsed)
	if digits == "" {
		return nil, nil
	}
	if len(digits) < 1 || len(digits) > 11 {
		return nil, parseErrorf(fieldName, raw, "integer width %d out of range [1,11]", len(digits))
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, parseErrorf(fieldName, raw, "not a valid integer: %s", err.Error())
	}
	return sign * v, nil
}
