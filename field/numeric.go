package field

import (
	"strconv"
	"strings"

	"github.com/woodsbury/decimal128"

	"github.com/jarede-dev/flatfiledecoder/config"
)

type numericParser struct{}

// Parse implements the Numeric decoder: blank/zero handling, optional
// overpunch sign decoding, then implied-decimal-place insertion. The
// parsed value is a decimal128.Decimal, never a float64, so the
// implied-decimal insertion is exact: digits are string-spliced with a
// '.' at the right offset, then handed to decimal128.Parse, rather than
// computed via floating point division.
func (numericParser) Parse(
	fieldName, raw string, opts config.FieldOptions, rules config.ParsingRules) (interface{}, error) {
	nr := rules.Numeric
	allowOverpunch := opts.Bool("allowOverpunch", nr.AllowOverpunch)
	treatAllSpacesAsNull := opts.Bool("treatAllSpacesAsNull", nr.TreatAllSpacesAsNull)
	allZerosBehavior := config.AllZerosBehavior(
		opts.String("allZerosBehavior", string(nr.AllZerosBehavior)))
	impliedPlaces := nr.DefaultImpliedDecimalPlaces
	if v := opts.String("impliedDecimalPlaces", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			impliedPlaces = n
		}
	}

	// 1. all-spaces
	if IsAllSpaces(raw) && treatAllSpacesAsNull {
		return nil, nil
	}
	// 2. all-zeros
	if IsAllZeros(raw) {
		switch allZerosBehavior {
		case config.AllZerosZero:
			return decimal128.Decimal{}, nil
		default:
			return nil, nil
		}
	}
	// 3. collapse spaces
	collapsed := CollapseSpaces(raw)
	if collapsed == "" {
		return nil, nil
	}
	sign := 1
	// 4. explicit leading sign
	if collapsed[0] == '+' || collapsed[0] == '-' {
		if collapsed[0] == '-' {
			sign = -1
		}
		collapsed = collapsed[1:]
	}
	// 5. overpunch on the trailing character
	if allowOverpunch && len(collapsed) > 0 {
		last := collapsed[len(collapsed)-1]
		if digit, opSign, ok := DecodeOverpunch(last); ok {
			collapsed = collapsed[:len(collapsed)-1] + strconv.Itoa(digit)
			sign *= opSign
		}
	}
	// 6. explicit decimal point present: parse as a decimal literal directly.
	if strings.Contains(collapsed, ".") {
		d, err := decimal128.Parse(collapsed)
		if err != nil {
			return nil, parseErrorf(fieldName, raw, "not a valid decimal: %s", err.Error())
		}
		if sign < 0 {
			d = d.Neg()
		}
		return d, nil
	}
	// 7. digits only, implied decimal places.
	digits := onlyDigits(collapsed)
	if digits == "" {
		return nil, nil
	}
	literal := digits
	if impliedPlaces > 0 {
		literal = insertDecimalPoint(digits, impliedPlaces)
	}
	d, err := decimal128.Parse(literal)
	if err != nil {
		return nil, parseErrorf(fieldName, raw, "not a valid number: %s", err.Error())
	}
	if sign < 0 {
		d = d.Neg()
	}
	return d, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// insertDecimalPoint places a '.' places positions from the right of
// digits, zero-padding on the left if digits is shorter than places.
func insertDecimalPoint(digits string, places int) string {
	if len(digits) <= places {
		digits = strings.Repeat("0", places-len(digits)+1) + digits
	}
	split := len(digits) - places
	return digits[:split] + "." + digits[split:]
}
