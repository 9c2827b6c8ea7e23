package field

import (
	"github.com/jarede-dev/flatfiledecoder/config"
)

// Parser is the common contract every field-type decoder satisfies. raw
// is the already-sliced fixed-width string. A nil, nil return means the
// field is semantically absent; a non-nil error means the field is
// present but malformed.
type Parser interface {
	Parse(fieldName, raw string, opts config.FieldOptions, rules config.ParsingRules) (interface{}, error)
}

// NewParser case-insensitively maps a FieldType tag to its Parser. An
// unrecognized tag is a configuration error rather than a silent
// fallback to the String parser.
func NewParser(t config.FieldType) (Parser, error) {
	switch config.FieldType(lowerASCII(string(t))) {
	case config.FieldTypeDate:
		return dateParser{}, nil
	case config.FieldTypeNumeric:
		return numericParser{}, nil
	case config.FieldTypeInteger:
		return integerParser{}, nil
	case config.FieldTypeString:
		return stringParser{}, nil
	case config.FieldTypeBoolean:
		return booleanParser{}, nil
	default:
		return nil, config.ErrUnknownFieldType(t)
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
