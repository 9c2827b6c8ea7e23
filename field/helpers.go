package field

import (
	"strings"

	"github.com/jarede-dev/flatfiledecoder/config"
)

// IsAllSpaces reports whether every rune in s is a space.
func IsAllSpaces(s string) bool {
	for _, r := range s {
		if r != ' ' {
			return false
		}
	}
	return true
}

// IsAllZeros reports whether s contains no spaces, every rune is '0' or
// '.', and at least one '0' is present.
func IsAllZeros(s string) bool {
	sawZero := false
	for _, r := range s {
		switch r {
		case '0':
			sawZero = true
		case '.':
		default:
			return false
		}
	}
	return sawZero
}

// CollapseSpaces removes every space character from s.
func CollapseSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// ApplyTrim trims s per mode. Unknown modes default to "both".
func ApplyTrim(s string, mode config.TrimMode) string {
	switch mode {
	case config.TrimLeft:
		return strings.TrimLeft(s, " ")
	case config.TrimRight:
		return strings.TrimRight(s, " ")
	case config.TrimNone:
		return s
	case config.TrimBoth:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(s)
	}
}

// ApplyCase normalizes case per mode. Unknown modes default to "none".
func ApplyCase(s string, mode config.CaseNormalization) string {
	switch mode {
	case config.CaseUpper:
		return strings.ToUpper(s)
	case config.CaseLower:
		return strings.ToLower(s)
	default:
		return s
	}
}
