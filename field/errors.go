package field

import "fmt"

// ParseError is a record-level error: a field's raw text couldn't be
// decoded per its declared type. ParseError carries enough context (field
// name and raw text) for the caller to log and skip the line rather than
// fail the whole run.
type ParseError struct {
	FieldName string
	Raw       string
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("field '%s': cannot parse %q: %s", e.FieldName, e.Raw, e.Reason)
}

func parseErrorf(fieldName, raw, format string, args ...interface{}) *ParseError {
	return &ParseError{FieldName: fieldName, Raw: raw, Reason: fmt.Sprintf(format, args...)}
}
