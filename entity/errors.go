package entity

import "fmt"

// CoercionError is a record-level error: a parsed value couldn't be
// converted to a property's declared type even though the property path
// itself resolved fine. Unlike a missing-property/unresolvable-path
// failure (a config.Error, raised at first use and fatal), a coercion
// failure depends on the runtime value being written and so is raised per
// line instead.
type CoercionError struct {
	Path  string
	Value interface{}
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("property '%s': cannot coerce value %v (%T) to destination type", e.Path, e.Value, e.Value)
}
