// Package entity implements the path-addressable property writer and
// collection adder, and the entity registry. The writer/adder caches are
// sync.Map-backed so concurrent callers never observe a partially built
// closure: each cache does a lock-free insert-if-absent rather than
// guarding the build step with a mutex.
package entity

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/jarede-dev/flatfiledecoder/config"
)

// Setter writes value onto instance's path-addressed field. instance must
// be a non-nil pointer to the type GetSetter was built for.
type Setter func(instance interface{}, value interface{}) error

type setterKey struct {
	t    reflect.Type
	path string
}

var setterCache sync.Map // setterKey -> Setter

// fieldPath is the resolved, cached shape of one dotted property path: one
// struct-field index per segment, walked from the root type down.
type fieldPath struct {
	indices []int
	leaf    reflect.Type
}

// GetSetter returns the setter for (t, path), building and caching it on
// first use. t must be a struct type or a pointer to one.
func GetSetter(t reflect.Type, path string) (Setter, error) {
	key := setterKey{t: t, path: path}
	if v, ok := setterCache.Load(key); ok {
		return v.(Setter), nil
	}
	fp, err := resolveFieldPath(t, path)
	if err != nil {
		return nil, err
	}
	setter := buildSetter(path, fp)
	actual, _ := setterCache.LoadOrStore(key, setter)
	return actual.(Setter), nil
}

func findFieldCaseInsensitive(t reflect.Type, name string) (reflect.StructField, bool) {
	return t.FieldByNameFunc(func(n string) bool {
		return strings.EqualFold(n, name)
	})
}

// resolveFieldPath walks path's dotted segments against t's struct shape,
// resolving each by case-insensitive public field lookup. Promoted/
// embedded fields are deliberately not supported: every entity observed
// so far uses single-level field names, so a dotted segment is required
// to name a direct field on its immediate parent, not one reached
// through embedding.
func resolveFieldPath(t reflect.Type, path string) (*fieldPath, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, config.Errorf("entity: type %s is not a struct", t)
	}
	segs := strings.Split(path, ".")
	cur := t
	indices := make([]int, 0, len(segs))
	for _, seg := range segs {
		for cur.Kind() == reflect.Ptr {
			cur = cur.Elem()
		}
		if cur.Kind() != reflect.Struct {
			return nil, config.Errorf("entity: path '%s' traverses non-struct at segment '%s'", path, seg)
		}
		sf, ok := findFieldCaseInsensitive(cur, seg)
		if !ok {
			return nil, config.Errorf("entity: type %s has no property '%s' (path '%s')", cur, seg, path)
		}
		if sf.PkgPath != "" {
			return nil, config.Errorf("entity: property '%s' on %s is not exported (path '%s')", seg, cur, path)
		}
		if len(sf.Index) != 1 {
			return nil, config.Errorf("entity: promoted/embedded field '%s' is not supported (path '%s')", seg, path)
		}
		indices = append(indices, sf.Index[0])
		cur = sf.Type
	}
	return &fieldPath{indices: indices, leaf: cur}, nil
}

func buildSetter(path string, fp *fieldPath) Setter {
	return func(instance interface{}, value interface{}) error {
		v := reflect.ValueOf(instance)
		if v.Kind() != reflect.Ptr || v.IsNil() {
			return config.Errorf("entity: setter for '%s' requires a non-nil pointer, got %T", path, instance)
		}
		v = v.Elem()
		for i := 0; i < len(fp.indices)-1; i++ {
			v = v.Field(fp.indices[i])
			if v.Kind() == reflect.Ptr {
				if v.IsNil() {
					if !v.CanSet() {
						return config.Errorf("entity: cannot allocate nil intermediate in path '%s'", path)
					}
					v.Set(reflect.New(v.Type().Elem()))
				}
				v = v.Elem()
			}
		}
		dest := v.Field(fp.indices[len(fp.indices)-1])
		return assign(dest, value, path)
	}
}

// assign writes value into dest under three cases: null handling, direct
// assignment when the runtime type already fits, and otherwise a
// best-effort locale-invariant conversion.
func assign(dest reflect.Value, value interface{}, path string) error {
	if value == nil {
		dest.Set(reflect.Zero(dest.Type()))
		return nil
	}
	rv := reflect.ValueOf(value)
	if dest.Kind() == reflect.Ptr {
		elemType := dest.Type().Elem()
		converted, err := convertValue(rv, elemType, path)
		if err != nil {
			return err
		}
		ptr := reflect.New(elemType)
		ptr.Elem().Set(converted)
		dest.Set(ptr)
		return nil
	}
	converted, err := convertValue(rv, dest.Type(), path)
	if err != nil {
		return err
	}
	dest.Set(converted)
	return nil
}

func convertValue(rv reflect.Value, destType reflect.Type, path string) (reflect.Value, error) {
	srcType := rv.Type()
	if srcType.AssignableTo(destType) {
		return rv, nil
	}
	if srcType.ConvertibleTo(destType) {
		switch destType.Kind() {
		case reflect.String:
			// reflect treats every type as "convertible to string" (it'll
			// produce a rune if the source is an integer kind), which isn't
			// the locale-invariant textual conversion wanted here. Fall
			// through to the fmt.Sprint-based conversion below instead.
		default:
			return rv.Convert(destType), nil
		}
	}
	if destType.Kind() == reflect.String {
		return reflect.ValueOf(fmt.Sprint(rv.Interface())).Convert(destType), nil
	}
	return reflect.Value{}, &CoercionError{Path: path, Value: rv.Interface()}
}
