package entity

import (
	"reflect"
	"sync"

	"github.com/jarede-dev/flatfiledecoder/config"
)

// Getter reads the path-addressed field off instance. Used only by the
// record parser to read a count-terminated occurs group's count field,
// which header-field parsing must already have populated.
type Getter func(instance interface{}) (interface{}, error)

var getterCache sync.Map // setterKey -> Getter

// GetGetter returns the getter for (t, path), building and caching it on
// first use, mirroring GetSetter's cache shape.
func GetGetter(t reflect.Type, path string) (Getter, error) {
	key := setterKey{t: t, path: path}
	if v, ok := getterCache.Load(key); ok {
		return v.(Getter), nil
	}
	fp, err := resolveFieldPath(t, path)
	if err != nil {
		return nil, err
	}
	getter := buildGetter(path, fp)
	actual, _ := getterCache.LoadOrStore(key, getter)
	return actual.(Getter), nil
}

func buildGetter(path string, fp *fieldPath) Getter {
	return func(instance interface{}) (interface{}, error) {
		v := reflect.ValueOf(instance)
		if v.Kind() != reflect.Ptr || v.IsNil() {
			return nil, config.Errorf("entity: getter for '%s' requires a non-nil pointer, got %T", path, instance)
		}
		v = v.Elem()
		for _, idx := range fp.indices {
			v = v.Field(idx)
			if v.Kind() == reflect.Ptr {
				if v.IsNil() {
					return nil, nil
				}
				v = v.Elem()
			}
		}
		return v.Interface(), nil
	}
}
