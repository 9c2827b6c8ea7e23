package entity

import (
	"reflect"
	"sync"

	"github.com/jarede-dev/flatfiledecoder/config"
)

// Registry is a name->type allow-list: every entity name referenced by a
// layout or manifest job must be pre-registered here,
// preventing arbitrary type instantiation from YAML. Registration happens
// once at job start, not on the per-line hot path, so a plain RWMutex is
// enough — no need for the lock-free insert-if-absent caches the setter
// and adder require.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]reflect.Type{}}
}

// Register adds name -> the type of sample (dereferencing one level of
// pointer if sample is a pointer, so callers may register with either
// MyEntity{} or &MyEntity{}).
func (r *Registry) Register(name string, sample interface{}) {
	t := reflect.TypeOf(sample)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[name] = t
}

// Resolve looks up a registered entity name. An unresolved name is a
// configuration error: fatal, never silently swallowed.
func (r *Registry) Resolve(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	if !ok {
		return nil, config.Errorf("entity: '%s' is not a registered entity type", name)
	}
	return t, nil
}

// New constructs a new zero-valued instance of name's registered type,
// returned as a pointer.
func (r *Registry) New(name string) (interface{}, error) {
	t, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return reflect.New(t).Interface(), nil
}
