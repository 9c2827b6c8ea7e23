package entity

import (
	"reflect"
	"strings"
	"sync"

	"github.com/jarede-dev/flatfiledecoder/config"
)

// Adder appends child onto the collection addressed by path on parent.
// parent must be a non-nil pointer to the type GetAdder was built for;
// child must be assignable to the Add method's parameter type.
type Adder func(parent interface{}, child interface{}) error

type adderKey struct {
	parentType reflect.Type
	path       string
	childType  reflect.Type
}

var adderCache sync.Map // adderKey -> Adder

// GetAdder returns the adder for (parentType, path, childType), building
// and caching it on first use.
func GetAdder(parentType reflect.Type, path string, childType reflect.Type) (Adder, error) {
	key := adderKey{parentType: parentType, path: path, childType: childType}
	if v, ok := adderCache.Load(key); ok {
		return v.(Adder), nil
	}
	adder, err := buildAdder(parentType, path, childType)
	if err != nil {
		return nil, err
	}
	actual, _ := adderCache.LoadOrStore(key, adder)
	return actual.(Adder), nil
}

func buildAdder(parentType reflect.Type, path string, childType reflect.Type) (Adder, error) {
	t := parentType
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
			return nil, config.Errorf("entity: collection path '%s' traverses non-struct at segment '%s'", path, seg)
		}
		sf, ok := findFieldCaseInsensitive(cur, seg)
		if !ok {
			return nil, config.Errorf("entity: type %s has no property '%s' (collection path '%s')", cur, seg, path)
		}
		if sf.PkgPath != "" {
			return nil, config.Errorf("entity: property '%s' on %s is not exported (collection path '%s')", seg, cur, path)
		}
		if len(sf.Index) != 1 {
			return nil, config.Errorf("entity: promoted/embedded field '%s' is not supported (collection path '%s')", seg, path)
		}
		indices = append(indices, sf.Index[0])
		cur = sf.Type
	}
	collectionType := cur
	for collectionType.Kind() == reflect.Ptr {
		collectionType = collectionType.Elem()
	}
	addMethod, ok := collectionType.MethodByName("Add")
	if !ok {
		// the method set of *T often differs from T's for pointer-receiver
		// methods; retry against the pointer type before giving up.
		addMethod, ok = reflect.PtrTo(collectionType).MethodByName("Add")
	}
	if !ok {
		return nil, config.Errorf(
			"entity: collection type %s addressed by path '%s' has no Add method", collectionType, path)
	}
	// addMethod.Type's first parameter is the receiver; the second is the
	// child parameter when found via reflect.Type.MethodByName.
	if addMethod.Type.NumIn() < 2 {
		return nil, config.Errorf("entity: Add method on %s has an unexpected signature", collectionType)
	}
	paramType := addMethod.Type.In(1)
	if !childType.AssignableTo(paramType) {
		return nil, config.Errorf(
			"entity: Add method on %s takes %s, not assignable from child type %s",
			collectionType, paramType, childType)
	}
	indicesCopy := indices
	return func(parent interface{}, child interface{}) error {
		pv := reflect.ValueOf(parent)
		if pv.Kind() != reflect.Ptr || pv.IsNil() {
			return config.Errorf("entity: adder for '%s' requires a non-nil pointer parent, got %T", path, parent)
		}
		pv = pv.Elem()
		for _, idx := range indicesCopy {
			pv = pv.Field(idx)
			if pv.Kind() == reflect.Ptr {
				if pv.IsNil() {
					if !pv.CanSet() {
						return config.Errorf("entity: cannot allocate nil intermediate in collection path '%s'", path)
					}
					pv.Set(reflect.New(pv.Type().Elem()))
				}
				pv = pv.Elem()
			}
		}
		collection := pv
		addFn := collection.Addr().MethodByName("Add")
		if !addFn.IsValid() {
			addFn = collection.MethodByName("Add")
		}
		if !addFn.IsValid() {
			return config.Errorf("entity: collection at '%s' has no callable Add method", path)
		}
		cv := reflect.ValueOf(child)
		paramType := addFn.Type().In(0)
		if cv.Kind() == reflect.Ptr && paramType.Kind() != reflect.Ptr {
			if cv.IsNil() {
				return config.Errorf("entity: adder for '%s' received a nil child", path)
			}
			cv = cv.Elem()
		}
		addFn.Call([]reflect.Value{cv})
		return nil
	}, nil
}
