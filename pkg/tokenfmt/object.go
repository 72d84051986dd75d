package tokenfmt

import (
	"reflect"
	"unsafe"
)

// Object wraps a struct value (or pointer to struct) as a FieldSource.
// Field names are matched exactly. Unexported fields are readable only when
// the NonPublicAccess option widens visibility.
func Object(v any) FieldSource { return objectSource{v: v} }

type objectSource struct{ v any }

func (o objectSource) Field(name string, nonPublic bool) (any, bool) {
	return structField(o.v, name, nonPublic)
}

// structField reads a named field from a struct or pointer to struct.
// Non-struct values report the field missing, which the resolver maps to the
// missing-key outcome.
func structField(v any, name string, nonPublic bool) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	sf, ok := rv.Type().FieldByName(name)
	if !ok {
		return nil, false
	}
	if sf.PkgPath == "" {
		return rv.FieldByIndex(sf.Index).Interface(), true
	}

	// Unexported field. Reading it bypasses reflect's read barrier, which
	// requires an addressable struct; non-addressable values are copied once.
	if !nonPublic {
		return nil, false
	}
	if !rv.CanAddr() {
		addr := reflect.New(rv.Type()).Elem()
		addr.Set(rv)
		rv = addr
	}
	f := rv.FieldByIndex(sf.Index)
	f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	return f.Interface(), true
}
