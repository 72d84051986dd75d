package tokenfmt

import "reflect"

// MapSource is the associative variant of a data source: values are looked
// up by string key.
type MapSource interface {
	// Lookup returns the value for key and whether the key is present.
	Lookup(key string) (any, bool)
}

// FieldSource is the structured-object variant of a data source: values are
// read from named fields. nonPublic widens visibility to non-public fields;
// it is set when the call uses the NonPublicAccess option.
type FieldSource interface {
	// Field returns the value of the named field and whether a readable
	// field of that name exists under the active visibility policy.
	Field(name string, nonPublic bool) (any, bool)
}

// Map wraps a map[string]any as a MapSource.
func Map(m map[string]any) MapSource { return mapSource(m) }

type mapSource map[string]any

func (m mapSource) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// StringMap wraps a map[string]string as a MapSource.
func StringMap(m map[string]string) MapSource { return stringMapSource(m) }

type stringMapSource map[string]string

func (m stringMapSource) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// lookup resolves one key against the current value. Plain maps and structs
// are adapted in place so intermediate values need no explicit wrapping.
// A value that cannot act as a data source at all reports the key missing.
func lookup(current any, key string, nonPublic bool) (any, bool) {
	switch src := current.(type) {
	case MapSource:
		return src.Lookup(key)
	case FieldSource:
		return src.Field(key, nonPublic)
	case map[string]any:
		v, ok := src[key]
		return v, ok
	case map[string]string:
		v, ok := src[key]
		return v, ok
	}
	return structField(current, key, nonPublic)
}

// isNull reports whether a resolved value counts as null for nullability
// checks: nil itself, or a nil pointer, interface, map, slice, func, or chan.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
