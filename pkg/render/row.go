package render

import (
	"reflect"
	"sort"
	"time"
)

// Row is a single key/value line of the table. Values are plain text; the
// template layer escapes them.
type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FormatRows turns one field into display rows. Empty values and scalars
// produce exactly one row. Non-empty sequences, maps and structs produce one
// row per element, all sharing key.
func FormatRows(key string, value any) []Row {
	elements, ok := elementsOf(value)
	if !ok || len(elements) == 0 {
		return []Row{{Key: key, Value: Text(value)}}
	}

	rows := make([]Row, 0, len(elements))
	for _, element := range elements {
		rows = append(rows, Row{Key: key, Value: Text(element)})
	}
	return rows
}

// elementsOf expands an aggregate value. Maps iterate in key text order and
// structs in field declaration order. ok is false for scalars.
func elementsOf(value any) ([]any, bool) {
	rv, ok := indirect(reflect.ValueOf(value))
	if !ok || !isAggregate(rv) {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, interfaceOf(rv.Index(i)))
		}
		return out, true
	case reflect.Map:
		keys := rv.MapKeys()
		sort.SliceStable(keys, func(i, j int) bool {
			return Text(interfaceOf(keys[i])) < Text(interfaceOf(keys[j]))
		})
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, interfaceOf(rv.MapIndex(k)))
		}
		return out, true
	case reflect.Struct:
		typ := rv.Type()
		out := make([]any, 0, rv.NumField())
		for i := 0; i < rv.NumField(); i++ {
			if !typ.Field(i).IsExported() {
				continue
			}
			out = append(out, rv.Field(i).Interface())
		}
		return out, true
	}
	return nil, false
}

var (
	timeType  = reflect.TypeOf(time.Time{})
	bytesType = reflect.TypeOf([]byte(nil))
)

func isAggregate(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type() != bytesType
	case reflect.Array, reflect.Map:
		return true
	case reflect.Struct:
		return rv.Type() != timeType
	default:
		return false
	}
}

// indirect follows pointers and interfaces. ok is false when the chain ends in
// nil.
func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

func interfaceOf(rv reflect.Value) any {
	if !rv.IsValid() || !rv.CanInterface() {
		return nil
	}
	return rv.Interface()
}
