package request

import (
	"math"
	"reflect"
	"sort"
	"time"
)

// maxDepth bounds how deep nested shapes are converted. Values nested
// deeper are dropped.
const maxDepth = 10

var (
	timeType = reflect.TypeOf(time.Time{})
	byteType = reflect.TypeOf(byte(0))
)

// Document is a read-only view of an operation's input or output shape,
// converted to plain maps, slices and scalars. The zero value is an empty
// document.
type Document struct {
	values map[string]interface{}
}

// NewDocument converts v into a Document. Structs, pointers to structs and
// string keyed maps are supported; any other value, or a value that cannot be
// converted, yields an empty Document.
func NewDocument(v interface{}) (doc Document) {
	defer func() {
		if r := recover(); r != nil {
			doc = Document{}
		}
	}()

	converted, ok := convert(reflect.ValueOf(v), 0)
	if !ok {
		return Document{}
	}
	m, ok := converted.(map[string]interface{})
	if !ok {
		return Document{}
	}
	return Document{values: m}
}

// Len returns the number of top level members present in the document.
func (d Document) Len() int {
	return len(d.values)
}

// Keys returns the sorted top level member names present in the document.
func (d Document) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a shallow copy of the document's top level members.
func (d Document) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(d.values))
	for k, v := range d.values {
		m[k] = v
	}
	return m
}

// convertBytes copies a slice of bytes, or of a named uint8 type, to []byte.
func convertBytes(v reflect.Value) []byte {
	b := make([]byte, v.Len())
	if v.Type().Elem() == byteType {
		reflect.Copy(reflect.ValueOf(b), v)
		return b
	}
	for i := range b {
		b[i] = byte(v.Index(i).Uint())
	}
	return b
}

// convert maps v onto map[string]interface{}, []interface{} and scalar
// values. Returns false if the value is absent or unsupported.
func convert(v reflect.Value, depth int) (interface{}, bool) {
	if !v.IsValid() || depth > maxDepth {
		return nil, false
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil, false
		}
		return convert(v.Elem(), depth)

	case reflect.Struct:
		if v.Type() == timeType {
			if !v.CanInterface() {
				return nil, false
			}
			return v.Interface(), true
		}
		return convertStruct(v, depth)

	case reflect.Map:
		if v.IsNil() || v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		m := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			if mv, ok := convert(iter.Value(), depth+1); ok {
				m[iter.Key().String()] = mv
			}
		}
		return m, true

	case reflect.Slice:
		if v.IsNil() {
			return nil, false
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return convertBytes(v), true
		}
		return convertList(v, depth)

	case reflect.Array:
		return convertList(v, depth)

	case reflect.String:
		return v.String(), true

	case reflect.Bool:
		return v.Bool(), true

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return float64(u), true
		}
		return int64(u), true

	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}

	return nil, false
}

func convertStruct(v reflect.Value, depth int) (interface{}, bool) {
	fs := fieldsOf(v.Type())

	m := make(map[string]interface{}, len(fs.fields))
	for _, f := range fs.fields {
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			continue
		}
		if cv, ok := convert(fv, depth+1); ok {
			m[f.Name] = cv
		}
	}
	return m, true
}

func convertList(v reflect.Value, depth int) (interface{}, bool) {
	list := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		if cv, ok := convert(v.Index(i), depth+1); ok {
			list[i] = cv
		}
	}
	return list, true
}
