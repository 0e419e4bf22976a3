package request

import (
	"reflect"
	"sync"
)

var fieldCache fieldCacher

type fieldCacher struct {
	cache sync.Map
}

func (c *fieldCacher) Load(t reflect.Type) (*cachedFields, bool) {
	if v, ok := c.cache.Load(t); ok {
		return v.(*cachedFields), true
	}
	return nil, false
}

func (c *fieldCacher) LoadOrStore(t reflect.Type, fs *cachedFields) *cachedFields {
	v, _ := c.cache.LoadOrStore(t, fs)
	return v.(*cachedFields)
}

type field struct {
	Name  string
	Index []int
}

type cachedFields struct {
	fields []field
}

// fieldsOf returns the exported, non-embedded fields of struct type t,
// including those promoted from exported embedded structs.
func fieldsOf(t reflect.Type) *cachedFields {
	if fs, ok := fieldCache.Load(t); ok {
		return fs
	}

	var fs cachedFields
	for _, sf := range reflect.VisibleFields(t) {
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		fs.fields = append(fs.fields, field{Name: sf.Name, Index: sf.Index})
	}
	return fieldCache.LoadOrStore(t, &fs)
}
