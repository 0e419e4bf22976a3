package awsinstr

import "sort"

// KeyValue is a candidate attribute. A KeyValue that is not present is
// dropped when an Attributes set is built from it.
type KeyValue struct {
	Key   string
	Value interface{}

	present bool
}

// Attr returns a KeyValue for a value that is known to be present. Empty
// strings and empty slices are still treated as absent.
func Attr(key string, value interface{}) KeyValue {
	return KeyValue{Key: key, Value: value, present: true}
}

// OptionalAttr returns a KeyValue that is only present when ok is true,
// matching the comma-ok lookups of the request package.
func OptionalAttr[T any](key string, value T, ok bool) KeyValue {
	return KeyValue{Key: key, Value: value, present: ok}
}

// Present reports whether kv carries a usable value.
func (kv KeyValue) Present() bool {
	if !kv.present || len(kv.Key) == 0 || kv.Value == nil {
		return false
	}

	switch v := kv.Value.(type) {
	case string:
		return len(v) != 0
	case []string:
		return len(v) != 0
	case []bool:
		return len(v) != 0
	case []int:
		return len(v) != 0
	case []int64:
		return len(v) != 0
	case []float64:
		return len(v) != 0
	}
	return true
}

// Attributes is an immutable set of span attributes keyed by name. The zero
// value is an empty set.
type Attributes struct {
	values map[string]interface{}
}

// NewAttributes builds an attribute set from the present key values. When a
// key repeats, the last present value wins.
func NewAttributes(kvs ...KeyValue) Attributes {
	var values map[string]interface{}
	for _, kv := range kvs {
		if !kv.Present() {
			continue
		}
		if values == nil {
			values = make(map[string]interface{}, len(kvs))
		}
		values[kv.Key] = kv.Value
	}
	return Attributes{values: values}
}

// Len returns the number of attributes in the set.
func (a Attributes) Len() int {
	return len(a.values)
}

// Get returns the value stored for key.
func (a Attributes) Get(key string) (interface{}, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Has returns if the key exists in the set.
func (a Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Keys returns the attribute keys in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a.values))
	for k := range a.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Range calls fn for each attribute in key order, stopping early if fn
// returns false.
func (a Attributes) Range(fn func(key string, value interface{}) bool) {
	for _, k := range a.Keys() {
		if !fn(k, a.values[k]) {
			return
		}
	}
}

// Map returns a copy of the attributes as a map.
func (a Attributes) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(a.values))
	for k, v := range a.values {
		m[k] = v
	}
	return m
}

// Filter returns the subset of attributes whose keys satisfy keep.
func (a Attributes) Filter(keep func(key string) bool) Attributes {
	kvs := make([]KeyValue, 0, len(a.values))
	for k, v := range a.values {
		if keep(k) {
			kvs = append(kvs, Attr(k, v))
		}
	}
	return NewAttributes(kvs...)
}

// Merge returns a new set holding the attributes of a overlaid with those of
// other.
func (a Attributes) Merge(other Attributes) Attributes {
	kvs := make([]KeyValue, 0, len(a.values)+len(other.values))
	for k, v := range a.values {
		kvs = append(kvs, Attr(k, v))
	}
	for k, v := range other.values {
		kvs = append(kvs, Attr(k, v))
	}
	return NewAttributes(kvs...)
}
