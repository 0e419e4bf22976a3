package request

import (
	"sort"
	"sync"

	"github.com/jmespath/go-jmespath"
)

var expressions sync.Map

// compile returns the compiled form of expr, caching the result. Invalid
// expressions are cached as nil and never match.
func compile(expr string) *jmespath.JMESPath {
	if v, ok := expressions.Load(expr); ok {
		return v.(*jmespath.JMESPath)
	}

	compiled, err := jmespath.Compile(expr)
	if err != nil {
		compiled = nil
	}
	v, _ := expressions.LoadOrStore(expr, compiled)
	return v.(*jmespath.JMESPath)
}

// Lookup evaluates the JMESPath expression against the document. Returns
// false if the expression is invalid, fails to evaluate, or selects nothing.
func (d Document) Lookup(expr string) (v interface{}, ok bool) {
	if len(d.values) == 0 {
		return nil, false
	}

	compiled := compile(expr)
	if compiled == nil {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			v, ok = nil, false
		}
	}()

	v, err := compiled.Search(d.values)
	if err != nil || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the non-empty string selected by expr.
func (d Document) String(expr string) (string, bool) {
	v, ok := d.Lookup(expr)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || len(s) == 0 {
		return "", false
	}
	return s, true
}

// Strings returns the non-empty strings of the list selected by expr. Members
// that are not strings are skipped. Returns false if no strings remain.
func (d Document) Strings(expr string) ([]string, bool) {
	v, ok := d.Lookup(expr)
	if !ok {
		return nil, false
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, false
	}

	var ss []string
	for _, item := range list {
		if s, ok := item.(string); ok && len(s) != 0 {
			ss = append(ss, s)
		}
	}
	return ss, len(ss) != 0
}

// SortedStrings is Strings with the result sorted, for members selected from
// maps whose iteration order is not stable.
func (d Document) SortedStrings(expr string) ([]string, bool) {
	ss, ok := d.Strings(expr)
	if ok {
		sort.Strings(ss)
	}
	return ss, ok
}

// Int returns the integer selected by expr. JMESPath function results such
// as length() are accepted when they hold a whole number.
func (d Document) Int(expr string) (int64, bool) {
	v, ok := d.Lookup(expr)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// Bool returns the boolean selected by expr.
func (d Document) Bool(expr string) (bool, bool) {
	v, ok := d.Lookup(expr)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
