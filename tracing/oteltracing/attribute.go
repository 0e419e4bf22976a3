package oteltracing

import (
	"fmt"

	"github.com/renovate-bot/awsinstr-go"
	otelattribute "go.opentelemetry.io/otel/attribute"
)

func toOTELAttributes(attrs awsinstr.Attributes) []otelattribute.KeyValue {
	kvs := make([]otelattribute.KeyValue, 0, attrs.Len())
	attrs.Range(func(k string, v interface{}) bool {
		kvs = append(kvs, toOTELKeyValue(k, v))
		return true
	})
	return kvs
}

func toOTELKeyValue(k, v any) otelattribute.KeyValue {
	kk := str(k)

	switch vv := v.(type) {
	case bool:
		return otelattribute.Bool(kk, vv)
	case []bool:
		return otelattribute.BoolSlice(kk, vv)
	case int:
		return otelattribute.Int(kk, vv)
	case []int:
		return otelattribute.IntSlice(kk, vv)
	case int64:
		return otelattribute.Int64(kk, vv)
	case []int64:
		return otelattribute.Int64Slice(kk, vv)
	case float64:
		return otelattribute.Float64(kk, vv)
	case []float64:
		return otelattribute.Float64Slice(kk, vv)
	case string:
		return otelattribute.String(kk, vv)
	case []string:
		return otelattribute.StringSlice(kk, vv)
	default:
		return otelattribute.String(kk, str(v))
	}
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return s
	} else if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%#v", v)
}
