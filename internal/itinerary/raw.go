package itinerary

import (
	"math"
	"strconv"
	"strings"
)

// rawObject is an untrusted JSON object decoded from model output. Only
// the normalizers in this package read it; everything downstream works on
// response_models types.
type rawObject map[string]any

func asObject(v any) rawObject {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return rawObject{}
}

// text coerces scalar values to a trimmed string. Objects, arrays and
// null yield "".
func (r rawObject) text(key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

func (r rawObject) positiveInt(key string) (int, bool) {
	switch v := r[key].(type) {
	case float64:
		if v >= 1 {
			return int(v), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 1 {
			return n, true
		}
	}
	return 0, false
}

func (r rawObject) isTrue(key string) bool {
	b, ok := r[key].(bool)
	return ok && b
}

func (r rawObject) object(key string) (rawObject, bool) {
	m, ok := r[key].(map[string]any)
	return m, ok
}

func (r rawObject) array(key string) ([]any, bool) {
	a, ok := r[key].([]any)
	return a, ok
}

// objectArray reports whether key holds a non-empty array made only of objects.
func (r rawObject) objectArray(key string) ([]any, bool) {
	a, ok := r.array(key)
	if !ok || len(a) == 0 {
		return nil, false
	}
	for _, item := range a {
		if _, isObj := item.(map[string]any); !isObj {
			return nil, false
		}
	}
	return a, true
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
