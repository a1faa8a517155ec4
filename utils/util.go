package utils

import (
	"math"
)

// Accessors over parsed JSON objects (map[string]any). A missing key or a value of the
// wrong type yields the default.

func FromAny[V any](val any, defaultValue V) V {
	v, ok := val.(V)
	if ok {
		return v
	}
	return defaultValue
}

func FromAnyMap[K comparable, V any](amap map[K]any, key K, defaultValue V) V {
	if val, ok := amap[key]; ok {
		return FromAny(val, defaultValue)
	}
	return defaultValue
}

func F64FromMap(parametersMap map[string]any, k string, defaultValue float64) float64 {
	if v, ok := parametersMap[k]; ok {
		if v1, ok := v.(float64); ok {
			return v1
		}
	}

	return defaultValue
}

// IntFromMap accepts integral JSON numbers only.
func IntFromMap(parametersMap map[string]any, k string, defaultValue int) int {
	if v, ok := parametersMap[k]; ok {
		switch v1 := v.(type) {
		case int:
			return v1
		case float64:
			if v1 == math.Trunc(v1) {
				return int(v1)
			}
		}
	}

	return defaultValue
}

func StringFromMap(parametersMap map[string]any, k string, defaultValue string) string {
	return FromAnyMap(parametersMap, k, defaultValue)
}

// MapFromMap returns the nested object under k, or nil.
func MapFromMap(parametersMap map[string]any, k string) map[string]any {
	return FromAnyMap[string, map[string]any](parametersMap, k, nil)
}

// ObjectsFromMap returns the objects of the list under k, skipping non-object items.
func ObjectsFromMap(parametersMap map[string]any, k string) []map[string]any {
	list := FromAnyMap[string, []any](parametersMap, k, nil)
	out := make([]map[string]any, 0, len(list))
	for _, v := range list {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
