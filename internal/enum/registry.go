// Package enum holds the closed integer code sets of the canonical world schema.
//
// Every set is 1-based and dense. A member is encoded by its ordinal and may be
// decoded from either the ordinal or its upper-case name, since source data mixes both.
package enum

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownMember = errors.New("unknown enum member")

type Registry[T ~int] struct {
	kind   string
	names  []string
	byName map[string]T
}

func newRegistry[T ~int](kind string, names ...string) *Registry[T] {
	r := &Registry[T]{
		kind:   kind,
		names:  names,
		byName: make(map[string]T, len(names)),
	}
	for i, name := range names {
		r.byName[name] = T(i + 1)
	}
	return r
}

func (r *Registry[T]) Kind() string {
	return r.kind
}

func (r *Registry[T]) Len() int {
	return len(r.names)
}

func (r *Registry[T]) Valid(v T) bool {
	return v >= 1 && int(v) <= len(r.names)
}

// Name returns the member name, or "<kind>(<n>)" for a value outside the set.
func (r *Registry[T]) Name(v T) string {
	if !r.Valid(v) {
		return r.kind + "(" + strconv.Itoa(int(v)) + ")"
	}
	return r.names[v-1]
}

// All returns every member in ordinal order.
func (r *Registry[T]) All() []T {
	all := make([]T, len(r.names))
	for i := range r.names {
		all[i] = T(i + 1)
	}
	return all
}

// Parse looks a member up by name only.
func (r *Registry[T]) Parse(name string) (T, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// Resolve accepts an ordinal (any integer type, an integral float, json.Number or a
// numeric string) or a member name. The ordinal interpretation is tried first.
// A value that resolves to nothing yields ok == false, and additionally an
// ErrUnknownMember error when strict is set.
func (r *Registry[T]) Resolve(value any, strict bool) (T, bool, error) {
	if n, isInt := toOrdinal(value); isInt {
		if r.Valid(T(n)) {
			return T(n), true, nil
		}
	} else if s, isStr := value.(string); isStr {
		if v, ok := r.byName[strings.TrimSpace(s)]; ok {
			return v, true, nil
		}
	}

	if strict {
		return 0, false, errors.WithMessagef(ErrUnknownMember, "%s: %v", r.kind, value)
	}
	return 0, false, nil
}

// ResolveStrict is Resolve in strict mode for callers that only need the member.
func (r *Registry[T]) ResolveStrict(value any) (T, error) {
	v, _, err := r.Resolve(value, true)
	return v, err
}

func toOrdinal(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return floatOrdinal(float64(v))
	case float64:
		return floatOrdinal(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	case interface{ Ordinal() int }:
		return v.Ordinal(), true
	}
	return 0, false
}

func floatOrdinal(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
