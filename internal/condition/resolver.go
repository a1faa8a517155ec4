// Package condition turns the inclusive ("condition") and exclusive ("anticondition")
// constraint lists of a source spawn entry into canonical world.Condition records.
//
// Per axis the result is the union of the mapped inclusive buckets (every value when no
// inclusive bucket is given) minus the union of the mapped exclusive buckets.
package condition

import (
	"github.com/momentum-xyz/spawnschema/internal/enum"
	"github.com/momentum-xyz/spawnschema/internal/logger"
	"github.com/momentum-xyz/spawnschema/internal/world"

	"github.com/pkg/errors"
)

// Source condition keys that carry an axis. Temperatures are read under both spellings
// found in source data; their buckets are merged.
const (
	KeyTimes        = "times"
	KeyWeathers     = "weathers"
	KeyTemperature  = "temperature"
	KeyTemperatures = "temperatures"
)

// DefaultIndex marks converted conditions; the source format has no specificity tiers.
const DefaultIndex = 1337

var ErrUnknownBucket = errors.New("unknown source bucket")

var log = logger.L()

type Tables struct {
	Times        Mapping[enum.TimeType]
	Weathers     Mapping[enum.WeatherType]
	Temperatures Mapping[enum.TemperatureType]
}

func DefaultTables() Tables {
	return Tables{
		Times:        TimesMapping(),
		Weathers:     WeatherPlaceholderMapping(),
		Temperatures: TemperaturesMapping(),
	}
}

type Resolver struct {
	tables Tables
	index  int
}

func NewResolver(tables Tables, index int) *Resolver {
	if index < 1 {
		index = DefaultIndex
	}
	return &Resolver{tables: tables, index: index}
}

// Resolve builds the conditions of one source entry. cons and antis are the parsed
// "condition" and "anticondition" objects and may be nil. The moon axis is not sourced
// and always spans every phase. The result currently holds exactly one condition.
func (r *Resolver) Resolve(cons, antis map[string]any) ([]world.Condition, error) {
	times, err := resolveAxis(enum.TimeTypes, r.tables.Times, cons, antis, KeyTimes)
	if err != nil {
		return nil, err
	}
	weathers, err := resolveAxis(enum.WeatherTypes, r.tables.Weathers, cons, antis, KeyWeathers)
	if err != nil {
		return nil, err
	}
	temperatures, err := resolveAxis(enum.TemperatureTypes, r.tables.Temperatures, cons, antis, KeyTemperature, KeyTemperatures)
	if err != nil {
		return nil, err
	}

	c, err := world.NewCondition(r.index, 1.0,
		world.Weathers(toAny(weathers)...),
		world.Moons(toAny(enum.MoonTypes.All())...),
		world.Times(toAny(times)...),
		world.Temperatures(toAny(temperatures)...),
	)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to build condition")
	}
	return []world.Condition{c}, nil
}

func resolveAxis[T ~int](r *enum.Registry[T], mapping Mapping[T], cons, antis map[string]any, keys ...string) ([]T, error) {
	var include, exclude []string
	for _, key := range keys {
		in, err := buckets(cons, key)
		if err != nil {
			return nil, err
		}
		ex, err := buckets(antis, key)
		if err != nil {
			return nil, err
		}
		include = append(include, in...)
		exclude = append(exclude, ex...)
	}

	set, err := Apply(r, mapping, include, exclude)
	if err != nil {
		return nil, errors.WithMessagef(err, "axis %s", keys[0])
	}
	return set, nil
}

// Apply runs the inclusion then exclusion step for one axis. A nil or empty include
// list means no constraint; removing a value that is not in the set is a no-op.
func Apply[T ~int](r *enum.Registry[T], mapping Mapping[T], include, exclude []string) ([]T, error) {
	set := make(map[T]struct{})
	if len(include) == 0 {
		for _, v := range r.All() {
			set[v] = struct{}{}
		}
	}
	for _, bucket := range include {
		codes, ok := mapping[bucket]
		if !ok {
			return nil, errors.WithMessagef(ErrUnknownBucket, "%s %q", r.Kind(), bucket)
		}
		for _, c := range codes {
			set[c] = struct{}{}
		}
	}
	for _, bucket := range exclude {
		codes, ok := mapping[bucket]
		if !ok {
			return nil, errors.WithMessagef(ErrUnknownBucket, "%s %q", r.Kind(), bucket)
		}
		for _, c := range codes {
			delete(set, c)
		}
	}

	out := make([]T, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	return world.SortedSet(out), nil
}

// buckets reads the bucket list stored under key. A missing object or key yields nil.
func buckets(obj map[string]any, key string) ([]string, error) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.WithMessagef(ErrUnknownBucket, "%s: non-string bucket %v", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		log.Debugf("condition: single bucket %q under %s, treating as list", v, key)
		return []string{v}, nil
	}
	return nil, errors.WithMessagef(ErrUnknownBucket, "%s: unexpected value of type %T", key, raw)
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
