package world

import (
	"encoding/json"
	"sort"

	"github.com/momentum-xyz/spawnschema/internal/enum"

	"github.com/pkg/errors"
)

// Condition gates a spawn relation on the environmental axes.
//
// Each axis is either absent (nil, any value matches) or a set of codes; an empty set
// never matches. Index orders conditions by specificity, lower is more general.
type Condition struct {
	index        int
	modifier     float64
	weathers     []enum.WeatherType
	moons        []enum.MoonType
	times        []enum.TimeType
	temperatures []enum.TemperatureType
}

type ConditionOption func(c *Condition) error

// Weathers constrains the weather axis. Calling it with no values yields the empty set.
func Weathers(values ...any) ConditionOption {
	return func(c *Condition) (err error) {
		c.weathers, err = axisSet(enum.WeatherTypes, values)
		return err
	}
}

func Moons(values ...any) ConditionOption {
	return func(c *Condition) (err error) {
		c.moons, err = axisSet(enum.MoonTypes, values)
		return err
	}
}

func Times(values ...any) ConditionOption {
	return func(c *Condition) (err error) {
		c.times, err = axisSet(enum.TimeTypes, values)
		return err
	}
}

func Temperatures(values ...any) ConditionOption {
	return func(c *Condition) (err error) {
		c.temperatures, err = axisSet(enum.TemperatureTypes, values)
		return err
	}
}

// NewCondition validates the index (>= 1), the modifier (>= 0) and every axis value.
// Axes without an option stay absent.
func NewCondition(index int, modifier float64, opts ...ConditionOption) (Condition, error) {
	if index < 1 {
		return Condition{}, errors.Errorf("condition index must be positive, got %d", index)
	}
	if modifier < 0 {
		return Condition{}, errors.Errorf("condition modifier must not be negative, got %v", modifier)
	}
	c := Condition{index: index, modifier: modifier}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return Condition{}, err
		}
	}
	return c, nil
}

// AnyCondition always matches: index 1, modifier 1.0 and every axis set to its full
// enumeration.
func AnyCondition() Condition {
	return Condition{
		index:        1,
		modifier:     1.0,
		weathers:     enum.WeatherTypes.All(),
		moons:        enum.MoonTypes.All(),
		times:        enum.TimeTypes.All(),
		temperatures: enum.TemperatureTypes.All(),
	}
}

func (c Condition) Index() int {
	return c.index
}

func (c Condition) Modifier() float64 {
	return c.modifier
}

func (c Condition) Weathers() []enum.WeatherType {
	return cloneAxis(c.weathers)
}

func (c Condition) Moons() []enum.MoonType {
	return cloneAxis(c.moons)
}

func (c Condition) Times() []enum.TimeType {
	return cloneAxis(c.times)
}

func (c Condition) Temperatures() []enum.TemperatureType {
	return cloneAxis(c.temperatures)
}

// Environment is one observed combination of axis values.
type Environment struct {
	Weather     enum.WeatherType
	Moon        enum.MoonType
	Time        enum.TimeType
	Temperature enum.TemperatureType
}

func (c Condition) Matches(env Environment) bool {
	return axisMatches(c.weathers, env.Weather) &&
		axisMatches(c.moons, env.Moon) &&
		axisMatches(c.times, env.Time) &&
		axisMatches(c.temperatures, env.Temperature)
}

type conditionJSON struct {
	Index        int                     `json:"index"`
	Modifier     float64                 `json:"modifier"`
	Weathers     *[]enum.WeatherType     `json:"weathers,omitempty"`
	Moons        *[]enum.MoonType        `json:"moons,omitempty"`
	Times        *[]enum.TimeType        `json:"times,omitempty"`
	Temperatures *[]enum.TemperatureType `json:"temperatures,omitempty"`
}

// MarshalJSON omits absent axes and writes empty ones as [].
func (c Condition) MarshalJSON() ([]byte, error) {
	return json.Marshal(conditionJSON{
		Index:        c.index,
		Modifier:     c.modifier,
		Weathers:     axisPtr(c.weathers),
		Moons:        axisPtr(c.moons),
		Times:        axisPtr(c.times),
		Temperatures: axisPtr(c.temperatures),
	})
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	var raw conditionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithMessage(err, "failed to decode condition")
	}

	var opts []ConditionOption
	if raw.Weathers != nil {
		opts = append(opts, Weathers(toAny(*raw.Weathers)...))
	}
	if raw.Moons != nil {
		opts = append(opts, Moons(toAny(*raw.Moons)...))
	}
	if raw.Times != nil {
		opts = append(opts, Times(toAny(*raw.Times)...))
	}
	if raw.Temperatures != nil {
		opts = append(opts, Temperatures(toAny(*raw.Temperatures)...))
	}

	parsed, err := NewCondition(raw.Index, raw.Modifier, opts...)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// axisSet resolves, dedupes and sorts. The result is never nil.
func axisSet[T ~int](r *enum.Registry[T], values []any) ([]T, error) {
	resolved, err := resolveAll(r, values)
	if err != nil {
		return nil, err
	}
	return SortedSet(resolved), nil
}

// SortedSet returns the distinct values in ascending order, never nil.
func SortedSet[T ~int](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func axisMatches[T comparable](set []T, v T) bool {
	if set == nil {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func axisPtr[T any](set []T) *[]T {
	if set == nil {
		return nil
	}
	return &set
}

func cloneAxis[T any](set []T) []T {
	if set == nil {
		return nil
	}
	return append(make([]T, 0, len(set)), set...)
}
