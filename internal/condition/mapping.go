package condition

import (
	"sort"

	"github.com/momentum-xyz/spawnschema/internal/enum"

	"github.com/pkg/errors"
)

// Mapping translates a source bucket name to the canonical codes of one axis.
// A bucket may straddle several canonical values.
type Mapping[T ~int] map[string][]T

// Buckets returns the known bucket names, sorted.
func (m Mapping[T]) Buckets() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseMapping builds a mapping from canonical member names or codes.
func ParseMapping[T ~int](r *enum.Registry[T], raw map[string][]string) (Mapping[T], error) {
	m := make(Mapping[T], len(raw))
	for bucket, values := range raw {
		codes := make([]T, 0, len(values))
		for _, v := range values {
			code, err := r.ResolveStrict(v)
			if err != nil {
				return nil, errors.WithMessagef(err, "bucket %s", bucket)
			}
			codes = append(codes, code)
		}
		m[bucket] = codes
	}
	return m, nil
}

// identity maps every canonical member name to itself.
func identity[T ~int](r *enum.Registry[T]) Mapping[T] {
	m := make(Mapping[T], r.Len())
	for _, v := range r.All() {
		m[r.Name(v)] = []T{v}
	}
	return m
}

// TimesMapping covers the source day periods. Canonical slots are coarser, so the
// transitional periods map to both neighbouring slots.
func TimesMapping() Mapping[enum.TimeType] {
	return Mapping[enum.TimeType]{
		"DAWN":      {enum.TimeNight, enum.TimeMorning},
		"MORNING":   {enum.TimeMorning},
		"DAY":       {enum.TimeMorning, enum.TimeNoon},
		"MIDDAY":    {enum.TimeNoon},
		"AFTERNOON": {enum.TimeNoon, enum.TimeEvening},
		"DUSK":      {enum.TimeEvening},
		"NIGHT":     {enum.TimeEvening, enum.TimeNight},
		"MIDNIGHT":  {enum.TimeNight},
	}
}

// WeatherPlaceholderMapping knows the source weather buckets but maps each of them to
// nothing, so an inclusive weather constraint resolves to the empty set and an
// exclusive one removes nothing. Override it through the conversion config once the
// real correspondence is decided.
func WeatherPlaceholderMapping() Mapping[enum.WeatherType] {
	return Mapping[enum.WeatherType]{
		"CLEAR": {},
		"RAIN":  {},
		"STORM": {},
	}
}

// TemperaturesMapping accepts the canonical temperature names as source buckets.
func TemperaturesMapping() Mapping[enum.TemperatureType] {
	return identity(enum.TemperatureTypes)
}

// moonPhases follows the 8-step lunar cycle of manually authored conditions: exact
// phases map to themselves, the steps between them to both neighbours.
var moonPhases = [8][]enum.MoonType{
	{enum.MoonFull},
	{enum.MoonFull, enum.MoonDecreasing},
	{enum.MoonDecreasing},
	{enum.MoonDecreasing, enum.MoonNew},
	{enum.MoonNew},
	{enum.MoonNew, enum.MoonIncreasing},
	{enum.MoonIncreasing},
	{enum.MoonIncreasing, enum.MoonFull},
}

const MoonCycleSteps = len(moonPhases)

// MoonPhase returns the canonical moons of a cycle step in [0, MoonCycleSteps).
func MoonPhase(step int) ([]enum.MoonType, error) {
	if step < 0 || step >= MoonCycleSteps {
		return nil, errors.WithMessagef(ErrUnknownBucket, "moon phase step %d", step)
	}
	return append([]enum.MoonType(nil), moonPhases[step]...), nil
}
