package condition

import (
	"testing"

	"github.com/momentum-xyz/spawnschema/internal/enum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Identity(t *testing.T) {
	t.Parallel()

	times, err := Apply(enum.TimeTypes, TimesMapping(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.TimeTypes.All(), times)

	times, err = Apply(enum.TimeTypes, TimesMapping(), []string{}, []string{})
	require.NoError(t, err)
	assert.Equal(t, enum.TimeTypes.All(), times)

	weathers, err := Apply(enum.WeatherTypes, WeatherPlaceholderMapping(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.WeatherTypes.All(), weathers)

	temps, err := Apply(enum.TemperatureTypes, TemperaturesMapping(), []string{}, nil)
	require.NoError(t, err)
	assert.Equal(t, enum.TemperatureTypes.All(), temps)
}

func TestApply_IncludeThenExcludeSameBucket(t *testing.T) {
	t.Parallel()

	for _, bucket := range TimesMapping().Buckets() {
		got, err := Apply(enum.TimeTypes, TimesMapping(), []string{bucket}, []string{bucket})
		require.NoError(t, err)
		assert.Empty(t, got, "bucket %s", bucket)
	}
	for _, bucket := range TemperaturesMapping().Buckets() {
		got, err := Apply(enum.TemperatureTypes, TemperaturesMapping(), []string{bucket}, []string{bucket})
		require.NoError(t, err)
		assert.Empty(t, got, "bucket %s", bucket)
	}
	for _, bucket := range WeatherPlaceholderMapping().Buckets() {
		got, err := Apply(enum.WeatherTypes, WeatherPlaceholderMapping(), []string{bucket}, []string{bucket})
		require.NoError(t, err)
		assert.Empty(t, got, "bucket %s", bucket)
	}
}

func TestApply_Times(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []enum.TimeType
	}{
		{
			name:    "dawn straddles night and morning",
			include: []string{"DAWN"},
			want:    []enum.TimeType{enum.TimeMorning, enum.TimeNight},
		},
		{
			name:    "union of buckets",
			include: []string{"MIDDAY", "DUSK"},
			want:    []enum.TimeType{enum.TimeNoon, enum.TimeEvening},
		},
		{
			name:    "exclusion only",
			exclude: []string{"NIGHT"},
			want:    []enum.TimeType{enum.TimeMorning, enum.TimeNoon},
		},
		{
			name:    "excluding an absent value is a no-op",
			include: []string{"MORNING"},
			exclude: []string{"MIDNIGHT"},
			want:    []enum.TimeType{enum.TimeMorning},
		},
		{
			name:    "partial overlap",
			include: []string{"DAY"},
			exclude: []string{"MORNING"},
			want:    []enum.TimeType{enum.TimeNoon},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Apply(enum.TimeTypes, TimesMapping(), tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_UnknownBucket(t *testing.T) {
	t.Parallel()

	_, err := Apply(enum.TimeTypes, TimesMapping(), []string{"TEATIME"}, nil)
	assert.ErrorIs(t, err, ErrUnknownBucket)

	_, err = Apply(enum.TimeTypes, TimesMapping(), nil, []string{"TEATIME"})
	assert.ErrorIs(t, err, ErrUnknownBucket)
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTables(), 0)

	conds, err := r.Resolve(
		map[string]any{"times": []any{"DAWN"}, "temperature": []any{"COLD", "FREEZING"}},
		map[string]any{"temperature": []any{"FREEZING"}},
	)
	require.NoError(t, err)
	require.Len(t, conds, 1)

	c := conds[0]
	assert.Equal(t, DefaultIndex, c.Index())
	assert.Equal(t, 1.0, c.Modifier())
	assert.Equal(t, []enum.TimeType{enum.TimeMorning, enum.TimeNight}, c.Times())
	assert.Equal(t, []enum.TemperatureType{enum.TemperatureCold}, c.Temperatures())
	assert.Equal(t, enum.MoonTypes.All(), c.Moons())
	assert.Equal(t, enum.WeatherTypes.All(), c.Weathers())
}

func TestResolver_TemperatureSpellings(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTables(), 0)

	conds, err := r.Resolve(
		map[string]any{KeyTemperatures: []any{"HOT", "WARM"}},
		map[string]any{KeyTemperatures: []any{"WARM"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []enum.TemperatureType{enum.TemperatureHot}, conds[0].Temperatures())

	conds, err = r.Resolve(
		map[string]any{KeyTemperature: []any{"COLD"}, KeyTemperatures: []any{"HOT"}},
		map[string]any{KeyTemperatures: []any{"COLD"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []enum.TemperatureType{enum.TemperatureHot}, conds[0].Temperatures())

	_, err = r.Resolve(map[string]any{KeyTemperatures: []any{"TEPID"}}, nil)
	assert.ErrorIs(t, err, ErrUnknownBucket)
}

func TestResolver_WeatherPlaceholder(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTables(), 1)

	conds, err := r.Resolve(map[string]any{"weathers": []any{"RAIN"}}, nil)
	require.NoError(t, err)
	assert.NotNil(t, conds[0].Weathers())
	assert.Empty(t, conds[0].Weathers())

	conds, err = r.Resolve(nil, map[string]any{"weathers": []any{"STORM"}})
	require.NoError(t, err)
	assert.Equal(t, enum.WeatherTypes.All(), conds[0].Weathers())

	_, err = r.Resolve(map[string]any{"weathers": []any{"HAIL"}}, nil)
	assert.ErrorIs(t, err, ErrUnknownBucket)
}

func TestResolver_WeatherOverride(t *testing.T) {
	t.Parallel()

	weathers, err := ParseMapping(enum.WeatherTypes, map[string][]string{
		"CLEAR": {"CLEAR", "PARTY_CLOUDY"},
		"RAIN":  {"RAINY"},
		"STORM": {"THUNDERSTORM", "6"},
	})
	require.NoError(t, err)

	tables := DefaultTables()
	tables.Weathers = weathers
	r := NewResolver(tables, 1)

	conds, err := r.Resolve(
		map[string]any{"weathers": []string{"RAIN", "STORM"}},
		map[string]any{"weathers": []string{"STORM"}},
	)
	require.NoError(t, err)
	assert.Empty(t, conds[0].Weathers())

	conds, err = r.Resolve(map[string]any{"weathers": []string{"CLEAR", "RAIN"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []enum.WeatherType{enum.WeatherClear, enum.WeatherPartyCloudy, enum.WeatherRainy}, conds[0].Weathers())

	_, err = ParseMapping(enum.WeatherTypes, map[string][]string{"RAIN": {"DRIZZLE"}})
	assert.ErrorIs(t, err, enum.ErrUnknownMember)
}

func TestResolver_MalformedBuckets(t *testing.T) {
	t.Parallel()

	r := NewResolver(DefaultTables(), 1)

	_, err := r.Resolve(map[string]any{"times": []any{3}}, nil)
	assert.ErrorIs(t, err, ErrUnknownBucket)

	_, err = r.Resolve(map[string]any{"times": map[string]any{"DAY": true}}, nil)
	assert.ErrorIs(t, err, ErrUnknownBucket)

	conds, err := r.Resolve(map[string]any{"times": "MIDDAY"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []enum.TimeType{enum.TimeNoon}, conds[0].Times())
}

func TestMoonPhase(t *testing.T) {
	t.Parallel()

	for step := 0; step < MoonCycleSteps; step++ {
		moons, err := MoonPhase(step)
		require.NoError(t, err)
		if step%2 == 0 {
			assert.Len(t, moons, 1, "step %d", step)
		} else {
			assert.Len(t, moons, 2, "step %d", step)
			prev, _ := MoonPhase(step - 1)
			next, _ := MoonPhase((step + 1) % MoonCycleSteps)
			assert.Equal(t, []enum.MoonType{prev[0], next[0]}, moons, "step %d", step)
		}
	}

	full, err := MoonPhase(0)
	require.NoError(t, err)
	assert.Equal(t, []enum.MoonType{enum.MoonFull}, full)

	_, err = MoonPhase(8)
	assert.ErrorIs(t, err, ErrUnknownBucket)
}
