package world

import (
	"encoding/json"
	"testing"

	"github.com/momentum-xyz/spawnschema/internal/enum"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorld_GeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[uuid.UUID]struct{})
	for i := 0; i < 100; i++ {
		w, err := NewWorld(BBox{8.1, 49.9, 8.7, 50.2})
		require.NoError(t, err)

		_, err = uuid.Parse(w.ID().String())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, w.ID())

		_, dup := seen[w.ID()]
		require.False(t, dup, "generated id %s repeated", w.ID())
		seen[w.ID()] = struct{}{}
	}
}

func TestNewWorld_Defaults(t *testing.T) {
	t.Parallel()

	w, err := NewWorld(BBox{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, FormatVersion, w.Version())
	assert.True(t, w.Supported())
	assert.Positive(t, w.Timestamp())
	assert.Empty(t, w.Points())
	assert.Equal(t, BBox{1, 2, 3, 4}, w.BBox())
}

func TestNewWorld_ID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		want    string
		wantErr bool
	}{
		{name: "canonical", id: "86229140-93a5-4206-ab3b-75713c38f6a6", want: "86229140-93a5-4206-ab3b-75713c38f6a6"},
		{name: "upper case is normalized", id: "86229140-93A5-4206-AB3B-75713C38F6A6", want: "86229140-93a5-4206-ab3b-75713c38f6a6"},
		{name: "braced", id: "{86229140-93a5-4206-ab3b-75713c38f6a6}", want: "86229140-93a5-4206-ab3b-75713c38f6a6"},
		{name: "garbage", id: "not-a-uuid", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := NewWorld(BBox{}, WithID(tt.id))
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidUUID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, w.ID().String())
		})
	}
}

func TestWorld_JSONShape(t *testing.T) {
	t.Parallel()

	poi, err := NewPointOfInterest("SHOP_BALLS", Point{8.5, 50.1}, "URBAN", 12)
	require.NoError(t, err)
	street, err := NewStreet(enum.StreetPath, Point{0, 0}, Point{1, 1})
	require.NoError(t, err)
	area, err := NewArea("3", []Point{{0, 0}, {0, 1}, {1, 1}}, enum.SpawnCave)
	require.NoError(t, err)

	w, err := NewWorld(
		BBox{0, 0, 1, 1},
		WithID("86229140-93a5-4206-ab3b-75713c38f6a6"),
		WithTimestamp(1650000000),
		WithPoints(poi),
		WithStreets(street),
		WithAreas(area),
	)
	require.NoError(t, err)

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"uuid": "86229140-93a5-4206-ab3b-75713c38f6a6",
		"bbox": [0, 0, 1, 1],
		"timestamp": 1650000000,
		"version": 1,
		"points": [{"type": 13, "point": [8.5, 50.1], "spawns": [37, 12]}],
		"streets": [{"type": 3, "points": [[0, 0], [1, 1]]}],
		"areas": [{"type": 3, "points": [[0, 0], [0, 1], [1, 1]], "spawns": [4]}]
	}`, string(data))

	var decoded World
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, w.ID(), decoded.ID())
	assert.Equal(t, w.Points(), decoded.Points())
	assert.Equal(t, w.Streets(), decoded.Streets())
	assert.Equal(t, w.Areas(), decoded.Areas())
}

func TestWorld_UnmarshalDefaults(t *testing.T) {
	t.Parallel()

	var w World
	require.NoError(t, json.Unmarshal([]byte(`{"bbox": [1, 2, 3, 4]}`), &w))
	assert.NotEqual(t, uuid.Nil, w.ID())
	assert.Equal(t, FormatVersion, w.Version())

	err := json.Unmarshal([]byte(`{"bbox": [0, 0, 0, 0], "points": [{"type": 99, "point": [0, 0], "spawns": []}]}`), &w)
	assert.True(t, errors.Is(err, ErrInvalidEnum))
}

func TestNewPointOfInterest_RejectsUnknownSpawn(t *testing.T) {
	t.Parallel()

	_, err := NewPointOfInterest(enum.POIDojo, Point{}, "FOREST", "SWAMP")
	assert.True(t, errors.Is(err, ErrInvalidEnum))
}
