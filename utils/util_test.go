package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF64FromMap(t *testing.T) {
	m := map[string]interface{}{
		"a": 1.0,
		"b": "2",
		"c": "3",
	}
	def := 4.44
	tests := []struct {
		name     string
		input    map[string]any
		key      string
		expected float64
	}{
		{
			name:     "float",
			input:    m,
			key:      "a",
			expected: 1.0,
		},
		{
			name:     "string is not a number",
			input:    m,
			key:      "b",
			expected: def,
		},
		{
			name:     "missing",
			input:    m,
			key:      "z",
			expected: def,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := F64FromMap(test.input, test.key, def)
			if actual != test.expected {
				t.Errorf("expected %v, got %v", test.expected, actual)
			}
		})
	}
}

func TestIntFromMap(t *testing.T) {
	m := map[string]any{
		"minLevel": 5.0,
		"rarity":   12.5,
		"native":   7,
		"name":     "bulbasaur",
	}

	assert.Equal(t, 5, IntFromMap(m, "minLevel", -1))
	assert.Equal(t, -1, IntFromMap(m, "rarity", -1))
	assert.Equal(t, 7, IntFromMap(m, "native", -1))
	assert.Equal(t, -1, IntFromMap(m, "name", -1))
	assert.Equal(t, -1, IntFromMap(m, "maxLevel", -1))
}

func TestNestedFromMap(t *testing.T) {
	m := map[string]any{
		"condition": map[string]any{"times": []any{"DAY"}},
		"heldItems": []any{
			map[string]any{"itemID": "pixelmon:oran_berry", "percentChance": 5.0},
			"garbage",
		},
		"typeID": "pokemon",
	}

	assert.Equal(t, []any{"DAY"}, MapFromMap(m, "condition")["times"])
	assert.Nil(t, MapFromMap(m, "anticondition"))
	assert.Nil(t, MapFromMap(m, "typeID"))

	items := ObjectsFromMap(m, "heldItems")
	assert.Len(t, items, 1)
	assert.Equal(t, "pixelmon:oran_berry", StringFromMap(items[0], "itemID", ""))
	assert.Empty(t, ObjectsFromMap(m, "missing"))
}
