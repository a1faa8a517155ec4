package conversion

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

type keySet map[string]struct{}

func newKeySet(keys ...string) keySet {
	s := make(keySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s keySet) has(k string) bool {
	_, ok := s[k]
	return ok
}

// Top level keys of a source spawn entry.
var spawnInfoKeys = newKeySet(
	"minLevel", "maxLevel", "tags", "spec", "rarityMultipliers", "typeID",
	"stringLocationTypes", "condition", "anticondition", "heldItems", "rarity",
)

// Keys of the condition and anticondition objects.
var conditionKeys = newKeySet(
	"baseBlocks", "dimensions", "maxLightLevel", "stringBiomes", "temperature", "temperatures",
	"minY", "maxY", "neededNearbyBlocks", "weathers", "times",
)

// unknown returns the keys of obj that are not in s, sorted.
func (s keySet) unknown(obj map[string]any) []string {
	var out []string
	for k := range obj {
		if !s.has(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// suggest returns the known key closest to k, or "" when nothing is close enough.
func (s keySet) suggest(k string) string {
	best, bestDist := "", suggestLimit(len(k))+1
	for known := range s {
		d := levenshtein.ComputeDistance(k, known)
		if d < bestDist || (d == bestDist && known < best) {
			best, bestDist = known, d
		}
	}
	if bestDist > suggestLimit(len(k)) {
		return ""
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
