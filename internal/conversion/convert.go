// Package conversion converts third-party spawn sets into canonical spawn records.
package conversion

import (
	"math"

	"github.com/momentum-xyz/spawnschema/internal/condition"
	"github.com/momentum-xyz/spawnschema/internal/config"
	"github.com/momentum-xyz/spawnschema/internal/enum"
	"github.com/momentum-xyz/spawnschema/internal/item"
	"github.com/momentum-xyz/spawnschema/internal/logger"
	"github.com/momentum-xyz/spawnschema/utils"

	"github.com/pkg/errors"
)

var ErrMalformedEntry = errors.New("malformed spawn entry")

var log = logger.L()

type Converter struct {
	policy     config.Conversion
	items      *item.Resolver
	conditions *condition.Resolver
	workers    int
}

// NewConverter builds the condition tables from the policy; a configured weather
// mapping replaces the placeholder table.
func NewConverter(policy config.Conversion, items *item.Resolver, workers int) (*Converter, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	tables := condition.DefaultTables()
	if len(policy.WeatherMapping) > 0 {
		weathers, err := condition.ParseMapping(enum.WeatherTypes, policy.WeatherMapping)
		if err != nil {
			return nil, errors.WithMessage(err, "failed to parse weather mapping")
		}
		tables.Weathers = weathers
	} else {
		log.Warn("conversion: weather mapping is a placeholder, weather constraints resolve to nothing")
	}

	return &Converter{
		policy:     policy,
		items:      items,
		conditions: condition.NewResolver(tables, policy.ConditionIndex),
		workers:    workers,
	}, nil
}

// SpawnProbability normalizes a source rarity. The result is not clamped.
func (c *Converter) SpawnProbability(rarity float64) float64 {
	return round(rarity/c.policy.MaxRarity, c.policy.RarityRounding)
}

// FemaleProbability derives the female share from a male percentage in [0,100]
// or UnknownGender.
func FemaleProbability(malePercent float64) float64 {
	if malePercent == UnknownGender {
		return UnknownGender
	}
	return 1 - malePercent/100
}

// HeldItems keeps the items with a positive chance that map to a canonical id.
// The chance is checked first so disabled items never reach the mapping.
func (c *Converter) HeldItems(speciesID int, raw []map[string]any) []HeldItem {
	out := make([]HeldItem, 0, len(raw))
	for _, entry := range raw {
		chance := utils.F64FromMap(entry, "percentChance", 0)
		if chance <= 0 {
			continue
		}
		id := utils.StringFromMap(entry, "itemID", "")
		mapped, ok := c.items.Map(id)
		if !ok {
			if c.policy.ReportUnknownItems {
				log.Warnf("conversion: unknown item id %q for %d", id, speciesID)
			}
			continue
		}
		out = append(out, HeldItem{Item: mapped, Probability: chance / 100})
	}
	return out
}

// ConvertSpawnInfo converts the spawn entries of one species. malePercent is the raw
// stats value. Unknown keys and unexpected fields are logged; an unexpected type tag
// drops the entry. Any entry error fails the whole species.
func (c *Converter) ConvertSpawnInfo(speciesID int, name string, malePercent float64, entries []map[string]any) ([]Record, int, error) {
	female := FemaleProbability(malePercent)
	records := make([]Record, 0, len(entries))
	rejected := 0

	for i, entry := range entries {
		c.reportKeys(speciesID, entry)

		if typeID := utils.StringFromMap(entry, "typeID", c.policy.CreatureType); typeID != c.policy.CreatureType {
			log.Warnf("conversion: unknown typeID %q for %d, entry %d dropped", typeID, speciesID, i)
			rejected++
			continue
		}

		rec, err := c.convertEntry(speciesID, entry, female)
		if err != nil {
			return nil, rejected, errors.WithMessagef(err, "species %d entry %d", speciesID, i)
		}
		records = append(records, rec)

		c.reportExtras(speciesID, name, entry)
	}
	return records, rejected, nil
}

func (c *Converter) convertEntry(speciesID int, entry map[string]any, female float64) (Record, error) {
	minLevel, err := requiredInt(entry, "minLevel")
	if err != nil {
		return Record{}, err
	}
	maxLevel, err := requiredInt(entry, "maxLevel")
	if err != nil {
		return Record{}, err
	}
	rarity, ok := entry["rarity"].(float64)
	if !ok {
		return Record{}, errors.WithMessage(ErrMalformedEntry, "missing or non-numeric rarity")
	}

	conds, err := c.conditions.Resolve(utils.MapFromMap(entry, "condition"), utils.MapFromMap(entry, "anticondition"))
	if err != nil {
		return Record{}, err
	}

	return Record{
		Form:              DefaultForm,
		MinLevel:          minLevel,
		MaxLevel:          maxLevel,
		HeldItems:         c.HeldItems(speciesID, utils.ObjectsFromMap(entry, "heldItems")),
		FemaleProbability: female,
		SpawnAreas:        append([]int(nil), c.policy.SpawnAreas...),
		Conditions:        conds,
		Probability:       c.SpawnProbability(rarity),
	}, nil
}

func (c *Converter) reportKeys(speciesID int, entry map[string]any) {
	for _, k := range spawnInfoKeys.unknown(entry) {
		logUnknownKey("key", k, spawnInfoKeys.suggest(k), speciesID)
	}
	for _, obj := range []map[string]any{utils.MapFromMap(entry, "condition"), utils.MapFromMap(entry, "anticondition")} {
		for _, k := range conditionKeys.unknown(obj) {
			logUnknownKey("condition key", k, conditionKeys.suggest(k), speciesID)
		}
	}
}

func logUnknownKey(what, key, suggestion string, speciesID int) {
	if suggestion != "" {
		log.Warnf("conversion: unknown %s %q for %d (did you mean %q?)", what, key, speciesID, suggestion)
		return
	}
	log.Warnf("conversion: unknown %s %q for %d", what, key, speciesID)
}

func (c *Converter) reportExtras(speciesID int, name string, entry map[string]any) {
	if c.policy.ReportUnknownSpec {
		if spec, ok := entry["spec"]; ok {
			m, isMap := spec.(map[string]any)
			if !isMap || len(m) != 1 || m["name"] != name {
				log.Debugf("conversion: unknown spec for %s: %v", name, spec)
			}
		}
	}
	if _, ok := entry["rarityMultipliers"]; ok && c.policy.ReportUnknownMultipliers {
		log.Debugf("conversion: rarityMultipliers for %d", speciesID)
	}
	if _, ok := entry["tags"]; ok && c.policy.ReportUnknownTags {
		log.Debugf("conversion: tags for %d", speciesID)
	}
}

func requiredInt(entry map[string]any, key string) (int, error) {
	const missing = math.MinInt
	v := utils.IntFromMap(entry, key, missing)
	if v == missing {
		return 0, errors.WithMessagef(ErrMalformedEntry, "missing or non-integral %s", key)
	}
	return v, nil
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
