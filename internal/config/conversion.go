package config

import (
	"github.com/pkg/errors"
)

// Conversion is the policy of the spawn converter. SpawnAreas, ConditionIndex and
// WeatherMapping are placeholders until the source data can drive them.
type Conversion struct {
	MaxRarity      float64 `yaml:"max_rarity" envconfig:"CONVERSION_MAX_RARITY"`
	RarityRounding int     `yaml:"rarity_rounding" envconfig:"CONVERSION_RARITY_ROUNDING"`
	// Species ids in [SkipFrom, SkipTo] and in SkipIDs are not converted.
	SkipFrom       int    `yaml:"skip_from" envconfig:"CONVERSION_SKIP_FROM"`
	SkipTo         int    `yaml:"skip_to" envconfig:"CONVERSION_SKIP_TO"`
	SkipIDs        []int  `yaml:"skip_ids" envconfig:"CONVERSION_SKIP_IDS"`
	SpawnAreas     []int  `yaml:"spawn_areas" envconfig:"CONVERSION_SPAWN_AREAS"`
	ConditionIndex int    `yaml:"condition_index" envconfig:"CONVERSION_CONDITION_INDEX"`
	ItemNamespace  string `yaml:"item_namespace" envconfig:"CONVERSION_ITEM_NAMESPACE"`
	CreatureType   string `yaml:"creature_type" envconfig:"CONVERSION_CREATURE_TYPE"`
	SourceRetries  int    `yaml:"source_retries" envconfig:"CONVERSION_SOURCE_RETRIES"`
	// Source weather bucket -> canonical weather names or codes. Empty keeps the
	// placeholder table that maps every bucket to nothing.
	WeatherMapping map[string][]string `yaml:"weather_mapping" ignored:"true"`

	ReportUnknownItems       bool `yaml:"report_unknown_items" envconfig:"CONVERSION_REPORT_UNKNOWN_ITEMS"`
	ReportUnknownSpec        bool `yaml:"report_unknown_spec" envconfig:"CONVERSION_REPORT_UNKNOWN_SPEC"`
	ReportUnknownTags        bool `yaml:"report_unknown_tags" envconfig:"CONVERSION_REPORT_UNKNOWN_TAGS"`
	ReportUnknownMultipliers bool `yaml:"report_unknown_multipliers" envconfig:"CONVERSION_REPORT_UNKNOWN_MULTIPLIERS"`
}

func (x *Conversion) Init() {
	x.MaxRarity = 300.0
	x.RarityRounding = 5
	x.SkipFrom = 650
	x.SkipTo = 1023
	x.SkipIDs = []int{}
	x.SpawnAreas = []int{1337}
	x.ConditionIndex = 1337
	x.ItemNamespace = "pixelmon:"
	x.CreatureType = "pokemon"
	x.SourceRetries = 2
}

func (x *Conversion) Skipped(id int) bool {
	if id >= x.SkipFrom && id <= x.SkipTo {
		return true
	}
	for _, s := range x.SkipIDs {
		if s == id {
			return true
		}
	}
	return false
}

func (x *Conversion) Validate() error {
	if x.MaxRarity <= 0 {
		return errors.Errorf("max_rarity must be positive, got %v", x.MaxRarity)
	}
	if x.RarityRounding < 0 {
		return errors.Errorf("rarity_rounding must not be negative, got %d", x.RarityRounding)
	}
	if x.SourceRetries < 0 {
		return errors.Errorf("source_retries must not be negative, got %d", x.SourceRetries)
	}
	return nil
}
