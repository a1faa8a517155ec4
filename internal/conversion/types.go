package conversion

import (
	"github.com/momentum-xyz/spawnschema/internal/world"
)

// DefaultForm is written for every record until source forms (seasons, mutations) are
// told apart.
const DefaultForm = 0

// UnknownGender marks a genderless species or one whose ratio is unknown, both as the
// source male percent and as the derived female probability.
const UnknownGender = -1.0

type HeldItem struct {
	Item        int     `json:"item"`
	Probability float64 `json:"probability"`
}

// Record is the canonical form of one source spawn entry.
type Record struct {
	Form              int               `json:"form"`
	MinLevel          int               `json:"min_level"`
	MaxLevel          int               `json:"max_level"`
	HeldItems         []HeldItem        `json:"held_items"`
	FemaleProbability float64           `json:"female_probability"`
	SpawnAreas        []int             `json:"spawn_areas"`
	Conditions        []world.Condition `json:"conditions"`
	Probability       float64           `json:"probability"`
}

type NoSpawn struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Document is the output of a batch run.
type Document struct {
	Spawns   map[int][]Record `json:"spawns"`
	NoSpawns []NoSpawn        `json:"no_spawns"`
	Skipped  []int            `json:"skipped"`
}

type Failure struct {
	ID    int
	Name  string
	Error error
}

// OutOfRange marks a record whose probability left [0,1]. Entry indexes the species'
// record list.
type OutOfRange struct {
	ID          int
	Entry       int
	Probability float64
}

// Report collects what a batch run surfaced without putting it into the Document.
type Report struct {
	Failed     []Failure
	OutOfRange []OutOfRange
	// Rejected counts entries dropped for an unexpected type tag.
	Rejected int
	Records  int
}
