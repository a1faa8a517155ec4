package world

import (
	"encoding/json"

	"github.com/momentum-xyz/spawnschema/internal/enum"

	"github.com/pkg/errors"
)

// SpawnRelation binds a species to a spawn surface with a base probability.
// Conditions run from most general to most specific; the last match wins.
type SpawnRelation struct {
	spawnArea   enum.SpawnType
	probability float64
	conditions  []Condition
}

// NewSpawnRelation requires a probability in [0,1]. Without conditions the relation
// gets a single AnyCondition.
func NewSpawnRelation(spawnArea any, probability float64, conditions ...Condition) (SpawnRelation, error) {
	area, err := resolve(enum.SpawnTypes, spawnArea)
	if err != nil {
		return SpawnRelation{}, err
	}
	if probability < 0 || probability > 1 {
		return SpawnRelation{}, errors.Errorf("spawn probability %v out of [0,1]", probability)
	}
	if len(conditions) == 0 {
		conditions = []Condition{AnyCondition()}
	}
	return SpawnRelation{
		spawnArea:   area,
		probability: probability,
		conditions:  append([]Condition(nil), conditions...),
	}, nil
}

func (r SpawnRelation) SpawnArea() enum.SpawnType {
	return r.spawnArea
}

func (r SpawnRelation) Probability() float64 {
	return r.probability
}

func (r SpawnRelation) Conditions() []Condition {
	return append([]Condition(nil), r.conditions...)
}

// Evaluate walks the conditions in order and returns the probability scaled by the
// modifier of the last matching one. ok is false when nothing matches.
func (r SpawnRelation) Evaluate(env Environment) (probability float64, ok bool) {
	for _, c := range r.conditions {
		if c.Matches(env) {
			probability, ok = r.probability*c.modifier, true
		}
	}
	return probability, ok
}

type spawnRelationJSON struct {
	SpawnArea   enum.SpawnType `json:"spawn_area"`
	Probability float64        `json:"probability"`
	Conditions  []Condition    `json:"conditions"`
}

func (r SpawnRelation) MarshalJSON() ([]byte, error) {
	return json.Marshal(spawnRelationJSON{
		SpawnArea:   r.spawnArea,
		Probability: r.probability,
		Conditions:  nonNil(r.conditions),
	})
}

func (r *SpawnRelation) UnmarshalJSON(data []byte) error {
	var raw spawnRelationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithMessage(err, "failed to decode spawn relation")
	}
	parsed, err := NewSpawnRelation(raw.SpawnArea, raw.Probability, raw.Conditions...)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
