package world

import (
	"encoding/json"

	"github.com/momentum-xyz/spawnschema/internal/enum"

	"github.com/pkg/errors"
)

// Point is a 2-D map coordinate.
type Point [2]float64

type PointOfInterest struct {
	kind   enum.POIType
	point  Point
	spawns []enum.SpawnType
}

// NewPointOfInterest accepts the type and spawn surfaces either as codes or as names.
func NewPointOfInterest(kind any, point Point, spawns ...any) (PointOfInterest, error) {
	k, err := resolve(enum.POITypes, kind)
	if err != nil {
		return PointOfInterest{}, err
	}
	s, err := resolveAll(enum.SpawnTypes, spawns)
	if err != nil {
		return PointOfInterest{}, err
	}
	return PointOfInterest{kind: k, point: point, spawns: s}, nil
}

func (p PointOfInterest) Type() enum.POIType {
	return p.kind
}

func (p PointOfInterest) Point() Point {
	return p.point
}

func (p PointOfInterest) Spawns() []enum.SpawnType {
	return append([]enum.SpawnType(nil), p.spawns...)
}

type poiJSON struct {
	Type   enum.POIType     `json:"type"`
	Point  Point            `json:"point"`
	Spawns []enum.SpawnType `json:"spawns"`
}

func (p PointOfInterest) MarshalJSON() ([]byte, error) {
	return json.Marshal(poiJSON{Type: p.kind, Point: p.point, Spawns: nonNil(p.spawns)})
}

func (p *PointOfInterest) UnmarshalJSON(data []byte) error {
	var raw poiJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithMessage(err, "failed to decode point of interest")
	}
	parsed, err := NewPointOfInterest(raw.Type, raw.Point, toAny(raw.Spawns)...)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Street is a polyline; a usable path has at least two points.
type Street struct {
	kind   enum.StreetType
	points []Point
}

func NewStreet(kind any, points ...Point) (Street, error) {
	k, err := resolve(enum.StreetTypes, kind)
	if err != nil {
		return Street{}, err
	}
	return Street{kind: k, points: append([]Point(nil), points...)}, nil
}

func (s Street) Type() enum.StreetType {
	return s.kind
}

func (s Street) Points() []Point {
	return append([]Point(nil), s.points...)
}

type streetJSON struct {
	Type   enum.StreetType `json:"type"`
	Points []Point         `json:"points"`
}

func (s Street) MarshalJSON() ([]byte, error) {
	return json.Marshal(streetJSON{Type: s.kind, Points: nonNil(s.points)})
}

func (s *Street) UnmarshalJSON(data []byte) error {
	var raw streetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithMessage(err, "failed to decode street")
	}
	parsed, err := NewStreet(raw.Type, raw.Points...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Area is a polygon boundary with the spawn surfaces found inside it.
type Area struct {
	kind   enum.AreaType
	points []Point
	spawns []enum.SpawnType
}

func NewArea(kind any, points []Point, spawns ...any) (Area, error) {
	k, err := resolve(enum.AreaTypes, kind)
	if err != nil {
		return Area{}, err
	}
	s, err := resolveAll(enum.SpawnTypes, spawns)
	if err != nil {
		return Area{}, err
	}
	return Area{kind: k, points: append([]Point(nil), points...), spawns: s}, nil
}

func (a Area) Type() enum.AreaType {
	return a.kind
}

func (a Area) Points() []Point {
	return append([]Point(nil), a.points...)
}

func (a Area) Spawns() []enum.SpawnType {
	return append([]enum.SpawnType(nil), a.spawns...)
}

type areaJSON struct {
	Type   enum.AreaType    `json:"type"`
	Points []Point          `json:"points"`
	Spawns []enum.SpawnType `json:"spawns"`
}

func (a Area) MarshalJSON() ([]byte, error) {
	return json.Marshal(areaJSON{Type: a.kind, Points: nonNil(a.points), Spawns: nonNil(a.spawns)})
}

func (a *Area) UnmarshalJSON(data []byte) error {
	var raw areaJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithMessage(err, "failed to decode area")
	}
	parsed, err := NewArea(raw.Type, raw.Points, toAny(raw.Spawns)...)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func resolve[T ~int](r *enum.Registry[T], value any) (T, error) {
	v, err := r.ResolveStrict(value)
	if err != nil {
		return 0, errors.WithMessage(ErrInvalidEnum, err.Error())
	}
	return v, nil
}

func resolveAll[T ~int](r *enum.Registry[T], values []any) ([]T, error) {
	out := make([]T, 0, len(values))
	for _, value := range values {
		v, err := resolve(r, value)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toAny[T any](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
