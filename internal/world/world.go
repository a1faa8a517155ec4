// Package world is the canonical, versioned schema that world-generation consumers read:
// a World with its points of interest, streets and areas, plus the spawn relations and
// conditions that gate where creatures appear.
//
// Records are built through constructors, which coerce and validate their inputs; after
// that they are read-only. JSON decoding goes through the same constructors.
package world

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// FormatVersion is the schema version written by this package.
const FormatVersion = 1

var (
	ErrInvalidUUID = errors.New("invalid world uuid")
	ErrInvalidEnum = errors.New("invalid enum value")
)

// BBox is min lon, min lat, max lon, max lat.
type BBox [4]float64

type World struct {
	id        uuid.UUID
	bbox      BBox
	timestamp int64
	version   int
	points    []PointOfInterest
	streets   []Street
	areas     []Area
}

type Option func(w *World) error

// WithID sets the world id from its string form. An empty string keeps the generated id.
func WithID(id string) Option {
	return func(w *World) error {
		if id == "" {
			return nil
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return errors.WithMessagef(ErrInvalidUUID, "%q: %s", id, err)
		}
		w.id = parsed
		return nil
	}
}

func WithUUID(id uuid.UUID) Option {
	return func(w *World) error {
		if id == uuid.Nil {
			return errors.WithMessage(ErrInvalidUUID, "nil uuid")
		}
		w.id = id
		return nil
	}
}

func WithTimestamp(ts int64) Option {
	return func(w *World) error {
		w.timestamp = ts
		return nil
	}
}

func WithVersion(v int) Option {
	return func(w *World) error {
		w.version = v
		return nil
	}
}

func WithPoints(points ...PointOfInterest) Option {
	return func(w *World) error {
		w.points = append(w.points, points...)
		return nil
	}
}

func WithStreets(streets ...Street) Option {
	return func(w *World) error {
		w.streets = append(w.streets, streets...)
		return nil
	}
}

func WithAreas(areas ...Area) Option {
	return func(w *World) error {
		w.areas = append(w.areas, areas...)
		return nil
	}
}

// NewWorld builds a world extract. Without WithID/WithUUID a random id is generated;
// the timestamp defaults to now and the version to FormatVersion.
func NewWorld(bbox BBox, opts ...Option) (*World, error) {
	w := &World{
		id:        uuid.New(),
		bbox:      bbox,
		timestamp: time.Now().Round(time.Second).Unix(),
		version:   FormatVersion,
		points:    make([]PointOfInterest, 0),
		streets:   make([]Street, 0),
		areas:     make([]Area, 0),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *World) ID() uuid.UUID {
	return w.id
}

func (w *World) BBox() BBox {
	return w.bbox
}

func (w *World) Timestamp() int64 {
	return w.timestamp
}

func (w *World) Version() int {
	return w.version
}

// Supported reports whether a reader of FormatVersion understands this world.
func (w *World) Supported() bool {
	return w.version <= FormatVersion
}

func (w *World) Points() []PointOfInterest {
	return append([]PointOfInterest(nil), w.points...)
}

func (w *World) Streets() []Street {
	return append([]Street(nil), w.streets...)
}

func (w *World) Areas() []Area {
	return append([]Area(nil), w.areas...)
}

type worldJSON struct {
	UUID      string            `json:"uuid"`
	BBox      BBox              `json:"bbox"`
	Timestamp int64             `json:"timestamp"`
	Version   int               `json:"version"`
	Points    []PointOfInterest `json:"points"`
	Streets   []Street          `json:"streets"`
	Areas     []Area            `json:"areas"`
}

func (w *World) MarshalJSON() ([]byte, error) {
	return json.Marshal(worldJSON{
		UUID:      w.id.String(),
		BBox:      w.bbox,
		Timestamp: w.timestamp,
		Version:   w.version,
		Points:    nonNil(w.points),
		Streets:   nonNil(w.streets),
		Areas:     nonNil(w.areas),
	})
}

// UnmarshalJSON decodes a world. Missing uuid, timestamp or version fall back to the
// NewWorld defaults.
func (w *World) UnmarshalJSON(data []byte) error {
	var raw struct {
		worldJSON
		Timestamp *int64 `json:"timestamp"`
		Version   *int   `json:"version"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WithMessage(err, "failed to decode world")
	}

	opts := []Option{
		WithID(raw.UUID),
		WithPoints(raw.Points...),
		WithStreets(raw.Streets...),
		WithAreas(raw.Areas...),
	}
	if raw.Timestamp != nil {
		opts = append(opts, WithTimestamp(*raw.Timestamp))
	}
	if raw.Version != nil {
		opts = append(opts, WithVersion(*raw.Version))
	}

	parsed, err := NewWorld(raw.BBox, opts...)
	if err != nil {
		return err
	}
	*w = *parsed
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return make([]T, 0)
	}
	return s
}
