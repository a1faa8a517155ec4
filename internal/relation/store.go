// Package relation keeps manually authored spawn relations per species.
package relation

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"strconv"

	"github.com/momentum-xyz/spawnschema/internal/logger"
	"github.com/momentum-xyz/spawnschema/internal/world"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var log = logger.L()

var relationsBucket = []byte("Relations")

type Store interface {
	// Add appends r to the relations of the species.
	Add(speciesID int, r world.SpawnRelation) error
	Get(speciesID int) ([]world.SpawnRelation, error)
	All() (map[int][]world.SpawnRelation, error)
	// Import replaces the relations of every species present in the document and
	// returns how many species it wrote.
	Import(r io.Reader) (int, error)
	Export(w io.Writer) error
	Close() error
}

var _ Store = (*store)(nil)

type store struct {
	db *bbolt.DB
}

func Open(file string) (Store, error) {
	db, err := bbolt.Open(file, 0666, nil)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to open relation store %s", file)
	}
	err = db.Update(
		func(tx *bbolt.Tx) error {
			if _, err := tx.CreateBucketIfNotExists(relationsBucket); err != nil {
				return errors.WithMessage(err, "failed to create bucket")
			}
			return nil
		},
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &store{db: db}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

func (s *store) Add(speciesID int, r world.SpawnRelation) error {
	if speciesID <= 0 {
		return errors.Errorf("invalid species id %d", speciesID)
	}
	return s.db.Update(
		func(tx *bbolt.Tx) error {
			b := tx.Bucket(relationsBucket)
			list, err := decode(b.Get(key(speciesID)))
			if err != nil {
				return errors.WithMessagef(err, "species %d", speciesID)
			}
			return put(b, speciesID, append(list, r))
		},
	)
}

func (s *store) Get(speciesID int) ([]world.SpawnRelation, error) {
	var list []world.SpawnRelation
	err := s.db.View(
		func(tx *bbolt.Tx) (err error) {
			list, err = decode(tx.Bucket(relationsBucket).Get(key(speciesID)))
			return err
		},
	)
	if err != nil {
		return nil, errors.WithMessagef(err, "species %d", speciesID)
	}
	return list, nil
}

func (s *store) All() (map[int][]world.SpawnRelation, error) {
	all := make(map[int][]world.SpawnRelation)
	err := s.db.View(
		func(tx *bbolt.Tx) error {
			return tx.Bucket(relationsBucket).ForEach(
				func(k, v []byte) error {
					id := int(binary.BigEndian.Uint32(k))
					list, err := decode(v)
					if err != nil {
						return errors.WithMessagef(err, "species %d", id)
					}
					all[id] = list
					return nil
				},
			)
		},
	)
	if err != nil {
		return nil, err
	}
	return all, nil
}

// Import reads a {"<species id>": [relations]} document. The document is validated
// completely before anything is written.
func (s *store) Import(r io.Reader) (int, error) {
	var doc map[string][]world.SpawnRelation
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, errors.WithMessage(err, "failed to decode relations")
	}

	byID := make(map[int][]world.SpawnRelation, len(doc))
	for k, list := range doc {
		id, err := strconv.Atoi(k)
		if err != nil || id <= 0 {
			return 0, errors.Errorf("invalid species id %q", k)
		}
		byID[id] = list
	}

	err := s.db.Update(
		func(tx *bbolt.Tx) error {
			b := tx.Bucket(relationsBucket)
			for id, list := range byID {
				if err := put(b, id, list); err != nil {
					return err
				}
			}
			return nil
		},
	)
	if err != nil {
		return 0, err
	}
	log.Infof("relation: imported relations of %d species", len(byID))
	return len(byID), nil
}

func (s *store) Export(w io.Writer) error {
	all, err := s.All()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(all); err != nil {
		return errors.WithMessage(err, "failed to encode relations")
	}
	return nil
}

// key is big endian so ForEach walks species in id order.
func key(speciesID int) []byte {
	k := make([]byte, 4)
	binary.BigEndian.PutUint32(k, uint32(speciesID))
	return k
}

func put(b *bbolt.Bucket, speciesID int, list []world.SpawnRelation) error {
	data, err := json.Marshal(list)
	if err != nil {
		return errors.WithMessagef(err, "failed to encode relations of %d", speciesID)
	}
	return b.Put(key(speciesID), data)
}

func decode(data []byte) ([]world.SpawnRelation, error) {
	if data == nil {
		return nil, nil
	}
	var list []world.SpawnRelation
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.WithMessage(err, "failed to decode stored relations")
	}
	return list, nil
}
