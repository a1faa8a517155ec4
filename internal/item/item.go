// Package item maps source item identifiers onto canonical numeric item ids.
package item

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/momentum-xyz/spawnschema/internal/logger"

	"github.com/pkg/errors"
)

// DefaultNamespace is the prefix source data puts in front of its own item ids.
const DefaultNamespace = "pixelmon:"

var log = logger.L()

// Table is the item id -> canonical id lookup, loaded once and read-only afterwards.
type Table map[string]int

func LoadTable(r io.Reader) (Table, error) {
	var t Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.WithMessage(err, "failed to decode item mapping")
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}

func LoadTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to open item mapping")
	}
	defer f.Close()

	t, err := LoadTable(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "file %s", path)
	}
	log.Infof("item: loaded %d item mappings from %s", len(t), path)
	return t, nil
}

type Resolver struct {
	table     Table
	namespace string
}

func NewResolver(table Table, namespace string) *Resolver {
	return &Resolver{table: table, namespace: namespace}
}

// Map looks the id up as is, then with the namespace prefix stripped.
func (r *Resolver) Map(id string) (int, bool) {
	if v, ok := r.table[id]; ok {
		return v, true
	}
	if r.namespace != "" {
		if v, ok := r.table[strings.TrimPrefix(id, r.namespace)]; ok {
			return v, true
		}
	}
	return 0, false
}

func (r *Resolver) Len() int {
	return len(r.table)
}
