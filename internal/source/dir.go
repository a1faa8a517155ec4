// Package source reads species stats and spawn sets from disk and writes conversion output.
package source

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/momentum-xyz/spawnschema/internal/conversion"
	"github.com/momentum-xyz/spawnschema/internal/logger"
	"github.com/momentum-xyz/spawnschema/utils"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	statsSuffix    = ".json"
	spawnSetSuffix = ".set.json"
)

var ErrMalformed = errors.New("malformed source file")

var log = logger.L()

var _ conversion.Source = (*Dir)(nil)

// Dir serves stats files named <id>.json from one directory and spawn sets named
// <Species Name>.set.json from another.
type Dir struct {
	statsDir string
	setDir   string
	// id -> stats file name as discovered, e.g. 7 -> "007.json"
	files *utils.SyncMap[int, string]
}

func NewDir(statsDir, setDir string) *Dir {
	return &Dir{
		statsDir: statsDir,
		setDir:   setDir,
		files:    utils.NewSyncMap[int, string](),
	}
}

// SpeciesIDs returns the ids of the stats files in file name order. When several files
// name the same id ("7.json", "07.json") the first one wins and the others are logged.
func (d *Dir) SpeciesIDs() ([]int, error) {
	entries, err := os.ReadDir(d.statsDir)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to read stats dir %s", d.statsDir)
	}

	ids := make([]int, 0, len(entries))
	seen := make(map[int]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), statsSuffix) {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(e.Name(), statsSuffix))
		if err != nil {
			log.Debugf("source: ignoring %s", e.Name())
			continue
		}
		if first, ok := seen[id]; ok {
			log.Warnf("source: %s names species %d already read from %s, ignoring it", e.Name(), id, first)
			continue
		}
		seen[id] = e.Name()
		ids = append(ids, id)
	}
	for id, name := range seen {
		d.files.Store(id, name)
	}
	log.Infof("source: found %d stats files in %s", len(ids), d.statsDir)
	return ids, nil
}

// Stats reads the file SpeciesIDs found for id, or <id>.json for an id it did not list.
func (d *Dir) Stats(id int) (map[string]any, error) {
	name, ok := d.files.Load(id)
	if !ok {
		name = strconv.Itoa(id) + statsSuffix
	}
	obj, err := readObject(filepath.Join(d.statsDir, name))
	if err != nil {
		return nil, errors.WithMessagef(err, "stats of %d", id)
	}
	return obj, nil
}

// SpawnSet looks for the set file under the Unicode title cased name first and then
// under the name with every letter after a non-letter upper cased ("Farfetch'D").
func (d *Dir) SpawnSet(name string) (map[string]any, bool, error) {
	for _, file := range spawnSetFileNames(name) {
		obj, err := readObject(filepath.Join(d.setDir, file))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, false, errors.WithMessagef(err, "spawn set of %s", name)
		}
		return obj, true, nil
	}
	return nil, false, nil
}

// SpawnSetFileName title cases every word of the species name.
func SpawnSetFileName(name string) string {
	return cases.Title(language.Und).String(name) + spawnSetSuffix
}

func spawnSetFileNames(name string) []string {
	names := []string{SpawnSetFileName(name)}
	if alt := capitalizeWords(name) + spawnSetSuffix; alt != names[0] {
		names = append(names, alt)
	}
	return names
}

// capitalizeWords upper cases every letter that follows a non-letter and lower cases
// the rest.
func capitalizeWords(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		if unicode.IsLetter(r) {
			if prevLetter {
				out[i] = unicode.ToLower(r)
			} else {
				out[i] = unicode.ToUpper(r)
			}
			prevLetter = true
			continue
		}
		prevLetter = false
	}
	return string(out)
}

func readObject(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, errors.WithMessagef(ErrMalformed, "%s: %v", path, err)
	}
	if obj == nil {
		return nil, errors.WithMessagef(ErrMalformed, "%s: not a JSON object", path)
	}
	return obj, nil
}

// WriteDocument writes the conversion output as indented JSON.
func WriteDocument(path string, doc *conversion.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "failed to encode document")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.WithMessagef(err, "failed to write %s", path)
	}
	log.Infof("source: wrote %d species to %s", len(doc.Spawns), path)
	return nil
}
