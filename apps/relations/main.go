package main

import (
	// Std
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	// Momentum
	"github.com/momentum-xyz/spawnschema/internal/config"
	"github.com/momentum-xyz/spawnschema/internal/logger"
	"github.com/momentum-xyz/spawnschema/internal/relation"
	"github.com/momentum-xyz/spawnschema/internal/world"

	// Third-Party
	"github.com/pkg/errors"
)

const usage = `usage: relations [options] <command>

commands:
  add <species id> <spawn area> <probability> [condition...]
      condition: "w=..;m=..;t=..;c=..;mod=.." (moons also as phase:0..7)
  list [species id]
  export [file]
  import <file>`

var log = logger.L()

func main() {
	if err := run(); err != nil {
		log.Fatal(errors.WithMessage(err, "error running"))
	}
}

func run() error {
	cfg := config.GetConfig()
	defer logger.Close()

	if len(cfg.Args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return errors.New("no command given")
	}

	store, err := relation.Open(cfg.Settings.RelationsStore)
	if err != nil {
		return err
	}
	defer store.Close()

	cmd, args := cfg.Args[0], cfg.Args[1:]
	switch cmd {
	case "add":
		return add(store, args)
	case "list":
		return list(store, args)
	case "export":
		return export(store, args)
	case "import":
		return importFile(store, args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return errors.Errorf("unknown command %q", cmd)
	}
}

func add(store relation.Store, args []string) error {
	if len(args) < 3 {
		return errors.New("add needs a species id, a spawn area and a probability")
	}
	id, err := speciesID(args[0])
	if err != nil {
		return err
	}
	probability, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return errors.WithMessage(err, "invalid probability")
	}

	r, err := relation.NewRelation(args[1], probability, args[3:]...)
	if err != nil {
		return err
	}
	if err := store.Add(id, r); err != nil {
		return err
	}
	log.Infof("added to %d: %s", id, relation.Describe(r))
	return nil
}

func list(store relation.Store, args []string) error {
	if len(args) > 0 {
		id, err := speciesID(args[0])
		if err != nil {
			return err
		}
		relations, err := store.Get(id)
		if err != nil {
			return err
		}
		printRelations(id, relations)
		return nil
	}

	all, err := store.All()
	if err != nil {
		return err
	}
	ids := make([]int, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		printRelations(id, all[id])
	}
	return nil
}

func printRelations(id int, relations []world.SpawnRelation) {
	for _, r := range relations {
		fmt.Printf("%d: %s\n", id, relation.Describe(r))
	}
}

func export(store relation.Store, args []string) error {
	var w io.Writer = os.Stdout
	if len(args) > 0 {
		f, err := os.Create(args[0])
		if err != nil {
			return errors.WithMessage(err, "failed to create export file")
		}
		defer f.Close()
		w = f
	}
	return store.Export(w)
}

func importFile(store relation.Store, args []string) error {
	if len(args) == 0 {
		return errors.New("import needs a file")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return errors.WithMessage(err, "failed to open import file")
	}
	defer f.Close()

	_, err = store.Import(f)
	return err
}

func speciesID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("invalid species id %q", s)
	}
	return id, nil
}
