package conversion

import (
	"context"
	"sort"
	"time"

	"github.com/momentum-xyz/spawnschema/utils"

	"github.com/eapache/queue"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Source supplies already parsed per-species JSON objects.
type Source interface {
	// SpeciesIDs lists the species with a stats file, in stats file name order.
	SpeciesIDs() ([]int, error)
	Stats(id int) (map[string]any, error)
	// SpawnSet loads the spawn set of a species by name; ok is false when there is none.
	SpawnSet(name string) (set map[string]any, ok bool, err error)
}

type outcome int

const (
	outcomeIgnored outcome = iota
	outcomeSkipped
	outcomeNoSpawn
	outcomeConverted
	outcomeFailed
)

type job struct {
	pos     int
	id      int
	attempt int
}

type result struct {
	outcome    outcome
	id         int
	name       string
	err        error
	rejected   int
	records    int
	outOfRange []OutOfRange
}

// retryDelay is the pause before species with a temporary source error are read again.
const retryDelay = 50 * time.Millisecond

// ConvertAll converts every species of src. Species are independent: a failing species
// lands in Report.Failed and the rest of the batch goes on. A species whose source read
// fails with a temporary error (one with Temporary() == true, such as too many open
// files) goes back on the queue up to policy.SourceRetries times. Only listing errors
// and context cancellation abort the run.
func (c *Converter) ConvertAll(ctx context.Context, src Source) (*Document, *Report, error) {
	ids, err := src.SpeciesIDs()
	if err != nil {
		return nil, nil, errors.WithMessage(err, "failed to list species")
	}

	jobs := queue.New()
	for pos, id := range ids {
		jobs.Add(job{pos: pos, id: id})
	}

	spawns := utils.NewSyncMap[int, []Record]()
	results := make([]result, len(ids))

	for round := 0; jobs.Length() > 0; round++ {
		if round > 0 {
			log.Infof("conversion: retrying %d species", jobs.Length())
			select {
			case <-ctx.Done():
				return nil, nil, errors.WithMessage(ctx.Err(), "conversion interrupted")
			case <-time.After(retryDelay):
			}
		}
		if err := c.runRound(ctx, src, jobs, results, spawns); err != nil {
			return nil, nil, errors.WithMessage(err, "conversion interrupted")
		}
	}

	doc := &Document{
		Spawns:   spawns.Snapshot(),
		NoSpawns: make([]NoSpawn, 0),
		Skipped:  make([]int, 0),
	}
	report := &Report{}
	for _, r := range results {
		switch r.outcome {
		case outcomeSkipped:
			doc.Skipped = append(doc.Skipped, r.id)
		case outcomeNoSpawn:
			doc.NoSpawns = append(doc.NoSpawns, NoSpawn{ID: r.id, Name: r.name})
		case outcomeFailed:
			log.Errorf("conversion: species %d %s failed: %v", r.id, r.name, r.err)
			report.Failed = append(report.Failed, Failure{ID: r.id, Name: r.name, Error: r.err})
		}
		report.Rejected += r.rejected
		report.Records += r.records
		report.OutOfRange = append(report.OutOfRange, r.outOfRange...)
	}

	log.Infof("conversion: %d species converted, %d records, %d without spawns, %d skipped, %d failed",
		len(doc.Spawns), report.Records, len(doc.NoSpawns), len(doc.Skipped), len(report.Failed))
	return doc, report, nil
}

// runRound drains jobs with up to c.workers species in flight and puts the species to
// retry back on jobs, in input order.
func (c *Converter) runRound(ctx context.Context, src Source, jobs *queue.Queue, results []result, spawns *utils.SyncMap[int, []Record]) error {
	limit := c.workers
	if limit < 1 {
		limit = 1
	}
	retry := utils.NewSyncMap[int, job]()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for jobs.Length() > 0 {
		j := jobs.Remove().(job)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := c.convertSpecies(src, j.id, spawns)
			if r.outcome == outcomeFailed && temporary(r.err) && j.attempt < c.policy.SourceRetries {
				log.Warnf("conversion: species %d: %v, will retry", j.id, r.err)
				j.attempt++
				retry.Store(j.pos, j)
				return nil
			}
			results[j.pos] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	pending := retry.Snapshot()
	positions := make([]int, 0, len(pending))
	for pos := range pending {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	for _, pos := range positions {
		jobs.Add(pending[pos])
	}
	return nil
}

func temporary(err error) bool {
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}

func (c *Converter) convertSpecies(src Source, id int, spawns *utils.SyncMap[int, []Record]) result {
	if id == 0 {
		return result{outcome: outcomeIgnored, id: id}
	}
	if c.policy.Skipped(id) {
		return result{outcome: outcomeSkipped, id: id}
	}

	stats, err := src.Stats(id)
	if err != nil {
		return failed(id, "", err)
	}
	name := utils.StringFromMap(stats, "pokemon", "")
	if name == "" {
		return failed(id, "", errors.WithMessage(ErrMalformedEntry, "stats without species name"))
	}

	set, ok, err := src.SpawnSet(name)
	if err != nil {
		return failed(id, name, err)
	}
	if !ok {
		log.Debugf("conversion: no spawn set for %d %s", id, name)
		return result{outcome: outcomeNoSpawn, id: id, name: name}
	}

	entries, err := spawnInfos(set)
	if err != nil {
		return failed(id, name, err)
	}

	malePercent := utils.F64FromMap(stats, "malePercent", UnknownGender)
	if _, ok := stats["malePercent"]; !ok {
		log.Warnf("conversion: no malePercent for %d %s, gender unknown", id, name)
	}

	records, rejected, err := c.ConvertSpawnInfo(id, name, malePercent, entries)
	if err != nil {
		r := failed(id, name, err)
		r.rejected = rejected
		return r
	}

	var outOfRange []OutOfRange
	for i, rec := range records {
		if rec.Probability < 0 || rec.Probability > 1 {
			log.Warnf("conversion: spawn probability %v of %d entry %d is outside [0,1]", rec.Probability, id, i)
			outOfRange = append(outOfRange, OutOfRange{ID: id, Entry: i, Probability: rec.Probability})
		}
	}

	spawns.Store(id, records)
	return result{
		outcome:    outcomeConverted,
		id:         id,
		name:       name,
		rejected:   rejected,
		records:    len(records),
		outOfRange: outOfRange,
	}
}

func failed(id int, name string, err error) result {
	return result{outcome: outcomeFailed, id: id, name: name, err: err}
}

func spawnInfos(set map[string]any) ([]map[string]any, error) {
	raw, ok := set["spawnInfos"].([]any)
	if !ok {
		return nil, errors.WithMessage(ErrMalformedEntry, "spawn set without spawnInfos list")
	}
	entries := make([]map[string]any, 0, len(raw))
	for i, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, errors.WithMessagef(ErrMalformedEntry, "spawnInfos[%d] is not an object", i)
		}
		entries = append(entries, m)
	}
	return entries, nil
}
