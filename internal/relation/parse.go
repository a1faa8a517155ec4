package relation

import (
	"strconv"
	"strings"

	"github.com/momentum-xyz/spawnschema/internal/condition"
	"github.com/momentum-xyz/spawnschema/internal/world"

	"github.com/pkg/errors"
)

const moonPhasePrefix = "phase:"

// ParseCondition reads a condition written as semicolon separated key=values pairs,
// e.g. "w=CLEAR,RAINY;m=phase:1;t=NIGHT;c=COLD;mod=0.5". Keys are w (weathers),
// m (moons), t (times), c (temperatures) and mod (modifier, default 1). Values are
// comma separated names or codes; names are case insensitive. A key without values
// gives the empty set, an omitted key leaves the axis absent.
func ParseCondition(index int, spec string) (world.Condition, error) {
	modifier := 1.0
	var opts []world.ConditionOption
	seen := make(map[string]bool)

	for _, part := range strings.Split(spec, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return world.Condition{}, errors.Errorf("condition %d: expected key=values, got %q", index, part)
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if seen[k] {
			return world.Condition{}, errors.Errorf("condition %d: duplicate key %q", index, k)
		}
		seen[k] = true

		values := splitValues(v)
		switch k {
		case "w":
			opts = append(opts, world.Weathers(values...))
		case "t":
			opts = append(opts, world.Times(values...))
		case "c":
			opts = append(opts, world.Temperatures(values...))
		case "m":
			moons, err := moonValues(values)
			if err != nil {
				return world.Condition{}, errors.WithMessagef(err, "condition %d", index)
			}
			opts = append(opts, world.Moons(moons...))
		case "mod":
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return world.Condition{}, errors.WithMessagef(err, "condition %d: modifier", index)
			}
			modifier = f
		default:
			return world.Condition{}, errors.Errorf("condition %d: unknown key %q", index, k)
		}
	}

	c, err := world.NewCondition(index, modifier, opts...)
	if err != nil {
		return world.Condition{}, errors.WithMessagef(err, "condition %d", index)
	}
	return c, nil
}

// NewRelation builds a relation from command line values. Conditions get the indices
// 1..n in the given order, so the most general one goes first.
func NewRelation(spawnArea string, probability float64, specs ...string) (world.SpawnRelation, error) {
	conds := make([]world.Condition, 0, len(specs))
	for i, spec := range specs {
		c, err := ParseCondition(i+1, spec)
		if err != nil {
			return world.SpawnRelation{}, err
		}
		conds = append(conds, c)
	}
	return world.NewSpawnRelation(normalize(spawnArea), probability, conds...)
}

// Describe renders a relation with member names for echoing back to the author.
func Describe(r world.SpawnRelation) string {
	var b strings.Builder
	b.WriteString(r.SpawnArea().String())
	b.WriteString(" p=")
	b.WriteString(strconv.FormatFloat(r.Probability(), 'g', -1, 64))
	for _, c := range r.Conditions() {
		b.WriteString("\n  #")
		b.WriteString(strconv.Itoa(c.Index()))
		b.WriteString(" mod=")
		b.WriteString(strconv.FormatFloat(c.Modifier(), 'g', -1, 64))
		writeAxis(&b, "w", c.Weathers())
		writeAxis(&b, "m", c.Moons())
		writeAxis(&b, "t", c.Times())
		writeAxis(&b, "c", c.Temperatures())
	}
	return b.String()
}

func writeAxis[T interface{ String() string }](b *strings.Builder, key string, set []T) {
	if set == nil {
		return
	}
	names := make([]string, len(set))
	for i, v := range set {
		names[i] = v.String()
	}
	b.WriteString(" " + key + "=[" + strings.Join(names, ",") + "]")
}

func splitValues(s string) []any {
	values := make([]any, 0)
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, normalize(v))
		}
	}
	return values
}

func moonValues(values []any) ([]any, error) {
	out := make([]any, 0, len(values))
	for _, v := range values {
		s := strings.ToLower(v.(string))
		if !strings.HasPrefix(s, moonPhasePrefix) {
			out = append(out, v)
			continue
		}
		step, err := strconv.Atoi(strings.TrimPrefix(s, moonPhasePrefix))
		if err != nil {
			return nil, errors.Errorf("invalid moon phase %q", v)
		}
		moons, err := condition.MoonPhase(step)
		if err != nil {
			return nil, err
		}
		for _, m := range moons {
			out = append(out, m)
		}
	}
	return out, nil
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
