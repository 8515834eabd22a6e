// Package cataloggen fabricates synthetic catalogs: a team registry
// and a tournament history shaped like the curated data, for demos,
// loader round-trips and engine benchmarks without shipping real
// results.
package cataloggen

import (
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/okian/rinkrank/internal/domain/model"
)

// maxTeams caps the registry size well below the faker's country pool
// so identity draws always terminate.
const maxTeams = 64

// Generator fabricates a catalog from a seeded source; a given seed
// always yields the same history.
type Generator struct {
	faker      *gofakeit.Faker
	seed       int64
	teams      int
	from, to   int
	pointsFrom int
}

// New creates a generator. Without WithSeed the seed comes from the
// clock, so consecutive runs differ.
func New(opts ...Option) *Generator {
	g := &Generator{
		seed:       time.Now().UnixNano(),
		teams:      16,
		from:       1920,
		to:         2020,
		pointsFrom: 2000,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.faker = gofakeit.New(uint64(g.seed))
	return g
}

// Seed returns the seed the generator draws from.
func (g *Generator) Seed() int64 { return g.seed }

// contender pairs a registry code with a persistent strength. Event
// orders are drawn from strength plus per-event noise, so the same
// sides tend to contest the medals year over year while upsets stay
// possible.
type contender struct {
	code     string
	strength float64
}

// succession models one historical rename: before the cutover season
// the heir's results are filed under the old code, which the registry
// carries as an alias row.
type succession struct {
	alias   string
	heir    string
	cutover int
}

// Generate fabricates the catalog: one registry draw, then a season
// loop with a world championship in every non-Olympic year, winter
// games on the four-year cadence, and second divisions and regional
// trophies appearing now and then.
func (g *Generator) Generate() model.Catalog {
	teams, pool, succ := g.identities()

	var events []model.Event
	for year := g.from; year <= g.to; year++ {
		order := g.contest(pool)
		if year%4 == 0 {
			field := order[:g.fieldSize(len(order), 12)]
			events = append(events, g.event(year, model.WinterOlympics, 0, field, succ))
		} else {
			k := g.fieldSize(len(order), 12)
			field := order[:k]
			if len(field) >= 8 && g.faker.Number(1, 4) == 1 {
				events = append(events, g.groupEvent(year, field, succ))
			} else {
				events = append(events, g.event(year, model.WorldChampionship, 0, field, succ))
			}
			if rest := order[k:]; len(rest) >= 4 && g.faker.Number(1, 3) == 1 {
				events = append(events, g.event(year, model.WorldChampionship, 1, rest[:g.fieldSize(len(rest), 8)], succ))
			}
		}
		if g.faker.Number(1, 6) == 1 {
			friendly := g.contest(pool)
			events = append(events, g.event(year, model.RegionalTrophy, 0, friendly[:g.fieldSize(len(friendly), 6)], succ))
		}
	}
	return model.Catalog{Teams: teams, Events: events}
}

// identities draws the registry. Country names repeat in the faker's
// pool, so names are deduplicated by redraw and codes fall back to
// random letters when the derived one collides.
func (g *Generator) identities() ([]model.Team, []contender, *succession) {
	usedCode := make(map[string]struct{}, g.teams+1)
	usedName := make(map[string]struct{}, g.teams+1)
	draw := func() (string, string) {
		name := g.faker.Country()
		for _, dup := usedName[name]; dup; _, dup = usedName[name] {
			name = g.faker.Country()
		}
		usedName[name] = struct{}{}
		code := codeFrom(name)
		for {
			if _, dup := usedCode[code]; !dup && len(code) == 3 {
				break
			}
			code = strings.ToUpper(g.faker.LetterN(3))
		}
		usedCode[code] = struct{}{}
		return code, name
	}

	teams := make([]model.Team, 0, g.teams+1)
	pool := make([]contender, 0, g.teams)
	for i := 0; i < g.teams; i++ {
		code, name := draw()
		teams = append(teams, model.Team{Code: code, Name: name})
		pool = append(pool, contender{code: code, strength: g.faker.Float64Range(0, 1)})
	}

	var succ *succession
	if g.to-g.from >= 10 && g.teams >= 6 {
		heir := teams[g.faker.Number(0, len(teams)-1)]
		code, name := draw()
		teams = append(teams, model.Team{Code: code, Name: name, Successor: heir.Code})
		succ = &succession{alias: code, heir: heir.Code, cutover: g.from + (g.to-g.from)/2}
	}
	return teams, pool, succ
}

// contest orders the pool by strength plus fresh noise.
func (g *Generator) contest(pool []contender) []contender {
	type entry struct {
		contender
		score float64
	}
	entries := make([]entry, len(pool))
	for i, c := range pool {
		entries[i] = entry{c, c.strength + g.faker.Float64Range(0, 0.4)}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })
	out := make([]contender, len(entries))
	for i, e := range entries {
		out[i] = e.contender
	}
	return out
}

// fieldSize draws an entry-list length between four and the smaller of
// the pool and the event's cap.
func (g *Generator) fieldSize(avail, most int) int {
	if most > avail {
		most = avail
	}
	if most <= 4 {
		return most
	}
	return g.faker.Number(4, most)
}

// event lays the field out in standard competition order. A placement
// occasionally ties the one above it, and rows from the officially
// ranked era carry rank points the way the curated sheets do. A rare
// season resolves from seeding instead of played rounds.
func (g *Generator) event(year int, et model.EventType, tier int, field []contender, succ *succession) model.Event {
	ev := model.Event{Year: year, Type: et, Tier: tier}
	for i, c := range field {
		rank := i + 1
		if i > 0 && g.faker.Number(1, 12) == 1 {
			rank = ev.Results[i-1].Rank
		}
		r := model.Result{Team: g.flag(c.code, year, succ), Rank: rank}
		if year >= g.pointsFrom {
			r.Points = rankPoints(tier, rank)
		}
		ev.Results = append(ev.Results, r)
	}
	if g.faker.Number(1, 20) == 1 {
		ev.Ordering = model.OrderingSeeding
		ev.Note = g.faker.RandomString(seedingNotes)
	}
	return ev
}

// groupEvent shapes a championship with a played-out final round and
// consolation groups whose positions never met across groups.
func (g *Generator) groupEvent(year int, field []contender, succ *succession) model.Event {
	const final = 4
	ev := model.Event{Year: year, Type: model.WorldChampionship, Ordering: model.OrderingGroups}
	for i, c := range field {
		r := model.Result{Team: g.flag(c.code, year, succ)}
		if i < final {
			r.Rank = i + 1
		} else {
			r.Rank = final + 1 + (i-final)/2
			if (i-final)%2 == 0 {
				r.Group = "A"
			} else {
				r.Group = "B"
			}
		}
		if year >= g.pointsFrom {
			r.Points = rankPoints(0, r.Rank)
		}
		ev.Results = append(ev.Results, r)
	}
	return ev
}

// flag returns the code an event filed the team under: the alias
// before the cutover season, the team's own code from then on.
func (g *Generator) flag(code string, year int, succ *succession) string {
	if succ != nil && code == succ.heir && year < succ.cutover {
		return succ.alias
	}
	return code
}

// rankPoints fabricates official-era row points: a tier-scaled base
// descending with rank, equal inside a tie group.
func rankPoints(tier, rank int) int {
	base, step := 1200, 40
	if tier > 0 {
		base, step = 480, 20
	}
	return base - step*(rank-1)
}

// codeFrom derives a three-letter registry code from a name.
func codeFrom(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	return b.String()
}

// seedingNotes are the curator remarks attached to seeding-basis
// seasons.
var seedingNotes = []string{
	"placings taken from seeding after late withdrawals",
	"tournament abandoned partway, order per seeding",
	"final round cancelled, seeding stands",
}
