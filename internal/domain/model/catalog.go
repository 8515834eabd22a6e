package model

import "fmt"

// Catalog is the externally curated record of tournaments plus the team
// registry its rows reference. The engine only ever reads it.
type Catalog struct {
	Teams  []Team  `json:"teams" yaml:"teams"`
	Events []Event `json:"events" yaml:"events"`
}

// Registry returns the teams by code. Alias teams are included and
// carry their Successor link.
func (c *Catalog) Registry() map[string]Team {
	reg := make(map[string]Team, len(c.Teams))
	for _, t := range c.Teams {
		reg[t.Code] = t
	}
	return reg
}

// Resolve follows successor links from code to the identity that ranking
// results are credited to. ok is false for codes missing from the
// registry or chains that do not terminate.
func (c *Catalog) Resolve(code string) (Team, bool) {
	reg := c.Registry()
	return resolve(reg, code)
}

func resolve(reg map[string]Team, code string) (Team, bool) {
	// A chain longer than the registry must be cyclic.
	for range reg {
		t, ok := reg[code]
		if !ok {
			return Team{}, false
		}
		if t.Successor == "" || t.Successor == t.Code {
			return t, true
		}
		code = t.Successor
	}
	return Team{}, false
}

// ResolveAliases rewrites every result row to the identity it credits,
// so the computation never sees alias codes. Unknown codes are left in
// place for per-event validation to flag. Broken successor chains are
// registry defects and fail the whole catalog.
func (c *Catalog) ResolveAliases() error {
	reg := c.Registry()
	for _, t := range c.Teams {
		if t.Successor == "" {
			continue
		}
		if _, ok := resolve(reg, t.Code); !ok {
			return fmt.Errorf("team %s: successor chain does not terminate: %w", t.Code, ErrIncompleteData)
		}
	}
	for i := range c.Events {
		for j, r := range c.Events[i].Results {
			if t, ok := resolve(reg, r.Team); ok {
				c.Events[i].Results[j].Team = t.Code
			}
		}
	}
	return nil
}

// Identities returns the non-alias teams, the set results resolve to.
func (c *Catalog) Identities() []Team {
	out := make([]Team, 0, len(c.Teams))
	for _, t := range c.Teams {
		if t.Successor == "" {
			out = append(out, t)
		}
	}
	return out
}
