// Package ranking aggregates per-team window selections into the
// standings list of one evaluation year.
package ranking

import (
	"sort"

	"github.com/okian/rinkrank/internal/domain/model"
)

// Aggregate totals each team's counted contributions and orders the
// field by points, descending. Equal totals are an explicit tie: the
// tied teams share the better rank and the next rank skips past the
// block. Within a tied block teams appear in code order, which orders
// the report without claiming a tiebreak. Teams with no contributions
// get no entry at all.
func Aggregate(year int, selections map[string][]model.Contribution) []model.RankingEntry {
	entries := make([]model.RankingEntry, 0, len(selections))
	for team, sel := range selections {
		if len(sel) == 0 {
			continue
		}
		total := 0
		for _, c := range sel {
			total += c.Points
		}
		entries = append(entries, model.RankingEntry{
			Team:          team,
			Year:          year,
			Points:        total,
			Contributions: sel,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Team < entries[j].Team
	})

	for i := range entries {
		if i > 0 && entries[i].Points == entries[i-1].Points {
			entries[i].Rank = entries[i-1].Rank
			entries[i].Tied = true
			entries[i-1].Tied = true
			continue
		}
		entries[i].Rank = i + 1
	}
	return entries
}
