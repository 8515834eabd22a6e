package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/okian/rinkrank/internal/domain/model"
	"github.com/okian/rinkrank/pkg/metrics"
)

// teamsSheet is the one mandatory sheet of a catalog workbook.
const teamsSheet = "teams"

// eventSheet matches per-event sheet names: year, type key and an
// optional tier suffix, e.g. "1931_WC" or "2001_WC_T1".
var eventSheet = regexp.MustCompile(`^(\d{4})_([A-Z]+)(?:_T(\d+))?$`)

// XLSXLoader reads the curators' workbook layout: a "teams" sheet with
// code/name/successor columns and one sheet per event with
// team/rank/group/points columns. The ordering basis is inferred:
// events whose rows carry group labels load under the groups basis,
// everything else as explicit results. Sheets matching neither shape
// are treated as curator notes and skipped.
type XLSXLoader struct {
	path string
}

// NewXLSXLoader creates a loader for path.
func NewXLSXLoader(path string) *XLSXLoader {
	return &XLSXLoader{path: path}
}

// Load implements Loader.
func (l *XLSXLoader) Load(ctx context.Context) (model.Catalog, error) {
	start := time.Now()

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var cat model.Catalog
	haveTeams := false
	for _, sheet := range f.GetSheetList() {
		switch m := eventSheet.FindStringSubmatch(sheet); {
		case strings.EqualFold(sheet, teamsSheet):
			teams, err := readTeams(f, sheet)
			if err != nil {
				return model.Catalog{}, err
			}
			cat.Teams = append(cat.Teams, teams...)
			haveTeams = true
		case m != nil:
			ev, err := readEvent(f, sheet, m)
			if err != nil {
				return model.Catalog{}, err
			}
			cat.Events = append(cat.Events, ev)
		}
	}
	if !haveTeams {
		return model.Catalog{}, fmt.Errorf("%s: no %q sheet: %w", l.path, teamsSheet, ErrMalformedSheet)
	}
	if err := cat.ResolveAliases(); err != nil {
		return model.Catalog{}, fmt.Errorf("resolve teams in %s: %w", l.path, err)
	}

	metrics.RecordCatalogLoad(time.Since(start).Seconds())
	metrics.UpdateCatalogSize(len(cat.Events), len(cat.Teams))
	return cat, nil
}

func readTeams(f *excelize.File, sheet string) ([]model.Team, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: no header row: %w", sheet, ErrMalformedSheet)
	}

	idx := headerIndex(rows[0])
	codeCol, okCode := idx["code"]
	nameCol, okName := idx["name"]
	if !okCode || !okName {
		return nil, fmt.Errorf("sheet %q: need code and name columns: %w", sheet, ErrMalformedSheet)
	}
	sucCol, hasSuc := idx["successor"]

	var teams []model.Team
	for _, row := range rows[1:] {
		code := cell(row, codeCol)
		if code == "" {
			continue
		}
		t := model.Team{Code: code, Name: cell(row, nameCol)}
		if hasSuc {
			t.Successor = cell(row, sucCol)
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func readEvent(f *excelize.File, sheet string, m []string) (model.Event, error) {
	year, _ := strconv.Atoi(m[1])
	ev := model.Event{Year: year}
	if m[3] != "" {
		ev.Tier, _ = strconv.Atoi(m[3])
	}
	if et, err := model.ParseEventType(m[2]); err == nil {
		ev.Type = et
	} else {
		// Kept invalid so validation flags the event downstream
		// without failing the whole workbook.
		ev.Type = model.EventType(strings.ToLower(m[2]))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return model.Event{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return model.Event{}, fmt.Errorf("sheet %q: no header row: %w", sheet, ErrMalformedSheet)
	}

	idx := headerIndex(rows[0])
	teamCol, okTeam := idx["team"]
	rankCol, okRank := idx["rank"]
	if !okTeam || !okRank {
		return model.Event{}, fmt.Errorf("sheet %q: need team and rank columns: %w", sheet, ErrMalformedSheet)
	}
	groupCol, hasGroup := idx["group"]
	pointsCol, hasPoints := idx["points"]

	hasGroups := false
	for i, row := range rows[1:] {
		team := cell(row, teamCol)
		if team == "" {
			continue
		}
		rank, err := strconv.Atoi(cell(row, rankCol))
		if err != nil {
			return model.Event{}, fmt.Errorf("sheet %q row %d: rank %q: %w",
				sheet, i+2, cell(row, rankCol), ErrMalformedSheet)
		}
		r := model.Result{Team: team, Rank: rank}
		if hasGroup {
			r.Group = cell(row, groupCol)
			if r.Group != "" {
				hasGroups = true
			}
		}
		if hasPoints {
			if p := cell(row, pointsCol); p != "" {
				r.Points, err = strconv.Atoi(p)
				if err != nil {
					return model.Event{}, fmt.Errorf("sheet %q row %d: points %q: %w",
						sheet, i+2, p, ErrMalformedSheet)
				}
			}
		}
		ev.Results = append(ev.Results, r)
	}
	if hasGroups {
		ev.Ordering = model.OrderingGroups
	}
	return ev, nil
}

// headerIndex maps lowercased header cells to their column.
func headerIndex(row []string) map[string]int {
	idx := make(map[string]int, len(row))
	for i, c := range row {
		key := strings.ToLower(strings.TrimSpace(c))
		if key == "" {
			continue
		}
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

// cell returns the trimmed value of column i, tolerating the ragged
// rows excelize produces.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
