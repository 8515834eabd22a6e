package cataloggen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/okian/rinkrank/internal/adapters/catalog"
	"github.com/okian/rinkrank/internal/domain/model"
)

// WriteFile writes cat in the format matching path's extension, one of
// the two layouts the loaders read: the single-document YAML format or
// the curators' workbook. The workbook layout carries no ordering
// column, so seeding-basis events round-trip as explicit results.
func WriteFile(path string, cat model.Catalog) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return writeYAML(path, cat)
	case ".xlsx":
		return writeXLSX(path, cat)
	default:
		return fmt.Errorf("%s: %w", path, catalog.ErrUnsupportedFormat)
	}
}

func writeYAML(path string, cat model.Catalog) error {
	data, err := yaml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

func writeXLSX(path string, cat model.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), "teams"); err != nil {
		return fmt.Errorf("name teams sheet: %w", err)
	}
	rows := [][]interface{}{{"code", "name", "successor"}}
	for _, t := range cat.Teams {
		rows = append(rows, []interface{}{t.Code, t.Name, t.Successor})
	}
	if err := writeRows(f, "teams", rows); err != nil {
		return err
	}

	for _, ev := range cat.Events {
		sheet := ev.Ref().String()
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
		rows := [][]interface{}{{"team", "rank", "group", "points"}}
		for _, r := range ev.Results {
			row := []interface{}{r.Team, r.Rank, nil, nil}
			if r.Group != "" {
				row[2] = r.Group
			}
			if r.Points > 0 {
				row[3] = r.Points
			}
			rows = append(rows, row)
		}
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, axis, &rows[i]); err != nil {
			return fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
