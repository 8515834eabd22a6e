package catalog_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/okian/rinkrank/internal/adapters/catalog"
	"github.com/okian/rinkrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

type sheetDef struct {
	name string
	rows [][]interface{}
}

func TestXLSXLoader(t *testing.T) {
	Convey("Given a curator workbook", t, func() {
		path := buildWorkbook(t, []sheetDef{
			{name: "teams", rows: [][]interface{}{
				{"code", "name", "successor"},
				{"CAN", "Canada", ""},
				{"GBR", "Great Britain", ""},
				{"FRA", "France", ""},
				{"POL", "Poland", ""},
				{"TCH", "Czechoslovakia", "CZE"},
				{"CZE", "Czechia", ""},
			}},
			{name: "1931_WC", rows: [][]interface{}{
				{"team", "rank"},
				{"CAN", 1},
				{"TCH", 2},
				{"GBR", 3},
				{"", ""},
			}},
			{name: "1937_WC", rows: [][]interface{}{
				{"team", "rank", "group"},
				{"CAN", 1, ""},
				{"GBR", 2, ""},
				{"FRA", 3, "A"},
				{"POL", 3, "B"},
			}},
			{name: "2001_WC_T1", rows: [][]interface{}{
				{"team", "rank", "group", "points"},
				{"CZE", 1, "", 1200},
				{"FRA", 2, "", 1160},
			}},
			{name: "curator notes", rows: [][]interface{}{
				{"remember to double-check 1937 group B"},
			}},
		})

		Convey("When loading", func() {
			cat, err := catalog.NewXLSXLoader(path).Load(context.Background())

			Convey("Then the teams sheet fills the registry", func() {
				So(err, ShouldBeNil)
				So(len(cat.Teams), ShouldEqual, 6)
				So(cat.Teams[4].Successor, ShouldEqual, "CZE")
			})

			Convey("Then every event sheet becomes an event", func() {
				So(err, ShouldBeNil)
				So(len(cat.Events), ShouldEqual, 3)
				So(cat.Events[0].Year, ShouldEqual, 1931)
				So(cat.Events[0].Type, ShouldEqual, model.WorldChampionship)
				So(len(cat.Events[0].Results), ShouldEqual, 3)
			})

			Convey("Then aliases are resolved and blanks skipped", func() {
				So(err, ShouldBeNil)
				So(cat.Events[0].Results[1].Team, ShouldEqual, "CZE")
			})

			Convey("Then group labels switch the ordering basis", func() {
				So(err, ShouldBeNil)
				So(cat.Events[1].Ordering, ShouldEqual, model.OrderingGroups)
				So(cat.Events[0].Ordering, ShouldEqual, model.Ordering(""))
			})

			Convey("Then tiers and points parse from their columns", func() {
				So(err, ShouldBeNil)
				So(cat.Events[2].Tier, ShouldEqual, 1)
				So(cat.Events[2].Results[0].Points, ShouldEqual, 1200)
			})
		})
	})
}

func TestXLSXLoaderMalformed(t *testing.T) {
	Convey("Given a workbook with a non-numeric rank", t, func() {
		path := buildWorkbook(t, []sheetDef{
			{name: "teams", rows: [][]interface{}{
				{"code", "name"},
				{"CAN", "Canada"},
			}},
			{name: "1931_WC", rows: [][]interface{}{
				{"team", "rank"},
				{"CAN", "first"},
			}},
		})

		Convey("When loading", func() {
			_, err := catalog.NewXLSXLoader(path).Load(context.Background())

			Convey("Then the sheet is flagged by name", func() {
				So(errors.Is(err, catalog.ErrMalformedSheet), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "1931_WC")
			})
		})
	})

	Convey("Given a workbook without a teams sheet", t, func() {
		path := buildWorkbook(t, []sheetDef{
			{name: "1931_WC", rows: [][]interface{}{
				{"team", "rank"},
				{"CAN", 1},
			}},
		})

		Convey("When loading", func() {
			_, err := catalog.NewXLSXLoader(path).Load(context.Background())

			Convey("Then the workbook is rejected", func() {
				So(errors.Is(err, catalog.ErrMalformedSheet), ShouldBeTrue)
			})
		})
	})

	Convey("Given an event sheet missing the rank column", t, func() {
		path := buildWorkbook(t, []sheetDef{
			{name: "teams", rows: [][]interface{}{
				{"code", "name"},
				{"CAN", "Canada"},
			}},
			{name: "1931_WC", rows: [][]interface{}{
				{"team", "position"},
				{"CAN", 1},
			}},
		})

		Convey("When loading", func() {
			_, err := catalog.NewXLSXLoader(path).Load(context.Background())

			Convey("Then the missing column is fatal", func() {
				So(errors.Is(err, catalog.ErrMalformedSheet), ShouldBeTrue)
			})
		})
	})
}

func TestXLSXLoaderUnknownTypeKey(t *testing.T) {
	Convey("Given an event sheet with a typo in the type key", t, func() {
		path := buildWorkbook(t, []sheetDef{
			{name: "teams", rows: [][]interface{}{
				{"code", "name"},
				{"CAN", "Canada"},
			}},
			{name: "1931_XX", rows: [][]interface{}{
				{"team", "rank"},
				{"CAN", 1},
			}},
		})

		Convey("When loading", func() {
			cat, err := catalog.NewXLSXLoader(path).Load(context.Background())

			Convey("Then the event loads with an unrecognized type for validation to flag", func() {
				So(err, ShouldBeNil)
				So(len(cat.Events), ShouldEqual, 1)
				So(cat.Events[0].Type.Valid(), ShouldBeFalse)
				So(cat.Events[0].Validate(), ShouldNotBeNil)
			})
		})
	})
}

func buildWorkbook(t *testing.T, sheets []sheetDef) string {
	t.Helper()
	f := excelize.NewFile()
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), s.name); err != nil {
				t.Fatal(err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			t.Fatal(err)
		}
		for r, row := range s.rows {
			axis, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			cells := make([]interface{}, len(row))
			copy(cells, row)
			if err := f.SetSheetRow(s.name, axis, &cells); err != nil {
				t.Fatal(err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}
