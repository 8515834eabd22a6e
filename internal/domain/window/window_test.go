package window_test

import (
	"testing"

	"github.com/okian/rinkrank/internal/domain/model"
	"github.com/okian/rinkrank/internal/domain/window"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSelectWindowBounds(t *testing.T) {
	Convey("Given a career spanning more years than the window", t, func() {
		career := []model.Contribution{
			contrib("1990C", 1990, model.KindChampionship, 500),
			contrib("1991C", 1991, model.KindChampionship, 40),
			contrib("1992C", 1992, model.KindChampionship, 60),
			contrib("1993C", 1993, model.KindChampionship, 80),
			contrib("1994C", 1994, model.KindChampionship, 100),
		}

		Convey("When selecting for 1994", func() {
			got := window.New().Select(1994, career)

			Convey("Then only the trailing four years count, whatever the points", func() {
				So(labelsOf(got), ShouldResemble, []string{"1994C", "1993C", "1992C", "1991C"})
			})
		})

		Convey("When selecting with a narrower span", func() {
			got := window.New(window.WithSpan(2)).Select(1994, career)

			Convey("Then the window shrinks with it", func() {
				So(labelsOf(got), ShouldResemble, []string{"1994C", "1993C"})
			})
		})

		Convey("When selecting for a year before the career", func() {
			got := window.New().Select(1989, career)

			Convey("Then nothing counts and the team is unranked", func() {
				So(got, ShouldBeNil)
			})
		})
	})
}

func TestSelectOlympicCap(t *testing.T) {
	Convey("Given the one stretch with two Winter Games in range", t, func() {
		career := []model.Contribution{
			contrib("1992O", 1992, model.KindOlympic, 200),
			contrib("1993C", 1993, model.KindChampionship, 90),
			contrib("1994O", 1994, model.KindOlympic, 150),
		}

		Convey("When selecting for 1994", func() {
			got := window.New().Select(1994, career)

			Convey("Then only the most recent Games count, even for fewer points", func() {
				So(labelsOf(got), ShouldResemble, []string{"1994O", "1993C"})
				So(got[0].Points, ShouldEqual, 150)
			})
		})

		Convey("When selecting for 1993", func() {
			got := window.New().Select(1993, career)

			Convey("Then the older Games are back in", func() {
				So(labelsOf(got), ShouldResemble, []string{"1993C", "1992O"})
			})
		})
	})
}

func TestSelectOtherKind(t *testing.T) {
	Convey("Given a career with a regional tournament", t, func() {
		career := []model.Contribution{
			contrib("1982C", 1982, model.KindChampionship, 30),
			contrib("1983C", 1983, model.KindChampionship, 40),
			contrib("1984C", 1984, model.KindChampionship, 50),
			contrib("1985C", 1985, model.KindChampionship, 60),
			contrib("1985X", 1985, model.KindOther, 80),
		}

		Convey("When selecting with the default policy", func() {
			got := window.New().Select(1985, career)

			Convey("Then the regional tournament does not count", func() {
				So(labelsOf(got), ShouldResemble, []string{"1985C", "1984C", "1983C", "1982C"})
			})
		})

		Convey("When regional tournaments are countable", func() {
			got := window.New(window.WithCountOther(true)).Select(1985, career)

			Convey("Then they share the championship cap, recency ties going to points", func() {
				So(labelsOf(got), ShouldResemble, []string{"1985C", "1985X", "1984C", "1983C"})
			})
		})
	})

	Convey("Given a career of nothing but regional tournaments", t, func() {
		career := []model.Contribution{
			contrib("1985X", 1985, model.KindOther, 80),
		}

		Convey("When selecting with the default policy", func() {
			got := window.New().Select(1985, career)

			Convey("Then the team is unranked rather than at zero", func() {
				So(got, ShouldBeNil)
			})
		})
	})
}

func TestSelectDisplayOrder(t *testing.T) {
	Convey("Given an Olympic year with a same-year championship", t, func() {
		career := []model.Contribution{
			contrib("1932C", 1932, model.KindChampionship, 60),
			contrib("1932O", 1932, model.KindOlympic, 100),
			contrib("1931C", 1931, model.KindChampionship, 220),
		}

		Convey("When selecting for 1932", func() {
			got := window.New().Select(1932, career)

			Convey("Then contributions list newest first, Games before championships", func() {
				So(labelsOf(got), ShouldResemble, []string{"1932O", "1932C", "1931C"})
			})
		})
	})
}

func TestSelectIgnoresFutureYears(t *testing.T) {
	Convey("Given a career that continues past the evaluation year", t, func() {
		career := []model.Contribution{
			contrib("1931C", 1931, model.KindChampionship, 220),
			contrib("1935C", 1935, model.KindChampionship, 180),
		}

		Convey("When selecting for 1932", func() {
			got := window.New().Select(1932, career)

			Convey("Then later superevents stay out", func() {
				So(labelsOf(got), ShouldResemble, []string{"1931C"})
			})
		})
	})
}

func contrib(label string, year int, kind model.Kind, points int) model.Contribution {
	return model.Contribution{Superevent: label, Year: year, Kind: kind, Points: points}
}

func labelsOf(cs []model.Contribution) []string {
	if cs == nil {
		return nil
	}
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Superevent
	}
	return out
}
