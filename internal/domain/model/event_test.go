package model_test

import (
	"errors"
	"testing"

	model "github.com/okian/rinkrank/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestEventBasis(t *testing.T) {
	convey.Convey("Given an event without an ordering tag", t, func() {
		ev := model.Event{Year: 1931, Type: model.WorldChampionship}

		convey.Convey("Then the basis defaults to explicit results", func() {
			convey.So(ev.Basis(), convey.ShouldEqual, model.OrderingResults)
		})
	})

	convey.Convey("Given an event tagged with an ordering", t, func() {
		ev := model.Event{Year: 1931, Type: model.WorldChampionship, Ordering: model.OrderingSeeding}

		convey.Convey("Then the basis is the tag", func() {
			convey.So(ev.Basis(), convey.ShouldEqual, model.OrderingSeeding)
		})
	})
}

func TestEventLabel(t *testing.T) {
	convey.Convey("Given events with and without a tier", t, func() {
		top := model.Event{Year: 1931, Type: model.WorldChampionship}
		div := model.Event{Year: 2001, Type: model.WorldChampionship, Tier: 1}

		convey.Convey("Then labels carry the year, type, and tier", func() {
			convey.So(top.Label(), convey.ShouldEqual, "1931 world-championship")
			convey.So(div.Label(), convey.ShouldEqual, "2001 world-championship tier 1")
		})

		convey.Convey("Then refs use spreadsheet naming", func() {
			convey.So(top.Ref().String(), convey.ShouldEqual, "1931_WC")
			convey.So(div.Ref().String(), convey.ShouldEqual, "2001_WC_T1")
		})
	})
}

func TestEventValidate(t *testing.T) {
	convey.Convey("Given event placement orders", t, func() {
		convey.Convey("When placements are a clean 1..N order", func() {
			ev := wcEvent(1931, "CAN", "USA", "AUT", "POL")

			convey.Convey("Then the event validates", func() {
				convey.So(ev.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When a tie uses standard competition numbering", func() {
			ev := model.Event{
				Year: 1931, Type: model.WorldChampionship,
				Results: []model.Result{
					{Team: "CAN", Rank: 1},
					{Team: "USA", Rank: 2},
					{Team: "AUT", Rank: 2},
					{Team: "POL", Rank: 4},
				},
			}

			convey.Convey("Then the tie is accepted", func() {
				convey.So(ev.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When a tie does not skip the following rank", func() {
			ev := model.Event{
				Year: 1931, Type: model.WorldChampionship,
				Results: []model.Result{
					{Team: "CAN", Rank: 1},
					{Team: "USA", Rank: 2},
					{Team: "AUT", Rank: 2},
					{Team: "POL", Rank: 3},
				},
			}

			convey.Convey("Then validation flags incomplete data", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrIncompleteData), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the order has a gap", func() {
			ev := model.Event{
				Year: 1931, Type: model.WorldChampionship,
				Results: []model.Result{
					{Team: "CAN", Rank: 1},
					{Team: "USA", Rank: 3},
				},
			}

			convey.Convey("Then validation flags incomplete data", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrIncompleteData), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the order does not start at 1", func() {
			ev := model.Event{
				Year: 1931, Type: model.WorldChampionship,
				Results: []model.Result{
					{Team: "CAN", Rank: 2},
					{Team: "USA", Rank: 3},
				},
			}

			convey.Convey("Then validation flags incomplete data", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrIncompleteData), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a team appears twice", func() {
			ev := model.Event{
				Year: 1931, Type: model.WorldChampionship,
				Results: []model.Result{
					{Team: "CAN", Rank: 1},
					{Team: "CAN", Rank: 2},
				},
			}

			convey.Convey("Then validation flags incomplete data", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrIncompleteData), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the event has no placements at all", func() {
			ev := model.Event{Year: 1931, Type: model.WorldChampionship}

			convey.Convey("Then validation flags incomplete data", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrIncompleteData), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the event type is unrecognized", func() {
			ev := model.Event{
				Year: 1931, Type: model.EventType("pond-hockey"),
				Results: []model.Result{{Team: "CAN", Rank: 1}},
			}

			convey.Convey("Then validation flags incomplete data", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrIncompleteData), convey.ShouldBeTrue)
			})
		})
	})

	convey.Convey("Given ordering bases and group labels", t, func() {
		convey.Convey("When group labels appear under the results basis", func() {
			ev := model.Event{
				Year: 1931, Type: model.WorldChampionship,
				Results: []model.Result{
					{Team: "CAN", Rank: 1},
					{Team: "USA", Rank: 3, Group: "A"},
				},
			}

			convey.Convey("Then validation flags ambiguous grouping", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrAmbiguousGrouping), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the groups basis has grouped rows after a final round", func() {
			ev := model.Event{
				Year: 1937, Type: model.WorldChampionship,
				Ordering: model.OrderingGroups,
				Results: []model.Result{
					{Team: "CAN", Rank: 1},
					{Team: "GBR", Rank: 2},
					{Team: "FRA", Rank: 3, Group: "A"},
					{Team: "ITA", Rank: 3, Group: "B"},
					{Team: "POL", Rank: 4, Group: "A"},
				},
			}

			convey.Convey("Then the event validates", func() {
				convey.So(ev.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the groups basis carries no group labels", func() {
			ev := model.Event{
				Year: 1937, Type: model.WorldChampionship,
				Ordering: model.OrderingGroups,
				Results: []model.Result{
					{Team: "CAN", Rank: 1},
					{Team: "GBR", Rank: 2},
				},
			}

			convey.Convey("Then validation flags ambiguous grouping", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrAmbiguousGrouping), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the ordering tag is unrecognized", func() {
			ev := model.Event{
				Year: 1931, Type: model.WorldChampionship,
				Ordering: model.Ordering("vibes"),
				Results:  []model.Result{{Team: "CAN", Rank: 1}},
			}

			convey.Convey("Then validation flags ambiguous grouping", func() {
				convey.So(errors.Is(ev.Validate(), model.ErrAmbiguousGrouping), convey.ShouldBeTrue)
			})
		})
	})
}

// wcEvent builds a world championship with teams placed 1..N in the
// order given.
func wcEvent(year int, teams ...string) model.Event {
	ev := model.Event{Year: year, Type: model.WorldChampionship}
	for i, team := range teams {
		ev.Results = append(ev.Results, model.Result{Team: team, Rank: i + 1})
	}
	return ev
}
