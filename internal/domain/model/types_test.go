package model_test

import (
	"testing"

	model "github.com/okian/rinkrank/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestEventTypeKind(t *testing.T) {
	convey.Convey("Given the recognized event types", t, func() {
		convey.Convey("When bucketing them for window selection", func() {
			convey.Convey("Then Olympic tournaments map to the Olympic kind", func() {
				convey.So(model.WinterOlympics.Kind(), convey.ShouldEqual, model.KindOlympic)
				convey.So(model.SummerOlympics.Kind(), convey.ShouldEqual, model.KindOlympic)
				convey.So(model.ThayerTuttTrophy.Kind(), convey.ShouldEqual, model.KindOlympic)
			})

			convey.Convey("Then championships map to the Championship kind", func() {
				convey.So(model.WorldChampionship.Kind(), convey.ShouldEqual, model.KindChampionship)
				convey.So(model.EuropeanChampionship.Kind(), convey.ShouldEqual, model.KindChampionship)
				convey.So(model.DevelopmentCup.Kind(), convey.ShouldEqual, model.KindChampionship)
			})

			convey.Convey("Then regional trophies map to Other", func() {
				convey.So(model.RegionalTrophy.Kind(), convey.ShouldEqual, model.KindOther)
			})
		})
	})
}

func TestEventTypeSeniority(t *testing.T) {
	convey.Convey("Given event types sharing a superevent", t, func() {
		convey.Convey("When comparing seniority", func() {
			convey.Convey("Then Olympic tournaments outrank world championships", func() {
				convey.So(model.WinterOlympics.Seniority(), convey.ShouldBeLessThan, model.WorldChampionship.Seniority())
				convey.So(model.SummerOlympics.Seniority(), convey.ShouldBeLessThan, model.WorldChampionship.Seniority())
			})

			convey.Convey("Then world championships outrank european ones", func() {
				convey.So(model.WorldChampionship.Seniority(), convey.ShouldBeLessThan, model.EuropeanChampionship.Seniority())
			})

			convey.Convey("Then the Thayer Tutt Trophy sits below both championships", func() {
				convey.So(model.ThayerTuttTrophy.Seniority(), convey.ShouldBeGreaterThan, model.WorldChampionship.Seniority())
				convey.So(model.ThayerTuttTrophy.Seniority(), convey.ShouldBeGreaterThan, model.EuropeanChampionship.Seniority())
			})

			convey.Convey("Then the development cup sits below the Thayer Tutt Trophy", func() {
				convey.So(model.DevelopmentCup.Seniority(), convey.ShouldBeGreaterThan, model.ThayerTuttTrophy.Seniority())
			})
		})
	})
}

func TestParseEventType(t *testing.T) {
	convey.Convey("Given event type spellings from the two catalog formats", t, func() {
		convey.Convey("When parsing the long form", func() {
			et, err := model.ParseEventType("world-championship")

			convey.Convey("Then it resolves", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(et, convey.ShouldEqual, model.WorldChampionship)
			})
		})

		convey.Convey("When parsing a spreadsheet key", func() {
			for key, want := range map[string]model.EventType{
				"WOG": model.WinterOlympics,
				"SOG": model.SummerOlympics,
				"WC":  model.WorldChampionship,
				"EC":  model.EuropeanChampionship,
				"TTT": model.ThayerTuttTrophy,
				"DC":  model.DevelopmentCup,
				"REG": model.RegionalTrophy,
			} {
				et, err := model.ParseEventType(key)

				convey.So(err, convey.ShouldBeNil)
				convey.So(et, convey.ShouldEqual, want)
			}
		})

		convey.Convey("When parsing garbage", func() {
			_, err := model.ParseEventType("pond-hockey")

			convey.Convey("Then it fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When round-tripping through the spreadsheet key", func() {
			for _, et := range []model.EventType{
				model.WinterOlympics,
				model.SummerOlympics,
				model.WorldChampionship,
				model.EuropeanChampionship,
				model.ThayerTuttTrophy,
				model.DevelopmentCup,
				model.RegionalTrophy,
			} {
				parsed, err := model.ParseEventType(et.Key())

				convey.So(err, convey.ShouldBeNil)
				convey.So(parsed, convey.ShouldEqual, et)
			}
		})
	})
}
