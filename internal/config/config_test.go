package config_test

import (
	"runtime"
	"testing"

	"github.com/okian/rinkrank/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
			convey.So(cfg.Catalog, convey.ShouldEqual, "catalog.yaml")
			convey.So(cfg.Workers, convey.ShouldEqual, runtime.GOMAXPROCS(0))
			convey.So(cfg.OfficialFrom, convey.ShouldEqual, 2000)
			convey.So(cfg.PreOlympicFold, convey.ShouldBeTrue)
			convey.So(cfg.CountOther, convey.ShouldBeFalse)
			convey.So(cfg.MaxLimit, convey.ShouldEqual, 100)
		})
	})
}
