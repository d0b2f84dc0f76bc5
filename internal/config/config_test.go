package config_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/adrata/monaco/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.JobQueueSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU()*2)
			convey.So(cfg.DedupeSize, convey.ShouldEqual, 50_000)
			convey.So(cfg.StoreSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.GroupMin, convey.ShouldEqual, 5)
			convey.So(cfg.GroupMax, convey.ShouldEqual, 12)
			convey.So(cfg.GroupIdeal, convey.ShouldEqual, 8)
			convey.So(cfg.RolePriorities["decision"], convey.ShouldEqual, 10)
			convey.So(cfg.RolePriorities["introducer"], convey.ShouldEqual, 4)
		})
	})
}
