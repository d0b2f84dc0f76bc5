package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrata/monaco/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.JobQueueSize, convey.ShouldEqual, 10_000)
				convey.So(cfg.GroupIdeal, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("MONACO_ADDR", ":8080")
			_ = os.Setenv("MONACO_QUEUE_SIZE", "5000")
			_ = os.Setenv("MONACO_WORKER_COUNT", "4")
			_ = os.Setenv("MONACO_GROUP_MAX", "15")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.JobQueueSize, convey.ShouldEqual, 5000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
				convey.So(cfg.GroupMax, convey.ShouldEqual, 15)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":7070\"\nqueue_size: 2500\ngroup_min: 3\ngroup_ideal: 6\ngroup_max: 10\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("MONACO_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should apply the file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.JobQueueSize, convey.ShouldEqual, 2500)
				convey.So(cfg.GroupMin, convey.ShouldEqual, 3)
				convey.So(cfg.GroupIdeal, convey.ShouldEqual, 6)
				convey.So(cfg.GroupMax, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When group bounds are inconsistent", func() {
			clearConfigEnvVars()
			_ = os.Setenv("MONACO_GROUP_MIN", "10")
			_ = os.Setenv("MONACO_GROUP_MAX", "4")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail validation", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"MONACO_CONFIG",
		"MONACO_ADDR",
		"MONACO_QUEUE_SIZE",
		"MONACO_WORKER_COUNT",
		"MONACO_DEDUPE_SIZE",
		"MONACO_STORE_SIZE",
		"MONACO_GROUP_MIN",
		"MONACO_GROUP_MAX",
		"MONACO_GROUP_IDEAL",
	} {
		_ = os.Unsetenv(key)
	}
}
