package logger_test

import (
	"context"
	"testing"

	"github.com/okian/mingpan/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			So(func() {
				l.Info(context.Background(), "hello", logger.String("k", "v"), logger.Int("n", 1))
				l.Debug(context.Background(), "quiet")
				l.Warn(context.Background(), "careful", logger.Bool("flag", true))
			}, ShouldNotPanic)
		})

		Convey("And Named groups fields without panicking", func() {
			So(func() {
				logger.Named("api").Info(context.Background(), "grouped", logger.Float64("f", 1.5))
			}, ShouldNotPanic)
		})

		Convey("And Sync is a no-op", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})

	Convey("Given level strings", t, func() {
		Convey("Then known levels parse", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", " Info "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("And unknown levels are rejected", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}
