package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		InitWriter(&buf)
		SetLevel(slog.LevelInfo)
		ctx := context.Background()

		Convey("Named loggers tag records with the component", func() {
			Named("carousel").Info(ctx, "slide changed", Int("index", 2))
			So(buf.String(), ShouldContainSubstring, "component=carousel")
			So(buf.String(), ShouldContainSubstring, "index=2")
			So(buf.String(), ShouldContainSubstring, "logger_test.go")
		})

		Convey("Records below the level are dropped", func() {
			Get().Debug(ctx, "hidden")
			So(buf.String(), ShouldBeEmpty)

			So(SetLevelString("debug"), ShouldBeNil)
			Get().Debug(ctx, "shown")
			So(buf.String(), ShouldContainSubstring, "shown")
			SetLevel(slog.LevelInfo)
		})

		Convey("Unknown levels are rejected", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
		})
	})

	Convey("Nop never panics", t, func() {
		So(func() { Nop().Named("x").Error(context.Background(), "boom") }, ShouldNotPanic)
	})
}
