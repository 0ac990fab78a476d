package logger

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitZap(t *testing.T) {
	Convey("TestInitZap", t, func() {
		dir := filepath.Join(t.TempDir(), "logs")
		l, err := initZap("debug", "iris-eda-test", dir, 1, 1, 1, "")
		So(err, ShouldBeNil)
		So(l, ShouldNotBeNil)
		defer zap.ReplaceGlobals(zap.NewNop())

		Infof("rows=%d", 150)
		Errorf("render failed: %s", "boom")
		Sync()

		_, err = os.Stat(dir)
		So(err, ShouldBeNil)
		matches, _ := filepath.Glob(filepath.Join(dir, "iris-eda-test_info_*.log"))
		So(len(matches), ShouldBeGreaterThan, 0)
		errMatches, _ := filepath.Glob(filepath.Join(dir, "iris-eda-test_err_*.log"))
		So(len(errMatches), ShouldBeGreaterThan, 0)
	})
}

func TestSentryLevel(t *testing.T) {
	Convey("TestSentryLevel", t, func() {
		So(string(sentryLevel(zapcore.WarnLevel)), ShouldEqual, "warning")
		So(string(sentryLevel(zapcore.ErrorLevel)), ShouldEqual, "error")
		So(string(sentryLevel(zapcore.PanicLevel)), ShouldEqual, "fatal")
	})
}
