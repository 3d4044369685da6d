package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windrose/pkg/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info", LogInfo, func(l *log.Logger) { l.Info("layout computed") }, true},
		{"debug at info", LogInfo, func(l *log.Logger) { l.Debug("cache hit", "key", "radial/v1:abc") }, false},
		{"debug at debug", LogDebug, func(l *log.Logger) { l.Debug("cache hit", "key", "radial/v1:abc") }, true},
		{"warn at info", LogInfo, func(l *log.Logger) { l.Warn("redis unavailable, using file cache") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug logged at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug message missing after SetLogLevel(LogDebug)")
	}
}

func TestProgressReportsElapsed(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, LogInfo))
	prog.done("Rendered 2 format(s)")

	out := buf.String()
	if !strings.Contains(out, "Rendered 2 format(s)") {
		t.Errorf("output missing message: %q", out)
	}
	if !regexp.MustCompile(`\(\d+(\.\d+)?(ns|µs|ms|s)\)`).MatchString(out) {
		t.Errorf("output missing elapsed duration: %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, LogInfo)
	got := loggerFromContext(withLogger(context.Background(), custom))
	if got != custom {
		t.Fatal("loggerFromContext should return the attached logger")
	}
	got.Info("imported outline", "nodes", 5)
	if !strings.Contains(buf.String(), "nodes=5") {
		t.Errorf("attached logger did not write: %q", buf.String())
	}
}

func TestConfigureLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LogConfig
		setLevel bool
		want     string // substring of the rendered line
		silent   bool
	}{
		{"json", config.LogConfig{Level: "info", Format: config.LogFormatJSON}, true, `"msg":"layout computed"`, false},
		{"logfmt", config.LogConfig{Level: "info", Format: config.LogFormatLogfmt}, true, `msg="layout computed"`, false},
		{"warn hides info", config.LogConfig{Level: "warn", Format: config.LogFormatText}, true, "", true},
		{"level ignored when pinned", config.LogConfig{Level: "warn", Format: config.LogFormatText}, false, "layout computed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, LogInfo)
			configureLogger(l, tt.cfg, tt.setLevel)
			l.Info("layout computed", "nodes", 4)

			out := buf.String()
			if tt.silent {
				if out != "" {
					t.Errorf("expected no output, got %q", out)
				}
				return
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing %q", out, tt.want)
			}
		})
	}
}

func TestVerboseOverridesConfigLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("WINDROSE_LOG_LEVEL", "error")

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}

	c = New(&buf, LogInfo)
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if c.Logger.GetLevel() != log.ErrorLevel {
		t.Errorf("level = %v, want error from WINDROSE_LOG_LEVEL", c.Logger.GetLevel())
	}
}
