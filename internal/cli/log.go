// Package cli implements the windrose command-line interface.
//
// This package provides commands for laying out argument maps radially,
// rendering them as SVG, PNG, PDF, JSON or Graphviz DOT, inspecting their
// tailwind/headwind balance, importing plain-text outlines and managing the
// layout cache. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a layout document from an argument map
//   - render: Lay out and render a map in one step
//   - visualize: Render a previously computed layout document
//   - balance: Print tailwind/headwind bars for a map
//   - check: Report roots, orphans and cycles without laying out
//   - import: Convert an indented outline into a map document
//   - browse: Explore the laid-out tree interactively
//   - cache: Manage the layout and artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/windrose/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/windrose/pkg/config"
)

// newLogger returns a text logger stamped with "15:04:05.00" times.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// configureLogger applies the [log] config section. Config values were
// validated on load, so unknown values are ignored here.
func configureLogger(l *log.Logger, cfg config.LogConfig, setLevel bool) {
	switch cfg.Format {
	case config.LogFormatJSON:
		l.SetFormatter(log.JSONFormatter)
	case config.LogFormatLogfmt:
		l.SetFormatter(log.LogfmtFormatter)
	default:
		l.SetFormatter(log.TextFormatter)
	}
	if !setLevel {
		return
	}
	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		l.SetLevel(lvl)
	}
}

// progress logs how long a command step took once it finishes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs e.g. "Rendered 3 format(s) (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey struct{}

// withLogger attaches l to ctx for helpers that only receive a context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
