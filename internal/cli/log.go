// Package cli implements the adminviz command-line interface.
//
// The root command reads a derivative local admin traversal CSV and writes
// a diagram of it. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
//   - adminviz <graph.csv>: render the diagram (GraphML, DOT, SVG, PNG, PDF or JSON)
//   - inspect: browse nodes, neighbors and the reconstructed path in a terminal UI
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; pipeline events are logged at debug level
// through the observability hooks.
//
// # Example
//
//	import "github.com/powergraph/adminviz/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/powergraph/adminviz/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Loaded 42 nodes (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Pipeline hook logger
// =============================================================================

// hookLogger logs pipeline events at debug level.
type hookLogger struct {
	logger *log.Logger
}

var _ observability.PipelineHooks = (*hookLogger)(nil)

func newHookLogger(l *log.Logger) *hookLogger {
	return &hookLogger{logger: l.WithPrefix("pipeline")}
}

func (h *hookLogger) OnParseStart(_ context.Context, input string) {
	h.logger.Debug("parse started", "input", input)
}

func (h *hookLogger) OnParseComplete(_ context.Context, input string, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "input", input, "rows", rows, "err", err)
		return
	}
	h.logger.Debug("parse finished", "input", input, "rows", rows, "duration", d)
}

func (h *hookLogger) OnExportStart(_ context.Context, format string, nodes int) {
	h.logger.Debug("export started", "format", format, "nodes", nodes)
}

func (h *hookLogger) OnExportComplete(_ context.Context, format, output string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "format", format, "output", output, "err", err)
		return
	}
	h.logger.Debug("export finished", "format", format, "output", output, "duration", d)
}
