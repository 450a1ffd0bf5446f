package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	apperr "github.com/powergraph/adminviz/pkg/errors"
	"github.com/powergraph/adminviz/pkg/export"
	"github.com/powergraph/adminviz/pkg/graph"
	csvio "github.com/powergraph/adminviz/pkg/io"
	"github.com/powergraph/adminviz/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger; it doesn't store pipeline
// results. Runs report to Options.Hooks, falling back to the process-wide
// observability registry, so concurrent runs that need their own hooks
// must set Options.Hooks.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → build → export pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := opts.Logger.With("run", result.RunID)

	// Stage 1: Parse
	parseStart := time.Now()
	g, path, rows, err := r.Parse(ctx, opts)
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.Rows = rows
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Path = path
	result.Stats.NodeCount = g.Len()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("parsed records",
		"rows", rows,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"path", len(path),
		"duration", result.Stats.ParseTime)
	if len(path) > 1 {
		logger.Debug("overlay path", "mode", opts.PathMode, "path", path.String())
	}

	// Stage 2: Export
	exportStart := time.Now()
	sum, err := r.Export(ctx, g, path, opts)
	result.Stats.ExportTime = time.Since(exportStart)
	if err != nil {
		return nil, err
	}
	result.Summary = sum

	logger.Info("exported diagram",
		"format", opts.Format,
		"output", sum.Output,
		"overlay", sum.OverlayEdges,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Parse streams opts.Input into a graph and reconstructs the overlay path.
// It returns the number of rows read even when it fails.
func (r *Runner) Parse(ctx context.Context, opts Options) (*graph.Graph, graph.Path, int, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForParse(); err != nil {
		return nil, nil, 0, err
	}

	hooks := opts.hooks()
	hooks.OnParseStart(ctx, opts.Input)
	start := time.Now()

	b := graph.NewBuilder(opts.BuildOptions())
	err := csvio.ImportCSV(ctx, opts.Input, func(n graph.Node) error {
		b.Add(n)
		return nil
	})

	var (
		g    *graph.Graph
		path graph.Path
	)
	if err == nil {
		g, path, err = b.Build()
	}
	if errors.Is(err, fs.ErrNotExist) {
		err = apperr.Wrap(apperr.ErrCodeFileNotFound, err, "input file not found")
	}

	hooks.OnParseComplete(ctx, opts.Input, b.Rows(), time.Since(start), err)
	if err != nil {
		return nil, nil, b.Rows(), err
	}

	if n := len(g.Unresolved()); n > 0 {
		opts.Logger.Warn("unresolved neighbor references", "count", n)
	}
	return g, path, b.Rows(), nil
}

// Export sends the graph and path to the backend for opts.Format and writes
// the diagram into OutputDir.
func (r *Runner) Export(ctx context.Context, g *graph.Graph, path graph.Path, opts Options) (export.Summary, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForExport(); err != nil {
		return export.Summary{}, err
	}

	b := opts.NewBackend()
	output := opts.OutputPath(b.Extension())

	hooks := opts.hooks()
	hooks.OnExportStart(ctx, opts.Format, g.Len())
	start := time.Now()

	sum, err := export.Export(ctx, g, path, b, output)
	if err != nil && apperr.GetCode(err) == "" && ctx.Err() == nil {
		err = apperr.Wrap(apperr.ErrCodeIO, err, "export %s", output)
	}

	hooks.OnExportComplete(ctx, opts.Format, output, time.Since(start), err)
	if err != nil {
		return export.Summary{}, err
	}
	return sum, nil
}

func (o Options) hooks() observability.PipelineHooks {
	if o.Hooks != nil {
		return o.Hooks
	}
	return observability.Pipeline()
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// String describes the result in one line.
func (s Stats) String() string {
	return fmt.Sprintf("%d rows, %d nodes, %d edges (parse %s, export %s)",
		s.Rows, s.NodeCount, s.EdgeCount,
		s.ParseTime.Round(time.Millisecond), s.ExportTime.Round(time.Millisecond))
}
