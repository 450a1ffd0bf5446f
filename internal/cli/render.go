package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/powergraph/adminviz/pkg/config"
	apperr "github.com/powergraph/adminviz/pkg/errors"
	"github.com/powergraph/adminviz/pkg/graph"
	"github.com/powergraph/adminviz/pkg/observability"
	"github.com/powergraph/adminviz/pkg/pipeline"
)

// renderFlags holds the command-line flags shared by render and inspect.
// Flags left unset on the command line fall back to the config file.
type renderFlags struct {
	outputDir    string // directory for the diagram
	format       string // graphml, dot, svg, png, pdf, json
	engine       string // Graphviz layout engine
	pathMode     string // distance or predecessor
	target       string // predecessor mode path target
	placeholders bool   // synthesize unresolved neighbors
	quiet        bool   // suppress the spinner and summary
	watch        bool   // re-render when the input changes
	metricsFile  string // Prometheus textfile written after each run
}

// register adds the flags to cmd. Output flags are only added when output
// is true.
func (f *renderFlags) register(cmd *cobra.Command, output bool) {
	if output {
		cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "directory for the diagram (default: working directory)")
		cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: "+strings.Join(pipeline.FormatNames, ", ")+" (default "+pipeline.DefaultFormat+")")
		cmd.Flags().StringVar(&f.engine, "engine", "", "Graphviz layout engine for dot/svg/png/pdf (default "+pipeline.DefaultEngine+")")
		cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "suppress the spinner and the summary")
		cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "re-render whenever the input file changes")
		cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics for the run to this textfile")
		_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.FormatNames, cobra.ShellCompDirectiveNoFileComp))
	}
	cmd.Flags().StringVar(&f.pathMode, "path-mode", "", "path reconstruction: distance (default), predecessor")
	cmd.Flags().StringVar(&f.target, "target", "", "final node of the path in predecessor mode (default: deepest node)")
	cmd.Flags().BoolVar(&f.placeholders, "placeholders", false, "draw unresolved neighbors as host nodes instead of failing")
	_ = cmd.RegisterFlagCompletionFunc("path-mode", cobra.FixedCompletions(
		[]string{string(graph.PathByDistance), string(graph.PathByPredecessor)}, cobra.ShellCompDirectiveNoFileComp))
}

// options merges the config file with the flags set on the command line.
func (f *renderFlags) options(cmd *cobra.Command, configPath, input string) (pipeline.Options, error) {
	cfg, err := config.Find(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return pipeline.Options{}, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file not found")
		}
		return pipeline.Options{}, err
	}
	if cfg.Source != "" {
		loggerFromContext(cmd.Context()).Debug("loaded config", "file", cfg.Source)
	}

	opts := pipeline.FromConfig(cfg)
	opts.Input = input

	set := cmd.Flags().Changed
	if set("output-dir") {
		opts.OutputDir = f.outputDir
	}
	if set("format") {
		opts.Format = f.format
	}
	if set("engine") {
		opts.Engine = f.engine
	}
	if set("path-mode") {
		opts.PathMode = graph.PathMode(f.pathMode)
	}
	if set("target") {
		opts.Target = f.target
	}
	if set("placeholders") {
		opts.Placeholders = f.placeholders
	}
	return opts, nil
}

// render runs the root command: once, or on every change with --watch.
// With --metrics-file the textfile is rewritten after every run.
func (c *CLI) render(ctx context.Context, opts pipeline.Options, f *renderFlags) error {
	after := func() {}
	if f.metricsFile != "" {
		metrics := observability.NewMetricsHooks()
		opts.Hooks = observability.Multi(newHookLogger(c.Logger), metrics)
		after = func() {
			if err := metrics.WriteTextfile(f.metricsFile); err != nil {
				c.Logger.Warn("write metrics", "file", f.metricsFile, "err", err)
			}
		}
	}

	if f.watch {
		return c.runWatch(ctx, opts, f.quiet, after)
	}
	err := c.runRender(ctx, opts, f.quiet)
	after()
	return err
}

// runRender executes the pipeline and prints a summary of the diagram.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, quiet bool) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var spin *Spinner
	if !quiet && opts.IsGraphviz() && isatty.IsTerminal(os.Stderr.Fd()) {
		spin = newSpinnerWithContext(ctx, os.Stderr, "Rendering "+opts.Format+" with "+opts.Engine)
		spin.Start()
	}

	result, err := pipeline.NewRunner(logger).Execute(ctx, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if !quiet {
		printRenderSummary(opts, result)
	}
	return nil
}
