// Package pipeline provides the core visualization pipeline for adminviz.
//
// This package implements the complete parse → build → export pipeline used
// by the CLI. By centralizing this logic, every entry point gets the same
// defaults, validation, and output naming.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Parse: Stream the traversal CSV into a graph and reconstruct the
//     overlay path in the same forward pass
//  2. Export: Drive a rendering backend (GraphML, Graphviz, JSON) and
//     persist the diagram
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Input:  "traversal.csv",
//	    Format: pipeline.FormatSVG,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary.Output)
//
// Run the parse stage alone:
//
//	g, path, rows, err := runner.Parse(ctx, opts)
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/powergraph/adminviz/pkg/config"
	apperr "github.com/powergraph/adminviz/pkg/errors"
	"github.com/powergraph/adminviz/pkg/export"
	"github.com/powergraph/adminviz/pkg/graph"
	"github.com/powergraph/adminviz/pkg/observability"
	"github.com/powergraph/adminviz/pkg/render"
	"github.com/powergraph/adminviz/pkg/render/graphml"
	"github.com/powergraph/adminviz/pkg/render/jsonsink"
	"github.com/powergraph/adminviz/pkg/render/nodelink"
)

// =============================================================================
// Default Values
// =============================================================================

// Format constants for output formats.
const (
	FormatGraphML = graphml.Extension
	FormatDOT     = nodelink.FormatDOT
	FormatSVG     = nodelink.FormatSVG
	FormatPNG     = nodelink.FormatPNG
	FormatPDF     = nodelink.FormatPDF
	FormatJSON    = jsonsink.Extension
)

// DefaultFormat is the output format used when none is set.
const DefaultFormat = FormatGraphML

// DefaultEngine is the Graphviz layout engine used when none is set.
const DefaultEngine = nodelink.DefaultEngine

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatGraphML: true,
	FormatDOT:     true,
	FormatSVG:     true,
	FormatPNG:     true,
	FormatPDF:     true,
	FormatJSON:    true,
}

// FormatNames lists the supported formats in display order.
var FormatNames = []string{FormatGraphML, FormatDOT, FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the traversal CSV to read.
	Input string
	// OutputDir receives the diagram. Empty means the working directory.
	OutputDir string

	// Build options
	PathMode     graph.PathMode
	Target       string // path target in predecessor mode
	Placeholders bool   // synthesize unresolved neighbor references

	// Export options
	Format string
	Engine string // Graphviz layout engine (dot, svg, png, pdf)

	// Runtime options
	Logger *log.Logger
	Hooks  observability.PipelineHooks // nil means observability.Pipeline()
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in log output.
	RunID string

	// Graph is the parsed node graph.
	Graph *graph.Graph

	// Path is the reconstructed overlay path.
	Path graph.Path

	// Summary describes what the backend received and where it was written.
	Summary export.Summary

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows       int
	NodeCount  int
	EdgeCount  int
	ParseTime  time.Duration
	ExportTime time.Duration
}

// FromConfig returns Options seeded with the values of a config file.
func FromConfig(c *config.Config) Options {
	if c == nil {
		return Options{}
	}
	return Options{
		OutputDir:    c.OutputDir,
		PathMode:     graph.PathMode(c.PathMode),
		Target:       c.Target,
		Placeholders: c.Placeholders,
		Format:       c.Format,
		Engine:       c.Engine,
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidatePathMode checks that a path mode is valid.
func ValidatePathMode(mode graph.PathMode) error {
	_, err := graph.ParsePathMode(string(mode))
	return err
}

// ValidateEngine checks that a Graphviz layout engine is supported.
func ValidateEngine(engine string) error {
	if !nodelink.ValidEngines[engine] {
		return apperr.New(apperr.ErrCodeInvalidInput, "invalid engine: %q", engine)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return apperr.New(apperr.ErrCodeInvalidInput, "input file is required")
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	return o.ValidateForExport()
}

// ValidateForParse normalizes the build options.
func (o *Options) ValidateForParse() error {
	mode, err := graph.ParsePathMode(string(o.PathMode))
	if err != nil {
		return err
	}
	o.PathMode = mode
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForExport applies export defaults and validates them.
func (o *Options) ValidateForExport() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Format = strings.ToLower(o.Format)
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	return ValidateEngine(o.Engine)
}

// BuildOptions returns the graph builder configuration.
func (o *Options) BuildOptions() graph.BuildOptions {
	return graph.BuildOptions{
		Mode:         o.PathMode,
		Target:       o.Target,
		Placeholders: o.Placeholders,
	}
}

// IsGraphviz reports whether the format is rendered through Graphviz.
func (o *Options) IsGraphviz() bool {
	switch o.Format {
	case FormatDOT, FormatSVG, FormatPNG, FormatPDF:
		return true
	}
	return false
}

// NewBackend returns an empty rendering backend for the configured format.
func (o *Options) NewBackend() render.Backend {
	switch {
	case o.Format == FormatJSON:
		return jsonsink.New()
	case o.IsGraphviz():
		return nodelink.New(nodelink.Options{Format: o.Format, Engine: o.Engine})
	default:
		return graphml.New()
	}
}

// OutputPath derives the artifact path from the input file name: the base
// name without its extension, the given extension, inside OutputDir.
func (o *Options) OutputPath(ext string) string {
	return OutputPath(o.Input, o.OutputDir, ext)
}

// OutputPath returns dir/<input base name without extension>.<ext>.
func OutputPath(input, dir, ext string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+"."+ext)
}
