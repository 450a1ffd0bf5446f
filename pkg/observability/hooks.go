// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about pipeline execution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for pipeline events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnParseStart(ctx, input)
//	// ... read rows ...
//	observability.Pipeline().OnParseComplete(ctx, input, rows, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the parse → build → export pipeline.
type PipelineHooks interface {
	// Parse events (reading rows and building the graph and path)
	OnParseStart(ctx context.Context, input string)
	OnParseComplete(ctx context.Context, input string, rows int, duration time.Duration, err error)

	// Export events (driving the render backend and persisting)
	OnExportStart(ctx context.Context, format string, nodes int)
	OnExportComplete(ctx context.Context, format, output string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                              {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnExportStart(context.Context, string, int)                        {}
func (NoopPipelineHooks) OnExportComplete(context.Context, string, string, time.Duration, error) {
}

// Multi returns hooks that forward every event to each of hs in order.
// Nil entries are skipped.
func Multi(hs ...PipelineHooks) PipelineHooks {
	var m multiHooks
	for _, h := range hs {
		if h != nil {
			m = append(m, h)
		}
	}
	return m
}

type multiHooks []PipelineHooks

func (m multiHooks) OnParseStart(ctx context.Context, input string) {
	for _, h := range m {
		h.OnParseStart(ctx, input)
	}
}

func (m multiHooks) OnParseComplete(ctx context.Context, input string, rows int, d time.Duration, err error) {
	for _, h := range m {
		h.OnParseComplete(ctx, input, rows, d, err)
	}
}

func (m multiHooks) OnExportStart(ctx context.Context, format string, nodes int) {
	for _, h := range m {
		h.OnExportStart(ctx, format, nodes)
	}
}

func (m multiHooks) OnExportComplete(ctx context.Context, format, output string, d time.Duration, err error) {
	for _, h := range m {
		h.OnExportComplete(ctx, format, output, d, err)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline run.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
