package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/powergraph/adminviz/pkg/pipeline"
)

// watchDebounce is how long the input must stay quiet before a re-render.
const watchDebounce = 200 * time.Millisecond

// runWatch renders once and then again after every burst of changes to the
// input file, until ctx is cancelled. Render failures are reported and the
// watch continues.
func (c *CLI) runWatch(ctx context.Context, opts pipeline.Options, quiet bool, after func()) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	target, err := filepath.Abs(opts.Input)
	if err != nil {
		return err
	}

	render := func() {
		if err := c.runRender(ctx, opts, quiet); err != nil {
			PrintError(os.Stderr, err)
		}
		after()
	}
	render()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Editors and exporters often replace the file, so watch its directory.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return err
	}
	logger.Info("watching for changes", "file", opts.Input)

	return watchFile(ctx, logger, w.Events, w.Errors, target, watchDebounce, render)
}

// watchFile calls fn once per burst of write or create events on target.
// It returns when ctx is done or either channel is closed.
func watchFile(ctx context.Context, logger *log.Logger, events <-chan fsnotify.Event, errs <-chan error,
	target string, debounce time.Duration, fn func()) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("input changed", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)

		case <-fire:
			fire = nil
			fn()
		}
	}
}
