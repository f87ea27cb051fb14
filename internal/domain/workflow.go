package domain

import (
	"fmt"

	"github.com/fribbit/swayscale/internal/adapter"
	"github.com/fribbit/swayscale/internal/controller"
	m "github.com/fribbit/swayscale/internal/model"
)

// Workflow defines the end-to-end scale swap operation.
type Workflow interface {
	Run(args RunArgs) error
}

// RunArgs configures a single swayscale run.
type RunArgs struct {
	// ConfigPath is the config file location, possibly ~-prefixed.
	ConfigPath m.Path
	// Cycle selects non-interactive mode: advance to the next declared
	// scale instead of prompting.
	Cycle bool
}

type workflow struct {
	fs       adapter.ConfigFS
	reloader adapter.Reloader
	ui       controller.UI
}

// NewWorkflow creates a Workflow wired to the provided adapters and UI.
func NewWorkflow(fs adapter.ConfigFS, reloader adapter.Reloader, ui controller.UI) Workflow {
	return &workflow{fs: fs, reloader: reloader, ui: ui}
}

// Run executes the pipeline: load the config, parse the scale options
// section, derive the active scale, pick a new one, rewrite the output
// lines, persist atomically and ask sway to reload. An aborted selection
// leaves the file untouched.
func (w *workflow) Run(args RunArgs) error {
	path, err := w.fs.ExpandHome(args.ConfigPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	lines, err := w.fs.ReadLines(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	section, err := ScaleSection(lines)
	if err != nil {
		return err
	}

	opts, err := ParseScaleOptions(section)
	if err != nil {
		return err
	}

	current, warnings := CurrentScale(lines, opts.TargetDisplays)
	for _, warning := range warnings {
		w.ui.Warn(warning)
	}

	selection, err := w.selectScale(opts, current, args.Cycle)
	if err != nil {
		return err
	}

	newScale, ok := selection.Value()
	if !ok {
		w.ui.DisplayNoChanges()

		return nil
	}

	updated := RewriteScale(lines, opts.TargetDisplays, newScale)

	if err := w.fs.ReplaceLines(path, updated); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	w.ui.DisplayReloadResult(w.reloader.Reload())

	return nil
}

func (w *workflow) selectScale(opts m.ScaleOptions, current float64, cycle bool) (m.Selection, error) {
	if !cycle {
		return w.ui.SelectScale(opts, current)
	}

	next, fallback := NextScale(opts.ScaleValues, current)
	if fallback {
		w.ui.DisplayFallback(current, next)
	} else {
		w.ui.DisplaySwap(current, next)
	}

	return m.Selected(next), nil
}
