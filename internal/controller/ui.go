// Package controller provides the user-facing input and output for the
// swayscale CLI.
package controller

import (
	m "github.com/fribbit/swayscale/internal/model"
)

// UI defines how swayscale talks to the user: the interactive scale
// selection, flow messages and warnings.
// Implementations can use different output methods (plain prompt, TUI).
type UI interface {
	// SelectScale asks the user to pick one of the declared scale values
	// or to quit. The values are presented in declaration order.
	SelectScale(opts m.ScaleOptions, current float64) (m.Selection, error)

	// DisplaySwap reports a cycle-mode change from one scale to the next.
	DisplaySwap(from, to float64)

	// DisplayFallback reports that the active scale is not among the
	// declared values and the smallest declared value is used instead.
	DisplayFallback(current, fallback float64)

	// DisplayNoChanges reports that the run finished without touching
	// the config file.
	DisplayNoChanges()

	// DisplayReloadResult reports the outcome of the reload attempt.
	// A nil error means the reload command was started.
	DisplayReloadResult(err error)

	// Warn emits a non-fatal diagnostic.
	Warn(msg string)
}
