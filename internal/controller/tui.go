package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	m "github.com/fribbit/swayscale/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	logger *log.Logger
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, logger *log.Logger) *TUI {
	return &TUI{output: output, logger: logger}
}

// SelectScale runs the Bubble Tea picker. The outcome is the same tagged
// selection the plain prompt produces: a chosen value or an abort.
func (t *TUI) SelectScale(opts m.ScaleOptions, current float64) (m.Selection, error) {
	model := newPickerModel(opts, current)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
			model.scaleList.SetWidth(width)
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output))

	final, err := program.Run()
	if err != nil {
		return m.Aborted(), err
	}

	picker, ok := final.(pickerModel)
	if !ok {
		return m.Aborted(), nil
	}

	if v, chosen := picker.selection.Value(); chosen {
		_, _ = fmt.Fprintf(t.output, "Selected scale: %s\n", m.FormatScale(v))
	} else {
		_, _ = fmt.Fprintf(t.output, "Quitting without making changes.\n")
	}

	return picker.selection, nil
}

// DisplaySwap reports a cycle-mode change.
func (t *TUI) DisplaySwap(from, to float64) {
	_, _ = fmt.Fprintf(t.output, "Swapping scale from %s to %s\n", m.FormatScale(from), m.FormatScale(to))
}

// DisplayFallback reports that the active scale is not a declared option.
func (t *TUI) DisplayFallback(current, fallback float64) {
	_, _ = fmt.Fprintf(
		t.output,
		"Current scale %s not found in scale options. Using first scale %s\n",
		m.FormatScale(current), m.FormatScale(fallback),
	)
}

// DisplayNoChanges reports that nothing was written.
func (t *TUI) DisplayNoChanges() {
	_, _ = fmt.Fprintf(t.output, "No changes made. Exiting.\n")
}

// DisplayReloadResult reports whether the sway reload was started.
func (t *TUI) DisplayReloadResult(err error) {
	if err != nil {
		t.logger.Error("failed to reload sway configuration", "err", err)

		return
	}

	_, _ = fmt.Fprintf(t.output, "Successfully reloaded sway configuration.\n")
}

// Warn emits a non-fatal diagnostic on the error stream.
func (t *TUI) Warn(msg string) {
	t.logger.Warn(msg)
}
