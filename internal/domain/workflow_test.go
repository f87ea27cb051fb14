package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/fribbit/swayscale/internal/model"
)

type fakeConfigFS struct {
	lines      m.Lines
	readErr    error
	replaceErr error
	written    m.Lines
	replaced   bool
}

func (f *fakeConfigFS) ExpandHome(path m.Path) (m.Path, error) {
	return path, nil
}

func (f *fakeConfigFS) ReadLines(_ m.Path) (m.Lines, error) {
	return f.lines, f.readErr
}

func (f *fakeConfigFS) ReplaceLines(_ m.Path, lines m.Lines) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}

	f.replaced = true
	f.written = lines

	return nil
}

type fakeReloader struct {
	calls int
	err   error
}

func (r *fakeReloader) Reload() error {
	r.calls++

	return r.err
}

type fakeUI struct {
	selection  m.Selection
	selectErr  error
	warnings   []string
	swaps      [][2]float64
	fallbacks  [][2]float64
	noChanges  int
	reloadErrs []error
}

func (u *fakeUI) SelectScale(_ m.ScaleOptions, _ float64) (m.Selection, error) {
	return u.selection, u.selectErr
}

func (u *fakeUI) DisplaySwap(from, to float64) {
	u.swaps = append(u.swaps, [2]float64{from, to})
}

func (u *fakeUI) DisplayFallback(current, fallback float64) {
	u.fallbacks = append(u.fallbacks, [2]float64{current, fallback})
}

func (u *fakeUI) DisplayNoChanges() {
	u.noChanges++
}

func (u *fakeUI) DisplayReloadResult(err error) {
	u.reloadErrs = append(u.reloadErrs, err)
}

func (u *fakeUI) Warn(msg string) {
	u.warnings = append(u.warnings, msg)
}

func configLines() m.Lines {
	return m.Lines{
		"# Scale Options Start",
		"# Target Display = eDP-1",
		"# Scale Options = 1.0, 1.25, 1.5",
		"# Scale Options End",
		`output "eDP-1" scale 1.25`,
		"bar {",
	}
}

func TestWorkflow_CycleAdvancesScale(t *testing.T) {
	fs := &fakeConfigFS{lines: configLines()}
	reloader := &fakeReloader{}
	ui := &fakeUI{}

	err := NewWorkflow(fs, reloader, ui).Run(RunArgs{ConfigPath: "config", Cycle: true})
	require.NoError(t, err)

	require.True(t, fs.replaced)
	require.Len(t, fs.written, len(fs.lines))
	require.Equal(t, `output "eDP-1" scale 1.5`, fs.written[4])
	require.Equal(t, "bar {", fs.written[5])

	require.Equal(t, 1, reloader.calls)
	require.Equal(t, [][2]float64{{1.25, 1.5}}, ui.swaps)
	require.Empty(t, ui.warnings)
}

func TestWorkflow_CycleWrapsToSmallest(t *testing.T) {
	lines := configLines()
	lines[4] = `output "eDP-1" scale 1.5`
	fs := &fakeConfigFS{lines: lines}
	ui := &fakeUI{}

	err := NewWorkflow(fs, &fakeReloader{}, ui).Run(RunArgs{ConfigPath: "config", Cycle: true})
	require.NoError(t, err)

	require.Equal(t, `output "eDP-1" scale 1`, fs.written[4])
	require.Equal(t, [][2]float64{{1.5, 1.0}}, ui.swaps)
}

func TestWorkflow_CycleFallsBackWhenCurrentUndeclared(t *testing.T) {
	lines := configLines()
	lines[4] = `output "eDP-1" scale 2`
	fs := &fakeConfigFS{lines: lines}
	ui := &fakeUI{}

	err := NewWorkflow(fs, &fakeReloader{}, ui).Run(RunArgs{ConfigPath: "config", Cycle: true})
	require.NoError(t, err)

	require.Equal(t, `output "eDP-1" scale 1`, fs.written[4])
	require.Equal(t, [][2]float64{{2.0, 1.0}}, ui.fallbacks)
	require.Empty(t, ui.swaps)
}

func TestWorkflow_InteractiveSelectionIsApplied(t *testing.T) {
	fs := &fakeConfigFS{lines: configLines()}
	ui := &fakeUI{selection: m.Selected(1.0)}

	err := NewWorkflow(fs, &fakeReloader{}, ui).Run(RunArgs{ConfigPath: "config"})
	require.NoError(t, err)

	require.Equal(t, `output "eDP-1" scale 1`, fs.written[4])
}

func TestWorkflow_AbortMakesNoChanges(t *testing.T) {
	fs := &fakeConfigFS{lines: configLines()}
	reloader := &fakeReloader{}
	ui := &fakeUI{selection: m.Aborted()}

	err := NewWorkflow(fs, reloader, ui).Run(RunArgs{ConfigPath: "config"})
	require.NoError(t, err)

	require.False(t, fs.replaced)
	require.Equal(t, 0, reloader.calls)
	require.Equal(t, 1, ui.noChanges)
}

func TestWorkflow_MissingEndMarkerWritesNothing(t *testing.T) {
	fs := &fakeConfigFS{lines: m.Lines{
		"# Scale Options Start",
		"# Target Display = eDP-1",
		"# Scale Options = 1.0, 1.5",
	}}

	err := NewWorkflow(fs, &fakeReloader{}, &fakeUI{}).Run(RunArgs{ConfigPath: "config", Cycle: true})
	require.ErrorIs(t, err, ErrEndMarkerNotFound)
	require.False(t, fs.replaced)
}

func TestWorkflow_NoReadingsWarnsAndContinues(t *testing.T) {
	fs := &fakeConfigFS{lines: m.Lines{
		"# Scale Options Start",
		"# Target Display = eDP-1",
		"# Scale Options = 1.0, 1.25",
		"# Scale Options End",
	}}
	ui := &fakeUI{}

	// Current defaults to 1, so cycle advances to 1.25.
	err := NewWorkflow(fs, &fakeReloader{}, ui).Run(RunArgs{ConfigPath: "config", Cycle: true})
	require.NoError(t, err)

	require.Len(t, ui.warnings, 1)
	require.Equal(t, [][2]float64{{1.0, 1.25}}, ui.swaps)
}

func TestWorkflow_ReloadFailureDoesNotFailRun(t *testing.T) {
	fs := &fakeConfigFS{lines: configLines()}
	reloader := &fakeReloader{err: errors.New("swaymsg not found")}
	ui := &fakeUI{}

	err := NewWorkflow(fs, reloader, ui).Run(RunArgs{ConfigPath: "config", Cycle: true})
	require.NoError(t, err)

	require.True(t, fs.replaced)
	require.Len(t, ui.reloadErrs, 1)
	require.Error(t, ui.reloadErrs[0])
}
