package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/fribbit/swayscale/internal/model"
)

// SimpleUI implements UI using cobra Command's input and output streams.
// It is the non-TTY path and also what the interactive contract is tested
// against: a numbered menu read line by line.
type SimpleUI struct {
	cmd    *cobra.Command
	logger *log.Logger
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, logger *log.Logger) *SimpleUI {
	return &SimpleUI{cmd: cmd, logger: logger}
}

// SelectScale prints the status table and a 1-based menu, then reads
// lines until the user picks a valid option or quits. Invalid input
// re-prompts with a bounds reminder and never terminates the run.
func (s *SimpleUI) SelectScale(opts m.ScaleOptions, current float64) (m.Selection, error) {
	s.printStatus(opts, current)
	s.printf("Available scale options:\n")

	for i, v := range opts.ScaleValues {
		s.printf("%d. %s\n", i+1, m.FormatScale(v))
	}

	s.printf("Q. Quit without making changes\n")
	s.printf("Enter the number of the scale you want to apply or 'Q' to quit:\n")

	scanner := bufio.NewScanner(s.cmd.InOrStdin())

	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(input, "q") {
			s.printf("Quitting without making changes.\n")

			return m.Aborted(), nil
		}

		if choice, err := strconv.Atoi(input); err == nil && choice >= 1 && choice <= len(opts.ScaleValues) {
			selected := opts.ScaleValues[choice-1]
			s.printf("Selected scale: %s\n", m.FormatScale(selected))

			return m.Selected(selected), nil
		}

		s.printf("Invalid selection. Please enter a number between 1 and %d, or 'Q' to quit.\n", len(opts.ScaleValues))
	}

	if err := scanner.Err(); err != nil {
		return m.Aborted(), err
	}

	// Input closed without a choice; treat like quit.
	return m.Aborted(), nil
}

// DisplaySwap reports a cycle-mode change.
func (s *SimpleUI) DisplaySwap(from, to float64) {
	s.printf("Swapping scale from %s to %s\n", m.FormatScale(from), m.FormatScale(to))
}

// DisplayFallback reports that the active scale is not a declared option.
func (s *SimpleUI) DisplayFallback(current, fallback float64) {
	s.printf(
		"Current scale %s not found in scale options. Using first scale %s\n",
		m.FormatScale(current), m.FormatScale(fallback),
	)
}

// DisplayNoChanges reports that nothing was written.
func (s *SimpleUI) DisplayNoChanges() {
	s.printf("No changes made. Exiting.\n")
}

// DisplayReloadResult reports whether the sway reload was started.
func (s *SimpleUI) DisplayReloadResult(err error) {
	if err != nil {
		s.logger.Error("failed to reload sway configuration", "err", err)

		return
	}

	s.printf("Successfully reloaded sway configuration.\n")
}

// Warn emits a non-fatal diagnostic on the error stream.
func (s *SimpleUI) Warn(msg string) {
	s.logger.Warn(msg)
}

func (s *SimpleUI) printStatus(opts m.ScaleOptions, current float64) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target Display", "Scale"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, display := range opts.TargetDisplays {
		table.Append([]string{display, m.FormatScale(current)})
	}

	table.Render()

	s.printf("Current active scale: %s\n\n%s\n", m.FormatScale(current), tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
