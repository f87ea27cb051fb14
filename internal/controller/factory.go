package controller

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain line prompt).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "swayscale",
	})

	if useTTY {
		return NewTUI(cmd.OutOrStdout(), logger)
	}

	return NewSimpleUI(cmd, logger)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
