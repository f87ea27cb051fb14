package adapter

import (
	"fmt"
	"os/exec"
)

// Reloader asks the running window manager to pick up the rewritten
// configuration.
type Reloader interface {
	// Reload triggers a config reload without waiting for it to finish.
	// A failure to start the reload is reported to the caller but must
	// never roll back a file change already made.
	Reload() error
}

// SwayReloader reloads sway via `swaymsg reload`.
type SwayReloader struct{}

// NewSwayReloader constructs a SwayReloader.
func NewSwayReloader() *SwayReloader {
	return &SwayReloader{}
}

// Reload starts `swaymsg reload` and returns without awaiting its exit.
func (r *SwayReloader) Reload() error {
	cmd := exec.Command("swaymsg", "reload")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start swaymsg reload: %w", err)
	}

	// Reap the child in the background so it never lingers as a zombie.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
