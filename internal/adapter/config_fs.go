// Package adapter contains filesystem and process adapters for the
// swayscale CLI.
package adapter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/fribbit/swayscale/internal/model"
)

// ConfigFS abstracts the filesystem operations the domain layer relies on
// when loading and persisting the config file. It intentionally hides
// direct `os` access so the workflow logic can be tested without touching
// the disk.
type ConfigFS interface {
	// ExpandHome resolves a literal leading ~ against the invoking
	// user's home directory. Any other path form passes through.
	ExpandHome(path m.Path) (m.Path, error)

	// ReadLines loads the file at path as an ordered sequence of lines.
	ReadLines(path m.Path) (m.Lines, error)

	// ReplaceLines atomically replaces the file at path with the given
	// lines. An interrupted write must never leave the original file
	// truncated or partially overwritten.
	ReplaceLines(path m.Path, lines m.Lines) error
}

// LocalConfigFS is the concrete ConfigFS backed by the local filesystem.
type LocalConfigFS struct{}

// NewLocalConfigFS constructs a LocalConfigFS ready to be wired into the
// workflow.
func NewLocalConfigFS() *LocalConfigFS {
	return &LocalConfigFS{}
}

// ExpandHome resolves a leading ~ to the user's home directory.
func (a *LocalConfigFS) ExpandHome(path m.Path) (m.Path, error) {
	p := string(path)
	if !strings.HasPrefix(p, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", p, err)
	}

	return m.Path(home + p[1:]), nil
}

// ReadLines loads file contents from disk, one entry per line, with line
// endings stripped.
func (a *LocalConfigFS) ReadLines(path m.Path) (m.Lines, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	var lines m.Lines

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReplaceLines writes all lines to a same-directory temporary file, syncs
// it, then renames it onto path. The rename is the only step that touches
// the original file, so a crash mid-write leaves it intact.
func (a *LocalConfigFS) ReplaceLines(path m.Path, lines m.Lines) error {
	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, ".config-*")
	if err != nil {
		return fmt.Errorf("create temporary config file: %w", err)
	}

	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	w := bufio.NewWriter(tmp)

	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			cleanup()

			return fmt.Errorf("write temporary config file: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		cleanup()

		return fmt.Errorf("flush temporary config file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		cleanup()

		return fmt.Errorf("sync temporary config file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("close temporary config file: %w", err)
	}

	// Keep the original file's permissions across the replace.
	if info, err := os.Stat(string(path)); err == nil {
		_ = os.Chmod(tmpPath, info.Mode().Perm())
	}

	if err := os.Rename(tmpPath, string(path)); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("replace config file: %w", err)
	}

	return nil
}
