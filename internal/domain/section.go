// Package domain implements the swayscale pipeline: locating the scale
// options section, deriving the active scale, choosing the next one and
// rewriting the matching output lines.
package domain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	m "github.com/fribbit/swayscale/internal/model"
)

// Section marker literals. A line qualifies as a marker if it contains the
// literal anywhere, so the usual "# Scale Options Start" comment form works.
const (
	startMarker = "Scale Options Start"
	endMarker   = "Scale Options End"
)

// Fatal configuration errors. These propagate up to the command layer,
// which reports them on stderr and exits non-zero; nothing below the top
// level terminates the process.
var (
	ErrStartMarkerNotFound = errors.New("'Scale Options Start' marker not found in the config file")
	ErrEndMarkerNotFound   = errors.New("'Scale Options End' marker not found in the config file")
	ErrNoTargetDisplays    = errors.New("no target displays found in Scale Options section")
	ErrNoScaleValues       = errors.New("no scale options found in Scale Options section")
)

var (
	targetDisplayRe = regexp.MustCompile(`# Target Display = (.+)`)
	scaleOptionsRe  = regexp.MustCompile(`# Scale Options = (.+)`)
)

// ScaleSection returns the contiguous sub-sequence of lines between the
// start marker and the first subsequent end marker, both inclusive.
func ScaleSection(lines m.Lines) (m.Lines, error) {
	start := -1

	for i, line := range lines {
		if strings.Contains(line, startMarker) {
			start = i

			break
		}
	}

	if start < 0 {
		return nil, ErrStartMarkerNotFound
	}

	for i := start + 1; i < len(lines); i++ {
		if strings.Contains(lines[i], endMarker) {
			return lines[start : i+1], nil
		}
	}

	return nil, ErrEndMarkerNotFound
}

// ParseScaleOptions extracts the declared target displays and scale values
// from the bounded section. Every "# Target Display = <v>" line appends a
// display in order of appearance; for "# Scale Options = <v>" the last
// such line wins. Tokens that fail to parse as a float are dropped.
func ParseScaleOptions(section m.Lines) (m.ScaleOptions, error) {
	var opts m.ScaleOptions

	for _, line := range section {
		if c := targetDisplayRe.FindStringSubmatch(line); c != nil {
			opts.TargetDisplays = append(opts.TargetDisplays, strings.TrimSpace(c[1]))

			continue
		}

		if c := scaleOptionsRe.FindStringSubmatch(line); c != nil {
			opts.ScaleValues = parseScaleList(c[1])
		}
	}

	if len(opts.TargetDisplays) == 0 {
		return m.ScaleOptions{}, ErrNoTargetDisplays
	}

	if len(opts.ScaleValues) == 0 {
		return m.ScaleOptions{}, ErrNoScaleValues
	}

	return opts, nil
}

func parseScaleList(raw string) []float64 {
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))

	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			continue
		}

		values = append(values, v)
	}

	return values
}
