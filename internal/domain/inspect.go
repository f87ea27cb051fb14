package domain

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	m "github.com/fribbit/swayscale/internal/model"
)

// scaleTolerance is the absolute tolerance for comparing scale factors.
const scaleTolerance = 1e-6

// outputLineRe matches active output directives at the start of a line.
// Commented-out or indented directives deliberately do not match.
var outputLineRe = regexp.MustCompile(`^output\s+"([^"]+)"\s+scale\s+([0-9.]+)`)

// CurrentScale scans every line for output directives naming a target
// display and derives the single scale assumed active across all of them.
// The invariant "all target displays share one scale" is assumed, not
// enforced: disagreeing readings produce a warning and the first reading
// in scan order wins. No readings at all default to 1 with a warning.
// Warnings are returned alongside the value so callers decide how to
// surface them.
func CurrentScale(lines m.Lines, targetDisplays []string) (float64, []string) {
	var readings []float64

	for _, line := range lines {
		c := outputLineRe.FindStringSubmatch(line)
		if c == nil {
			continue
		}

		display := strings.TrimSpace(c[1])
		if !slices.Contains(targetDisplays, display) {
			continue
		}

		scale, err := strconv.ParseFloat(strings.TrimSpace(c[2]), 64)
		if err != nil {
			scale = 1.0
		}

		readings = append(readings, scale)
	}

	if len(readings) == 0 {
		return 1.0, []string{"no current scale found for target displays, defaulting to 1"}
	}

	first := readings[0]

	for _, r := range readings[1:] {
		if math.Abs(r-first) >= scaleTolerance {
			warning := fmt.Sprintf(
				"multiple scales found for target displays, using the first scale: %s",
				m.FormatScale(first),
			)

			return first, []string{warning}
		}
	}

	return first, nil
}
