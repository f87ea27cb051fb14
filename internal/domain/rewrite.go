package domain

import (
	"fmt"
	"slices"
	"strings"

	m "github.com/fribbit/swayscale/internal/model"
)

// RewriteScale produces a new line sequence of the same length where each
// output line naming a target display carries newScale; every other line,
// including output lines for non-target displays, passes through
// byte-for-byte.
func RewriteScale(lines m.Lines, targetDisplays []string, newScale float64) m.Lines {
	updated := make(m.Lines, 0, len(lines))

	for _, line := range lines {
		updated = append(updated, rewriteLine(line, targetDisplays, newScale))
	}

	return updated
}

// rewriteLine rebuilds a matching output line as
// `output "<display>" scale <new>` and keeps whatever followed the
// original number (positional options and the like) verbatim.
func rewriteLine(line string, targetDisplays []string, newScale float64) string {
	idx := outputLineRe.FindStringSubmatchIndex(line)
	if idx == nil {
		return line
	}

	display := strings.TrimSpace(line[idx[2]:idx[3]])
	if !slices.Contains(targetDisplays, display) {
		return line
	}

	rest := line[idx[5]:]

	return fmt.Sprintf("output \"%s\" scale %s%s", display, m.FormatScale(newScale), rest)
}
