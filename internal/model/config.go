// Package model defines the data types shared by the swayscale layers.
package model

import "strconv"

// Path represents a file system path.
type Path string

// Lines is the ordered sequence of raw text lines of a config file. It is
// the unit of both reading and writing; rewriting produces a new sequence
// instead of mutating in place.
type Lines []string

// ScaleOptions holds what the bounded "Scale Options" section declares:
// the displays whose scale this tool manages and the permitted scale
// factors. Both slices keep declaration order; duplicates are not removed.
type ScaleOptions struct {
	TargetDisplays []string
	ScaleValues    []float64
}

// FormatScale renders a scale factor in the tool's canonical form: the
// shortest decimal representation that round-trips (1.0 -> "1",
// 1.25 -> "1.25"). Every scale written to the config or shown to the user
// goes through this.
func FormatScale(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
