package model

// Selection is the tagged outcome of a scale choice: either a concrete
// value the user (or cycle mode) picked, or an explicit abort. Keeping the
// two cases distinct means "option 1 chosen" can never be confused with
// "user quit". The zero value is an abort.
type Selection struct {
	value    float64
	selected bool
}

// Selected wraps a chosen scale value.
func Selected(v float64) Selection {
	return Selection{value: v, selected: true}
}

// Aborted signals that the run should make no changes.
func Aborted() Selection {
	return Selection{}
}

// Value returns the chosen scale and whether one was chosen at all.
func (s Selection) Value() (float64, bool) {
	return s.value, s.selected
}

// IsAborted reports whether the user declined to pick a scale.
func (s Selection) IsAborted() bool {
	return !s.selected
}
