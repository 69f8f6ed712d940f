package ui

import "fmt"

// Status tracks what the HUD reports: the hovered cell and the most recent
// grid change.
type Status struct {
	title   string
	hover   string
	last    string
	changes int
}

// NewStatus returns a Status with the given title line.
func NewStatus(title string) *Status {
	return &Status{title: title, hover: "cursor: off grid"}
}

// Hover records the cell under the cursor. value is only shown in bounds.
func (s *Status) Hover(x, y int, inBounds bool, value any) {
	if !inBounds {
		s.hover = fmt.Sprintf("cursor: %d,%d (off grid)", x, y)
		return
	}
	s.hover = fmt.Sprintf("cursor: %d,%d = %v", x, y, value)
}

// Changed records a grid change notification.
func (s *Status) Changed(x, y int, value any) {
	s.changes++
	s.last = fmt.Sprintf("last: %d,%d <- %v", x, y, value)
}

// Changes returns the number of notifications seen.
func (s *Status) Changes() int { return s.changes }

// Lines returns the HUD text, one entry per row.
func (s *Status) Lines() []string {
	lines := []string{s.title, s.hover, fmt.Sprintf("changes: %d", s.changes)}
	if s.last != "" {
		lines = append(lines, s.last)
	}
	return lines
}
