// Package stepper models a checklist of onboarding steps with one expandable row.
package stepper

import "fmt"

// Step is one row of the checklist.
type Step struct {
	Heading     string
	Description string
	Action      string
	Completed   bool
}

// Stepper holds the steps and which one is expanded.
type Stepper struct {
	Heading     string
	Description string
	Steps       []Step
	expanded    int
}

// New creates a stepper with every step collapsed.
func New(heading, description string, steps []Step) *Stepper {
	return &Stepper{
		Heading:     heading,
		Description: description,
		Steps:       append([]Step(nil), steps...),
		expanded:    -1,
	}
}

// Completed returns the number of completed steps.
func (s *Stepper) Completed() int {
	n := 0
	for _, step := range s.Steps {
		if step.Completed {
			n++
		}
	}
	return n
}

// Progress returns the "n/m steps completed." label.
func (s *Stepper) Progress() string {
	return fmt.Sprintf("%d/%d steps completed.", s.Completed(), len(s.Steps))
}

// Toggle expands step i, collapsing any other. Toggling the expanded step
// collapses it. Out-of-range indexes are ignored.
func (s *Stepper) Toggle(i int) {
	if i < 0 || i >= len(s.Steps) {
		return
	}
	if s.expanded == i {
		s.expanded = -1
		return
	}
	s.expanded = i
}

// Expanded returns the expanded step index, if any.
func (s *Stepper) Expanded() (int, bool) {
	if s.expanded < 0 || s.expanded >= len(s.Steps) {
		return -1, false
	}
	return s.expanded, true
}

// IsExpanded reports whether step i is expanded.
func (s *Stepper) IsExpanded(i int) bool {
	idx, ok := s.Expanded()
	return ok && idx == i
}

// ToggleCompleted flips the completion mark of step i.
func (s *Stepper) ToggleCompleted(i int) {
	if i < 0 || i >= len(s.Steps) {
		return
	}
	s.Steps[i].Completed = !s.Steps[i].Completed
}
