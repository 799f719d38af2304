package metrics

import "github.com/san-kum/sortstep/internal/trace"

// Shifts counts CompareShift steps.
type Shifts struct {
	count int
}

func NewShifts() *Shifts { return &Shifts{} }

func (s *Shifts) Name() string { return "shifts" }

func (s *Shifts) OnStep(step trace.Step) {
	if step.Kind == trace.CompareShift {
		s.count++
	}
}

func (s *Shifts) Value() float64 { return float64(s.count) }

func (s *Shifts) Reset() { s.count = 0 }

// Comparisons counts key comparisons, including the one that stops the
// inner scan when an element not greater than the key is found.
type Comparisons struct {
	count int
}

func NewComparisons() *Comparisons { return &Comparisons{} }

func (c *Comparisons) Name() string { return "comparisons" }

func (c *Comparisons) OnStep(step trace.Step) {
	switch step.Kind {
	case trace.CompareShift:
		c.count++
	case trace.Insert:
		// Landing past index 0 means arr[pos-1] <= key was checked.
		if step.Position > 0 {
			c.count++
		}
	}
}

func (c *Comparisons) Value() float64 { return float64(c.count) }

func (c *Comparisons) Reset() { c.count = 0 }
