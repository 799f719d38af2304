package metrics

import (
	"slices"

	"github.com/san-kum/sortstep/internal/trace"
)

// Inversions tracks the inversions left at each step. Value is the count
// at the latest step; History holds one entry per step observed.
//
// A CompareShift snapshot has the key lifted out and the slot at Inner+1
// holding a stale copy, so the key is put back there before counting.
type Inversions struct {
	history []float64
}

func NewInversions() *Inversions {
	return &Inversions{history: make([]float64, 0, 64)}
}

func (v *Inversions) Name() string { return "inversions" }

func (v *Inversions) OnStep(step trace.Step) {
	values := step.Snapshot
	if step.Kind == trace.CompareShift && step.Inner+1 < len(values) {
		values = slices.Clone(values)
		values[step.Inner+1] = step.Key
	}
	v.history = append(v.history, float64(Count(values)))
}

func (v *Inversions) Value() float64 {
	if len(v.history) == 0 {
		return 0
	}
	return v.history[len(v.history)-1]
}

// Initial is the inversion count of the first snapshot observed.
func (v *Inversions) Initial() float64 {
	if len(v.history) == 0 {
		return 0
	}
	return v.history[0]
}

// History returns a copy of the per-step series.
func (v *Inversions) History() []float64 {
	out := make([]float64, len(v.history))
	copy(out, v.history)
	return out
}

func (v *Inversions) Reset() { v.history = v.history[:0] }

// Count returns the number of pairs i < j with values[i] > values[j].
// Arrays are small, so the quadratic scan is fine.
func Count(values []int) int {
	n := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}
