package trace

import "slices"

// Engine runs instrumented insertion sort.
type Engine struct {
	observers []Observer
}

// New returns an Engine that notifies observers of every step.
func New(observers ...Observer) *Engine {
	return &Engine{observers: observers}
}

// AddObserver registers o for subsequent runs.
func (e *Engine) AddObserver(o Observer) { e.observers = append(e.observers, o) }

// Run sorts a copy of values and returns it with the full step sequence.
// values itself is never modified. values must be non-empty; the input
// package enforces that upstream.
func (e *Engine) Run(values []int) ([]int, []Step) {
	arr := slices.Clone(values)
	n := len(arr)
	steps := make([]Step, 0, 2*n+2)

	emit := func(s Step) {
		s.Snapshot = slices.Clone(arr)
		s.Description = Describe(s)
		steps = append(steps, s)
		for _, o := range e.observers {
			o.OnStep(s)
		}
	}

	emit(Step{Kind: Start, Highlights: Highlights{}, Outer: -1, Inner: -1, Position: -1})

	for i := 1; i < n; i++ {
		key := arr[i]
		emit(Step{
			Kind:       BeginInsertion,
			Highlights: Highlights{i: CurrentKey},
			Outer:      i,
			Inner:      -1,
			Key:        key,
			Position:   -1,
		})

		j := i - 1
		// Strict > keeps equal elements in input order.
		for j >= 0 && arr[j] > key {
			emit(Step{
				Kind:       CompareShift,
				Highlights: Highlights{j: Comparing, j + 1: CurrentKey},
				Outer:      i,
				Inner:      j,
				Key:        key,
				Value:      arr[j],
				Position:   -1,
			})
			arr[j+1] = arr[j]
			j--
		}

		arr[j+1] = key
		emit(Step{
			Kind:       Insert,
			Highlights: Highlights{j + 1: Inserted},
			Outer:      i,
			Inner:      -1,
			Key:        key,
			Position:   j + 1,
		})
	}

	done := make(Highlights, n)
	for i := range arr {
		done[i] = Inserted
	}
	emit(Step{Kind: Complete, Highlights: done, Outer: -1, Inner: -1, Position: -1})

	return arr, steps
}

// Run sorts values with an Engine that has no observers.
func Run(values []int) ([]int, []Step) {
	return New().Run(values)
}
