package metrics

import (
	"testing"

	"github.com/san-kum/sortstep/internal/trace"
)

func run(values []int, ms ...Metric) {
	trace.New(Observers(ms)...).Run(values)
}

func TestShifts(t *testing.T) {
	m := NewShifts()
	run([]int{5, 2, 8, 1, 9}, m)

	// 2 shifts 5; 1 shifts 8, 5, 2.
	if m.Value() != 4 {
		t.Errorf("expected 4 shifts, got %v", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"example", []int{5, 2, 8, 1, 9}, 6},
		{"sorted", []int{1, 2, 3, 4}, 3},
		{"reversed", []int{4, 3, 2, 1}, 6},
		{"single", []int{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewComparisons()
			run(tt.values, m)
			if m.Value() != tt.want {
				t.Errorf("comparisons = %v, want %v", m.Value(), tt.want)
			}
		})
	}
}

func TestInversions(t *testing.T) {
	m := NewInversions()
	_, steps := trace.New(m).Run([]int{3, 2, 1})

	h := m.History()
	if len(h) != len(steps) {
		t.Fatalf("history has %d entries for %d steps", len(h), len(steps))
	}
	if m.Initial() != 3 {
		t.Errorf("initial inversions = %v, want 3", m.Initial())
	}
	if m.Value() != 0 {
		t.Errorf("final inversions = %v, want 0", m.Value())
	}
	for i := 1; i < len(h); i++ {
		if h[i] > h[i-1] {
			t.Errorf("inversions grew at step %d: %v -> %v", i, h[i-1], h[i])
		}
	}
}

func TestInversions_KeyPutBackDuringShifts(t *testing.T) {
	m := NewInversions()
	_, steps := trace.New(m).Run([]int{3, 2, 1})

	// start, begin, shift 3, insert 2, begin, shift 3, shift 2, insert 1, complete
	want := []float64{3, 3, 3, 2, 2, 2, 1, 0, 0}
	h := m.History()
	if len(h) != len(want) {
		t.Fatalf("history has %d entries, want %d", len(h), len(want))
	}
	for i := range want {
		if h[i] != want[i] {
			t.Errorf("step %d (%v): inversions = %v, want %v", i, steps[i].Kind, h[i], want[i])
		}
	}
}

func TestInversions_NonIncreasing(t *testing.T) {
	inputs := [][]int{
		{5, 2, 8, 1, 9},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{-3, 10, 0, -3, 7, 2},
		{4, 1, 3, 1, 4, 2, 3},
	}
	for _, in := range inputs {
		m := NewInversions()
		trace.New(m).Run(in)
		h := m.History()
		if h[0] != float64(Count(in)) {
			t.Errorf("%v: initial = %v, want %d", in, h[0], Count(in))
		}
		for i := 1; i < len(h); i++ {
			if h[i] > h[i-1] {
				t.Errorf("%v: inversions grew at step %d: %v -> %v", in, i, h[i-1], h[i])
			}
		}
		if h[len(h)-1] != 0 {
			t.Errorf("%v: final = %v, want 0", in, h[len(h)-1])
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		values []int
		want   int
	}{
		{nil, 0},
		{[]int{1, 2, 3}, 0},
		{[]int{5, 5, 5}, 0},
		{[]int{2, 1}, 1},
		{[]int{5, 2, 8, 1, 9}, 4},
	}

	for _, tt := range tests {
		if got := Count(tt.values); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.values, got, tt.want)
		}
	}
}

func TestCollect(t *testing.T) {
	ms := Default()
	run([]int{2, 1}, ms...)

	got := Collect(ms)
	for _, name := range []string{"shifts", "comparisons", "inversions"} {
		if _, ok := got[name]; !ok {
			t.Errorf("missing metric %q", name)
		}
	}
	if got["shifts"] != 1 {
		t.Errorf("shifts = %v, want 1", got["shifts"])
	}
}
