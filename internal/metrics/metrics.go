// Package metrics accumulates statistics over a trace as it is emitted.
package metrics

import "github.com/san-kum/sortstep/internal/trace"

// Metric observes steps and reports a single value.
type Metric interface {
	trace.Observer
	Name() string
	Value() float64
	Reset()
}

// Default returns the metrics reported for every session.
func Default() []Metric {
	return []Metric{
		NewShifts(),
		NewComparisons(),
		NewInversions(),
	}
}

// Collect reads every metric into a name-keyed map.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Observers converts ms for trace.New.
func Observers(ms []Metric) []trace.Observer {
	obs := make([]trace.Observer, len(ms))
	for i, m := range ms {
		obs[i] = m
	}
	return obs
}
