// Package frame maps trace steps to renderable frame descriptors.
//
// A Descriptor is everything a chart backend needs to draw one bar chart:
// the values, the role of each bar and a title. Roles come straight from
// the step, so a frame and its transcript line always agree.
package frame

import (
	"slices"

	"github.com/san-kum/sortstep/internal/trace"
)

// Descriptor is the visual counterpart of one Step.
type Descriptor struct {
	Index      int              `json:"index"`
	Kind       trace.Kind       `json:"kind"`
	Title      string           `json:"title"`
	Values     []int            `json:"values"`
	Highlights trace.Highlights `json:"highlights"`
}

// Render builds the descriptor for step, which sits at position index in
// its sequence.
func Render(step trace.Step, index int) Descriptor {
	return Descriptor{
		Index:      index,
		Kind:       step.Kind,
		Title:      trace.Title(step),
		Values:     slices.Clone(step.Snapshot),
		Highlights: step.Highlights.Clone(),
	}
}

// RenderAll renders steps in order.
func RenderAll(steps []trace.Step) []Descriptor {
	frames := make([]Descriptor, len(steps))
	for i, s := range steps {
		frames[i] = Render(s, i)
	}
	return frames
}

// RoleOf returns the role of bar i.
func (d Descriptor) RoleOf(i int) trace.Role {
	return d.Highlights.At(i)
}

// Roles returns the role of every bar, defaults applied.
func (d Descriptor) Roles() []trace.Role {
	roles := make([]trace.Role, len(d.Values))
	for i := range roles {
		roles[i] = d.RoleOf(i)
	}
	return roles
}

// Bounds returns the smallest and largest value, and 0, 0 for an empty
// frame.
func (d Descriptor) Bounds() (lo, hi int) {
	if len(d.Values) == 0 {
		return 0, 0
	}
	return slices.Min(d.Values), slices.Max(d.Values)
}

// Legend lists the roles drawn on every frame, in display order.
func Legend() []trace.Role {
	return trace.Roles()
}
