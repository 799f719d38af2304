package trace

import (
	"fmt"
	"slices"
	"sort"
)

// Kind tags what a Step records.
type Kind int

const (
	Start Kind = iota
	BeginInsertion
	CompareShift
	Insert
	Complete
)

var kindNames = [...]string{
	Start:          "start",
	BeginInsertion: "begin_insertion",
	CompareShift:   "compare_shift",
	Insert:         "insert",
	Complete:       "complete",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("trace: unknown kind %q", text)
}

// Kinds lists every kind in emission order.
func Kinds() []Kind {
	return []Kind{Start, BeginInsertion, CompareShift, Insert, Complete}
}

// Role is the highlight class of one array index at one step.
type Role int

const (
	Sorted Role = iota
	CurrentKey
	Comparing
	Inserted
)

var roleNames = [...]string{
	Sorted:     "sorted",
	CurrentKey: "current_key",
	Comparing:  "comparing",
	Inserted:   "inserted",
}

var roleLabels = [...]string{
	Sorted:     "Sorted",
	CurrentKey: "Current Key",
	Comparing:  "Comparing",
	Inserted:   "Inserted",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "unknown"
	}
	return roleNames[r]
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	for i, name := range roleNames {
		if name == string(text) {
			*r = Role(i)
			return nil
		}
	}
	return fmt.Errorf("trace: unknown role %q", text)
}

// Label is the legend text for the role.
func (r Role) Label() string {
	if r < 0 || int(r) >= len(roleLabels) {
		return "Unknown"
	}
	return roleLabels[r]
}

// Roles lists every role in legend order.
func Roles() []Role {
	return []Role{Sorted, CurrentKey, Comparing, Inserted}
}

// Highlights maps array indices to roles. Missing indices are Sorted.
type Highlights map[int]Role

// At returns the role of index i.
func (h Highlights) At(i int) Role {
	if r, ok := h[i]; ok {
		return r
	}
	return Sorted
}

// Clone returns an independent copy. A nil map clones to an empty one.
func (h Highlights) Clone() Highlights {
	c := make(Highlights, len(h))
	for i, r := range h {
		c[i] = r
	}
	return c
}

// Indices returns the highlighted indices in ascending order.
func (h Highlights) Indices() []int {
	idx := make([]int, 0, len(h))
	for i := range h {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Step is one recorded engine action. The engine never hands out a Step
// that aliases its working array, and callers should treat Steps as
// read-only.
type Step struct {
	Kind        Kind
	Description string
	Snapshot    []int
	Highlights  Highlights

	// Outer is the outer index i; -1 for Start and Complete.
	Outer int
	// Inner is the inner index j of a CompareShift; -1 otherwise.
	Inner int
	// Key is the value being inserted during an outer iteration.
	Key int
	// Value is the prefix value shifted right by a CompareShift.
	Value int
	// Position is where an Insert placed the key; -1 otherwise.
	Position int
}

// Prefix returns the already-sorted portion named by a BeginInsertion.
func (s Step) Prefix() []int {
	if s.Outer < 0 || s.Outer > len(s.Snapshot) {
		return nil
	}
	return slices.Clone(s.Snapshot[:s.Outer])
}

// Observer is notified of each Step in emission order.
type Observer interface {
	OnStep(step Step)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Step)

func (f ObserverFunc) OnStep(step Step) { f(step) }

// Count returns how many steps in steps have kind k.
func Count(steps []Step, k Kind) int {
	n := 0
	for _, s := range steps {
		if s.Kind == k {
			n++
		}
	}
	return n
}
