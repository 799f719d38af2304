package trace

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe builds the sentence for a step from its kind and numeric
// fields. It never reads Description.
func Describe(s Step) string {
	switch s.Kind {
	case Start:
		return "Starting array: " + FormatArray(s.Snapshot)
	case BeginInsertion:
		return fmt.Sprintf("Step %d: current element to insert: %d at position %d; comparing with sorted portion: %s",
			s.Outer, s.Key, s.Outer, FormatArray(s.Prefix()))
	case CompareShift:
		return fmt.Sprintf("  %d > %d, shift %d right", s.Value, s.Key, s.Value)
	case Insert:
		return fmt.Sprintf("Insert %d at position %d; array after insertion: %s",
			s.Key, s.Position, FormatArray(s.Snapshot))
	case Complete:
		return "Final sorted array: " + FormatArray(s.Snapshot)
	default:
		return ""
	}
}

// Title is a short caption for a step, used on frames.
func Title(s Step) string {
	switch s.Kind {
	case Start:
		return "Initial array"
	case BeginInsertion:
		return fmt.Sprintf("Step %d: key %d at index %d", s.Outer, s.Key, s.Outer)
	case CompareShift:
		return fmt.Sprintf("Step %d: %d > %d, shift right", s.Outer, s.Value, s.Key)
	case Insert:
		return fmt.Sprintf("Step %d: insert %d at index %d", s.Outer, s.Key, s.Position)
	case Complete:
		return "Sorted"
	default:
		return ""
	}
}

// FormatArray renders values as "[a, b, c]".
func FormatArray(values []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}
