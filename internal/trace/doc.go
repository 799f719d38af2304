// Package trace runs an instrumented insertion sort.
//
// Every decision the sort makes is emitted as a [Step]:
//
//   - [Start]: the input as given
//   - [BeginInsertion]: the key at outer index i is lifted out
//   - [CompareShift]: a prefix element greater than the key moves right
//   - [Insert]: the key lands in its slot
//   - [Complete]: the final array
//
// Each Step carries a copy of the array and a [Highlights] map that
// assigns a [Role] to the indices the step is about. Indices absent from
// the map are [Sorted].
//
// # Determinism
//
// Step sequences depend only on the input values. Two runs over equal
// input produce equal sequences, descriptions included.
//
// # Thread Safety
//
// An [Engine] holds no state between runs, but its observers may. Share
// an Engine across goroutines only if its observers are safe for that.
package trace
