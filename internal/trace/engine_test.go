package trace_test

import (
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortstep/internal/trace"
)

func kinds(steps []trace.Step) []trace.Kind {
	out := make([]trace.Kind, len(steps))
	for i, s := range steps {
		out[i] = s.Kind
	}
	return out
}

// greaterInPrefix counts elements left of i in the original input that
// are strictly greater than values[i].
func greaterInPrefix(values []int, i int) int {
	n := 0
	for _, v := range values[:i] {
		if v > values[i] {
			n++
		}
	}
	return n
}

var samples = [][]int{
	{5, 2, 8, 1, 9},
	{1},
	{5, 5, 5, 5},
	{9, 8, 7, 6, 5, 4, 3, 2, 1},
	{1, 2, 3, 4, 5},
	{-3, 10, 0, -3, 7, 2},
	{42, -42},
}

var _ = Describe("Engine", func() {
	Describe("Run", func() {
		It("sorts the example input", func() {
			sorted, steps := trace.Run([]int{5, 2, 8, 1, 9})

			Expect(sorted).To(Equal([]int{1, 2, 5, 8, 9}))
			Expect(steps[len(steps)-1].Snapshot).To(Equal([]int{1, 2, 5, 8, 9}))
		})

		It("emits one shift then the insert for the first outer iteration", func() {
			_, steps := trace.Run([]int{5, 2, 8, 1, 9})

			Expect(steps[1].Kind).To(Equal(trace.BeginInsertion))
			Expect(steps[1].Key).To(Equal(2))
			Expect(steps[1].Highlights).To(Equal(trace.Highlights{1: trace.CurrentKey}))

			Expect(steps[2].Kind).To(Equal(trace.CompareShift))
			Expect(steps[2].Value).To(Equal(5))
			Expect(steps[2].Highlights).To(Equal(trace.Highlights{0: trace.Comparing, 1: trace.CurrentKey}))
			Expect(steps[2].Snapshot).To(Equal([]int{5, 2, 8, 1, 9}))

			Expect(steps[3].Kind).To(Equal(trace.Insert))
			Expect(steps[3].Position).To(Equal(0))
			Expect(steps[3].Highlights).To(Equal(trace.Highlights{0: trace.Inserted}))
			Expect(steps[3].Snapshot).To(Equal([]int{2, 5, 8, 1, 9}))
		})

		It("emits Start then Complete for a single element", func() {
			sorted, steps := trace.Run([]int{1})

			Expect(sorted).To(Equal([]int{1}))
			Expect(kinds(steps)).To(Equal([]trace.Kind{trace.Start, trace.Complete}))
			Expect(steps[1].Highlights).To(Equal(trace.Highlights{0: trace.Inserted}))
		})

		It("does not shift equal values", func() {
			sorted, steps := trace.Run([]int{5, 5, 5, 5})

			Expect(sorted).To(Equal([]int{5, 5, 5, 5}))
			Expect(trace.Count(steps, trace.CompareShift)).To(BeZero())
			for _, s := range steps {
				if s.Kind == trace.Insert {
					Expect(s.Position).To(Equal(s.Outer))
				}
			}
		})

		It("does not modify the caller's slice", func() {
			in := []int{3, 1, 2}
			_, _ = trace.Run(in)
			Expect(in).To(Equal([]int{3, 1, 2}))
		})

		It("does not alias snapshots to each other or to the result", func() {
			sorted, steps := trace.Run([]int{3, 1, 2})
			sorted[0] = 100
			steps[0].Snapshot[1] = 100

			Expect(steps[len(steps)-1].Snapshot).To(Equal([]int{1, 2, 3}))
			Expect(steps[1].Snapshot).To(Equal([]int{3, 1, 2}))
		})

		It("notifies observers in emission order", func() {
			var seen []trace.Kind
			e := trace.New(trace.ObserverFunc(func(s trace.Step) {
				seen = append(seen, s.Kind)
			}))
			_, steps := e.Run([]int{2, 1})

			Expect(seen).To(Equal(kinds(steps)))
			Expect(seen).To(Equal([]trace.Kind{
				trace.Start, trace.BeginInsertion, trace.CompareShift, trace.Insert, trace.Complete,
			}))
		})
	})

	DescribeTable("invariants",
		func(values []int) {
			sorted, steps := trace.Run(values)
			n := len(values)

			By("sorting into the same multiset")
			want := slices.Clone(values)
			slices.Sort(want)
			Expect(sorted).To(Equal(want))
			Expect(steps[len(steps)-1].Snapshot).To(Equal(want))

			By("framing with exactly one Start and one Complete")
			Expect(steps[0].Kind).To(Equal(trace.Start))
			Expect(steps[0].Highlights).To(BeEmpty())
			Expect(steps[0].Snapshot).To(Equal(values))
			Expect(steps[len(steps)-1].Kind).To(Equal(trace.Complete))
			Expect(trace.Count(steps, trace.Start)).To(Equal(1))
			Expect(trace.Count(steps, trace.Complete)).To(Equal(1))

			By("pairing one BeginInsertion with one Insert per outer index")
			Expect(trace.Count(steps, trace.BeginInsertion)).To(Equal(n - 1))
			Expect(trace.Count(steps, trace.Insert)).To(Equal(n - 1))

			shifts := map[int]int{}
			for _, s := range steps {
				switch s.Kind {
				case trace.CompareShift:
					shifts[s.Outer]++
				case trace.Insert:
					Expect(slices.IsSorted(s.Snapshot[:s.Outer+1])).To(BeTrue())
				}
			}

			By("shifting once per greater prefix element")
			for i := 1; i < n; i++ {
				Expect(shifts[i]).To(Equal(greaterInPrefix(values, i)), "outer index %d", i)
			}

			By("describing every step from its fields")
			for _, s := range steps {
				Expect(s.Description).To(Equal(trace.Describe(s)))
				Expect(s.Description).NotTo(BeEmpty())
			}
		},
		Entry("example", []int{5, 2, 8, 1, 9}),
		Entry("single", []int{1}),
		Entry("all equal", []int{5, 5, 5, 5}),
		Entry("reversed", []int{9, 8, 7, 6, 5, 4, 3, 2, 1}),
		Entry("sorted", []int{1, 2, 3, 4, 5}),
		Entry("mixed with duplicates", []int{-3, 10, 0, -3, 7, 2}),
	)

	It("is deterministic", func() {
		for _, values := range samples {
			_, a := trace.Run(values)
			_, b := trace.Run(values)
			Expect(a).To(Equal(b))
		}
	})

	It("moves exactly one value one slot per shift", func() {
		_, steps := trace.Run([]int{4, 3, 2, 1})
		for k := 1; k < len(steps); k++ {
			prev, cur := steps[k-1], steps[k]
			if prev.Kind != trace.CompareShift {
				continue
			}
			j := prev.Inner
			Expect(cur.Snapshot[j+1]).To(Equal(prev.Snapshot[j]))
		}
	})
})

var _ = Describe("Describe", func() {
	It("renders the transcript sentences", func() {
		_, steps := trace.Run([]int{5, 2})

		Expect(steps[0].Description).To(Equal("Starting array: [5, 2]"))
		Expect(steps[1].Description).To(Equal("Step 1: current element to insert: 2 at position 1; comparing with sorted portion: [5]"))
		Expect(steps[2].Description).To(Equal("  5 > 2, shift 5 right"))
		Expect(steps[3].Description).To(Equal("Insert 2 at position 0; array after insertion: [2, 5]"))
		Expect(steps[4].Description).To(Equal("Final sorted array: [2, 5]"))
	})
})

var _ = Describe("Highlights", func() {
	It("defaults missing indices to Sorted", func() {
		h := trace.Highlights{2: trace.Comparing}
		Expect(h.At(2)).To(Equal(trace.Comparing))
		Expect(h.At(0)).To(Equal(trace.Sorted))
		Expect(trace.Highlights(nil).At(5)).To(Equal(trace.Sorted))
	})

	It("clones independently", func() {
		h := trace.Highlights{1: trace.CurrentKey}
		c := h.Clone()
		c[1] = trace.Inserted
		Expect(h[1]).To(Equal(trace.CurrentKey))
		Expect(trace.Highlights(nil).Clone()).NotTo(BeNil())
	})

	It("lists indices in order", func() {
		h := trace.Highlights{3: trace.Inserted, 0: trace.Inserted, 1: trace.Inserted}
		Expect(h.Indices()).To(Equal([]int{0, 1, 3}))
	})
})

var _ = Describe("Role and Kind", func() {
	It("names every role", func() {
		Expect(trace.Roles()).To(HaveLen(4))
		Expect(trace.CurrentKey.String()).To(Equal("current_key"))
		Expect(trace.CurrentKey.Label()).To(Equal("Current Key"))
		Expect(trace.Role(99).String()).To(Equal("unknown"))
	})

	It("names every kind", func() {
		Expect(trace.CompareShift.String()).To(Equal("compare_shift"))
		Expect(trace.Kind(-1).String()).To(Equal("unknown"))
	})
})

var _ = Describe("text encoding", func() {
	It("encodes roles by name", func() {
		text, err := trace.Comparing.MarshalText()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(text)).To(Equal("comparing"))
	})

	It("rejects unknown names", func() {
		var r trace.Role
		Expect(r.UnmarshalText([]byte("glowing"))).NotTo(Succeed())
		var k trace.Kind
		Expect(k.UnmarshalText([]byte("swap"))).NotTo(Succeed())
	})
})
