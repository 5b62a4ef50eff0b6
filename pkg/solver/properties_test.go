package solver

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/careops-incubation/icu-bed-allocator/pkg/core"
)

// fixtures exercised by every property below.
var fixtures = []struct {
	label    string
	demands  []float64
	weights  []float64
	capacity float64
}{
	{"scarce capacity", []float64{30, 40, 30}, []float64{1, 2, 3}, 50},
	{"abundant capacity", []float64{10, 5, 2}, []float64{1, 1, 1}, 100},
	{"no capacity", []float64{10, 5}, []float64{2, 3}, 0},
	{"zero-weight group", []float64{50, 30}, []float64{0, 1}, 40},
	{"equal weights", []float64{20, 20, 20}, []float64{1, 1, 1}, 30},
	{"single group", []float64{80}, []float64{2}, 50},
	{"fractional inputs", []float64{12.5, 7.25, 0.5}, []float64{1.5, 4, 2.25}, 10},
	{"zero demand group", []float64{0, 40}, []float64{5, 1}, 25},
}

var _ = Describe("GreedySolver", func() {
	var greedy *GreedySolver

	BeforeEach(func() {
		greedy = NewGreedySolver()
	})

	for _, f := range fixtures {
		f := f

		Context("with "+f.label, func() {
			It("should respect capacity and non-negativity", func() {
				alloc, err := greedy.Allocate(core.NewRequest(f.demands, f.weights, f.capacity))
				Expect(err).NotTo(HaveOccurred())

				Expect(alloc.TotalAllocated).To(BeNumerically("<=", f.capacity+1e-9))
				for _, g := range alloc.Groups {
					Expect(g.Allocated).To(BeNumerically(">=", 0))
					Expect(g.Unmet).To(BeNumerically(">=", 0))
					Expect(g.Allocated).To(BeNumerically("<=", g.Demand+1e-9))
				}
			})

			It("should not increase the objective when capacity grows", func() {
				base, err := greedy.Allocate(core.NewRequest(f.demands, f.weights, f.capacity))
				Expect(err).NotTo(HaveOccurred())

				grown, err := greedy.Allocate(core.NewRequest(f.demands, f.weights, f.capacity+10))
				Expect(err).NotTo(HaveOccurred())

				Expect(grown.Objective).To(BeNumerically("<=", base.Objective+1e-9))
			})

			It("should agree with the simplex solver on the objective", func() {
				greedyAlloc, err := greedy.Allocate(core.NewRequest(f.demands, f.weights, f.capacity))
				Expect(err).NotTo(HaveOccurred())

				simplexAlloc, err := NewSimplexSolver().Allocate(core.NewRequest(f.demands, f.weights, f.capacity))
				Expect(err).NotTo(HaveOccurred())

				Expect(simplexAlloc.Objective).To(BeNumerically("~", greedyAlloc.Objective, 1e-6))
			})
		})
	}

	Context("with full capacity", func() {
		It("should satisfy every group exactly", func() {
			alloc, err := greedy.Allocate(core.NewRequest([]float64{7, 3, 12}, []float64{1, 9, 4}, 22))
			Expect(err).NotTo(HaveOccurred())

			Expect(alloc.Allocations()).To(Equal([]float64{7, 3, 12}))
			Expect(alloc.Objective).To(BeZero())
			Expect(alloc.TotalUnmet).To(BeZero())
		})
	})

	Context("with zero capacity", func() {
		It("should allocate nothing and report the full weighted demand", func() {
			alloc, err := greedy.Allocate(core.NewRequest([]float64{10, 5}, []float64{2, 3}, 0))
			Expect(err).NotTo(HaveOccurred())

			Expect(alloc.Allocations()).To(Equal([]float64{0, 0}))
			Expect(alloc.Objective).To(BeNumerically("~", 35, 1e-9))
		})
	})

	Context("with insufficient capacity for two groups", func() {
		It("should fully satisfy the heavier group before the lighter one", func() {
			alloc, err := greedy.Allocate(core.NewRequest([]float64{25, 25}, []float64{1, 5}, 30))
			Expect(err).NotTo(HaveOccurred())

			Expect(alloc.Groups[1].Allocated).To(BeNumerically("~", 25, 1e-9))
			Expect(alloc.Groups[0].Allocated).To(BeNumerically("~", 5, 1e-9))
		})
	})

	Context("when capacity grows", func() {
		It("should never shrink the top-weight allocation", func() {
			for _, f := range fixtures {
				base, err := greedy.Allocate(core.NewRequest(f.demands, f.weights, f.capacity))
				Expect(err).NotTo(HaveOccurred())
				grown, err := greedy.Allocate(core.NewRequest(f.demands, f.weights, f.capacity+5))
				Expect(err).NotTo(HaveOccurred())

				top := 0
				for i := range f.weights {
					if f.weights[i] > f.weights[top] {
						top = i
					}
				}
				Expect(grown.Groups[top].Allocated).To(BeNumerically(">=", base.Groups[top].Allocated-1e-9))
			}
		})
	})
})

var _ = Describe("SimplexSolver", func() {
	It("should reject malformed input like the greedy solver", func() {
		_, err := NewSimplexSolver().Allocate(core.NewRequest([]float64{-1}, []float64{1}, 10))
		Expect(err).To(HaveOccurred())

		var inputErr *InvalidInputError
		Expect(errors.As(err, &inputErr)).To(BeTrue())
	})

	It("should reproduce the scenario example objective", func() {
		alloc, err := NewSimplexSolver().Allocate(core.NewRequest([]float64{30, 40, 30}, []float64{1, 2, 3}, 50))
		Expect(err).NotTo(HaveOccurred())

		Expect(alloc.Objective).To(BeNumerically("~", 70, 1e-6))
		Expect(alloc.TotalAllocated).To(BeNumerically("~", 50, 1e-6))
		Expect(alloc.Groups[2].Allocated).To(BeNumerically("~", 30, 1e-6))
	})
})
