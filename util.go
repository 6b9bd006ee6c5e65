package genetics

import (
	"container/heap"
	"math"
)

// tie pairs an index with its fitness, for use in the k-min-fitness
// heap below.
type tie struct {
	index   int
	fitness float64
}

// minTieHeap tracks the k lowest-fitness individuals seen so far in a
// single pass. It is ordered as a max-heap over fitness, so its root is
// the highest fitness among those kept and is the one evicted when a
// lower value arrives.
type minTieHeap []tie

func (h minTieHeap) Len() int           { return len(h) }
func (h minTieHeap) Less(i, j int) bool { return h[i].fitness > h[j].fitness }
func (h minTieHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is unsupported; the heap is always pre-sized and filled via
// kWorstIndexes' seed-then-fix pattern.
func (h *minTieHeap) Push(x any) { panic("minTieHeap.Push() unsupported") }

// Pop is unsupported for the same reason.
func (h *minTieHeap) Pop() any { panic("minTieHeap.Pop() unsupported") }

// kWorstIndexes returns the indexes of the k lowest values in fitness,
// in O(n log k). Used by survivor-selection strategies that need to
// pick a fixed number of individuals to eliminate by fitness.
func kWorstIndexes(fitness []float64, k int) []int {
	if k <= 0 {
		return nil
	}
	if k > len(fitness) {
		k = len(fitness)
	}
	h := make(minTieHeap, k)
	for i := 0; i < k; i++ {
		h[i] = tie{index: i, fitness: fitness[i]}
	}
	heap.Init(&h)

	for i := k; i < len(fitness); i++ {
		if fitness[i] < h[0].fitness {
			h[0] = tie{index: i, fitness: fitness[i]}
			heap.Fix(&h, 0)
		}
	}

	out := make([]int, k)
	for i, t := range h {
		out[i] = t.index
	}
	return out
}

// mean returns the arithmetic mean of vs, or 0 for an empty slice.
func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range vs {
		total += v
	}
	return total / float64(len(vs))
}

// stddev returns the population standard deviation of vs.
func stddev(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := mean(vs)
	total := 0.0
	for _, v := range vs {
		d := v - m
		total += d * d
	}
	return math.Sqrt(total / float64(len(vs)))
}

// minMax returns the minimum and maximum of vs. Callers must not pass
// an empty slice.
func minMax(vs []float64) (min, max float64) {
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// valRange returns max(vs) - min(vs).
func valRange(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	lo, hi := minMax(vs)
	return hi - lo
}
