package genetics

import (
	"math/rand"
	"sort"
)

// Wheel is the weighted roulette wheel primitive shared by every
// strategy that needs a probabilistic pick among non-negative weights.
// A Wheel is heap-owned and carries no RNG of its own: a struct-valued
// wheel sharing a construction-time RNG would confuse determinism
// across clones, so every spin here takes its RNG as a parameter
// instead.
type Wheel[T any] struct {
	items      []T
	cumulative []float64 // cumulative probability, cumulative[len-1] == 1
}

// NewWheel builds a Wheel over candidates, weighting each by w. It is a
// ConfigError to pass no candidates, a nil weight function, any
// negative weight, or weights that sum to zero.
func NewWheel[T any](candidates []T, w func(T) float64) (*Wheel[T], error) {
	if len(candidates) == 0 {
		return nil, newConfigError("Wheel", "candidates must be non-empty")
	}
	if w == nil {
		return nil, newConfigError("Wheel", "weight function must not be nil")
	}
	weights := make([]float64, len(candidates))
	total := 0.0
	for i, c := range candidates {
		v := w(c)
		if v < 0 {
			return nil, newConfigError("Wheel", "weight at index %d is negative (%v)", i, v)
		}
		weights[i] = v
		total += v
	}
	if total == 0 {
		return nil, newConfigError("Wheel", "total weight is zero")
	}
	return buildWheel(candidates, weights, total), nil
}

// NewUniformWheel builds a Wheel that picks among candidates with equal
// probability.
func NewUniformWheel[T any](candidates []T) (*Wheel[T], error) {
	return NewWheel(candidates, func(T) float64 { return 1 })
}

func buildWheel[T any](candidates []T, weights []float64, total float64) *Wheel[T] {
	cum := make([]float64, len(candidates))
	running := 0.0
	for i, w := range weights {
		running += w / total
		cum[i] = running
	}
	// Guard against floating point drift so the final slot is exactly
	// reachable; Spin already falls back to the last candidate if the
	// scan falls through, but keeping cum monotone and ending at >=1
	// avoids relying on that fallback in the common case.
	cum[len(cum)-1] = 1
	items := make([]T, len(candidates))
	copy(items, candidates)
	return &Wheel[T]{items: items, cumulative: cum}
}

// Len returns the number of candidates remaining on the wheel.
func (w *Wheel[T]) Len() int { return len(w.items) }

// Spin draws u uniformly from [0,1) and returns the first candidate
// whose cumulative probability is >= u, found by binary search in
// O(log N). If floating-point drift causes the scan to fall through,
// the last candidate is returned.
func (w *Wheel[T]) Spin(rng *rand.Rand) T {
	u := rng.Float64()
	idx := sort.Search(len(w.cumulative), func(i int) bool {
		return w.cumulative[i] >= u
	})
	if idx >= len(w.items) {
		idx = len(w.items) - 1
	}
	return w.items[idx]
}

// SpinAndRemove spins the wheel, removes the winner, and rebuilds
// cumulative probabilities from the remaining weights. If every
// remaining weight is zero it falls back to uniform weights among what
// is left. It is an InvariantError to call SpinAndRemove on an empty
// wheel.
func (w *Wheel[T]) SpinAndRemove(rng *rand.Rand) (T, error) {
	var zero T
	if len(w.items) == 0 {
		return zero, newInvariantError("Wheel.SpinAndRemove", -1, "spun an empty wheel")
	}
	u := rng.Float64()
	idx := sort.Search(len(w.cumulative), func(i int) bool {
		return w.cumulative[i] >= u
	})
	if idx >= len(w.items) {
		idx = len(w.items) - 1
	}
	winner := w.items[idx]

	remainingItems := make([]T, 0, len(w.items)-1)
	remainingWeights := make([]float64, 0, len(w.items)-1)
	total := 0.0
	for i := range w.items {
		if i == idx {
			continue
		}
		// Recover per-item weight from the cumulative deltas.
		prev := 0.0
		if i > 0 {
			prev = w.cumulative[i-1]
		}
		weight := w.cumulative[i] - prev
		if weight < 0 {
			weight = 0
		}
		remainingItems = append(remainingItems, w.items[i])
		remainingWeights = append(remainingWeights, weight)
		total += weight
	}

	if len(remainingItems) == 0 {
		w.items = remainingItems
		w.cumulative = nil
		return winner, nil
	}
	if total == 0 {
		// All remaining weights are zero: fall back to uniform.
		uniform := make([]float64, len(remainingItems))
		for i := range uniform {
			uniform[i] = 1
		}
		*w = *buildWheel(remainingItems, uniform, float64(len(uniform)))
		return winner, nil
	}
	*w = *buildWheel(remainingItems, remainingWeights, total)
	return winner, nil
}
