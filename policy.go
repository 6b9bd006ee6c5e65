package genetics

import "math/rand"

// Operator is the capability every pluggable strategy kind
// (ParentSelector, Crossover, SurvivorSelector) shares: a custom
// weight used by CustomWeightPolicy. Declared separately so
// OperatorPolicy can be written generically over any operator slice
// without depending on which concrete strategy interface it is
// selecting among.
type Operator interface {
	Weight() float64
}

// OperatorPolicy picks which of a set of same-kind operators runs in a
// given epoch, and receives feedback on how well that pick performed.
type OperatorPolicy[Op Operator] interface {
	String() string

	// Select returns the chosen operator and its index within ops.
	Select(ops []Op, rng *rand.Rand, epoch int) (op Op, index int)

	// Feedback reports the outcome of using the operator at index:
	// pre and post are the fitness signal before/after its
	// application, normRange bounds the signal's scale for
	// normalization, and diversitySignal measures the resulting spread.
	// Policies that don't adapt (FirstChoice, RoundRobin, Random,
	// CustomWeight) ignore Feedback.
	Feedback(index int, pre, post, normRange, diversitySignal float64)
}

// FirstChoicePolicy always selects ops[0]. This is the Runner's
// default when exactly one operator of a kind is registered.
type FirstChoicePolicy[Op Operator] struct{}

func (FirstChoicePolicy[Op]) String() string { return "FirstChoice" }

func (FirstChoicePolicy[Op]) Select(ops []Op, rng *rand.Rand, epoch int) (Op, int) {
	return ops[0], 0
}

func (FirstChoicePolicy[Op]) Feedback(index int, pre, post, normRange, diversitySignal float64) {}

// RoundRobinPolicy cycles through ops in order, advancing one position
// on every Select call (not once per epoch).
type RoundRobinPolicy[Op Operator] struct {
	next int
}

func (*RoundRobinPolicy[Op]) String() string { return "RoundRobin" }

func (p *RoundRobinPolicy[Op]) Select(ops []Op, rng *rand.Rand, epoch int) (Op, int) {
	idx := p.next % len(ops)
	p.next++
	return ops[idx], idx
}

func (*RoundRobinPolicy[Op]) Feedback(index int, pre, post, normRange, diversitySignal float64) {}

// RandomPolicy picks uniformly among ops every epoch.
type RandomPolicy[Op Operator] struct{}

func (RandomPolicy[Op]) String() string { return "Random" }

func (RandomPolicy[Op]) Select(ops []Op, rng *rand.Rand, epoch int) (Op, int) {
	idx := rng.Intn(len(ops))
	return ops[idx], idx
}

func (RandomPolicy[Op]) Feedback(index int, pre, post, normRange, diversitySignal float64) {}

// CustomWeightPolicy picks among ops via a fitness-proportional-style
// roulette over each operator's own Weight(). This is the Runner's
// default when multiple operators of a kind are registered and at
// least one reports a positive Weight().
type CustomWeightPolicy[Op Operator] struct{}

func (CustomWeightPolicy[Op]) String() string { return "CustomWeight" }

func (CustomWeightPolicy[Op]) Select(ops []Op, rng *rand.Rand, epoch int) (Op, int) {
	wheel, err := NewWheel(intRange(len(ops)), func(i int) float64 { return ops[i].Weight() })
	if err != nil {
		idx := rng.Intn(len(ops))
		return ops[idx], idx
	}
	idx := wheel.Spin(rng)
	return ops[idx], idx
}

func (CustomWeightPolicy[Op]) Feedback(index int, pre, post, normRange, diversitySignal float64) {}

// intRange returns [0, 1, ..., n-1], a small helper for building a
// Wheel over operator indexes rather than the operators themselves
// (operators are not required to be comparable or hashable).
func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
