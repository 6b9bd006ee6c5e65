package genetics

import (
	"math"
	"math/rand"
)

// AdaptivePursuit is a reinforcement-learning-style operator selection
// policy: each operator's selection probability is pursued toward 1
// when it is currently the best performer (by recency-weighted average
// reward) and toward a floor otherwise. State is tracked per index
// rather than per-key, like this package's other policies, since
// operators need not be comparable.
type AdaptivePursuit[Op Operator] struct {
	// Eta is the learning rate toward the pursued target probability.
	Eta float64
	// PMin is the floor every operator's probability is pursued toward
	// when it is not the current best.
	PMin float64
	// Window bounds how many recent reward samples feed the
	// recency-weighted average per operator.
	Window int
	// Beta weighs the diversity signal into the reward alongside the
	// fitness-improvement signal.
	Beta float64
	// UMin is the minimum number of times an operator must have been
	// used before its average reward is trusted over the warmup
	// round-robin default.
	UMin int
	// WarmupEpochs is the number of initial epochs spent round-robining
	// through every operator before pursuit begins.
	WarmupEpochs int

	probabilities []float64
	rewards       [][]float64 // recency-capped reward history, per operator
	usage         []int
	initialized   bool
}

func (a *AdaptivePursuit[Op]) String() string { return "AdaptivePursuit" }

func (a *AdaptivePursuit[Op]) ensureInit(n int) {
	if a.initialized {
		return
	}
	a.probabilities = make([]float64, n)
	for i := range a.probabilities {
		a.probabilities[i] = 1.0 / float64(n)
	}
	a.rewards = make([][]float64, n)
	a.usage = make([]int, n)
	a.initialized = true
}

// Select picks an operator by round-robin during warmup, then by
// sampling the cumulative probability distribution thereafter.
func (a *AdaptivePursuit[Op]) Select(ops []Op, rng *rand.Rand, epoch int) (Op, int) {
	a.ensureInit(len(ops))
	if epoch < a.WarmupEpochs {
		idx := epoch % len(ops)
		return ops[idx], idx
	}
	wheel, err := NewWheel(intRange(len(ops)), func(i int) float64 { return a.probabilities[i] })
	if err != nil {
		idx := rng.Intn(len(ops))
		return ops[idx], idx
	}
	idx := wheel.Spin(rng)
	return ops[idx], idx
}

// Feedback records the reward from using the operator at index and
// re-pursues every operator's probability toward its target.
func (a *AdaptivePursuit[Op]) Feedback(index int, pre, post, normRange, diversitySignal float64) {
	if !a.initialized || index < 0 || index >= len(a.probabilities) {
		return
	}
	reward := rewardSignal(pre, post, normRange, diversitySignal, a.Beta)
	a.recordReward(index, reward)
	a.usage[index]++
	a.pursue()
}

// rewardSignal combines a fitness-improvement term with a diversity
// term: improvement is normalized by normRange to keep it in a
// comparable scale across problems, and diversitySignal is weighted by
// beta.
func rewardSignal(pre, post, normRange, diversitySignal, beta float64) float64 {
	improvement := 0.0
	if normRange > 0 {
		improvement = (post - pre) / normRange
	}
	return improvement + beta*diversitySignal
}

func (a *AdaptivePursuit[Op]) recordReward(index int, reward float64) {
	hist := append(a.rewards[index], reward)
	if len(hist) > a.Window {
		hist = hist[len(hist)-a.Window:]
	}
	a.rewards[index] = hist
}

// averageReward returns the operator's recency-weighted average
// reward. Samples are weighted by exp(-0.1*(w-1-i)), i indexing
// position within the reward history (0 oldest, w-1 most recent), so
// recent samples dominate the average. ok is false only when the
// operator has no reward history yet.
func (a *AdaptivePursuit[Op]) averageReward(index int) (float64, bool) {
	hist := a.rewards[index]
	if len(hist) == 0 {
		return 0, false
	}
	w := len(hist)
	weightTotal := 0.0
	sum := 0.0
	for i, r := range hist {
		weight := math.Exp(-0.1 * float64(w-1-i))
		weightTotal += weight
		sum += weight * r
	}
	return sum / weightTotal, true
}

// pursue moves every operator's probability toward 1 (the current best
// by average reward) or PMin (everyone else), then renormalizes so
// probabilities sum to 1 and no probability falls below PMin.
// Adaptation only happens once every operator has been used at least
// UMin times; before that, probabilities stay at their current
// (initially uniform, warmup-driven) values.
func (a *AdaptivePursuit[Op]) pursue() {
	n := len(a.probabilities)
	for i := 0; i < n; i++ {
		if a.usage[i] < a.UMin {
			return
		}
	}

	best := -1
	bestReward := 0.0
	for i := 0; i < n; i++ {
		avg, ok := a.averageReward(i)
		if !ok {
			continue
		}
		if best == -1 || avg > bestReward {
			best = i
			bestReward = avg
		}
	}
	if best == -1 {
		return // nothing trusted yet; stay at uniform/warmup distribution
	}

	for i := 0; i < n; i++ {
		target := a.PMin
		if i == best {
			target = 1.0
		}
		a.probabilities[i] += a.Eta * (target - a.probabilities[i])
	}
	a.renormalize()
}

// renormalize restores Σp_i = 1 and p_i >= PMin after the pursuit step.
// Every entry is first clamped up to the floor; the remaining mass
// (1 - n*PMin) is then distributed
// proportionally to each entry's excess above the floor, so an
// operator already far above the floor keeps a correspondingly larger
// share of it. A final correction on the largest entry absorbs any
// floating-point drift so the probabilities sum to exactly 1.
func (a *AdaptivePursuit[Op]) renormalize() {
	n := len(a.probabilities)
	floor := a.PMin

	clamped := make([]float64, n)
	excess := make([]float64, n)
	excessTotal := 0.0
	for i, p := range a.probabilities {
		clamped[i] = floor
		if p > floor {
			excess[i] = p - floor
			excessTotal += excess[i]
		}
	}

	remaining := 1.0 - float64(n)*floor
	if remaining < 0 {
		remaining = 0
	}
	if excessTotal > 0 {
		for i := range clamped {
			clamped[i] += remaining * (excess[i] / excessTotal)
		}
	} else {
		share := remaining / float64(n)
		for i := range clamped {
			clamped[i] += share
		}
	}

	total := 0.0
	largest := 0
	for i, p := range clamped {
		total += p
		if p > clamped[largest] {
			largest = i
		}
	}
	clamped[largest] += 1.0 - total

	a.probabilities = clamped
}

// NewAdaptivePursuit validates the configuration: eta in (0,1], pMin
// in (0, 1), window > 0, beta >= 0, uMin >= 0, warmupEpochs >= 0. The
// operator count is not known here, so pMin*n <= 1 is not checked.
func NewAdaptivePursuit[Op Operator](eta, pMin float64, window int, beta float64, uMin, warmupEpochs int) (*AdaptivePursuit[Op], error) {
	if eta <= 0 || eta > 1 {
		return nil, newConfigError("AdaptivePursuit", "eta must be in (0, 1], got %v", eta)
	}
	if pMin <= 0 || pMin >= 1 {
		return nil, newConfigError("AdaptivePursuit", "p_min must be in (0, 1), got %v", pMin)
	}
	if window <= 0 {
		return nil, newConfigError("AdaptivePursuit", "window must be > 0, got %d", window)
	}
	if beta < 0 {
		return nil, newConfigError("AdaptivePursuit", "beta must be >= 0, got %v", beta)
	}
	if uMin < 0 {
		return nil, newConfigError("AdaptivePursuit", "u_min must be >= 0, got %d", uMin)
	}
	if warmupEpochs < 0 {
		return nil, newConfigError("AdaptivePursuit", "warmup_epochs must be >= 0, got %d", warmupEpochs)
	}
	return &AdaptivePursuit[Op]{
		Eta: eta, PMin: pMin, Window: window, Beta: beta, UMin: uMin, WarmupEpochs: warmupEpochs,
	}, nil
}
