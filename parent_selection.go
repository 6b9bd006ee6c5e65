package genetics

import (
	"math"
	"math/rand"
	"sort"
)

// ParentSelector chooses mating pairs from a population. Every
// concrete selector below follows the same universal rules: a
// population of size <= 1 yields no couples; a population of exactly
// 2 yields k copies of the only possible pair; larger populations draw
// two distinct parents per couple.
type ParentSelector[T any] interface {
	// String names the strategy, e.g. for flags.go and diagnostics.
	String() string

	// SelectPairs produces up to k mating couples from pop.
	SelectPairs(pop Population[T], rng *rand.Rand, k int, epoch int) []Couple[T]

	// Weight is this operator's custom weight for Custom-Weight policy
	// selection; 0 means unspecified.
	Weight() float64
}

// weightedSelector is embedded by selectors configured with a custom
// weight, giving them the Weight() method Operator needs for free.
type weightedSelector struct {
	CustomWeight float64
}

func (w weightedSelector) Weight() float64 { return w.CustomWeight }

// selectPairsByWheel implements the shared mechanics every
// roulette-style selector (Random, Roulette, Rank, Boltzmann) uses:
// the |P|<=1 and |P|=2 special cases, then two spin-and-removes per
// couple for |P|>=3. weight is recomputed fresh for each couple so
// that selectors whose weights evolve over the population (e.g. rank)
// stay correct even as spin-and-remove shrinks the candidate set
// momentarily.
func selectPairsByWheel[T any](pop Population[T], rng *rand.Rand, k int, weight func(*Individual[T]) float64) []Couple[T] {
	if len(pop) <= 1 || k <= 0 {
		return nil
	}
	if len(pop) == 2 {
		couples := make([]Couple[T], k)
		for i := range couples {
			couples[i] = newCouple(pop[0], pop[1])
		}
		return couples
	}

	couples := make([]Couple[T], 0, k)
	for len(couples) < k {
		wheel, err := NewWheel(pop, weight)
		if err != nil {
			// All weights degenerate to zero (e.g. every fitness is 0):
			// fall back to uniform so selection can still proceed.
			wheel, _ = NewUniformWheel(pop)
		}
		a, _ := wheel.SpinAndRemove(rng)
		b, _ := wheel.SpinAndRemove(rng)
		couples = append(couples, newCouple(a, b))
	}
	return couples
}

// RandomParentSelector picks both parents of every couple uniformly at
// random: the shared roulette-wheel mechanics, specialized to uniform
// weights.
type RandomParentSelector[T any] struct {
	weightedSelector
}

func (RandomParentSelector[T]) String() string { return "Random" }

func (s RandomParentSelector[T]) SelectPairs(pop Population[T], rng *rand.Rand, k int, epoch int) []Couple[T] {
	return selectPairsByWheel(pop, rng, k, func(*Individual[T]) float64 { return 1 })
}

// RouletteParentSelector weighs each parent by its raw fitness,
// assuming a maximizing, non-negative fitness objective.
type RouletteParentSelector[T any] struct {
	weightedSelector
}

func (RouletteParentSelector[T]) String() string { return "Roulette" }

func (s RouletteParentSelector[T]) SelectPairs(pop Population[T], rng *rand.Rand, k int, epoch int) []Couple[T] {
	return selectPairsByWheel(pop, rng, k, func(ind *Individual[T]) float64 { return ind.Fitness() })
}

// RankParentSelector weighs each parent by its rank in the population
// (1 = worst), bounding the advantage extreme outliers get over
// fitness-proportional selection.
type RankParentSelector[T any] struct {
	weightedSelector
}

func (RankParentSelector[T]) String() string { return "Rank" }

func (s RankParentSelector[T]) SelectPairs(pop Population[T], rng *rand.Rand, k int, epoch int) []Couple[T] {
	ranks := computeRanks(pop)
	return selectPairsByWheel(pop, rng, k, func(ind *Individual[T]) float64 { return float64(ranks[ind.ID()]) })
}

// computeRanks assigns each individual a rank in [1, N], 1 being the
// lowest fitness.
func computeRanks[T any](pop Population[T]) map[Identity]int {
	sorted := make(Population[T], len(pop))
	copy(sorted, pop)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness() < sorted[j].Fitness() })
	ranks := make(map[Identity]int, len(sorted))
	for i, ind := range sorted {
		ranks[ind.ID()] = i + 1
	}
	return ranks
}

// BoltzmannSchedule computes the temperature at a given epoch.
type BoltzmannSchedule int

const (
	// BoltzmannExponential computes T(epoch) = max(epsilon, T0*exp(-alpha*epoch)).
	BoltzmannExponential BoltzmannSchedule = iota
	// BoltzmannLinear computes T(epoch) = max(epsilon, T0 - alpha*epoch).
	BoltzmannLinear
)

// boltzmannTemperature implements the two cooling schedules shared by
// BoltzmannParentSelector and BoltzmannSurvivorSelector.
func boltzmannTemperature(schedule BoltzmannSchedule, t0, alpha, epsilon float64, epoch int) float64 {
	switch schedule {
	case BoltzmannLinear:
		t := t0 - alpha*float64(epoch)
		if t < epsilon {
			t = epsilon
		}
		return t
	default:
		t := t0 * math.Exp(-alpha*float64(epoch))
		if t < epsilon {
			t = epsilon
		}
		return t
	}
}

// BoltzmannParentSelector weighs parents by exp((fitness-fmax)/T),
// shifted to avoid overflow, with T cooling over epochs.
type BoltzmannParentSelector[T any] struct {
	weightedSelector
	T0       float64
	Alpha    float64
	Epsilon  float64
	Schedule BoltzmannSchedule
}

func (BoltzmannParentSelector[T]) String() string { return "Boltzmann" }

func (s BoltzmannParentSelector[T]) SelectPairs(pop Population[T], rng *rand.Rand, k int, epoch int) []Couple[T] {
	temp := boltzmannTemperature(s.Schedule, s.T0, s.Alpha, s.Epsilon, epoch)
	fmax := pop.Best().Fitness()
	return selectPairsByWheel(pop, rng, k, func(ind *Individual[T]) float64 {
		return math.Exp((ind.Fitness() - fmax) / temp)
	})
}

// NewBoltzmannParentSelector validates T0 > 0 and alpha >= 0 before
// returning a selector.
func NewBoltzmannParentSelector[T any](t0, alpha, epsilon float64, schedule BoltzmannSchedule) (*BoltzmannParentSelector[T], error) {
	if t0 <= 0 {
		return nil, newConfigError("BoltzmannParentSelector", "T0 must be > 0, got %v", t0)
	}
	if alpha < 0 {
		return nil, newConfigError("BoltzmannParentSelector", "alpha must be >= 0, got %v", alpha)
	}
	if epsilon <= 0 {
		epsilon = 1e-6
	}
	return &BoltzmannParentSelector[T]{T0: t0, Alpha: alpha, Epsilon: epsilon, Schedule: schedule}, nil
}

// TournamentParentSelector draws Size candidates uniformly without
// replacement and mates the two winners (or, if Stochastic, picks the
// two winners via fitness-weighted roulette among the draw).
type TournamentParentSelector[T any] struct {
	weightedSelector
	Size       int
	Stochastic bool
}

func (TournamentParentSelector[T]) String() string { return "Tournament" }

func (s TournamentParentSelector[T]) SelectPairs(pop Population[T], rng *rand.Rand, k int, epoch int) []Couple[T] {
	if len(pop) <= 1 || k <= 0 {
		return nil
	}
	if len(pop) == 2 {
		couples := make([]Couple[T], k)
		for i := range couples {
			couples[i] = newCouple(pop[0], pop[1])
		}
		return couples
	}

	size := s.Size
	if size > len(pop) {
		size = len(pop)
	}
	if size < 2 {
		size = 2
	}

	couples := make([]Couple[T], 0, k)
	for len(couples) < k {
		draw := drawWithoutReplacement(pop, rng, size)
		a, b := s.pickTwo(draw, rng)
		couples = append(couples, newCouple(a, b))
	}
	return couples
}

func (s TournamentParentSelector[T]) pickTwo(draw []*Individual[T], rng *rand.Rand) (*Individual[T], *Individual[T]) {
	if s.Stochastic {
		wheel, err := NewWheel(draw, func(ind *Individual[T]) float64 { return ind.Fitness() })
		if err != nil {
			wheel, _ = NewUniformWheel(draw)
		}
		a, _ := wheel.SpinAndRemove(rng)
		b, _ := wheel.SpinAndRemove(rng)
		return a, b
	}
	sorted := make([]*Individual[T], len(draw))
	copy(sorted, draw)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness() > sorted[j].Fitness() })
	return sorted[0], sorted[1]
}

// drawWithoutReplacement picks n distinct members of pop uniformly at
// random by taking the first n entries of a random permutation of
// indexes.
func drawWithoutReplacement[T any](pop Population[T], rng *rand.Rand, n int) []*Individual[T] {
	idx := rng.Perm(len(pop))[:n]
	out := make([]*Individual[T], n)
	for i, j := range idx {
		out[i] = pop[j]
	}
	return out
}

// ElitistParentSelector guarantees every elite chromosome takes part
// in at least one couple before filling the remainder by
// fitness-weighted selection.
type ElitistParentSelector[T any] struct {
	weightedSelector
	EliteFrac    float64
	NonEliteFrac float64
	AllowCross   bool // elites may mate with non-elites
}

func (ElitistParentSelector[T]) String() string { return "Elitist" }

func (s ElitistParentSelector[T]) SelectPairs(pop Population[T], rng *rand.Rand, k int, epoch int) []Couple[T] {
	if len(pop) <= 1 || k <= 0 {
		return nil
	}
	if len(pop) == 2 {
		couples := make([]Couple[T], k)
		for i := range couples {
			couples[i] = newCouple(pop[0], pop[1])
		}
		return couples
	}

	sorted := make(Population[T], len(pop))
	copy(sorted, pop)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Fitness() > sorted[j].Fitness() })

	eliteCount := int(math.Ceil(s.EliteFrac * float64(len(sorted))))
	if eliteCount < 1 {
		eliteCount = 1
	}
	if eliteCount > len(sorted) {
		eliteCount = len(sorted)
	}
	elites := sorted[:eliteCount]
	rest := sorted[eliteCount:]

	nonEliteCount := int(math.Ceil(s.NonEliteFrac * float64(len(rest))))
	if nonEliteCount > len(rest) {
		nonEliteCount = len(rest)
	}
	nonElites := append(Population[T]{}, rest[:nonEliteCount]...)

	eligiblePartners := append(Population[T]{}, elites...)
	if s.AllowCross {
		eligiblePartners = append(eligiblePartners, nonElites...)
	}

	couples := make([]Couple[T], 0, k)

	// Phase 1: every elite appears in at least one couple, whenever an
	// eligible partner pool other than itself is non-empty.
	for _, elite := range elites {
		if len(couples) >= k {
			break
		}
		partner := pickPartner(eligiblePartners, elite, rng)
		if partner == nil {
			continue
		}
		couples = append(couples, newCouple(elite, partner))
	}

	// Phase 2: fill the remainder via fitness-weighted selection
	// restricted to the elite+eligible-non-elite pool.
	pool := eligiblePartners
	if len(pool) < 2 {
		pool = sorted
	}
	for len(couples) < k {
		wheel, err := NewWheel(pool, func(ind *Individual[T]) float64 { return ind.Fitness() })
		if err != nil {
			wheel, _ = NewUniformWheel(pool)
		}
		a, _ := wheel.SpinAndRemove(rng)
		if wheel.Len() == 0 {
			wheel, _ = NewUniformWheel(pool)
		}
		b, _ := wheel.SpinAndRemove(rng)
		if a.ID() == b.ID() {
			b = pickPartner(pool, a, rng)
		}
		couples = append(couples, newCouple(a, b))
	}
	return couples
}

// pickPartner uniformly picks a member of candidates other than self.
// Returns nil if no such member exists.
func pickPartner[T any](candidates Population[T], self *Individual[T], rng *rand.Rand) *Individual[T] {
	eligible := make(Population[T], 0, len(candidates))
	for _, c := range candidates {
		if c.ID() != self.ID() {
			eligible = append(eligible, c)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	return eligible[rng.Intn(len(eligible))]
}
