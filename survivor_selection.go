package genetics

import (
	"math"
	"math/rand"
)

// SurvivorSelector decides which members of the current population are
// eliminated to make room for freshly bred offspring.
type SurvivorSelector[T any] interface {
	String() string

	// Apply chooses eliminateCount individuals from population to
	// eliminate and returns them. Offspring never pass through Apply: the next generation is
	// (population \ eliminated) ∪ offspring — offspring are always kept.
	Apply(population Population[T], eliminateCount int, rng *rand.Rand, epoch int) (eliminated Population[T])

	// RecommendedRate reports this strategy's suggested elimination
	// fraction, if it has one; ok is false otherwise.
	RecommendedRate() (rate float64, ok bool)

	Weight() float64
}

type weightedSurvivor struct {
	CustomWeight float64
}

func (w weightedSurvivor) Weight() float64 { return w.CustomWeight }

// eliminateByWeight draws eliminateCount distinct individuals from
// population via a roulette wheel weighted by weight (higher weight
// means more likely to be eliminated), without replacement.
func eliminateByWeight[T any](population Population[T], eliminateCount int, rng *rand.Rand, weight func(*Individual[T]) float64) Population[T] {
	if eliminateCount <= 0 || len(population) == 0 {
		return nil
	}
	if eliminateCount > len(population) {
		eliminateCount = len(population)
	}
	wheel, err := NewWheel(population, weight)
	if err != nil {
		wheel, _ = NewUniformWheel(population)
	}
	eliminated := make(Population[T], 0, eliminateCount)
	for i := 0; i < eliminateCount && wheel.Len() > 0; i++ {
		pick, _ := wheel.SpinAndRemove(rng)
		eliminated = append(eliminated, pick)
	}
	return eliminated
}

// removeByIdentity returns population with the individual identified
// by id removed, preserving order.
func removeByIdentity[T any](population Population[T], id Identity) Population[T] {
	out := make(Population[T], 0, len(population))
	for _, ind := range population {
		if ind.ID() != id {
			out = append(out, ind)
		}
	}
	return out
}

// GenerationalSurvivorSelector eliminates the entire population,
// unconditionally, regardless of the requested eliminateCount: the
// next generation is offspring only.
type GenerationalSurvivorSelector[T any] struct {
	weightedSurvivor
}

func (GenerationalSurvivorSelector[T]) String() string { return "Generational" }

func (s GenerationalSurvivorSelector[T]) RecommendedRate() (float64, bool) { return 1.0, true }

func (s GenerationalSurvivorSelector[T]) Apply(population Population[T], eliminateCount int, rng *rand.Rand, epoch int) Population[T] {
	out := make(Population[T], len(population))
	copy(out, population)
	return out
}

// ElitistSurvivorSelector protects the top EliteFrac fraction of the
// population from elimination unconditionally, then eliminates
// eliminateCount individuals from the rest via fitness-weighted
// roulette (lower fitness more likely to be picked). This is the
// Runner's default survivor strategy.
type ElitistSurvivorSelector[T any] struct {
	weightedSurvivor
	EliteFrac float64
}

func (ElitistSurvivorSelector[T]) String() string { return "Elitist" }

func (s ElitistSurvivorSelector[T]) RecommendedRate() (float64, bool) {
	return 1.0 - s.EliteFrac, true
}

func (s ElitistSurvivorSelector[T]) Apply(population Population[T], eliminateCount int, rng *rand.Rand, epoch int) Population[T] {
	if eliminateCount <= 0 || len(population) == 0 {
		return nil
	}
	eliteCount := int(math.Ceil(s.EliteFrac * float64(len(population))))
	if eliteCount > len(population) {
		eliteCount = len(population)
	}
	nonEliteCount := len(population) - eliteCount
	if nonEliteCount == 0 {
		return nil
	}
	// The protected elites are the top eliteCount by fitness; rather than
	// fully sorting the population to find them, kWorstIndexes picks out
	// the complementary nonEliteCount lowest-fitness members directly in
	// O(n log nonEliteCount).
	worst := kWorstIndexes(population.Fitnesses(), nonEliteCount)
	nonElite := make(Population[T], len(worst))
	for i, idx := range worst {
		nonElite[i] = population[idx]
	}
	if eliminateCount > len(nonElite) {
		eliminateCount = len(nonElite)
	}
	fmax := population.Best().Fitness()
	return eliminateByWeight(nonElite, eliminateCount, rng, func(ind *Individual[T]) float64 {
		return fmax + 1e-9 - ind.Fitness()
	})
}

// NewElitistSurvivorSelector validates eliteFrac is in [0, 1].
func NewElitistSurvivorSelector[T any](eliteFrac float64) (*ElitistSurvivorSelector[T], error) {
	if eliteFrac < 0 || eliteFrac > 1 {
		return nil, newConfigError("ElitistSurvivorSelector", "elite_frac must be in [0, 1], got %v", eliteFrac)
	}
	return &ElitistSurvivorSelector[T]{EliteFrac: eliteFrac}, nil
}

// TournamentSurvivorSelector repeatedly draws Size candidates from the
// population without replacement and eliminates the loser (or, if
// Stochastic, picks the loser via inverted fitness-weighted roulette
// among the draw) until eliminateCount individuals have been
// eliminated.
type TournamentSurvivorSelector[T any] struct {
	weightedSurvivor
	Size       int
	Stochastic bool
}

func (TournamentSurvivorSelector[T]) String() string { return "Tournament" }

func (s TournamentSurvivorSelector[T]) RecommendedRate() (float64, bool) { return 0, false }

func (s TournamentSurvivorSelector[T]) Apply(population Population[T], eliminateCount int, rng *rand.Rand, epoch int) Population[T] {
	if eliminateCount <= 0 || len(population) == 0 {
		return nil
	}
	if eliminateCount > len(population) {
		eliminateCount = len(population)
	}
	size := s.Size
	if size > len(population) {
		size = len(population)
	}
	if size < 1 {
		size = 1
	}
	fmax := population.Best().Fitness()

	remaining := make(Population[T], len(population))
	copy(remaining, population)

	eliminated := make(Population[T], 0, eliminateCount)
	for len(eliminated) < eliminateCount && len(remaining) > 0 {
		drawSize := size
		if drawSize > len(remaining) {
			drawSize = len(remaining)
		}
		draw := drawWithoutReplacement(remaining, rng, drawSize)
		var loser *Individual[T]
		if s.Stochastic {
			wheel, err := NewWheel(draw, func(ind *Individual[T]) float64 { return fmax + 1e-9 - ind.Fitness() })
			if err != nil {
				wheel, _ = NewUniformWheel(draw)
			}
			loser, _ = wheel.SpinAndRemove(rng)
		} else {
			loser = draw[0]
			for _, ind := range draw[1:] {
				if ind.Fitness() < loser.Fitness() {
					loser = ind
				}
			}
		}
		eliminated = append(eliminated, loser)
		remaining = removeByIdentity(remaining, loser.ID())
	}
	return eliminated
}

// RandomSurvivorSelector eliminates eliminateCount survivors uniformly
// without regard to fitness, used as a diversity-preserving baseline.
type RandomSurvivorSelector[T any] struct {
	weightedSurvivor
}

func (RandomSurvivorSelector[T]) String() string { return "Random" }

func (s RandomSurvivorSelector[T]) RecommendedRate() (float64, bool) { return 0, false }

func (s RandomSurvivorSelector[T]) Apply(population Population[T], eliminateCount int, rng *rand.Rand, epoch int) Population[T] {
	if eliminateCount <= 0 || len(population) == 0 {
		return nil
	}
	if eliminateCount > len(population) {
		eliminateCount = len(population)
	}
	idx := rng.Perm(len(population))[:eliminateCount]
	out := make(Population[T], eliminateCount)
	for i, j := range idx {
		out[i] = population[j]
	}
	return out
}

// AgeBasedSurvivorSelector eliminates individuals via a weighted
// roulette wheel where w(c) = age(c)+1, so older individuals are more
// likely but not guaranteed to be picked. Offspring always have age 0,
// so this strategy favors continual turnover while still leaving room
// for a long-lived high performer to survive another generation.
type AgeBasedSurvivorSelector[T any] struct {
	weightedSurvivor
}

func (AgeBasedSurvivorSelector[T]) String() string { return "AgeBased" }

func (s AgeBasedSurvivorSelector[T]) RecommendedRate() (float64, bool) { return 0.35, true }

func (s AgeBasedSurvivorSelector[T]) Apply(population Population[T], eliminateCount int, rng *rand.Rand, epoch int) Population[T] {
	return eliminateByWeight(population, eliminateCount, rng, func(ind *Individual[T]) float64 {
		return float64(ind.Age() + 1)
	})
}

// BoltzmannSurvivorSelector weighs elimination by exp((fmax-fitness)/T),
// with T cooling across epochs, mirroring BoltzmannParentSelector's
// schedule inverted toward eliminating low-fitness individuals.
type BoltzmannSurvivorSelector[T any] struct {
	weightedSurvivor
	T0       float64
	Alpha    float64
	Epsilon  float64
	Schedule BoltzmannSchedule
}

func (BoltzmannSurvivorSelector[T]) String() string { return "Boltzmann" }

func (s BoltzmannSurvivorSelector[T]) RecommendedRate() (float64, bool) { return 0, false }

func (s BoltzmannSurvivorSelector[T]) Apply(population Population[T], eliminateCount int, rng *rand.Rand, epoch int) Population[T] {
	if eliminateCount <= 0 || len(population) == 0 {
		return nil
	}
	temp := boltzmannTemperature(s.Schedule, s.T0, s.Alpha, s.Epsilon, epoch)
	fmax := population.Best().Fitness()
	return eliminateByWeight(population, eliminateCount, rng, func(ind *Individual[T]) float64 {
		return math.Exp((fmax - ind.Fitness()) / temp)
	})
}
