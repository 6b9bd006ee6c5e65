package genetics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationalSurvivorSelectorEliminatesTheEntirePopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := makePopulation(t, 1, 5, 9, 2, 7)
	sel := GenerationalSurvivorSelector[int]{}

	eliminated := sel.Apply(pop, 3, rng, 0)
	require.Len(t, eliminated, 5)
	assert.ElementsMatch(t, []float64{1, 5, 9, 2, 7}, eliminated.Fitnesses())
}

func TestElitistSurvivorSelectorAlwaysKeepsElites(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := makePopulation(t, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	sel, err := NewElitistSurvivorSelector[int](0.2)
	require.NoError(t, err)

	eliminated := sel.Apply(pop, 5, rng, 0)
	require.Len(t, eliminated, 5)
	ids := map[Identity]bool{}
	for _, s := range eliminated {
		ids[s.ID()] = true
	}
	assert.False(t, ids[pop[9].ID()]) // fitness 10
	assert.False(t, ids[pop[8].ID()]) // fitness 9
}

func TestElitistSurvivorSelectorValidation(t *testing.T) {
	_, err := NewElitistSurvivorSelector[int](-0.1)
	assert.Error(t, err)
	_, err = NewElitistSurvivorSelector[int](1.1)
	assert.Error(t, err)
}

func TestTournamentSurvivorSelectorEliminatesDistinctIndividuals(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pop := makePopulation(t, 1, 2, 3, 4, 5, 6)
	sel := TournamentSurvivorSelector[int]{Size: 2}

	eliminated := sel.Apply(pop, 4, rng, 0)
	require.Len(t, eliminated, 4)
	ids := map[Identity]bool{}
	for _, s := range eliminated {
		assert.False(t, ids[s.ID()])
		ids[s.ID()] = true
	}
}

func TestRandomSurvivorSelectorReturnsRequestedCount(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pop := makePopulation(t, 1, 2, 3, 4, 5)
	sel := RandomSurvivorSelector[int]{}
	survivors := sel.Apply(pop, 3, rng, 0)
	assert.Len(t, survivors, 3)
}

func TestAgeBasedSurvivorSelectorPrefersOlderIndividuals(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := makePopulation(t, 1, 2, 3, 4)
	pop[0].age = 50
	pop[1].age = 0
	pop[2].age = 0
	pop[3].age = 0

	oldest := pop[0].ID()
	eliminatedOldestCount := 0
	for i := 0; i < 200; i++ {
		eliminated := AgeBasedSurvivorSelector[int]{}.Apply(pop, 1, rng, 0)
		require.Len(t, eliminated, 1)
		if eliminated[0].ID() == oldest {
			eliminatedOldestCount++
		}
	}
	// w(oldest) = 51 against w(others) = 1 each (total weight 54): the
	// oldest individual should be eliminated in the large majority of
	// trials, but never with certainty (it's a weighted roulette, not a
	// deterministic oldest-first sort).
	assert.Greater(t, eliminatedOldestCount, 150)
	assert.Less(t, eliminatedOldestCount, 200)
}

func TestGenerationalSurvivorSelectorEliminatesNoMoreThanThePoolWhenTargetExceedsIt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pop := makePopulation(t, 1, 2, 3)
	sel := GenerationalSurvivorSelector[int]{}
	eliminated := sel.Apply(pop, 10, rng, 0)
	assert.Len(t, eliminated, 3)
}
