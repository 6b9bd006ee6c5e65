package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulationBestBreaksTiesByFirstOccurrence(t *testing.T) {
	a := newIndividual[int](newIntChromosome([]int{5}, 10))
	b := newIndividual[int](newIntChromosome([]int{5}, 10))
	c := newIndividual[int](newIntChromosome([]int{1}, 10))
	pop := Population[int]{a, b, c}
	assert.Same(t, a, pop.Best())
}

func TestPopulationBestOnEmptyPopulation(t *testing.T) {
	var pop Population[int]
	assert.Nil(t, pop.Best())
}

func TestComputeBoundsFormula(t *testing.T) {
	bounds, err := computeBounds(10, 0.5, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 5, bounds.min)
	assert.Equal(t, 20, bounds.max)
}

func TestComputeBoundsMinIsAtLeastOne(t *testing.T) {
	bounds, err := computeBounds(1, 0.1, 2.0)
	require.NoError(t, err)
	assert.Equal(t, 1, bounds.min)
}

func TestComputeBoundsValidation(t *testing.T) {
	cases := []struct {
		name           string
		n0             int
		minPct, maxPct float64
	}{
		{"zero population", 0, 0.5, 1.5},
		{"minPct out of range", 10, 0, 1.5},
		{"maxPct below 1.0", 10, 0.5, 0.9},
		{"minPct >= maxPct", 10, 1.0, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := computeBounds(tc.n0, tc.minPct, tc.maxPct)
			assert.Error(t, err)
		})
	}
}
