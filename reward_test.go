package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatingRewardUsesBestParentAndBestOffspring(t *testing.T) {
	couple := makeCouple(t, []int{1, 1}, []int{5, 5}) // fitness 2 and 10
	population := makePopulation(t, 2, 10)
	offspring := []Chromosome[int]{
		newIntChromosome([]int{3, 3}, 100), // fitness 6
		newIntChromosome([]int{8, 8}, 100), // fitness 16
	}
	pre, post, normRange, diversity := matingReward(population, couple, offspring)
	assert.Equal(t, float64(10), pre)
	assert.Equal(t, float64(16), post)
	assert.Equal(t, float64(8), normRange)
	assert.Greater(t, diversity, 0.0)
}

func TestSurvivorRewardComparesMeans(t *testing.T) {
	before := makePopulation(t, 1, 2, 3)
	after := makePopulation(t, 10, 20, 30)
	pre, post, _, _ := survivorReward(before, after)
	assert.Equal(t, float64(2), pre)
	assert.Equal(t, float64(20), post)
}
