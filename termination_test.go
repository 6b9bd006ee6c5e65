package genetics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxEpochsTerminator(t *testing.T) {
	term, err := NewMaxEpochsTerminator(5)
	require.NoError(t, err)
	assert.False(t, term.Done(EngineState{Epoch: 4}))
	assert.True(t, term.Done(EngineState{Epoch: 5}))
}

func TestMaxEpochsTerminatorValidation(t *testing.T) {
	_, err := NewMaxEpochsTerminator(0)
	assert.Error(t, err)
}

func TestMaxDurationTerminator(t *testing.T) {
	term, err := NewMaxDurationTerminator(time.Second)
	require.NoError(t, err)
	assert.False(t, term.Done(EngineState{Elapsed: 500 * time.Millisecond}))
	assert.True(t, term.Done(EngineState{Elapsed: time.Second}))
}

func TestTargetFitnessTerminator(t *testing.T) {
	term := TargetFitnessTerminator{Target: 100}
	assert.False(t, term.Done(EngineState{BestFitness: 99}))
	assert.True(t, term.Done(EngineState{BestFitness: 100}))
}

func TestTargetStdDevTerminatorRequiresConsecutiveEpochs(t *testing.T) {
	term, err := NewTargetStdDevTerminator(0.5, 3)
	require.NoError(t, err)

	assert.False(t, term.Done(EngineState{PopulationFitnessStdDev: 0.1}))
	assert.False(t, term.Done(EngineState{PopulationFitnessStdDev: 0.1}))
	assert.True(t, term.Done(EngineState{PopulationFitnessStdDev: 0.1}))
}

func TestTargetStdDevTerminatorResetsOnSpike(t *testing.T) {
	term, err := NewTargetStdDevTerminator(0.5, 2)
	require.NoError(t, err)

	assert.False(t, term.Done(EngineState{PopulationFitnessStdDev: 0.1}))
	assert.False(t, term.Done(EngineState{PopulationFitnessStdDev: 10})) // spike resets the streak
	assert.False(t, term.Done(EngineState{PopulationFitnessStdDev: 0.1}))
	assert.True(t, term.Done(EngineState{PopulationFitnessStdDev: 0.1}))
}

func TestAnyTerminatorShortCircuits(t *testing.T) {
	maxEpochs, err := NewMaxEpochsTerminator(10)
	require.NoError(t, err)
	targetFitness := TargetFitnessTerminator{Target: 50}
	any := AnyTerminator{Terminators: []Terminator{maxEpochs, targetFitness}}

	assert.False(t, any.Done(EngineState{Epoch: 1, BestFitness: 1}))
	assert.True(t, any.Done(EngineState{Epoch: 10, BestFitness: 1}))
	assert.True(t, any.Done(EngineState{Epoch: 1, BestFitness: 100}))
}
