package interview

import (
	"math/rand"
	"testing"

	"github.com/jobsync/jobsync/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_SingleTypeUsesFullPoolInOrder(t *testing.T) {
	bank := DefaultBank()
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, bank.Behavioral, bank.Draw(types.InterviewBehavioral, rng))
	assert.Equal(t, bank.Technical, bank.Draw(types.InterviewTechnical, rng))
	assert.Equal(t, bank.Situational, bank.Draw(types.InterviewSituational, rng))
}

func TestDraw_ReturnsCopy(t *testing.T) {
	bank := DefaultBank()
	drawn := bank.Draw(types.InterviewBehavioral, rand.New(rand.NewSource(1)))
	drawn[0] = "mutated"
	assert.NotEqual(t, drawn[0], bank.Behavioral[0])
}

func TestDraw_MixedComposition(t *testing.T) {
	bank := DefaultBank()
	drawn := bank.Draw(types.InterviewMixed, rand.New(rand.NewSource(7)))

	require.Len(t, drawn, 5)
	expected := []string{
		bank.Behavioral[0], bank.Behavioral[1],
		bank.Technical[0], bank.Technical[1],
		bank.Situational[0],
	}
	assert.ElementsMatch(t, expected, drawn)
}

func TestDraw_MixedSameSeedSameOrder(t *testing.T) {
	bank := DefaultBank()
	first := bank.Draw(types.InterviewMixed, rand.New(rand.NewSource(42)))
	second := bank.Draw(types.InterviewMixed, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
}

func TestDraw_MixedShufflesAllPositions(t *testing.T) {
	bank := DefaultBank()
	rng := rand.New(rand.NewSource(99))

	// Over many draws every source question should land in every position
	// with roughly uniform frequency.
	const draws = 1000
	counts := make(map[string][]int)
	for i := 0; i < draws; i++ {
		for pos, q := range bank.Draw(types.InterviewMixed, rng) {
			if counts[q] == nil {
				counts[q] = make([]int, 5)
			}
			counts[q][pos]++
		}
	}

	require.Len(t, counts, 5)
	expected := draws / 5
	for q, positions := range counts {
		for pos, n := range positions {
			assert.Greater(t, n, expected/2, "question %q position %d", q, pos)
			assert.Less(t, n, expected*2, "question %q position %d", q, pos)
		}
	}
}

func TestDraw_UnknownTypeReturnsNil(t *testing.T) {
	bank := DefaultBank()
	assert.Nil(t, bank.Draw(types.InterviewType("panel"), rand.New(rand.NewSource(1))))
}
