package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSkillGaps_MissingKeywordsSortFirst(t *testing.T) {
	gaps := buildSkillGaps(
		[]string{"javascript", "docker", "react"},
		[]string{"javascript", "react"},
	)

	require.Len(t, gaps, 3)
	assert.Equal(t, "Docker", gaps[0].Name)
	assert.Equal(t, 80, gaps[0].Gap)
	assert.Equal(t, "Javascript", gaps[1].Name)
	assert.Equal(t, 0, gaps[1].Gap)
	assert.Equal(t, "React", gaps[2].Name)
	assert.Equal(t, 0, gaps[2].Gap)
}

func TestBuildSkillGaps_Deduplicates(t *testing.T) {
	gaps := buildSkillGaps([]string{"docker", "docker", "  ", "docker"}, nil)
	require.Len(t, gaps, 1)
	assert.Equal(t, "Docker", gaps[0].Name)
}

func TestBuildSkillGaps_MultiWordTitleCase(t *testing.T) {
	gaps := buildSkillGaps([]string{"problem solving", "machine learning"}, []string{"machine learning"})
	require.Len(t, gaps, 2)
	assert.Equal(t, "Problem Solving", gaps[0].Name)
	assert.Equal(t, 80, gaps[0].Gap)
	assert.Equal(t, "Machine Learning", gaps[1].Name)
	assert.Equal(t, 0, gaps[1].Gap)
}

func TestBuildSkillGaps_LevelsAreFixed(t *testing.T) {
	gaps := buildSkillGaps([]string{"sql", "git"}, []string{"sql"})
	for _, gap := range gaps {
		assert.Equal(t, 80, gap.Required)
		assert.Contains(t, []int{0, 80}, gap.Current)
		assert.Equal(t, gap.Required-gap.Current, gap.Gap)
	}
}
