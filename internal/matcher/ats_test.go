package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateATSFactors(t *testing.T) {
	factors := EvaluateATSFactors("Experience\njane@example.com")
	assert.True(t, factors.HasStandardSections)
	assert.True(t, factors.HasContactInfo)
	assert.True(t, factors.StandardFormat)
	assert.True(t, factors.ReadableFont)

	factors = EvaluateATSFactors("just some text")
	assert.False(t, factors.HasStandardSections)
	assert.False(t, factors.HasContactInfo)
	assert.True(t, factors.StandardFormat)
	assert.True(t, factors.ReadableFont)
}

func TestEvaluateATSFactors_PhoneCountsAsContact(t *testing.T) {
	factors := EvaluateATSFactors("Call 555-123-4567")
	assert.True(t, factors.HasContactInfo)

	factors = EvaluateATSFactors("Call 555.123.4567")
	assert.True(t, factors.HasContactInfo)
}

func TestEvaluateATSFactors_EducationCountsAsSection(t *testing.T) {
	factors := EvaluateATSFactors("EDUCATION\nState University")
	assert.True(t, factors.HasStandardSections)
}

func TestScoreATS(t *testing.T) {
	score, feedback := scoreATS("Experience section, reach me at jane@example.com")
	assert.Equal(t, 100, score)
	assert.Equal(t, "Perfect! Your resume is highly ATS-friendly.", feedback)

	score, feedback = scoreATS("Experience without contact details")
	assert.Equal(t, 75, score)
	assert.Equal(t, "Good ATS compatibility with minor areas for improvement.", feedback)

	score, feedback = scoreATS("plain text")
	assert.Equal(t, 50, score)
	assert.Equal(t, "Consider improving document structure and adding missing standard sections.", feedback)
}
