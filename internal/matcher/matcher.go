// Package matcher compares resume text against a job description and produces
// heuristic match scores, feedback, skill gaps, and recommendations.
//
// Analyze is a total function over its string inputs: malformed or empty text
// degrades to low scores, never to an error.
package matcher

import (
	"time"

	"github.com/jobsync/jobsync/internal/types"
)

// Weights of the three component scores in the overall score.
const (
	atsWeight        = 2
	keywordWeight    = 4
	experienceWeight = 4
)

type options struct {
	now func() time.Time
}

// Option configures an Analyze call.
type Option func(*options)

// WithNow overrides the clock used to resolve "present" in date ranges.
// Intended for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Analyze scores resumeText against jdText and returns the full analysis.
// It is pure given its inputs and the injected clock.
func Analyze(resumeText, jdText string, opts ...Option) types.AnalysisResult {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	var result types.AnalysisResult

	result.ATSScore, result.ATSFeedback = scoreATS(resumeText)

	jdKeywords := ExtractKeywords(jdText)
	resumeKeywords := ExtractKeywords(resumeText)
	matched := matchKeywords(jdKeywords, resumeKeywords)
	result.KeywordScore, result.KeywordFeedback = scoreKeywords(jdKeywords, matched)

	years := extractExperienceYears(resumeText, o.now().Year())
	required, hasRequired := extractRequiredYears(jdText)
	exp := scoreExperience(years, required, hasRequired)
	result.ExperienceScore = exp.score
	result.ExperienceFeedback = exp.feedback

	// Weighted overall; integer division floors as specified.
	result.OverallScore = (result.ATSScore*atsWeight +
		result.KeywordScore*keywordWeight +
		result.ExperienceScore*experienceWeight) / 10

	result.SkillGaps = buildSkillGaps(jdKeywords, matched)
	result.Recommendations = buildRecommendations(result, jdKeywords, matched, exp)

	return result
}
