package matcher

import (
	"regexp"
	"strings"
)

// phonePattern matches phone-number-shaped tokens like 555-123-4567.
var phonePattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)

// ATSFactors holds the four boolean compatibility checks. Each satisfied
// factor contributes a quarter of the ATS score. StandardFormat and
// ReadableFont are structural placeholders and always hold, since no
// document-layout inspection is performed on plain text.
type ATSFactors struct {
	HasStandardSections bool
	HasContactInfo      bool
	StandardFormat      bool
	ReadableFont        bool
}

// EvaluateATSFactors runs the four checks against the resume text.
func EvaluateATSFactors(resumeText string) ATSFactors {
	lower := strings.ToLower(resumeText)
	return ATSFactors{
		HasStandardSections: strings.Contains(lower, "experience") || strings.Contains(lower, "education"),
		HasContactInfo:      strings.Contains(resumeText, "@") || phonePattern.MatchString(resumeText),
		StandardFormat:      true,
		ReadableFont:        true,
	}
}

// count returns how many of the four factors are satisfied.
func (f ATSFactors) count() int {
	n := 0
	for _, ok := range []bool{f.HasStandardSections, f.HasContactInfo, f.StandardFormat, f.ReadableFont} {
		if ok {
			n++
		}
	}
	return n
}

// scoreATS computes the ATS compatibility score and its feedback line.
func scoreATS(resumeText string) (int, string) {
	factors := EvaluateATSFactors(resumeText)
	score := factors.count() * 100 / 4

	var feedback string
	switch {
	case score >= 90:
		feedback = "Perfect! Your resume is highly ATS-friendly."
	case score >= 75:
		feedback = "Good ATS compatibility with minor areas for improvement."
	default:
		feedback = "Consider improving document structure and adding missing standard sections."
	}

	return score, feedback
}
