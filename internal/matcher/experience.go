package matcher

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// contextWindow is how many characters before a date range are inspected for
// role-related context.
const contextWindow = 80

// maxCountedYears caps the total experience summed from date ranges.
const maxCountedYears = 40

var (
	// Explicit "N years of experience" phrases in a resume.
	experiencePhrasePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)
	// Same phrase family in a JD, tolerating "5+ years".
	requiredPhrasePattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)
	// YYYY-YYYY and YYYY-present/current employment ranges.
	yearRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*(?:-|–|to)\s*(present|current|\d{4})`)
	// Role-related words that qualify a date range as work experience.
	roleContextPattern = regexp.MustCompile(`experience|worked|role|position|intern|contract|consultant|developer|engineer|manager|analyst|designer|lead|specialist`)
	presentPattern     = regexp.MustCompile(`(?i)present|current`)
)

// extractExperienceYears derives years of experience from resume text.
// Explicit phrases win (maximum stated value); otherwise qualifying date
// ranges are summed, where a range qualifies only if the preceding context
// mentions a role-related word.
func extractExperienceYears(resumeText string, currentYear int) int {
	if matches := experiencePhrasePattern.FindAllStringSubmatch(resumeText, -1); len(matches) > 0 {
		best := 0
		for _, m := range matches {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
		return best
	}

	total := 0
	for _, idx := range yearRangePattern.FindAllStringSubmatchIndex(resumeText, -1) {
		start, err := strconv.Atoi(resumeText[idx[2]:idx[3]])
		if err != nil {
			continue
		}

		rawEnd := resumeText[idx[4]:idx[5]]
		end := currentYear
		if !presentPattern.MatchString(rawEnd) {
			end, err = strconv.Atoi(rawEnd)
			if err != nil {
				continue
			}
		}
		if end < start {
			continue
		}

		contextStart := idx[0] - contextWindow
		if contextStart < 0 {
			contextStart = 0
		}
		context := strings.ToLower(resumeText[contextStart:idx[0]])
		if roleContextPattern.MatchString(context) {
			total += end - start + 1
		}
	}

	if total > maxCountedYears {
		total = maxCountedYears
	}
	return total
}

// extractRequiredYears derives the required years of experience from JD text,
// taking the maximum across all explicit phrases. The second return value is
// false when the JD states no requirement.
func extractRequiredYears(jdText string) (int, bool) {
	matches := requiredPhrasePattern.FindAllStringSubmatch(jdText, -1)
	if len(matches) == 0 {
		return 0, false
	}

	best := 0
	for _, m := range matches {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	return best, true
}

// experienceAssessment carries the experience score plus the intermediate
// values the recommendation builder needs.
type experienceAssessment struct {
	score       int
	feedback    string
	years       int
	required    int
	hasRequired bool
	gap         int
}

// scoreExperience applies the scoring policy for candidate years versus the
// JD requirement.
func scoreExperience(years, required int, hasRequired bool) experienceAssessment {
	a := experienceAssessment{years: years, required: required, hasRequired: hasRequired}
	if hasRequired {
		a.gap = required - years
		if a.gap < 0 {
			a.gap = 0
		}
	}

	switch {
	case !hasRequired && years > 0:
		a.score = int(math.Round(float64(years) * 15))
		if a.score > 100 {
			a.score = 100
		}
		a.feedback = fmt.Sprintf("The job description does not specify years of experience. You mention %d years; consider clarifying relevant projects and responsibilities.", years)

	case !hasRequired:
		a.score = 35
		a.feedback = "The job description does not specify experience, but your resume should clearly call out relevant internships, projects, or years in similar roles."

	case years >= required:
		a.score = 100
		a.feedback = fmt.Sprintf("Great! You indicate %d years of experience which meets the %d year requirement.", years, required)

	case a.gap <= 2:
		a.score = int(math.Round(ratio(years, required) * 100))
		if a.score < 50 {
			a.score = 50
		}
		a.feedback = fmt.Sprintf("You list %d years of experience. The role asks for %d years. Highlight directly relevant work to bridge this gap.", years, required)

	default:
		a.score = int(math.Round(ratio(years, required) * 100 * 0.75))
		a.feedback = fmt.Sprintf("You mention %d years of experience, while the role requests %d. Emphasize transferable achievements and consider adding additional experience.", years, required)
	}

	if a.score < 0 {
		a.score = 0
	}
	if a.score > 100 {
		a.score = 100
	}
	return a
}

// ratio guards against a zero requirement.
func ratio(years, required int) float64 {
	if required == 0 {
		return 0
	}
	return float64(years) / float64(required)
}
