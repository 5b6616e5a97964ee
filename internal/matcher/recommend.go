package matcher

import (
	"fmt"
	"strings"

	"github.com/jobsync/jobsync/internal/types"
)

// maxMissingListed caps the missing keywords named in a recommendation.
const maxMissingListed = 5

// maxGapRecommendations caps the per-skill "consider adding" tips.
const maxGapRecommendations = 3

// buildRecommendations assembles the recommendation list in its fixed order.
// Each tip triggers independently; no dedup pass runs, so overlapping tips may
// repeat a theme.
func buildRecommendations(result types.AnalysisResult, jdKeywords, matched []string, exp experienceAssessment) []string {
	recommendations := []string{}

	if result.ATSScore < 80 {
		recommendations = append(recommendations, "Ensure your resume has clear sections: Contact, Summary, Experience, Education, Skills")
	}

	if result.KeywordScore < 70 {
		missing := missingKeywords(jdKeywords, matched)
		if len(missing) > 0 {
			if len(missing) > maxMissingListed {
				missing = missing[:maxMissingListed]
			}
			recommendations = append(recommendations,
				fmt.Sprintf("Include these missing keywords: %s", strings.Join(missing, ", ")))
		}
		recommendations = append(recommendations, "Add relevant technical skills and certifications mentioned in the JD")
	}

	if result.ExperienceScore < 75 {
		recommendations = append(recommendations,
			"Quantify your achievements with specific metrics and numbers",
			"Highlight projects that demonstrate relevant skills")
	}

	if exp.hasRequired && exp.gap > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Highlight %d additional year(s) of relevant experience or showcase adjacent work to meet the requirement.", exp.gap))
	}

	if !exp.hasRequired && exp.years == 0 {
		recommendations = append(recommendations,
			"Explicitly mention internship durations, project timelines, or freelance engagements to give reviewers confidence in your experience level.")
	}

	if result.OverallScore < 70 {
		recommendations = append(recommendations, "Tailor your professional summary to match the role requirements")
	}

	added := 0
	for _, gap := range result.SkillGaps {
		if gap.Gap <= 0 || added >= maxGapRecommendations {
			continue
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Consider adding %s to your skillset (mentioned in job description)", gap.Name))
		added++
	}

	return recommendations
}
