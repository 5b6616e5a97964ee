package interview

import (
	"time"

	"github.com/jobsync/jobsync/internal/types"
)

// maxRecommendations is a hard cap applied after generation; the list keeps
// its fixed order and is simply truncated.
const maxRecommendations = 4

// buildRecommendations assembles interview recommendations in their fixed,
// cumulative order.
func buildRecommendations(overall int, answers []types.Answer) []string {
	recommendations := []string{}

	if overall < 60 {
		recommendations = append(recommendations,
			"Practice the STAR method (Situation, Task, Action, Result) for structured responses",
			"Prepare specific examples from your experience before the interview")
	}

	if overall < 75 {
		recommendations = append(recommendations,
			"Work on providing more detailed explanations with concrete examples",
			"Practice speaking clearly and at an appropriate pace")
	}

	if len(answers) > 0 {
		totalWords := 0
		var totalResponse time.Duration
		for _, a := range answers {
			totalWords += a.WordCount
			totalResponse += a.ResponseTime
		}
		avgWords := float64(totalWords) / float64(len(answers))
		avgResponse := totalResponse / time.Duration(len(answers))

		if avgWords < 50 {
			recommendations = append(recommendations,
				"Provide more detailed responses - aim for 50-150 words per answer")
		} else if avgWords > 200 {
			recommendations = append(recommendations,
				"Practice being more concise - aim to answer questions in 50-150 words")
		}

		if avgResponse < minThoughtfulResponse {
			recommendations = append(recommendations,
				"Take a moment to think before responding to show thoughtfulness")
		} else if avgResponse > maxThoughtfulResponse {
			recommendations = append(recommendations,
				"Practice your responses to reduce thinking time during interviews")
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Excellent performance! Continue practicing to maintain your skills",
			"Consider preparing for more advanced or role-specific questions")
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
