package interview

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jobsync/jobsync/internal/types"
)

// Response-time bands for the confidence axis.
const (
	minThoughtfulResponse = 10 * time.Second
	maxThoughtfulResponse = 180 * time.Second
)

// exampleIndicators mark answers that ground claims in concrete examples.
var exampleIndicators = []string{"for example", "specifically", "in particular", "such as", "like when"}

// professionalWords earn a small clarity bonus per distinct word present.
var professionalWords = []string{"implemented", "developed", "managed", "achieved", "collaborated", "led"}

// starIndicators map each STAR component to its indicator words.
var starIndicators = map[string][]string{
	"situation": {"situation", "when", "during", "at the time", "context"},
	"task":      {"task", "responsibility", "goal", "objective", "needed to"},
	"action":    {"action", "did", "implemented", "decided", "approached", "steps"},
	"result":    {"result", "outcome", "achieved", "success", "learned", "impact"},
}

var (
	confidenceWords = []string{"confident", "sure", "definitely", "successfully", "effectively"}
	hesitationWords = []string{"um", "uh", "maybe", "i think", "probably", "i guess"}
)

// score grades a finalized session. It is pure given the session's answer
// records: only answered entries with non-empty trimmed text contribute to
// the three axes, while skipped and blank entries still count toward totals.
func score(s Session, totalTime time.Duration, completedAt time.Time) *types.InterviewResult {
	answers := make([]types.Answer, 0, len(s.Answers))
	scored := make([]types.Answer, 0, len(s.Answers))
	for _, a := range s.Answers {
		if a == nil {
			continue
		}
		answers = append(answers, *a)
		if a.Status == types.AnswerAnswered && strings.TrimSpace(a.Text) != "" {
			scored = append(scored, *a)
		}
	}

	clarity := clarityScore(scored)
	structure := structureScore(scored)
	confidence := confidenceScore(scored)
	overall := roundedMean3(clarity, structure, confidence)

	var avgResponse time.Duration
	if len(scored) > 0 {
		var sum time.Duration
		for _, a := range scored {
			sum += a.ResponseTime
		}
		avgResponse = sum / time.Duration(len(scored))
	}

	return &types.InterviewResult{
		Type:                s.Type,
		TotalQuestions:      len(s.Questions),
		AnsweredQuestions:   len(scored),
		SkippedQuestions:    len(s.Questions) - len(scored),
		TotalTime:           totalTime,
		AverageResponseTime: avgResponse,
		Scores: types.InterviewScores{
			Overall:    overall,
			Clarity:    clarity,
			Structure:  structure,
			Confidence: confidence,
		},
		Answers:         answers,
		Recommendations: buildRecommendations(overall, scored),
		CompletedAt:     completedAt,
	}
}

// clarityScore judges length, punctuation, capitalization, exemplification,
// and professional vocabulary, per answer capped at 100, averaged.
func clarityScore(answers []types.Answer) int {
	if len(answers) == 0 {
		return 0
	}

	total := 0
	for _, answer := range answers {
		text := strings.TrimSpace(answer.Text)
		lower := strings.ToLower(text)
		score := 0

		switch wc := answer.WordCount; {
		case wc >= 50 && wc <= 200:
			score += 30
		case wc >= 25 && wc < 50:
			score += 20
		case wc > 200 && wc <= 300:
			score += 25
		default:
			score += 10
		}

		if strings.ContainsAny(text, ".!?") {
			score += 20
		}
		if r, _ := utf8.DecodeRuneInString(text); text != "" && r == unicode.ToUpper(r) {
			score += 10
		}
		if containsAny(lower, exampleIndicators) {
			score += 20
		}

		professional := countContained(lower, professionalWords) * 5
		if professional > 20 {
			professional = 20
		}
		score += professional

		if score > 100 {
			score = 100
		}
		total += score
	}

	return roundedMean(total, len(answers))
}

// structureScore is the STAR-method heuristic: each of the four components
// contributes 25 when any of its indicator words appears.
func structureScore(answers []types.Answer) int {
	if len(answers) == 0 {
		return 0
	}

	total := 0
	for _, answer := range answers {
		lower := strings.ToLower(answer.Text)
		score := 0
		for _, indicators := range starIndicators {
			if containsAny(lower, indicators) {
				score += 25
			}
		}
		total += score
	}

	return roundedMean(total, len(answers))
}

// confidenceScore combines response-time pacing, confidence versus hesitation
// vocabulary, and a thoroughness bonus, clamped to [0,100] per answer.
func confidenceScore(answers []types.Answer) int {
	if len(answers) == 0 {
		return 0
	}

	total := 0
	for _, answer := range answers {
		lower := strings.ToLower(answer.Text)
		score := 0

		switch rt := answer.ResponseTime; {
		case rt >= minThoughtfulResponse && rt <= maxThoughtfulResponse:
			score += 40
		case rt < minThoughtfulResponse:
			score += 20
		default:
			score += 15
		}

		score += countContained(lower, confidenceWords)*10 - countContained(lower, hesitationWords)*5

		if answer.WordCount >= 30 {
			score += 20
		}

		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		total += score
	}

	return roundedMean(total, len(answers))
}

// containsAny reports whether text contains any of the given substrings.
func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// countContained counts how many of the given words appear in text.
func countContained(text string, words []string) int {
	n := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			n++
		}
	}
	return n
}

func roundedMean(total, n int) int {
	return int(math.Round(float64(total) / float64(n)))
}

func roundedMean3(a, b, c int) int {
	return int(math.Round(float64(a+b+c) / 3))
}
