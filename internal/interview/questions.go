// Package interview provides the mock-interview session state machine and the
// heuristic answer scorer that grades completed sessions.
package interview

import (
	"math/rand"

	"github.com/jobsync/jobsync/internal/types"
)

// Mixed-mode draw counts per question pool.
const (
	mixedBehavioralCount  = 2
	mixedTechnicalCount   = 2
	mixedSituationalCount = 1
)

// Bank holds the question pools for each interview type.
type Bank struct {
	Behavioral  []string
	Technical   []string
	Situational []string
}

// DefaultBank returns the built-in question pools.
func DefaultBank() Bank {
	return Bank{
		Behavioral: []string{
			"Tell me about a time when you had to work under pressure. How did you handle it?",
			"Describe a situation where you had to work with a difficult team member. What did you do?",
			"Give me an example of a goal you reached and tell me how you achieved it.",
			"Tell me about a time you failed. How did you deal with the situation?",
			"Describe a time when you had to learn something quickly. How did you approach it?",
		},
		Technical: []string{
			"Explain the difference between var, let, and const in JavaScript.",
			"How would you optimize a slow-running database query?",
			"Describe the concept of object-oriented programming and its main principles.",
			"What is the difference between synchronous and asynchronous programming?",
			"How would you approach debugging a complex software issue?",
		},
		Situational: []string{
			"You're assigned a project with a tight deadline but unclear requirements. How do you proceed?",
			"Your manager asks you to work on a project that conflicts with your values. What do you do?",
			"You notice a security vulnerability in your company's system. How do you handle it?",
			"A client is unhappy with the delivered product. How would you address this situation?",
			"You're leading a project and a team member consistently misses deadlines. What's your approach?",
		},
	}
}

// Draw returns the question list for the given interview type. Single-type
// sessions use the full pool in original order; mixed sessions sample from
// each pool and shuffle the combined list with the provided random source.
func (b Bank) Draw(t types.InterviewType, rng *rand.Rand) []string {
	switch t {
	case types.InterviewBehavioral:
		return append([]string(nil), b.Behavioral...)
	case types.InterviewTechnical:
		return append([]string(nil), b.Technical...)
	case types.InterviewSituational:
		return append([]string(nil), b.Situational...)
	case types.InterviewMixed:
		combined := make([]string, 0, mixedBehavioralCount+mixedTechnicalCount+mixedSituationalCount)
		combined = append(combined, b.Behavioral[:mixedBehavioralCount]...)
		combined = append(combined, b.Technical[:mixedTechnicalCount]...)
		combined = append(combined, b.Situational[:mixedSituationalCount]...)
		shuffle(combined, rng)
		return combined
	}
	return nil
}

// shuffle applies an in-place Fisher-Yates shuffle for a uniform permutation.
func shuffle(questions []string, rng *rand.Rand) {
	for i := len(questions) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}
