package types

import (
	"fmt"
	"time"
)

// InterviewType selects the question pool for a practice session.
type InterviewType string

// Known interview types.
const (
	InterviewBehavioral  InterviewType = "behavioral"
	InterviewTechnical   InterviewType = "technical"
	InterviewSituational InterviewType = "situational"
	InterviewMixed       InterviewType = "mixed"
)

// Valid reports whether t is one of the known interview types.
func (t InterviewType) Valid() bool {
	switch t {
	case InterviewBehavioral, InterviewTechnical, InterviewSituational, InterviewMixed:
		return true
	}
	return false
}

// Title returns the display title for the interview type.
func (t InterviewType) Title() string {
	switch t {
	case InterviewBehavioral:
		return "Behavioral Interview"
	case InterviewTechnical:
		return "Technical Interview"
	case InterviewSituational:
		return "Situational Interview"
	case InterviewMixed:
		return "Complete Interview Practice"
	default:
		return string(t)
	}
}

// AnswerStatus records how a question slot was resolved.
type AnswerStatus string

// Answer statuses.
const (
	AnswerAnswered AnswerStatus = "answered"
	AnswerSkipped  AnswerStatus = "skipped"
)

// Answer is one question-visit record. It is written once per visit and
// overwritten if the user revisits the question and edits.
type Answer struct {
	QuestionIndex int           `json:"question_index"`
	Question      string        `json:"question"`
	Text          string        `json:"text"`
	Status        AnswerStatus  `json:"status"`
	ResponseTime  time.Duration `json:"response_time"`
	WordCount     int           `json:"word_count"`
	Timestamp     time.Time     `json:"timestamp"`
}

// InterviewScores holds the three judged axes and their rounded mean.
type InterviewScores struct {
	Overall    int `json:"overall"`
	Clarity    int `json:"clarity"`
	Structure  int `json:"structure"`
	Confidence int `json:"confidence"`
}

// InterviewResult is derived once from a finalized session and is immutable
// after creation.
type InterviewResult struct {
	Type                InterviewType   `json:"type"`
	TotalQuestions      int             `json:"total_questions"`
	AnsweredQuestions   int             `json:"answered_questions"`
	SkippedQuestions    int             `json:"skipped_questions"`
	TotalTime           time.Duration   `json:"total_time"`
	AverageResponseTime time.Duration   `json:"average_response_time"`
	Scores              InterviewScores `json:"scores"`
	Answers             []Answer        `json:"answers"`
	Recommendations     []string        `json:"recommendations"`
	CompletedAt         time.Time       `json:"completed_at"`
}

// Grade returns the display band for the overall interview score.
func (r *InterviewResult) Grade() string {
	switch {
	case r.Scores.Overall >= 85:
		return "Excellent Performance"
	case r.Scores.Overall >= 75:
		return "Good Performance"
	case r.Scores.Overall >= 60:
		return "Satisfactory Performance"
	default:
		return "Needs Improvement"
	}
}

// FormatDuration renders a duration as m:ss for result displays.
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
