// Package types provides type definitions for structured data used throughout the JobSync system.
package types

import "time"

// AnalysisResult is the outcome of comparing a resume against a job
// description. It is immutable once produced and persisted verbatim.
type AnalysisResult struct {
	OverallScore    int `json:"overall_score"`
	ATSScore        int `json:"ats_score"`
	KeywordScore    int `json:"keyword_score"`
	ExperienceScore int `json:"experience_score"`

	ATSFeedback        string `json:"ats_feedback"`
	KeywordFeedback    string `json:"keyword_feedback"`
	ExperienceFeedback string `json:"experience_feedback"`

	Recommendations []string   `json:"recommendations"`
	SkillGaps       []SkillGap `json:"skill_gaps"`
}

// SkillGap describes one keyword found in the job description and whether the
// resume evidences it. Current is 80 when the keyword was matched in the
// resume and 0 otherwise; Required is always 80, so Gap is 0 or 80.
type SkillGap struct {
	Name     string `json:"name"`
	Current  int    `json:"current"`
	Required int    `json:"required"`
	Gap      int    `json:"gap"`
}

// ProgressEntry is one row of the append-only progress log, appended after
// each completed analysis or interview.
type ProgressEntry struct {
	Date           string    `json:"date"`
	ResumeScore    int       `json:"resume_score"`
	InterviewScore int       `json:"interview_score"`
	OverallScore   int       `json:"overall_score"`
	Timestamp      time.Time `json:"timestamp"`
}

// InterpretOverallScore maps a resume overall score to the display
// interpretation shown next to the score gauge.
func InterpretOverallScore(score int) string {
	switch {
	case score >= 85:
		return "Excellent match! Your resume strongly aligns with this role."
	case score >= 70:
		return "Good match with room for optimization."
	case score >= 55:
		return "Moderate match. Consider targeted improvements."
	default:
		return "Significant gaps identified. Review recommendations below."
	}
}
