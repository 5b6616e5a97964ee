// Package dashboard derives analytics views from stored analyses, interview
// results, and the progress log: the readiness score, progress series for
// charting, and a prioritized skill development roadmap.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/jobsync/jobsync/internal/store"
	"github.com/jobsync/jobsync/internal/types"
)

// criticalGap is the threshold at which a skill gap counts as critical.
const criticalGap = 40

// ProgressSeries holds the progress log reshaped into parallel vectors for
// chart rendering.
type ProgressSeries struct {
	Dates            []string `json:"dates"`
	ResumeScores     []int    `json:"resume_scores"`
	InterviewScores  []int    `json:"interview_scores"`
	OverallReadiness []int    `json:"overall_readiness"`
}

// Milestone is one step on a skill's development path.
type Milestone struct {
	Week        int    `json:"week"`
	Target      string `json:"target"`
	Description string `json:"description"`
}

// RoadmapItem is one prioritized entry in the skill development roadmap.
type RoadmapItem struct {
	Skill      string      `json:"skill"`
	Gap        int         `json:"gap"`
	Priority   string      `json:"priority"`
	Timeframe  string      `json:"timeframe"`
	Resources  []string    `json:"resources"`
	Milestones []Milestone `json:"milestones"`
	Order      int         `json:"order"`
}

// Summary is the aggregate dashboard payload.
type Summary struct {
	ReadinessScore  int              `json:"readiness_score"`
	HasAnalysisData bool             `json:"has_analysis_data"`
	SkillGaps       []types.SkillGap `json:"skill_gaps"`
	CriticalGaps    int              `json:"critical_gaps"`
	Progress        ProgressSeries   `json:"progress"`
	Roadmap         []RoadmapItem    `json:"roadmap"`
	InterviewCount  int              `json:"interview_count"`
}

// Service computes dashboard views for a user.
type Service struct {
	store store.Store
}

// NewService returns a Service reading from the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Summarize assembles the full dashboard for a user.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	latest, err := s.store.GetLatestResumeAnalysis(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.store.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	interviews, err := s.store.GetAllInterviewResults(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := Summary{
		Progress:       BuildProgressSeries(progress),
		InterviewCount: len(interviews),
	}
	if latest != nil {
		summary.HasAnalysisData = true
		summary.ReadinessScore = latest.Result.OverallScore
		summary.SkillGaps = sortedGaps(latest.Result.SkillGaps)
		summary.CriticalGaps = countCritical(summary.SkillGaps)
		summary.Roadmap = BuildRoadmap(summary.SkillGaps)
	}
	return &summary, nil
}

// SkillGapReport returns the latest skill gaps with their roadmap.
func (s *Service) SkillGapReport(ctx context.Context, userID uuid.UUID) ([]types.SkillGap, []RoadmapItem, error) {
	latest, err := s.store.GetLatestResumeAnalysis(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if latest == nil {
		return nil, nil, nil
	}
	gaps := sortedGaps(latest.Result.SkillGaps)
	return gaps, BuildRoadmap(gaps), nil
}

// ProgressReport returns the user's progress log as chart series.
func (s *Service) ProgressReport(ctx context.Context, userID uuid.UUID) (ProgressSeries, error) {
	progress, err := s.store.GetUserProgress(ctx, userID)
	if err != nil {
		return ProgressSeries{}, err
	}
	return BuildProgressSeries(progress), nil
}

// BuildProgressSeries reshapes progress entries into parallel vectors. The
// vectors are always non-nil so empty logs serialize as [] rather than null.
func BuildProgressSeries(entries []types.ProgressEntry) ProgressSeries {
	series := ProgressSeries{
		Dates:            make([]string, 0, len(entries)),
		ResumeScores:     make([]int, 0, len(entries)),
		InterviewScores:  make([]int, 0, len(entries)),
		OverallReadiness: make([]int, 0, len(entries)),
	}
	for _, e := range entries {
		series.Dates = append(series.Dates, e.Date)
		series.ResumeScores = append(series.ResumeScores, e.ResumeScore)
		series.InterviewScores = append(series.InterviewScores, e.InterviewScore)
		series.OverallReadiness = append(series.OverallReadiness, e.OverallScore)
	}
	return series
}

// BuildRoadmap turns skill gaps into an ordered development plan. Only gaps
// above 20 points earn a roadmap entry; gaps above 40 are high priority with
// a longer timeframe.
func BuildRoadmap(gaps []types.SkillGap) []RoadmapItem {
	var roadmap []RoadmapItem
	for _, gap := range gaps {
		if gap.Gap <= 20 {
			continue
		}
		item := RoadmapItem{
			Skill:      gap.Name,
			Gap:        gap.Gap,
			Priority:   "Medium",
			Timeframe:  "1-2 months",
			Resources:  skillResources(gap.Name),
			Milestones: skillMilestones(gap.Name, gap.Gap),
			Order:      len(roadmap) + 1,
		}
		if gap.Gap > 40 {
			item.Priority = "High"
			item.Timeframe = "2-3 months"
		}
		roadmap = append(roadmap, item)
	}
	return roadmap
}

func sortedGaps(gaps []types.SkillGap) []types.SkillGap {
	out := make([]types.SkillGap, len(gaps))
	copy(out, gaps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Gap > out[j].Gap
	})
	return out
}

func countCritical(gaps []types.SkillGap) int {
	n := 0
	for _, gap := range gaps {
		if gap.Gap >= criticalGap {
			n++
		}
	}
	return n
}

var skillResourceCatalog = map[string][]string{
	"React.js":        {"React Official Docs", "Full Stack Open", "React Projects on GitHub"},
	"Node.js":         {"Node.js Documentation", "Express.js Tutorial", "Backend Projects"},
	"MongoDB":         {"MongoDB University", "Mongoose Documentation", "Database Design Course"},
	"Problem Solving": {"LeetCode", "HackerRank", "Daily Coding Challenges"},
	"Team Leadership": {"Leadership Courses", "Team Management Books", "Leadership Workshops"},
	"Communication":   {"Presentation Skills Course", "Technical Writing", "Public Speaking Practice"},
}

func skillResources(skill string) []string {
	if r, ok := skillResourceCatalog[skill]; ok {
		return r
	}
	return []string{"Online Courses", "Practice Projects", "Industry Resources"}
}

// skillMilestones plans one milestone every two weeks, one step per 20 gap
// points.
func skillMilestones(skill string, gap int) []Milestone {
	steps := int(math.Ceil(float64(gap) / 20))
	milestones := make([]Milestone, 0, steps)
	for i := 1; i <= steps; i++ {
		milestones = append(milestones, Milestone{
			Week:        i * 2,
			Target:      fmt.Sprintf("%s - Level %d", skill, i),
			Description: "Complete foundational concepts and practical exercises",
		})
	}
	return milestones
}
