package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jobsync/jobsync/internal/matcher"
	"github.com/jobsync/jobsync/internal/server/middleware"
	"github.com/jobsync/jobsync/internal/types"
	"go.uber.org/zap"
)

// analyzeRequest is the payload for POST /api/resume/analyze.
type analyzeRequest struct {
	ResumeText string `json:"resume_text"`
	JDText     string `json:"jd_text"`
}

// handleAnalyzeResume scores a resume against a job description, persists
// the result, and appends a progress entry.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}
	if strings.TrimSpace(req.JDText) == "" {
		s.errorResponse(w, http.StatusBadRequest, "jd_text is required")
		return
	}

	result := matcher.Analyze(req.ResumeText, req.JDText)

	stored, err := s.store.SaveResumeAnalysis(r.Context(), userID, result)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// Interview score is filled in by later practice sessions.
	if _, err := s.store.SaveProgressEntry(r.Context(), userID, types.ProgressEntry{
		ResumeScore:  result.OverallScore,
		OverallScore: result.OverallScore,
	}); err != nil {
		s.logger.Warn("failed to record progress entry", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusCreated, stored)
}

// handleLatestAnalysis returns the most recent stored analysis.
func (s *Server) handleLatestAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	latest, err := s.store.GetLatestResumeAnalysis(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if latest == nil {
		s.errorResponse(w, http.StatusNotFound, "no resume analysis found")
		return
	}

	s.jsonResponse(w, http.StatusOK, latest)
}

// handleSaveInterviewResult persists a completed interview result and
// appends a progress entry.
func (s *Server) handleSaveInterviewResult(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var result types.InterviewResult
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !result.Type.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "unknown interview type")
		return
	}

	stored, err := s.store.SaveInterviewResult(r.Context(), userID, result)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if _, err := s.store.SaveProgressEntry(r.Context(), userID, types.ProgressEntry{
		InterviewScore: result.Scores.Overall,
		OverallScore:   result.Scores.Overall,
	}); err != nil {
		s.logger.Warn("failed to record progress entry", zap.Error(err))
	}

	s.jsonResponse(w, http.StatusCreated, stored)
}

// handleListInterviewResults returns all stored interview results in the
// order they were saved.
func (s *Server) handleListInterviewResults(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	results, err := s.store.GetAllInterviewResults(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, results)
}

// handleDashboard returns the aggregate analytics view.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := s.dashboard.Summarize(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}

// handleProgress returns the progress log as chart series.
func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	series, err := s.dashboard.ProgressReport(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, series)
}

// handleSkillGaps returns the latest skill gaps with their roadmap.
func (s *Server) handleSkillGaps(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	gaps, roadmap, err := s.dashboard.SkillGapReport(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skill_gaps": gaps,
		"roadmap":    roadmap,
	})
}
