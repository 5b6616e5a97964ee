// Package store provides persistence for user accounts, resume analyses,
// interview results, and the progress log. Two implementations exist: an
// in-memory store mirroring the original browser-local persistence, and a
// PostgreSQL store for server deployments. Both preserve insertion order;
// "latest" always means the most recently saved record.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobsync/jobsync/internal/types"
)

// StoredAnalysis is a persisted resume analysis with its record identity.
type StoredAnalysis struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	Result    types.AnalysisResult `json:"result"`
	Timestamp time.Time            `json:"timestamp"`
}

// StoredInterview is a persisted interview result with its record identity.
type StoredInterview struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	Result    types.InterviewResult `json:"result"`
	Timestamp time.Time             `json:"timestamp"`
}

// Store is the persistence collaborator the core depends on. Handles are
// passed explicitly; nothing reaches into ambient global state.
type Store interface {
	// RegisterUser creates an account. Credentials are stored as given; this
	// is a toy stand-in, deliberately not hardened.
	RegisterUser(ctx context.Context, name, email, password string) (*types.User, error)
	// Authenticate verifies credentials and returns the matching user.
	Authenticate(ctx context.Context, email, password string) (*types.User, error)
	// GetUser looks a user up by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*types.User, error)

	// SaveResumeAnalysis appends an analysis for the user and returns the
	// stored record with its assigned ID.
	SaveResumeAnalysis(ctx context.Context, userID uuid.UUID, result types.AnalysisResult) (*StoredAnalysis, error)
	// GetLatestResumeAnalysis returns the most recently saved analysis, or
	// nil when the user has none.
	GetLatestResumeAnalysis(ctx context.Context, userID uuid.UUID) (*StoredAnalysis, error)

	// SaveInterviewResult appends an interview result for the user.
	SaveInterviewResult(ctx context.Context, userID uuid.UUID, result types.InterviewResult) (*StoredInterview, error)
	// GetAllInterviewResults returns the user's interview results in
	// insertion order.
	GetAllInterviewResults(ctx context.Context, userID uuid.UUID) ([]StoredInterview, error)

	// SaveProgressEntry appends a row to the user's progress log, filling in
	// the date and timestamp when absent, and returns the stored entry.
	SaveProgressEntry(ctx context.Context, userID uuid.UUID, entry types.ProgressEntry) (*types.ProgressEntry, error)
	// GetUserProgress returns the progress log in insertion order.
	GetUserProgress(ctx context.Context, userID uuid.UUID) ([]types.ProgressEntry, error)
}

// progressDateFormat renders dates for the progress chart axis.
const progressDateFormat = "Jan 2"

// fillProgressDefaults applies the date/timestamp defaults for a progress
// entry being saved.
func fillProgressDefaults(entry types.ProgressEntry, now time.Time) types.ProgressEntry {
	if entry.Date == "" {
		entry.Date = now.Format(progressDateFormat)
	}
	entry.Timestamp = now
	return entry
}
