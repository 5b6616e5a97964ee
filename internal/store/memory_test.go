package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jobsync/jobsync/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerTestUser(t *testing.T, m *Memory) *types.User {
	t.Helper()
	user, err := m.RegisterUser(context.Background(), "Jane Doe", "jane@example.com", "secret123")
	require.NoError(t, err)
	return user
}

func TestMemory_RegisterUser(t *testing.T) {
	m := NewMemory()
	user := registerTestUser(t, m)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestMemory_RegisterUser_DuplicateEmail(t *testing.T) {
	m := NewMemory()
	registerTestUser(t, m)

	_, err := m.RegisterUser(context.Background(), "Other", "  JANE@example.com ", "different")
	require.Error(t, err)
	var dup *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dup)
}

func TestMemory_Authenticate(t *testing.T) {
	m := NewMemory()
	user := registerTestUser(t, m)

	got, err := m.Authenticate(context.Background(), "jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestMemory_Authenticate_WrongPassword(t *testing.T) {
	m := NewMemory()
	registerTestUser(t, m)

	var invalid *ErrInvalidCredentials

	_, err := m.Authenticate(context.Background(), "jane@example.com", "wrong")
	assert.ErrorAs(t, err, &invalid)

	_, err = m.Authenticate(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorAs(t, err, &invalid)
}

func TestMemory_GetUser_NotFound(t *testing.T) {
	m := NewMemory()

	var notFound *ErrUserNotFound
	_, err := m.GetUser(context.Background(), uuid.New())
	assert.ErrorAs(t, err, &notFound)
}

func TestMemory_RequiresAuthenticatedUser(t *testing.T) {
	m := NewMemory()

	var notAuthed *ErrNotAuthenticated
	_, err := m.SaveResumeAnalysis(context.Background(), uuid.Nil, types.AnalysisResult{})
	assert.ErrorAs(t, err, &notAuthed)

	var notFound *ErrUserNotFound
	_, err = m.GetUserProgress(context.Background(), uuid.New())
	assert.ErrorAs(t, err, &notFound)
}

func TestMemory_LatestAnalysisIsLastSaved(t *testing.T) {
	m := NewMemory()
	user := registerTestUser(t, m)
	ctx := context.Background()

	latest, err := m.GetLatestResumeAnalysis(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = m.SaveResumeAnalysis(ctx, user.ID, types.AnalysisResult{OverallScore: 40})
	require.NoError(t, err)
	second, err := m.SaveResumeAnalysis(ctx, user.ID, types.AnalysisResult{OverallScore: 75})
	require.NoError(t, err)

	latest, err = m.GetLatestResumeAnalysis(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second.ID, latest.ID)
	assert.Equal(t, 75, latest.Result.OverallScore)
}

func TestMemory_InterviewResultsInsertionOrder(t *testing.T) {
	m := NewMemory()
	user := registerTestUser(t, m)
	ctx := context.Background()

	for _, overall := range []int{30, 55, 80} {
		_, err := m.SaveInterviewResult(ctx, user.ID, types.InterviewResult{
			Type:   types.InterviewMixed,
			Scores: types.InterviewScores{Overall: overall},
		})
		require.NoError(t, err)
	}

	results, err := m.GetAllInterviewResults(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 30, results[0].Result.Scores.Overall)
	assert.Equal(t, 55, results[1].Result.Scores.Overall)
	assert.Equal(t, 80, results[2].Result.Scores.Overall)
}

func TestMemory_ResultsAreIsolatedPerUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	jane := registerTestUser(t, m)
	other, err := m.RegisterUser(ctx, "Sam", "sam@example.com", "pw")
	require.NoError(t, err)

	_, err = m.SaveInterviewResult(ctx, jane.ID, types.InterviewResult{Type: types.InterviewBehavioral})
	require.NoError(t, err)

	results, err := m.GetAllInterviewResults(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMemory_ProgressEntryDefaults(t *testing.T) {
	fixed := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	m := NewMemory(WithMemoryClock(func() time.Time { return fixed }))
	user := registerTestUser(t, m)
	ctx := context.Background()

	saved, err := m.SaveProgressEntry(ctx, user.ID, types.ProgressEntry{ResumeScore: 70, OverallScore: 70})
	require.NoError(t, err)
	assert.Equal(t, "Mar 5", saved.Date)
	assert.Equal(t, fixed, saved.Timestamp)

	custom, err := m.SaveProgressEntry(ctx, user.ID, types.ProgressEntry{Date: "Feb 1", InterviewScore: 60})
	require.NoError(t, err)
	assert.Equal(t, "Feb 1", custom.Date)

	entries, err := m.GetUserProgress(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 70, entries[0].ResumeScore)
	assert.Equal(t, 60, entries[1].InterviewScore)
}

func TestMemory_ReadsReturnCopies(t *testing.T) {
	m := NewMemory()
	user := registerTestUser(t, m)
	ctx := context.Background()

	_, err := m.SaveProgressEntry(ctx, user.ID, types.ProgressEntry{OverallScore: 50})
	require.NoError(t, err)

	first, err := m.GetUserProgress(ctx, user.ID)
	require.NoError(t, err)
	first[0].OverallScore = 99

	second, err := m.GetUserProgress(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, second[0].OverallScore)
}
