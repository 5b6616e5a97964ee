package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobsync/jobsync/internal/dashboard"
	"github.com/jobsync/jobsync/internal/store"
	"github.com/jobsync/jobsync/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestServer starts an in-memory server on an httptest listener.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	s, err := New(Config{}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)

	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, path, token string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, ts *httptest.Server, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func registerSession(t *testing.T, ts *httptest.Server, email string) string {
	t.Helper()
	resp := postJSON(t, ts, "/api/auth/register", "", map[string]string{
		"name":     "Jane Doe",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	session := decodeBody[types.LoginResponse](t, resp)
	require.NotEmpty(t, session.Token)
	return session.Token
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t)

	resp := getJSON(t, ts, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_RegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)
	registerSession(t, ts, "jane@example.com")

	// Duplicate registration conflicts.
	resp := postJSON(t, ts, "/api/auth/register", "", map[string]string{
		"name":     "Jane Again",
		"email":    "jane@example.com",
		"password": "secret123",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = postJSON(t, ts, "/api/auth/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	session := decodeBody[types.LoginResponse](t, resp)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "jane@example.com", session.User.Email)

	resp = postJSON(t, ts, "/api/auth/login", "", map[string]string{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_RegisterValidation(t *testing.T) {
	ts := newTestServer(t)

	resp := postJSON(t, ts, "/api/auth/register", "", map[string]string{
		"name":     "Jane",
		"email":    "not-an-email",
		"password": "secret123",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, ts, "/api/auth/register", "", map[string]string{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "short",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Profile(t *testing.T) {
	ts := newTestServer(t)
	token := registerSession(t, ts, "jane@example.com")

	resp := getJSON(t, ts, "/api/auth/profile", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody[types.User](t, resp)
	assert.Equal(t, "Jane Doe", user.Name)

	resp = getJSON(t, ts, "/api/auth/profile", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_Logout(t *testing.T) {
	ts := newTestServer(t)
	token := registerSession(t, ts, "jane@example.com")

	resp := postJSON(t, ts, "/api/auth/logout", token, struct{}{})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "logged out", body["message"])

	resp = postJSON(t, ts, "/api/auth/logout", "", struct{}{})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/api/resume/latest",
		"/api/interview/results",
		"/api/analytics/dashboard",
		"/api/analytics/progress",
		"/api/analytics/skill-gaps",
	} {
		resp := getJSON(t, ts, path, "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "path %s", path)
	}

	resp := getJSON(t, ts, "/api/resume/latest", "not-a-token")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_AnalyzeResume(t *testing.T) {
	ts := newTestServer(t)
	token := registerSession(t, ts, "jane@example.com")

	resp := getJSON(t, ts, "/api/resume/latest", token)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = postJSON(t, ts, "/api/resume/analyze", token, map[string]string{
		"resume_text": "I have experience with javascript and react",
		"jd_text":     "Looking for javascript, react, and docker skills.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	stored := decodeBody[store.StoredAnalysis](t, resp)
	assert.Equal(t, 59, stored.Result.OverallScore)

	resp = getJSON(t, ts, "/api/resume/latest", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	latest := decodeBody[store.StoredAnalysis](t, resp)
	assert.Equal(t, stored.ID, latest.ID)
}

func TestServer_AnalyzeResume_RejectsBlankInput(t *testing.T) {
	ts := newTestServer(t)
	token := registerSession(t, ts, "jane@example.com")

	resp := postJSON(t, ts, "/api/resume/analyze", token, map[string]string{
		"resume_text": "   ",
		"jd_text":     "some job",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, ts, "/api/resume/analyze", token, map[string]string{
		"resume_text": "some resume",
		"jd_text":     "",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_InterviewResults(t *testing.T) {
	ts := newTestServer(t)
	token := registerSession(t, ts, "jane@example.com")

	result := types.InterviewResult{
		Type:              types.InterviewMixed,
		TotalQuestions:    5,
		AnsweredQuestions: 4,
		SkippedQuestions:  1,
		Scores:            types.InterviewScores{Overall: 70, Clarity: 65, Structure: 75, Confidence: 70},
	}
	resp := postJSON(t, ts, "/api/interview/results", token, result)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/interview/results", token, map[string]string{"type": "panel"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, ts, "/api/interview/results", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	results := decodeBody[[]store.StoredInterview](t, resp)
	require.Len(t, results, 1)
	assert.Equal(t, 70, results[0].Result.Scores.Overall)
}

func TestServer_Analytics(t *testing.T) {
	ts := newTestServer(t)
	token := registerSession(t, ts, "jane@example.com")

	resp := postJSON(t, ts, "/api/resume/analyze", token, map[string]string{
		"resume_text": "I have experience with javascript and react",
		"jd_text":     "Looking for javascript, react, and docker skills.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts, "/api/interview/results", token, types.InterviewResult{
		Type:   types.InterviewBehavioral,
		Scores: types.InterviewScores{Overall: 70},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = getJSON(t, ts, "/api/analytics/dashboard", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decodeBody[dashboard.Summary](t, resp)
	assert.True(t, summary.HasAnalysisData)
	assert.Equal(t, 59, summary.ReadinessScore)
	assert.Equal(t, 1, summary.InterviewCount)

	// Analysis and interview each appended a progress entry.
	resp = getJSON(t, ts, "/api/analytics/progress", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	series := decodeBody[dashboard.ProgressSeries](t, resp)
	assert.Equal(t, []int{59, 70}, series.OverallReadiness)
	assert.Equal(t, []int{59, 0}, series.ResumeScores)
	assert.Equal(t, []int{0, 70}, series.InterviewScores)

	resp = getJSON(t, ts, "/api/analytics/skill-gaps", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	report := decodeBody[map[string]json.RawMessage](t, resp)
	assert.Contains(t, report, "skill_gaps")
	assert.Contains(t, report, "roadmap")
}

func TestServer_CORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/auth/login", nil)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestServer_RateLimitHeaders(t *testing.T) {
	ts := newTestServer(t)

	resp := getJSON(t, ts, "/health", "")
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, resp.Header.Get("X-RateLimit-Remaining"))
}

func TestServer_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := New(Config{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT config")
}
