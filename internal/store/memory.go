package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jobsync/jobsync/internal/types"
)

// Memory is an in-process Store. It is safe for concurrent use and keeps
// every record for the lifetime of the process, mirroring the original
// client-side persistence model.
type Memory struct {
	mu       sync.Mutex
	now      func() time.Time
	users    map[uuid.UUID]*memoryUser
	byEmail  map[string]uuid.UUID
	analyses map[uuid.UUID][]StoredAnalysis
	results  map[uuid.UUID][]StoredInterview
	progress map[uuid.UUID][]types.ProgressEntry
}

type memoryUser struct {
	user     types.User
	password string
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithMemoryClock overrides the clock used to stamp records. Tests use this
// for deterministic timestamps.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory returns an empty in-memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		now:      time.Now,
		users:    make(map[uuid.UUID]*memoryUser),
		byEmail:  make(map[string]uuid.UUID),
		analyses: make(map[uuid.UUID][]StoredAnalysis),
		results:  make(map[uuid.UUID][]StoredInterview),
		progress: make(map[uuid.UUID][]types.ProgressEntry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) RegisterUser(ctx context.Context, name, email, password string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(email))
	if _, exists := m.byEmail[key]; exists {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	user := types.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: m.now(),
	}
	m.users[user.ID] = &memoryUser{user: user, password: password}
	m.byEmail[key] = user.ID
	return &user, nil
}

func (m *Memory) Authenticate(ctx context.Context, email, password string) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, &ErrInvalidCredentials{}
	}
	rec := m.users[id]
	if rec.password != password {
		return nil, &ErrInvalidCredentials{}
	}
	user := rec.user
	return &user, nil
}

func (m *Memory) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.users[id]
	if !ok {
		return nil, &ErrUserNotFound{ID: id.String()}
	}
	user := rec.user
	return &user, nil
}

func (m *Memory) SaveResumeAnalysis(ctx context.Context, userID uuid.UUID, result types.AnalysisResult) (*StoredAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireUser(userID); err != nil {
		return nil, err
	}
	stored := StoredAnalysis{
		ID:        uuid.New(),
		UserID:    userID,
		Result:    result,
		Timestamp: m.now(),
	}
	m.analyses[userID] = append(m.analyses[userID], stored)
	return &stored, nil
}

func (m *Memory) GetLatestResumeAnalysis(ctx context.Context, userID uuid.UUID) (*StoredAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireUser(userID); err != nil {
		return nil, err
	}
	list := m.analyses[userID]
	if len(list) == 0 {
		return nil, nil
	}
	latest := list[len(list)-1]
	return &latest, nil
}

func (m *Memory) SaveInterviewResult(ctx context.Context, userID uuid.UUID, result types.InterviewResult) (*StoredInterview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireUser(userID); err != nil {
		return nil, err
	}
	stored := StoredInterview{
		ID:        uuid.New(),
		UserID:    userID,
		Result:    result,
		Timestamp: m.now(),
	}
	m.results[userID] = append(m.results[userID], stored)
	return &stored, nil
}

func (m *Memory) GetAllInterviewResults(ctx context.Context, userID uuid.UUID) ([]StoredInterview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireUser(userID); err != nil {
		return nil, err
	}
	out := make([]StoredInterview, len(m.results[userID]))
	copy(out, m.results[userID])
	return out, nil
}

func (m *Memory) SaveProgressEntry(ctx context.Context, userID uuid.UUID, entry types.ProgressEntry) (*types.ProgressEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireUser(userID); err != nil {
		return nil, err
	}
	filled := fillProgressDefaults(entry, m.now())
	m.progress[userID] = append(m.progress[userID], filled)
	return &filled, nil
}

func (m *Memory) GetUserProgress(ctx context.Context, userID uuid.UUID) ([]types.ProgressEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.requireUser(userID); err != nil {
		return nil, err
	}
	out := make([]types.ProgressEntry, len(m.progress[userID]))
	copy(out, m.progress[userID])
	return out, nil
}

// requireUser rejects calls with no user or an unknown one. Callers hold mu.
func (m *Memory) requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return &ErrNotAuthenticated{}
	}
	if _, ok := m.users[userID]; !ok {
		return &ErrUserNotFound{ID: userID.String()}
	}
	return nil
}
