package interview

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jobsync/jobsync/internal/types"
)

// State is the lifecycle phase of a practice session.
type State int

// Session states.
const (
	StateNotStarted State = iota
	StateInProgress
	StateCompleted
)

// String returns the state name for logs and errors.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is the mutable state of one practice run. At most one session
// exists at a time; transitions produce a new Session value plus render
// effects for the presentation sink.
type Session struct {
	State                State
	Type                 types.InterviewType
	Questions            []string
	CurrentQuestionIndex int
	// Answers has one slot per question; a slot stays nil until the user
	// visits that question.
	Answers           []*types.Answer
	StartTime         time.Time
	QuestionStartTime time.Time
}

// EffectKind identifies a render instruction for the presentation sink.
type EffectKind int

// Effect kinds.
const (
	// EffectShowQuestion instructs the sink to display a question with its
	// progress position.
	EffectShowQuestion EffectKind = iota
	// EffectRestoreAnswer instructs the sink to restore saved answer text
	// into the input after navigating backwards.
	EffectRestoreAnswer
	// EffectShowResults instructs the sink to display the final scored
	// result.
	EffectShowResults
)

// Effect is one render instruction emitted by a transition.
type Effect struct {
	Kind     EffectKind
	Question string
	Index    int
	Total    int
	Text     string
	Result   *types.InterviewResult
}

// ErrUnknownType reports an interview type outside the known set.
type ErrUnknownType struct {
	Type types.InterviewType
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown interview type: %q", e.Type)
}

// Machine drives session transitions. The clock and random source are
// injectable so tests are deterministic.
type Machine struct {
	bank Bank
	now  func() time.Time
	rng  *rand.Rand
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithClock overrides the machine's clock.
func WithClock(now func() time.Time) MachineOption {
	return func(m *Machine) {
		m.now = now
	}
}

// WithRand overrides the random source used for mixed-mode shuffling.
func WithRand(rng *rand.Rand) MachineOption {
	return func(m *Machine) {
		m.rng = rng
	}
}

// WithBank overrides the question bank.
func WithBank(bank Bank) MachineOption {
	return func(m *Machine) {
		m.bank = bank
	}
}

// NewMachine creates a Machine with the default bank, wall clock, and a
// time-seeded random source.
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		bank: DefaultBank(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(m.now().UnixNano()))
	}
	return m
}

// Start begins a new session of the given type.
func (m *Machine) Start(t types.InterviewType) (Session, []Effect, error) {
	if !t.Valid() {
		return Session{}, nil, &ErrUnknownType{Type: t}
	}

	questions := m.bank.Draw(t, m.rng)
	now := m.now()
	s := Session{
		State:             StateInProgress,
		Type:              t,
		Questions:         questions,
		Answers:           make([]*types.Answer, len(questions)),
		StartTime:         now,
		QuestionStartTime: now,
	}

	return s, []Effect{showQuestion(s)}, nil
}

// RecordAnswer captures the current input into the slot for the current
// question. Repeated calls before advancing overwrite the same slot.
func (m *Machine) RecordAnswer(s Session, text string, status types.AnswerStatus) Session {
	if s.State != StateInProgress {
		return s
	}

	now := m.now()
	idx := s.CurrentQuestionIndex
	answers := append([]*types.Answer(nil), s.Answers...)
	answers[idx] = &types.Answer{
		QuestionIndex: idx,
		Question:      s.Questions[idx],
		Text:          text,
		Status:        status,
		ResponseTime:  now.Sub(s.QuestionStartTime),
		WordCount:     countWords(text),
		Timestamp:     now,
	}
	s.Answers = answers
	return s
}

// Advance records the current answer as answered, then moves to the next
// question or completes the session when already on the last one. Calling it
// on a completed session is a no-op.
func (m *Machine) Advance(s Session, text string) (Session, []Effect) {
	if s.State != StateInProgress {
		return s, nil
	}
	s = m.RecordAnswer(s, text, types.AnswerAnswered)
	return m.proceed(s)
}

// Skip records the current answer as skipped, then moves on like Advance.
func (m *Machine) Skip(s Session, text string) (Session, []Effect) {
	if s.State != StateInProgress {
		return s, nil
	}
	s = m.RecordAnswer(s, text, types.AnswerSkipped)
	return m.proceed(s)
}

// Retreat records the current answer and steps back one question when
// possible, restoring any previously saved answer text.
func (m *Machine) Retreat(s Session, text string) (Session, []Effect) {
	if s.State != StateInProgress {
		return s, nil
	}
	s = m.RecordAnswer(s, text, types.AnswerAnswered)
	if s.CurrentQuestionIndex == 0 {
		return s, nil
	}

	s.CurrentQuestionIndex--
	s.QuestionStartTime = m.now()

	effects := []Effect{showQuestion(s)}
	if prev := s.Answers[s.CurrentQuestionIndex]; prev != nil {
		effects = append(effects, Effect{Kind: EffectRestoreAnswer, Text: prev.Text})
	}
	return s, effects
}

// Complete ends the session early, finalizing the current answer and scoring
// whatever has been recorded so far.
func (m *Machine) Complete(s Session, text string) (Session, []Effect) {
	if s.State != StateInProgress {
		return s, nil
	}
	s = m.RecordAnswer(s, text, types.AnswerAnswered)
	return m.finish(s)
}

// Reset discards the session from any state without persisting anything.
func (m *Machine) Reset(Session) Session {
	return Session{State: StateNotStarted}
}

// proceed moves to the next question, or finishes when the current question
// is the last. It never re-records the current slot.
func (m *Machine) proceed(s Session) (Session, []Effect) {
	if s.CurrentQuestionIndex < len(s.Questions)-1 {
		s.CurrentQuestionIndex++
		s.QuestionStartTime = m.now()
		return s, []Effect{showQuestion(s)}
	}
	return m.finish(s)
}

// finish scores the session and transitions to Completed. Scoring runs
// synchronously, so the result is available before the transition is
// observable.
func (m *Machine) finish(s Session) (Session, []Effect) {
	now := m.now()
	result := score(s, now.Sub(s.StartTime), now)
	s.State = StateCompleted
	return s, []Effect{{Kind: EffectShowResults, Result: result}}
}

func showQuestion(s Session) Effect {
	return Effect{
		Kind:     EffectShowQuestion,
		Question: s.Questions[s.CurrentQuestionIndex],
		Index:    s.CurrentQuestionIndex,
		Total:    len(s.Questions),
	}
}

// countWords returns the whitespace-split token count, 0 for blank input.
func countWords(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return len(strings.Fields(text))
}
