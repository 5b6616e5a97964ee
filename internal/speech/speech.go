// Package speech defines the speech-to-text capability the interview flow
// consumes. The real recognizer lives in the host environment; the core only
// sees this interface and degrades to text-only input when it is unavailable.
package speech

// Event is one recognition callback payload. Either transcript fields or the
// error fields are populated, never both; errors are delivered as values so
// callers can fall back rather than unwind.
type Event struct {
	Transcript string  `json:"transcript,omitempty"`
	IsFinal    bool    `json:"is_final,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`

	Err     string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Failed reports whether the event carries an error.
func (e Event) Failed() bool {
	return e.Err != ""
}

// Callback receives recognition events for the duration of one listen.
type Callback func(Event)

// Provider is the speech-to-text capability contract. Start and Stop are
// idempotent; Start returns false when listening could not begin, after
// delivering an error event to the callback.
type Provider interface {
	IsSupported() bool
	IsListening() bool
	Start(cb Callback) bool
	Stop()
}

// Recognition error codes.
const (
	ErrNotSupported = "not-supported"
	ErrNotAllowed   = "not-allowed"
	ErrNetwork      = "network"
	ErrNoSpeech     = "no-speech"
	ErrAudioCapture = "audio-capture"
	ErrAborted      = "aborted"
	ErrStartFailed  = "start-failed"
)

// errorMessages maps recognition error codes to user-facing guidance.
var errorMessages = map[string]string{
	ErrNetwork:               "Network error occurred. Please check your internet connection.",
	ErrNotAllowed:            "Microphone access denied. Please allow microphone access.",
	"service-not-allowed":    "Speech recognition service not allowed.",
	"bad-grammar":            "Speech recognition grammar error.",
	"language-not-supported": "Language not supported.",
	ErrNoSpeech:              "No speech detected. Please try again.",
	ErrAudioCapture:          "Audio capture failed. Please check your microphone.",
	ErrAborted:               "Speech recognition aborted.",
	ErrNotSupported:          "Speech recognition is not supported in this environment.",
	ErrStartFailed:           "Failed to start voice recognition. Please try again.",
}

// ErrorMessage returns the user-facing message for a recognition error code.
func ErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An unknown error occurred with speech recognition."
}

// ErrorEvent builds an error event for the given code.
func ErrorEvent(code string) Event {
	return Event{Err: code, Message: ErrorMessage(code)}
}

// Unsupported is a Provider for environments without speech recognition.
// Start always fails with a not-supported event.
type Unsupported struct{}

// IsSupported always returns false.
func (Unsupported) IsSupported() bool { return false }

// IsListening always returns false.
func (Unsupported) IsListening() bool { return false }

// Start delivers a not-supported error event and returns false.
func (Unsupported) Start(cb Callback) bool {
	if cb != nil {
		cb(ErrorEvent(ErrNotSupported))
	}
	return false
}

// Stop is a no-op.
func (Unsupported) Stop() {}

// Scripted is a Provider that replays a fixed event sequence on Start. It
// exists for tests and for exercising the interview flow offline.
type Scripted struct {
	Events    []Event
	listening bool
}

// IsSupported always returns true.
func (s *Scripted) IsSupported() bool { return true }

// IsListening reports whether a replay is in progress.
func (s *Scripted) IsListening() bool { return s.listening }

// Start replays the scripted events through the callback. The provider stops
// listening after a final transcript or an error, mirroring the host
// recognizer's auto-stop.
func (s *Scripted) Start(cb Callback) bool {
	if s.listening {
		s.Stop()
	}
	s.listening = true
	for _, ev := range s.Events {
		if cb != nil {
			cb(ev)
		}
		if ev.Failed() || ev.IsFinal {
			s.listening = false
			break
		}
	}
	return true
}

// Stop halts listening. Safe to call repeatedly.
func (s *Scripted) Stop() {
	s.listening = false
}
