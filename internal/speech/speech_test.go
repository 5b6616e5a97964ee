package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t,
		"Microphone access denied. Please allow microphone access.",
		ErrorMessage(ErrNotAllowed))
	assert.Equal(t,
		"No speech detected. Please try again.",
		ErrorMessage(ErrNoSpeech))
	assert.Equal(t,
		"An unknown error occurred with speech recognition.",
		ErrorMessage("something-else"))
}

func TestErrorEvent(t *testing.T) {
	ev := ErrorEvent(ErrNetwork)
	assert.True(t, ev.Failed())
	assert.Equal(t, ErrNetwork, ev.Err)
	assert.Equal(t, "Network error occurred. Please check your internet connection.", ev.Message)
}

func TestUnsupported(t *testing.T) {
	var p Unsupported
	assert.False(t, p.IsSupported())
	assert.False(t, p.IsListening())

	var events []Event
	ok := p.Start(func(ev Event) { events = append(events, ev) })
	assert.False(t, ok)
	require.Len(t, events, 1)
	assert.Equal(t, ErrNotSupported, events[0].Err)

	// Safe with no callback.
	assert.False(t, p.Start(nil))
	p.Stop()
}

func TestScripted_ReplaysUntilFinal(t *testing.T) {
	p := &Scripted{Events: []Event{
		{Transcript: "tell me", Confidence: 0.8},
		{Transcript: "tell me about a time", IsFinal: true, Confidence: 0.95},
		{Transcript: "never delivered"},
	}}

	var events []Event
	ok := p.Start(func(ev Event) { events = append(events, ev) })
	assert.True(t, ok)
	require.Len(t, events, 2)
	assert.False(t, events[0].IsFinal)
	assert.True(t, events[1].IsFinal)
	assert.False(t, p.IsListening())
}

func TestScripted_StopsOnError(t *testing.T) {
	p := &Scripted{Events: []Event{
		ErrorEvent(ErrAudioCapture),
		{Transcript: "never delivered", IsFinal: true},
	}}

	var events []Event
	p.Start(func(ev Event) { events = append(events, ev) })
	require.Len(t, events, 1)
	assert.True(t, events[0].Failed())
	assert.False(t, p.IsListening())
}

func TestScripted_KeepsListeningWithoutFinal(t *testing.T) {
	p := &Scripted{Events: []Event{{Transcript: "partial"}}}
	assert.True(t, p.IsSupported())

	p.Start(nil)
	assert.True(t, p.IsListening())
	p.Stop()
	assert.False(t, p.IsListening())
}
