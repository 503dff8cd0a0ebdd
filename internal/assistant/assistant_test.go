package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedRecognizer struct {
	phrases []string
}

func (r *scriptedRecognizer) Listen(ctx context.Context) (string, error) {
	if len(r.phrases) == 0 {
		return "", errors.New("nothing heard")
	}
	p := r.phrases[0]
	r.phrases = r.phrases[1:]
	return p, nil
}

type recordedSpeaker struct {
	lines []string
}

func (s *recordedSpeaker) Say(text string) { s.lines = append(s.lines, text) }

type recordedActions struct {
	calls []string
	fail  error
}

func (a *recordedActions) record(name string) error {
	a.calls = append(a.calls, name)
	return a.fail
}

func (a *recordedActions) BrowseMenu(ctx context.Context) error  { return a.record("menu") }
func (a *recordedActions) NewOrder(ctx context.Context) error    { return a.record("new") }
func (a *recordedActions) ViewOrders(ctx context.Context) error  { return a.record("view") }
func (a *recordedActions) UpdateOrder(ctx context.Context) error { return a.record("update") }
func (a *recordedActions) CancelOrder(ctx context.Context) error { return a.record("cancel") }

func newTestAssistant(rec Recognizer, spk Speaker, actions Actions) *Assistant {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), rec, spk, actions)
}

func TestHandlePhraseDispatch(t *testing.T) {
	cases := []struct {
		phrase string
		want   string
	}{
		{"show me the menu", "menu"},
		{"I want to place an order", "new"},
		{"order", "new"},
		{"view my orders", "view"},
		{"update my last one", "update"},
		{"cancel my order", "cancel"},
	}
	for _, tc := range cases {
		actions := &recordedActions{}
		a := newTestAssistant(nil, &recordedSpeaker{}, actions)
		done, err := a.Handle(context.Background(), tc.phrase)
		require.NoError(t, err, tc.phrase)
		assert.False(t, done, tc.phrase)
		require.Len(t, actions.calls, 1, tc.phrase)
		assert.Equal(t, tc.want, actions.calls[0], tc.phrase)
	}
}

func TestHandleExit(t *testing.T) {
	actions := &recordedActions{}
	spk := &recordedSpeaker{}
	a := newTestAssistant(nil, spk, actions)

	done, err := a.Handle(context.Background(), "exit please")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Empty(t, actions.calls)
	assert.NotEmpty(t, spk.lines)
}

func TestHandleUnknownPhrase(t *testing.T) {
	actions := &recordedActions{}
	spk := &recordedSpeaker{}
	a := newTestAssistant(nil, spk, actions)

	done, err := a.Handle(context.Background(), "sing me a song")
	require.NoError(t, err)
	assert.False(t, done)
	assert.Empty(t, actions.calls)
	assert.Contains(t, spk.lines[len(spk.lines)-1], "didn't understand")
}

func TestRunDispatchesUntilExit(t *testing.T) {
	rec := &scriptedRecognizer{phrases: []string{"menu", "view my orders", "quit"}}
	actions := &recordedActions{}
	a := newTestAssistant(rec, &recordedSpeaker{}, actions)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{"menu", "view"}, actions.calls)
}

func TestRunSurvivesActionFailure(t *testing.T) {
	rec := &scriptedRecognizer{phrases: []string{"order", "exit"}}
	actions := &recordedActions{fail: errors.New("stock gone")}
	spk := &recordedSpeaker{}
	a := newTestAssistant(rec, spk, actions)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, []string{"new"}, actions.calls)
}
