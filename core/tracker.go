package incall

import (
	"sync"

	"github.com/koscakluka/incall-core/core/audio"
	"github.com/koscakluka/incall-core/core/calls"
	"github.com/koscakluka/incall-core/core/commands"
)

// CallTracker is a ready-made Handler that mirrors the notification stream
// into a call registry and the latest audio state. Presentation layers can
// embed it and render from Calls/AudioState instead of implementing every
// operation themselves.
type CallTracker struct {
	registry *calls.Registry

	mu         sync.Mutex
	adapter    *commands.Adapter
	audioState audio.State
}

func NewCallTracker() *CallTracker {
	return &CallTracker{registry: calls.NewRegistry()}
}

// Adapter returns the session's command adapter, or nil before the session
// is bound.
func (t *CallTracker) Adapter() *commands.Adapter {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.adapter
}

// AudioState returns the most recent audio state snapshot.
func (t *CallTracker) AudioState() audio.State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.audioState
}

// Calls returns a detached snapshot of all tracked calls.
func (t *CallTracker) Calls() []calls.Info {
	return t.registry.Snapshot()
}

// Call returns the tracked state of a single call.
func (t *CallTracker) Call(callID string) (calls.Info, bool) {
	return t.registry.Get(callID)
}

func (t *CallTracker) OnAdapterBound(adapter *commands.Adapter) error {
	t.mu.Lock()
	t.adapter = adapter
	t.mu.Unlock()

	return nil
}

func (t *CallTracker) OnCallAdded(info calls.Info) error {
	return t.registry.Add(info)
}

func (t *CallTracker) OnActive(callID string) error {
	return t.registry.SetActive(callID)
}

func (t *CallTracker) OnDialing(callID string) error {
	return t.registry.SetDialing(callID)
}

func (t *CallTracker) OnRinging(callID string) error {
	return t.registry.SetRinging(callID)
}

func (t *CallTracker) OnPostDial(callID, remaining string) error {
	return t.registry.SetPostDial(callID, remaining)
}

func (t *CallTracker) OnPostDialWait(callID, remaining string) error {
	return t.registry.SetPostDialWait(callID, remaining)
}

func (t *CallTracker) OnDisconnected(callID string, cause calls.DisconnectCause) error {
	return t.registry.SetDisconnected(callID, cause)
}

func (t *CallTracker) OnHeld(callID string) error {
	return t.registry.SetOnHold(callID)
}

func (t *CallTracker) OnAudioStateChanged(state audio.State) error {
	t.mu.Lock()
	t.audioState = state
	t.mu.Unlock()

	return nil
}
