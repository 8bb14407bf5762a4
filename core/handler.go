package incall

import (
	"github.com/koscakluka/incall-core/core/audio"
	"github.com/koscakluka/incall-core/core/calls"
	"github.com/koscakluka/incall-core/core/commands"
)

// Handler consumes the serialized notification stream. The dispatch loop
// invokes exactly one operation per notification, in submission order, and
// does not move on until the operation returns, so implementations may keep
// per-call state without locking.
//
// Relative order is only meaningful per call ID for call operations;
// operations for different calls interleave in whatever order their
// notifications were submitted.
type Handler interface {
	// OnAdapterBound hands over the outward command adapter, once per
	// session and before any other operation of that session. The handler
	// owns the adapter from this point on.
	OnAdapterBound(adapter *commands.Adapter) error

	// OnCallAdded announces a new call that should be presented to the user.
	OnCallAdded(info calls.Info) error

	// OnActive marks the call as connected to the other party.
	OnActive(callID string) error

	// OnDialing marks an outgoing call as dialing.
	OnDialing(callID string) error

	// OnRinging marks an incoming call as ringing.
	OnRinging(callID string) error

	// OnPostDial reports post-dial DTMF signaling in progress together with
	// the digits still to be sent.
	OnPostDial(callID, remaining string) error

	// OnPostDialWait reports a post-dial sequence paused for user
	// confirmation; the handler resumes it via Adapter.PostDialContinue.
	OnPostDialWait(callID, remaining string) error

	// OnDisconnected marks the end of a call together with its cause.
	OnDisconnected(callID string, cause calls.DisconnectCause) error

	// OnHeld marks the call as put on hold.
	OnHeld(callID string) error

	// OnAudioStateChanged replaces the handler's view of the audio state.
	OnAudioStateChanged(state audio.State) error
}
