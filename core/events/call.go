package events

import "github.com/koscakluka/incall-core/core/calls"

const (
	// KindCallAdded identifies creation of a new call.
	KindCallAdded Kind = "call.added"
	// KindCallActive identifies transition to the connected state.
	KindCallActive Kind = "call.active"
	// KindCallDialing identifies transition of an outgoing call to dialing.
	KindCallDialing Kind = "call.dialing"
	// KindCallRinging identifies transition of an incoming call to ringing.
	KindCallRinging Kind = "call.ringing"
	// KindCallPostDial identifies ongoing post-dial DTMF signaling.
	KindCallPostDial Kind = "call.post_dial"
	// KindCallPostDialWait identifies a post-dial pause awaiting confirmation.
	KindCallPostDialWait Kind = "call.post_dial_wait"
	// KindCallDisconnected identifies the end of a call.
	KindCallDisconnected Kind = "call.disconnected"
	// KindCallHeld identifies transition to the on-hold state.
	KindCallHeld Kind = "call.held"
)

// CallAdded carries the descriptor of a newly created call.
type CallAdded struct {
	Base
	Info calls.Info
}

// NewCallAdded creates a call added event.
func NewCallAdded(info calls.Info) CallAdded {
	return CallAdded{Base: NewBase(KindCallAdded), Info: info}
}

// CallActive marks a call as connected to the other party.
type CallActive struct {
	Base
	CallID string
}

// NewCallActive creates a call active event.
func NewCallActive(callID string) CallActive {
	return CallActive{Base: NewBase(KindCallActive), CallID: callID}
}

// CallDialing marks an outgoing call as dialing.
type CallDialing struct {
	Base
	CallID string
}

// NewCallDialing creates a call dialing event.
func NewCallDialing(callID string) CallDialing {
	return CallDialing{Base: NewBase(KindCallDialing), CallID: callID}
}

// CallRinging marks an incoming call as ringing.
type CallRinging struct {
	Base
	CallID string
}

// NewCallRinging creates a call ringing event.
func NewCallRinging(callID string) CallRinging {
	return CallRinging{Base: NewBase(KindCallRinging), CallID: callID}
}

// CallPostDial carries the remaining post-dial digits being sent for a call.
// The ID and the digits travel as one unit.
type CallPostDial struct {
	Base
	CallID    string
	Remaining string
}

// NewCallPostDial creates a post dial event.
func NewCallPostDial(callID, remaining string) CallPostDial {
	return CallPostDial{Base: NewBase(KindCallPostDial), CallID: callID, Remaining: remaining}
}

// CallPostDialWait marks a post-dial sequence waiting for user confirmation,
// carrying the digits still to be sent. The ID and the digits travel as one
// unit.
type CallPostDialWait struct {
	Base
	CallID    string
	Remaining string
}

// NewCallPostDialWait creates a post dial wait event.
func NewCallPostDialWait(callID, remaining string) CallPostDialWait {
	return CallPostDialWait{Base: NewBase(KindCallPostDialWait), CallID: callID, Remaining: remaining}
}

// CallDisconnected marks the end of a call together with its cause.
type CallDisconnected struct {
	Base
	CallID string
	Cause  calls.DisconnectCause
}

// NewCallDisconnected creates a call disconnected event.
func NewCallDisconnected(callID string, cause calls.DisconnectCause) CallDisconnected {
	return CallDisconnected{Base: NewBase(KindCallDisconnected), CallID: callID, Cause: cause}
}

// CallHeld marks a call as put on hold.
type CallHeld struct {
	Base
	CallID string
}

// NewCallHeld creates a call held event.
func NewCallHeld(callID string) CallHeld {
	return CallHeld{Base: NewBase(KindCallHeld), CallID: callID}
}
