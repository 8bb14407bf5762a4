// Package calls holds the call descriptor and the per-call lifecycle state
// used by consumers of the notification stream.
package calls

// State is the lifecycle state of a single call.
type State string

const (
	StateNew          State = "new"
	StateRinging      State = "ringing"
	StateDialing      State = "dialing"
	StateActive       State = "active"
	StateOnHold       State = "on_hold"
	StatePostDial     State = "post_dial"
	StatePostDialWait State = "post_dial_wait"
	StateDisconnected State = "disconnected"
)

// DisconnectCause describes why a call ended. Causes arrive from the remote
// call manager as integers and are forwarded verbatim.
type DisconnectCause int

const (
	CauseUnknown DisconnectCause = iota
	CauseError
	CauseLocal
	CauseRemote
	CauseBusy
	CauseRejected
	CauseMissed
	CauseCanceled
	CauseRestricted
)

func (c DisconnectCause) String() string {
	switch c {
	case CauseUnknown:
		return "unknown"
	case CauseError:
		return "error"
	case CauseLocal:
		return "local"
	case CauseRemote:
		return "remote"
	case CauseBusy:
		return "busy"
	case CauseRejected:
		return "rejected"
	case CauseMissed:
		return "missed"
	case CauseCanceled:
		return "canceled"
	case CauseRestricted:
		return "restricted"
	}

	return "unknown"
}

// Info describes a single call instance. The ID is an opaque token assigned
// by the remote call manager; no format is assumed.
type Info struct {
	ID                string
	Handle            string
	CallerDisplayName string
	State             State
	Cause             DisconnectCause
	PostDialRemaining string
}
