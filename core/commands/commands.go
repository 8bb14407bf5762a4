// Package commands is the outward command surface of the bridge: the set of
// call commands an in-call app can send back to the remote call manager.
package commands

import (
	"errors"

	"github.com/koscakluka/incall-core/core/audio"
)

// ErrNotBound is returned when commands are issued through an adapter that
// has no underlying channel, e.g. after the remote session went away.
var ErrNotBound = errors.New("adapter is not bound to a command channel")

// Channel carries commands back to the remote call manager. Implementations
// wrap whatever transport the session was established over; the core treats
// the channel as opaque and forwards commands verbatim.
type Channel interface {
	AnswerCall(callID string) error
	RejectCall(callID string) error
	DisconnectCall(callID string) error
	HoldCall(callID string) error
	UnholdCall(callID string) error
	SetMuted(muted bool) error
	SetAudioRoute(route audio.Route) error
	PlayDtmfTone(callID string, digit rune) error
	StopDtmfTone(callID string) error
	PostDialContinue(callID string, proceed bool) error
}

// Adapter is the handle delivered to the observer once per session. It owns
// no transport state itself; it only guards the channel it wraps.
type Adapter struct {
	channel Channel
}

func NewAdapter(channel Channel) *Adapter {
	return &Adapter{channel: channel}
}

func (a *Adapter) AnswerCall(callID string) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.AnswerCall(callID)
}

func (a *Adapter) RejectCall(callID string) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.RejectCall(callID)
}

func (a *Adapter) DisconnectCall(callID string) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.DisconnectCall(callID)
}

func (a *Adapter) HoldCall(callID string) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.HoldCall(callID)
}

func (a *Adapter) UnholdCall(callID string) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.UnholdCall(callID)
}

func (a *Adapter) SetMuted(muted bool) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.SetMuted(muted)
}

func (a *Adapter) SetAudioRoute(route audio.Route) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.SetAudioRoute(route)
}

func (a *Adapter) PlayDtmfTone(callID string, digit rune) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.PlayDtmfTone(callID, digit)
}

func (a *Adapter) StopDtmfTone(callID string) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.StopDtmfTone(callID)
}

func (a *Adapter) PostDialContinue(callID string, proceed bool) error {
	if a == nil || a.channel == nil {
		return ErrNotBound
	}

	return a.channel.PostDialContinue(callID, proceed)
}
