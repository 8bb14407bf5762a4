// Package telecomm connects the in-call core to a remote call manager over
// a websocket, decoding inbound notification frames into the service's
// producer surface and carrying call commands back on the same connection.
package telecomm

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	incall "github.com/koscakluka/incall-core/core"
	"github.com/koscakluka/incall-core/core/audio"
	"github.com/koscakluka/incall-core/core/calls"
)

// Inbound notification ops, one per producer operation of the service.
const (
	opAddCall           = "add_call"
	opSetActive         = "set_active"
	opSetDialing        = "set_dialing"
	opSetRinging        = "set_ringing"
	opSetPostDial       = "set_post_dial"
	opSetPostDialWait   = "set_post_dial_wait"
	opSetDisconnected   = "set_disconnected"
	opSetOnHold         = "set_on_hold"
	opAudioStateChanged = "audio_state_changed"
)

// Outward command ops, one per command channel operation.
const (
	opAnswerCall       = "answer_call"
	opRejectCall       = "reject_call"
	opDisconnectCall   = "disconnect_call"
	opHoldCall         = "hold_call"
	opUnholdCall       = "unhold_call"
	opSetMuted         = "set_muted"
	opSetAudioRoute    = "set_audio_route"
	opPlayDtmfTone     = "play_dtmf_tone"
	opStopDtmfTone     = "stop_dtmf_tone"
	opPostDialContinue = "post_dial_continue"
)

// Envelope is the wire frame exchanged with the remote call manager in both
// directions. Args is decoded per op; frames with an unknown op are ignored
// so newer call managers stay compatible with older bridges.
type Envelope struct {
	ID   string          `json:"id"`
	Op   string          `json:"op"`
	Args json.RawMessage `json:"args,omitempty"`
}

type callInfoArgs struct {
	CallID            string `json:"call_id"`
	Handle            string `json:"handle,omitempty"`
	CallerDisplayName string `json:"caller_display_name,omitempty"`
}

type callArgs struct {
	CallID string `json:"call_id"`
}

type postDialArgs struct {
	CallID    string `json:"call_id"`
	Remaining string `json:"remaining"`
}

type disconnectArgs struct {
	CallID string `json:"call_id"`
	Cause  int    `json:"cause"`
}

type audioStateArgs struct {
	Muted           bool  `json:"muted"`
	Route           uint8 `json:"route"`
	SupportedRoutes uint8 `json:"supported_routes"`
}

type muteArgs struct {
	Muted bool `json:"muted"`
}

type routeArgs struct {
	Route uint8 `json:"route"`
}

type dtmfArgs struct {
	CallID string `json:"call_id"`
	Digit  string `json:"digit,omitempty"`
}

type postDialContinueArgs struct {
	CallID  string `json:"call_id"`
	Proceed bool   `json:"proceed"`
}

// NotificationSchema returns the JSON schema of the wire envelope, for
// contract checks against call manager implementations.
func NotificationSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Envelope{})
}

// applyNotification decodes an inbound frame and submits it through the
// service's producer surface. Unknown ops are skipped without error; args
// that do not decode are rejected before anything reaches the queue.
func applyNotification(service *incall.Service, env Envelope) error {
	switch env.Op {
	case opAddCall:
		var args callInfoArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.AddCall(calls.Info{
			ID:                args.CallID,
			Handle:            args.Handle,
			CallerDisplayName: args.CallerDisplayName,
		})
	case opSetActive:
		var args callArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.SetActive(args.CallID)
	case opSetDialing:
		var args callArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.SetDialing(args.CallID)
	case opSetRinging:
		var args callArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.SetRinging(args.CallID)
	case opSetPostDial:
		var args postDialArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.SetPostDial(args.CallID, args.Remaining)
	case opSetPostDialWait:
		var args postDialArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.SetPostDialWait(args.CallID, args.Remaining)
	case opSetDisconnected:
		var args disconnectArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.SetDisconnected(args.CallID, calls.DisconnectCause(args.Cause))
	case opSetOnHold:
		var args callArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.SetOnHold(args.CallID)
	case opAudioStateChanged:
		var args audioStateArgs
		if err := json.Unmarshal(env.Args, &args); err != nil {
			return fmt.Errorf("failed to decode %s args: %w", env.Op, err)
		}
		service.OnAudioStateChanged(audio.State{
			Muted:           args.Muted,
			Route:           audio.Route(args.Route),
			SupportedRoutes: audio.Route(args.SupportedRoutes),
		})
	default:
		logger.Debug("skipping notification frame of unknown op", "op", env.Op)
	}

	return nil
}
