// Package events defines the typed call-lifecycle notification contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - session.*
//   - call.*
//   - audio.*
//
// Semantics used across the package:
//
//   - Every event is immutable once constructed; compound payloads (a call
//     ID plus a paired field) are bundled at construction and can never be
//     observed separately.
//   - Call IDs are opaque tokens assigned by the remote call manager and
//     forwarded verbatim.
//
// session events
//
//   - AdapterBound (session.adapter_bound): the outward command adapter for
//     this session, delivered exactly once before any call event.
//
// call events
//
//   - CallAdded (call.added): a new call exists; carries its descriptor.
//   - CallActive (call.active): the call is connected to the other party.
//   - CallDialing (call.dialing): an outgoing call is dialing.
//   - CallRinging (call.ringing): an incoming call awaits an answer.
//   - CallPostDial (call.post_dial): DTMF tones from the dialed post-dial
//     string are being sent; carries the remaining digits.
//   - CallPostDialWait (call.post_dial_wait): the post-dial sequence paused
//     for user confirmation; carries the remaining digits.
//   - CallDisconnected (call.disconnected): the call ended; carries the
//     disconnect cause.
//   - CallHeld (call.held): the call was put on hold.
//
// audio events
//
//   - AudioStateChanged (audio.state_changed): point-in-time snapshot of the
//     audio routing and mute configuration; each snapshot replaces the
//     previous one.
package events
