package events

import "github.com/koscakluka/incall-core/core/audio"

// KindAudioStateChanged identifies a change of the in-call audio state.
const KindAudioStateChanged Kind = "audio.state_changed"

// AudioStateChanged carries the audio state snapshot taken when the change
// happened.
type AudioStateChanged struct {
	Base
	State audio.State
}

// NewAudioStateChanged creates an audio state changed event.
func NewAudioStateChanged(state audio.State) AudioStateChanged {
	return AudioStateChanged{Base: NewBase(KindAudioStateChanged), State: state}
}
