package events

import (
	"testing"

	"github.com/koscakluka/incall-core/core/audio"
	"github.com/koscakluka/incall-core/core/calls"
	"github.com/koscakluka/incall-core/core/commands"
)

func TestConstructorsEmitExpectedKinds(t *testing.T) {
	testCases := []struct {
		name     string
		event    Event
		expected Kind
	}{
		{name: "adapter bound", event: NewAdapterBound(commands.NewAdapter(nil)), expected: KindAdapterBound},
		{name: "call added", event: NewCallAdded(calls.Info{ID: "c1"}), expected: KindCallAdded},
		{name: "call active", event: NewCallActive("c1"), expected: KindCallActive},
		{name: "call dialing", event: NewCallDialing("c1"), expected: KindCallDialing},
		{name: "call ringing", event: NewCallRinging("c1"), expected: KindCallRinging},
		{name: "call post dial", event: NewCallPostDial("c1", "123"), expected: KindCallPostDial},
		{name: "call post dial wait", event: NewCallPostDialWait("c1", "23"), expected: KindCallPostDialWait},
		{name: "call disconnected", event: NewCallDisconnected("c1", calls.CauseRemote), expected: KindCallDisconnected},
		{name: "call held", event: NewCallHeld("c1"), expected: KindCallHeld},
		{name: "audio state changed", event: NewAudioStateChanged(audio.State{Muted: true}), expected: KindAudioStateChanged},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.event.Kind(); got != testCase.expected {
				t.Fatalf("expected kind %q, got %q", testCase.expected, got)
			}
			if testCase.event.Timestamp().IsZero() {
				t.Fatalf("expected constructor to stamp a timestamp")
			}
		})
	}
}

func TestCompoundConstructorsBundleBothFields(t *testing.T) {
	postDial := NewCallPostDial("c1", "123;456")
	if postDial.CallID != "c1" || postDial.Remaining != "123;456" {
		t.Fatalf("expected post dial to carry both fields, got %q/%q", postDial.CallID, postDial.Remaining)
	}

	postDialWait := NewCallPostDialWait("c1", "456")
	if postDialWait.CallID != "c1" || postDialWait.Remaining != "456" {
		t.Fatalf("expected post dial wait to carry both fields, got %q/%q", postDialWait.CallID, postDialWait.Remaining)
	}

	disconnected := NewCallDisconnected("c1", calls.CauseBusy)
	if disconnected.CallID != "c1" || disconnected.Cause != calls.CauseBusy {
		t.Fatalf("expected disconnected to carry both fields, got %q/%q", disconnected.CallID, disconnected.Cause)
	}
}
