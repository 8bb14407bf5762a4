package commands

import (
	"errors"
	"testing"

	"github.com/koscakluka/incall-core/core/audio"
)

type recordingChannel struct {
	calls []string
}

func (c *recordingChannel) AnswerCall(callID string) error {
	c.calls = append(c.calls, "answer:"+callID)
	return nil
}

func (c *recordingChannel) RejectCall(callID string) error {
	c.calls = append(c.calls, "reject:"+callID)
	return nil
}

func (c *recordingChannel) DisconnectCall(callID string) error {
	c.calls = append(c.calls, "disconnect:"+callID)
	return nil
}

func (c *recordingChannel) HoldCall(callID string) error {
	c.calls = append(c.calls, "hold:"+callID)
	return nil
}

func (c *recordingChannel) UnholdCall(callID string) error {
	c.calls = append(c.calls, "unhold:"+callID)
	return nil
}

func (c *recordingChannel) SetMuted(muted bool) error {
	if muted {
		c.calls = append(c.calls, "mute:on")
	} else {
		c.calls = append(c.calls, "mute:off")
	}
	return nil
}

func (c *recordingChannel) SetAudioRoute(route audio.Route) error {
	c.calls = append(c.calls, "route:"+route.String())
	return nil
}

func (c *recordingChannel) PlayDtmfTone(callID string, digit rune) error {
	c.calls = append(c.calls, "dtmf:"+callID+":"+string(digit))
	return nil
}

func (c *recordingChannel) StopDtmfTone(callID string) error {
	c.calls = append(c.calls, "dtmf_stop:"+callID)
	return nil
}

func (c *recordingChannel) PostDialContinue(callID string, proceed bool) error {
	if proceed {
		c.calls = append(c.calls, "post_dial_continue:"+callID)
	} else {
		c.calls = append(c.calls, "post_dial_abort:"+callID)
	}
	return nil
}

func TestAdapterForwardsCommandsToChannel(t *testing.T) {
	channel := &recordingChannel{}
	adapter := NewAdapter(channel)

	if err := adapter.AnswerCall("c1"); err != nil {
		t.Fatalf("expected answer to succeed, got %v", err)
	}
	if err := adapter.SetMuted(true); err != nil {
		t.Fatalf("expected mute to succeed, got %v", err)
	}
	if err := adapter.SetAudioRoute(audio.RouteSpeaker); err != nil {
		t.Fatalf("expected route change to succeed, got %v", err)
	}
	if err := adapter.PostDialContinue("c1", true); err != nil {
		t.Fatalf("expected post dial continue to succeed, got %v", err)
	}

	expected := []string{"answer:c1", "mute:on", "route:speaker", "post_dial_continue:c1"}
	if len(channel.calls) != len(expected) {
		t.Fatalf("expected %d forwarded commands, got %d: %v", len(expected), len(channel.calls), channel.calls)
	}
	for i, call := range expected {
		if channel.calls[i] != call {
			t.Fatalf("expected command %d to be %q, got %q", i, call, channel.calls[i])
		}
	}
}

func TestUnboundAdapterRejectsCommands(t *testing.T) {
	for name, adapter := range map[string]*Adapter{
		"nil adapter": nil,
		"nil channel": NewAdapter(nil),
	} {
		if err := adapter.AnswerCall("c1"); !errors.Is(err, ErrNotBound) {
			t.Fatalf("expected %s to return ErrNotBound, got %v", name, err)
		}
		if err := adapter.DisconnectCall("c1"); !errors.Is(err, ErrNotBound) {
			t.Fatalf("expected %s to return ErrNotBound, got %v", name, err)
		}
	}
}
