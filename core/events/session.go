package events

import "github.com/koscakluka/incall-core/core/commands"

// KindAdapterBound identifies the one-time adapter hand-off for a session.
const KindAdapterBound Kind = "session.adapter_bound"

// AdapterBound carries the outward command adapter for the session. It is
// delivered once, before any call event of that session.
type AdapterBound struct {
	Base
	Adapter *commands.Adapter
}

// NewAdapterBound creates an adapter bound event.
func NewAdapterBound(adapter *commands.Adapter) AdapterBound {
	return AdapterBound{Base: NewBase(KindAdapterBound), Adapter: adapter}
}
