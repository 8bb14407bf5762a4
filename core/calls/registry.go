package calls

import (
	"fmt"
	"sync"

	"github.com/jinzhu/copier"
)

// Registry tracks known calls by ID. Writes normally come from a single
// consumer draining the notification stream, but reads may happen from
// anywhere, so access is synchronized.
type Registry struct {
	mu    sync.Mutex
	calls map[string]*Info
	order []string
}

func NewRegistry() *Registry {
	return &Registry{calls: map[string]*Info{}}
}

// Add registers a new call. Adding an ID that is already tracked is an
// error; the remote call manager never reuses an ID within a session.
func (r *Registry) Add(info Info) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.calls[info.ID]; ok {
		return fmt.Errorf("call %q is already tracked", info.ID)
	}

	if info.State == "" {
		info.State = StateNew
	}

	r.calls[info.ID] = &info
	r.order = append(r.order, info.ID)

	return nil
}

func (r *Registry) SetActive(callID string) error {
	return r.update(callID, func(info *Info) {
		info.State = StateActive
		info.PostDialRemaining = ""
	})
}

func (r *Registry) SetDialing(callID string) error {
	return r.update(callID, func(info *Info) { info.State = StateDialing })
}

func (r *Registry) SetRinging(callID string) error {
	return r.update(callID, func(info *Info) { info.State = StateRinging })
}

func (r *Registry) SetOnHold(callID string) error {
	return r.update(callID, func(info *Info) { info.State = StateOnHold })
}

func (r *Registry) SetPostDial(callID, remaining string) error {
	return r.update(callID, func(info *Info) {
		info.State = StatePostDial
		info.PostDialRemaining = remaining
	})
}

func (r *Registry) SetPostDialWait(callID, remaining string) error {
	return r.update(callID, func(info *Info) {
		info.State = StatePostDialWait
		info.PostDialRemaining = remaining
	})
}

func (r *Registry) SetDisconnected(callID string, cause DisconnectCause) error {
	return r.update(callID, func(info *Info) {
		info.State = StateDisconnected
		info.Cause = cause
	})
}

// Remove drops a call from the registry. Removing an unknown ID is a no-op;
// disconnected calls may be pruned lazily.
func (r *Registry) Remove(callID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.calls[callID]; !ok {
		return
	}

	delete(r.calls, callID)
	for i, id := range r.order {
		if id == callID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Registry) Get(callID string) (Info, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.calls[callID]
	if !ok {
		return Info{}, false
	}

	return *info, true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

// Snapshot returns copies of all tracked calls in the order they were added.
func (r *Registry) Snapshot() []Info {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		var info Info
		copier.Copy(&info, r.calls[id])
		snapshot = append(snapshot, info)
	}

	return snapshot
}

func (r *Registry) update(callID string, apply func(*Info)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.calls[callID]
	if !ok {
		return fmt.Errorf("call %q is not tracked", callID)
	}

	apply(info)

	return nil
}
