// Package incall serializes call-lifecycle notifications from a remote call
// manager into a single ordered stream consumed by one handler.
//
// Any number of producer goroutines may submit notifications concurrently;
// submission never blocks and never waits for handling. A single dispatch
// loop drains the shared queue strictly in submission order and invokes one
// handler operation per notification, never overlapping two invocations.
package incall

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/koscakluka/incall-core/core/audio"
	"github.com/koscakluka/incall-core/core/calls"
	"github.com/koscakluka/incall-core/core/commands"
	"github.com/koscakluka/incall-core/core/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrAlreadyRunning is returned by Run when the dispatch loop was already
// started on this service.
var ErrAlreadyRunning = errors.New("dispatch loop is already running")

// Service owns the notification queue and its single dispatch loop.
type Service struct {
	handler Handler

	queue *notificationQueue

	closeCh chan struct{}
	drainCh chan struct{}
	done    chan struct{}

	stopOnce  sync.Once
	drainOnce sync.Once

	started atomic.Bool
}

func NewService(handler Handler) *Service {
	return &Service{
		handler: handler,
		queue:   newNotificationQueue(),
		closeCh: make(chan struct{}),
		drainCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run drains the queue until the service is stopped, drained, the context
// is cancelled, or a handler operation fails. A handler failure stops the
// loop and is returned to the caller; a defect in the presentation layer is
// worse silently absorbed than surfaced, so nothing is swallowed here.
//
// Contract: call Run at most once per service instance, from the goroutine
// that should own handler state.
func (s *Service) Run(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if s.handler == nil {
		return errors.New("no handler attached")
	}
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	defer close(s.done)

	for {
		select {
		case <-s.closeCh:
			s.queue.Clear()
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if env, ok := s.queue.take(); ok {
			if err := s.dispatch(ctx, env); err != nil {
				return err
			}
			continue
		}

		select {
		case <-s.closeCh:
			s.queue.Clear()
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-s.drainCh:
			if s.queue.depth() == 0 {
				return nil
			}
		case <-s.queue.wake:
		}
	}
}

// Stop ends the loop promptly: the notification currently being handled
// finishes, everything still queued is discarded, and no new notifications
// are accepted. Idempotent.
func (s *Service) Stop() {
	if s == nil {
		return
	}

	s.stopOnce.Do(func() {
		s.queue.Stop()
		close(s.closeCh)
	})
}

// Drain stops accepting new notifications, lets the loop deliver everything
// already queued, and returns once the loop has exited. Idempotent.
func (s *Service) Drain() {
	if s == nil {
		return
	}

	s.drainOnce.Do(func() {
		s.queue.Stop()
		close(s.drainCh)
	})

	s.AwaitDone()
}

// AwaitDone blocks until the dispatch loop has exited. It returns
// immediately if the loop was never started.
func (s *Service) AwaitDone() {
	if s == nil {
		return
	}

	if s.started.Load() {
		<-s.done
	}
}

// Notify submits any notification event to the queue. It returns before the
// event is handled and reports whether the event was accepted; events are
// only refused once the service is stopping. The typed methods below are
// the preferred producer surface.
func (s *Service) Notify(event events.Event) bool {
	if s == nil {
		return false
	}

	return s.queue.Ingest(event)
}

// SetInCallAdapter hands the outward command adapter to the handler. The
// remote session delivers it exactly once, before any call notification.
func (s *Service) SetInCallAdapter(adapter *commands.Adapter) bool {
	return s.Notify(events.NewAdapterBound(adapter))
}

// AddCall announces a new call.
func (s *Service) AddCall(info calls.Info) bool {
	return s.Notify(events.NewCallAdded(info))
}

// SetActive marks the call as connected.
func (s *Service) SetActive(callID string) bool {
	return s.Notify(events.NewCallActive(callID))
}

// SetDialing marks an outgoing call as dialing.
func (s *Service) SetDialing(callID string) bool {
	return s.Notify(events.NewCallDialing(callID))
}

// SetRinging marks an incoming call as ringing.
func (s *Service) SetRinging(callID string) bool {
	return s.Notify(events.NewCallRinging(callID))
}

// SetPostDial reports post-dial DTMF signaling with the remaining digits.
func (s *Service) SetPostDial(callID, remaining string) bool {
	return s.Notify(events.NewCallPostDial(callID, remaining))
}

// SetPostDialWait reports a post-dial pause awaiting user confirmation.
func (s *Service) SetPostDialWait(callID, remaining string) bool {
	return s.Notify(events.NewCallPostDialWait(callID, remaining))
}

// SetDisconnected marks the end of a call together with its cause.
func (s *Service) SetDisconnected(callID string, cause calls.DisconnectCause) bool {
	return s.Notify(events.NewCallDisconnected(callID, cause))
}

// SetOnHold marks the call as put on hold.
func (s *Service) SetOnHold(callID string) bool {
	return s.Notify(events.NewCallHeld(callID))
}

// OnAudioStateChanged reports a new audio state snapshot.
func (s *Service) OnAudioStateChanged(state audio.State) bool {
	return s.Notify(events.NewAudioStateChanged(state))
}

func (s *Service) dispatch(ctx context.Context, env envelope) error {
	ctx, span := tracer.Start(ctx, "dispatch notification")
	defer span.End()

	span.SetAttributes(
		attribute.String("notification.kind", string(env.event.Kind())),
		attribute.Int64("notification.seq", int64(env.seq)),
		attribute.Float64("notification.queued_time", time.Since(env.queuedAt).Seconds()),
	)

	var err error
	switch event := env.event.(type) {
	case events.AdapterBound:
		err = s.handler.OnAdapterBound(event.Adapter)
	case events.CallAdded:
		err = s.handler.OnCallAdded(event.Info)
	case events.CallActive:
		err = s.handler.OnActive(event.CallID)
	case events.CallDialing:
		err = s.handler.OnDialing(event.CallID)
	case events.CallRinging:
		err = s.handler.OnRinging(event.CallID)
	case events.CallPostDial:
		err = s.handler.OnPostDial(event.CallID, event.Remaining)
	case events.CallPostDialWait:
		err = s.handler.OnPostDialWait(event.CallID, event.Remaining)
	case events.CallDisconnected:
		err = s.handler.OnDisconnected(event.CallID, event.Cause)
	case events.CallHeld:
		err = s.handler.OnHeld(event.CallID)
	case events.AudioStateChanged:
		err = s.handler.OnAudioStateChanged(event.State)
	default:
		// A newer remote process may send kinds this version does not know.
		// Those must not stop the stream.
		logger.DebugContext(ctx, "skipping notification of unknown kind",
			"kind", string(env.event.Kind()))
		return nil
	}

	if err != nil {
		err = fmt.Errorf("handler failed on %s notification: %w", env.event.Kind(), err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
