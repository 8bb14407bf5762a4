package telecomm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	incall "github.com/koscakluka/incall-core/core"
	"github.com/koscakluka/incall-core/core/audio"
	"github.com/koscakluka/incall-core/core/commands"
)

// session is one live connection to a remote call manager. It feeds inbound
// frames into the service and doubles as the session's command channel, so
// commands travel back on the same connection they were bound through.
type session struct {
	conn    *websocket.Conn
	service *incall.Service

	writeMu sync.Mutex

	closeOnce sync.Once
	done      chan struct{}
}

var _ commands.Channel = (*session)(nil)

func newSession(conn *websocket.Conn, service *incall.Service) *session {
	return &session{
		conn:    conn,
		service: service,
		done:    make(chan struct{}),
	}
}

// bind delivers the command adapter for this session, before any
// notification frame is read.
func (s *session) bind() {
	s.service.SetInCallAdapter(commands.NewAdapter(s))
}

// readLoop decodes inbound frames until the connection goes away. Malformed
// frames are dropped before anything reaches the queue; a partially decoded
// notification is never submitted.
func (s *session) readLoop(ctx context.Context) {
	defer close(s.done)

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WarnContext(ctx, "call manager connection closed unexpectedly", "error", err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(payload, &env); err != nil {
			logger.WarnContext(ctx, "dropping malformed notification frame", "error", err)
			continue
		}

		if err := applyNotification(s.service, env); err != nil {
			logger.WarnContext(ctx, "dropping undecodable notification", "op", env.Op, "error", err)
		}
	}
}

// AwaitDone blocks until the read loop has exited.
func (s *session) AwaitDone() {
	if s == nil {
		return
	}

	<-s.done
}

func (s *session) close() error {
	var err error
	s.closeOnce.Do(func() {
		s.writeMu.Lock()
		_ = s.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		s.writeMu.Unlock()

		err = s.conn.Close()
	})

	return err
}

func (s *session) send(op string, args any) error {
	payload, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to encode %s args: %w", op, err)
	}

	env := Envelope{ID: uuid.NewString(), Op: op, Args: payload}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.conn.WriteJSON(env); err != nil {
		return fmt.Errorf("failed to send %s command: %w", op, err)
	}

	return nil
}

func (s *session) AnswerCall(callID string) error {
	return s.send(opAnswerCall, callArgs{CallID: callID})
}

func (s *session) RejectCall(callID string) error {
	return s.send(opRejectCall, callArgs{CallID: callID})
}

func (s *session) DisconnectCall(callID string) error {
	return s.send(opDisconnectCall, callArgs{CallID: callID})
}

func (s *session) HoldCall(callID string) error {
	return s.send(opHoldCall, callArgs{CallID: callID})
}

func (s *session) UnholdCall(callID string) error {
	return s.send(opUnholdCall, callArgs{CallID: callID})
}

func (s *session) SetMuted(muted bool) error {
	return s.send(opSetMuted, muteArgs{Muted: muted})
}

func (s *session) SetAudioRoute(route audio.Route) error {
	return s.send(opSetAudioRoute, routeArgs{Route: uint8(route)})
}

func (s *session) PlayDtmfTone(callID string, digit rune) error {
	return s.send(opPlayDtmfTone, dtmfArgs{CallID: callID, Digit: string(digit)})
}

func (s *session) StopDtmfTone(callID string) error {
	return s.send(opStopDtmfTone, dtmfArgs{CallID: callID})
}

func (s *session) PostDialContinue(callID string, proceed bool) error {
	return s.send(opPostDialContinue, postDialContinueArgs{CallID: callID, Proceed: proceed})
}
