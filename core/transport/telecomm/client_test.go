package telecomm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	incall "github.com/koscakluka/incall-core/core"
	"github.com/koscakluka/incall-core/core/calls"
)

func waitFor(t *testing.T, what string, condition func() bool) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("timed out waiting for %s", what)
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestListenerSessionRoundTrip(t *testing.T) {
	tracker := incall.NewCallTracker()
	service := incall.NewService(tracker)
	runErr := make(chan error, 1)
	go func() { runErr <- service.Run(context.Background()) }()

	server := httptest.NewServer(NewListener(service).Handler())
	defer server.Close()

	// The test plays the remote call manager.
	manager, _, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	if err != nil {
		t.Fatalf("expected call manager dial to succeed, got %v", err)
	}
	defer manager.Close()

	waitFor(t, "adapter hand-off", func() bool { return tracker.Adapter() != nil })

	frames := []Envelope{
		{Op: opAddCall, Args: mustArgs(t, callInfoArgs{CallID: "c1", Handle: "tel:555-0100"})},
		{Op: opSetRinging, Args: mustArgs(t, callArgs{CallID: "c1"})},
	}
	for _, env := range frames {
		if err := manager.WriteJSON(env); err != nil {
			t.Fatalf("expected %s frame to send, got %v", env.Op, err)
		}
	}

	waitFor(t, "ringing call", func() bool {
		info, ok := tracker.Call("c1")
		return ok && info.State == calls.StateRinging
	})

	// Answer through the adapter; the frame must come back over the same
	// connection.
	if err := tracker.Adapter().AnswerCall("c1"); err != nil {
		t.Fatalf("expected answer command to send, got %v", err)
	}

	var command Envelope
	manager.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := manager.ReadJSON(&command); err != nil {
		t.Fatalf("expected to receive a command frame, got %v", err)
	}
	if command.Op != opAnswerCall {
		t.Fatalf("expected %s command, got %s", opAnswerCall, command.Op)
	}
	if command.ID == "" {
		t.Fatalf("expected command frame to carry a message id")
	}
	var args callArgs
	if err := json.Unmarshal(command.Args, &args); err != nil || args.CallID != "c1" {
		t.Fatalf("expected answer args for c1, got %s (%v)", command.Args, err)
	}

	service.Drain()
	if err := <-runErr; err != nil {
		t.Fatalf("expected loop to exit cleanly, got %v", err)
	}
}

func TestDialBindsAdapterAndReadsNotifications(t *testing.T) {
	tracker := incall.NewCallTracker()
	service := incall.NewService(tracker)
	runErr := make(chan error, 1)
	go func() { runErr <- service.Run(context.Background()) }()

	upgrader := websocket.Upgrader{}
	managerConns := make(chan *websocket.Conn, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("expected upgrade to succeed, got %v", err)
			return
		}
		managerConns <- conn
	}))
	defer server.Close()

	client, err := Dial(context.Background(), wsURL(server), service)
	if err != nil {
		t.Fatalf("expected dial to succeed, got %v", err)
	}
	defer client.Close()

	waitFor(t, "adapter hand-off", func() bool { return tracker.Adapter() != nil })

	manager := <-managerConns
	defer manager.Close()

	env := Envelope{Op: opAddCall, Args: mustArgs(t, callInfoArgs{CallID: "c9"})}
	if err := manager.WriteJSON(env); err != nil {
		t.Fatalf("expected notification frame to send, got %v", err)
	}

	waitFor(t, "tracked call", func() bool {
		_, ok := tracker.Call("c9")
		return ok
	})

	if err := client.Close(); err != nil {
		t.Fatalf("expected close to succeed, got %v", err)
	}
	client.AwaitDone()

	service.Drain()
	if err := <-runErr; err != nil {
		t.Fatalf("expected loop to exit cleanly, got %v", err)
	}
}
