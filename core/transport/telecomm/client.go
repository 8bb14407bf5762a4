package telecomm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	incall "github.com/koscakluka/incall-core/core"
)

type DialOption func(*dialOptions)

type dialOptions struct {
	dialer *websocket.Dialer
	header http.Header
}

// WithDialer replaces the default websocket dialer, e.g. to set handshake
// timeouts or TLS configuration.
func WithDialer(dialer *websocket.Dialer) DialOption {
	return func(o *dialOptions) {
		if dialer != nil {
			o.dialer = dialer
		}
	}
}

// WithHTTPHeader adds headers to the handshake request, e.g. authorization.
func WithHTTPHeader(header http.Header) DialOption {
	return func(o *dialOptions) {
		if header != nil {
			o.header = header
		}
	}
}

// Client is an outbound connection to a remote call manager.
type Client struct {
	*session
}

// Dial connects to the call manager at rawURL, binds the session's command
// adapter through the service, and starts reading notifications. The caller
// still owns the service's dispatch loop.
func Dial(ctx context.Context, rawURL string, service *incall.Service, opts ...DialOption) (*Client, error) {
	ctx, span := tracer.Start(ctx, "dial call manager")
	defer span.End()

	options := dialOptions{dialer: websocket.DefaultDialer}
	for _, opt := range opts {
		opt(&options)
	}

	conn, _, err := options.dialer.DialContext(ctx, rawURL, options.header)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to call manager: %w", err)
	}

	s := newSession(conn, service)
	s.bind()
	go s.readLoop(context.WithoutCancel(ctx))

	return &Client{session: s}, nil
}

// Close ends the session. Notifications already submitted to the service
// stay queued; draining or discarding them is the loop owner's call.
func (c *Client) Close() error {
	if c == nil || c.session == nil {
		return nil
	}

	return c.session.close()
}
