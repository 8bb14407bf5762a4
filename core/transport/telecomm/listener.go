package telecomm

import (
	"net/http"

	"github.com/gorilla/websocket"
	incall "github.com/koscakluka/incall-core/core"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Listener accepts inbound connections from a remote call manager that
// prefers to dial the bridge. Each upgraded connection becomes its own
// session with its own adapter hand-off.
type Listener struct {
	service  *incall.Service
	upgrader websocket.Upgrader
}

func NewListener(service *incall.Service) *Listener {
	return &Listener{service: service}
}

// Handler returns the HTTP handler that upgrades call manager connections.
// Mount it wherever the bridge's HTTP surface lives.
func (l *Listener) Handler() http.Handler {
	return otelhttp.NewHandler(http.HandlerFunc(l.serveSession), "telecomm.session")
}

func (l *Listener) serveSession(w http.ResponseWriter, r *http.Request) {
	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WarnContext(r.Context(), "failed to upgrade call manager connection", "error", err)
		return
	}
	defer conn.Close()

	s := newSession(conn, l.service)
	s.bind()
	s.readLoop(r.Context())
}
