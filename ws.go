package livenav

import (
	"encoding/json"
	"log"
	"time"

	"golang.org/x/net/websocket"

	"github.com/theoremus-urban-solutions/gnss-livenav/nav"
)

// wsMessage is the envelope pushed over the nav websocket: periodic status
// frames plus one reroute frame per committed reroute.
type wsMessage struct {
	Type    string            `json:"type"`
	Status  *nav.NavStatus    `json:"status,omitempty"`
	Reroute *nav.RerouteEvent `json:"reroute,omitempty"`
}

// handleNavSocket streams NavStatus once a second and forwards reroute
// events as they happen. Polling /api/nav remains the authoritative query;
// the socket is a convenience for clients that want push.
func (s *Server) handleNavSocket(ws *websocket.Conn) {
	log.Printf("nav socket connected from %s", ws.Request().RemoteAddr)
	defer func() { _ = ws.Close() }()

	events, cancel := s.nav.Notifier().Subscribe()
	defer cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		var msg wsMessage
		select {
		case ev := <-events:
			msg = wsMessage{Type: "rerouted", Reroute: &ev}
		case <-ticker.C:
			st := s.nav.Status()
			msg = wsMessage{Type: "status", Status: &st}
		}
		buf, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		if _, err := ws.Write(buf); err != nil {
			log.Printf("nav socket write failed, closing: %v", err)
			return
		}
	}
}
