package aquanet

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebsocketHandler streams per-scenario report summaries so a UI can
// watch extent and consumption totals move as assessments refresh.
func (v *View) WebsocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Send report data periodically
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		allReports := v.CollectReports()
		if allReports == nil {
			allReports = []ReportData{}
		}
		if err := conn.WriteJSON(allReports); err != nil {
			return // Connection closed
		}
	}
}
