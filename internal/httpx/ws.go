package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the demo player runs on a different origin than the API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// watchSession streams the session state once per second so the player can
// follow the timeline without polling. The stream ends when the client
// disconnects or the session no longer exists.
func (h *handlers) watchSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.demo.Get(id); err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("ws upgrade failed", slog.String("err", err.Error()))
		return
	}
	defer conn.Close()

	// drain client frames so close messages are processed
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		s, err := h.demo.Get(id)
		if err != nil {
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
				time.Now().Add(time.Second))
			return
		}
		if err := conn.WriteJSON(s.State()); err != nil {
			return
		}
		select {
		case <-ticker.C:
		case <-r.Context().Done():
			return
		}
	}
}
