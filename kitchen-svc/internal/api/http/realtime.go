package httpapi

import (
	"context"
	"net/http"
	"time"

	"tiffin-finder/kitchen-svc/internal/service"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *Handler) streamOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}
	if _, err := h.Orders.Get(r.Context(), actorFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.stream(w, r, service.OrderChannel(id))
}

func (h *Handler) streamKitchen(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}
	if err := h.Kitchens.AuthorizeOwner(r.Context(), actorFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.stream(w, r, service.KitchenChannel(id))
}

func (h *Handler) streamAuth(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, service.UserChannel(actorFrom(r).UserID))
}

// stream relays every payload published on channel to a websocket until
// either side goes away.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request, channel string) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events, unsubscribe, err := h.Notifier.Subscribe(ctx, channel)
	if err != nil {
		h.Log.WithError(err).WithField("channel", channel).Error("subscribe failed")
		http.Error(w, "failed to subscribe", http.StatusInternalServerError)
		return
	}
	defer unsubscribe()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-events:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
