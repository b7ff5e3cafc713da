// Package ws exposes the order status stream over WebSocket. Each connected
// client gets its own subscription on the broadcaster; a client that cannot
// keep up is dropped by the broadcaster rather than allowed to stall the
// writers.
package ws

import (
	"log/slog"
	"net/http"
	"time"

	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/pubsub"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// StatusMessage is the wire representation of an order status change.
type StatusMessage struct {
	OrderID     string `json:"orderId"`
	OrderStatus string `json:"orderStatus"`
}

// Server upgrades HTTP connections and streams order status events to them.
type Server struct {
	broadcaster *pubsub.Broadcaster
	logger      *slog.Logger
}

// NewServer creates a WebSocket server backed by the given broadcaster.
func NewServer(broadcaster *pubsub.Broadcaster, logger *slog.Logger) *Server {
	return &Server{
		broadcaster: broadcaster,
		logger:      logger.With("component", "ws_server"),
	}
}

// RegisterRoutes attaches the stream endpoint to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", s.StreamOrders)
}

// StreamOrders handles GET /ws - upgrades the connection and streams
// every subsequent order status change until the client disconnects.
func (s *Server) StreamOrders(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed", "error", err)
		return err
	}

	subscription := s.broadcaster.Subscribe()
	s.logger.Info("Client connected", "remote", conn.RemoteAddr().String())

	go s.writePump(conn, subscription)
	go s.readPump(conn, subscription)

	return nil
}

// writePump forwards subscription events to the connection and keeps it
// alive with pings. It exits when the subscription closes, which happens on
// unsubscribe or when the broadcaster drops a slow client.
func (s *Server) writePump(conn *websocket.Conn, subscription *pubsub.Subscription) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case event, ok := <-subscription.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteJSON(newStatusMessage(event)); err != nil {
				s.broadcaster.Unsubscribe(subscription)
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.broadcaster.Unsubscribe(subscription)
				return
			}
		}
	}
}

// readPump discards client messages and detects disconnects. The stream is
// one-way; reads exist only to process control frames and notice the close.
func (s *Server) readPump(conn *websocket.Conn, subscription *pubsub.Subscription) {
	defer func() {
		s.broadcaster.Unsubscribe(subscription)
		_ = conn.Close()
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("Read failed", "error", err)
			}
			return
		}
	}
}

func newStatusMessage(event order.StatusEvent) StatusMessage {
	return StatusMessage{
		OrderID:     event.OrderID.String(),
		OrderStatus: event.Status.String(),
	}
}
