package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/AbderraoufSelidja/Irchad-device-management/pkg/common"
)

const wsCloseGrace = time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// socketSubscriber adapts a websocket connection to hub.Subscriber. Writes
// are serialized since gorilla allows one concurrent writer.
type socketSubscriber struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *socketSubscriber) ID() string { return s.id }

func (s *socketSubscriber) Send(ctx context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		if err := s.conn.SetWriteDeadline(deadline); err != nil {
			return err
		}
	}
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

func (s *socketSubscriber) Close() error {
	s.mu.Lock()
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
		time.Now().Add(wsCloseGrace))
	s.mu.Unlock()
	return s.conn.Close()
}

// ServeWebsocket registers the connection with the hub and drains inbound
// frames until the peer goes away.
func (rs *RestfulServer) ServeWebsocket(c *gin.Context) {
	if rs.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "live updates are disabled"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger().Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	subscriber := &socketSubscriber{id: uuid.NewString(), conn: conn}
	rs.Hub.Subscribe(subscriber)

	defer func() {
		rs.Hub.Unsubscribe(subscriber)
		_ = conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger().Debug("WebSocket closed",
				zap.String(common.LoggerFieldSubscriberID, subscriber.id),
				zap.Error(err))
			return
		}
	}
}
