package transport

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/model"
)

// BlockStream pushes newly mined blocks to websocket subscribers.
type BlockStream struct {
	logger   *zap.Logger
	blocks   <-chan model.Block
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewBlockStream builds a BlockStream consuming the given mined-block channel.
func NewBlockStream(blocks <-chan model.Block, logger *zap.Logger) *BlockStream {
	return &BlockStream{
		logger: logger.Named("ws"),
		blocks: blocks,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Run broadcasts mined blocks until the context is canceled, then closes all
// subscriber connections.
func (s *BlockStream) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case block := <-s.blocks:
			s.broadcast(block)
		}
	}
}

// Handle upgrades the request to a websocket and subscribes it to mined
// blocks. The read loop exists only to detect the peer closing.
func (s *BlockStream) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	subscribers := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("subscriber connected", zap.Int("subscribers", subscribers))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.drop(conn)
}

func (s *BlockStream) broadcast(block model.Block) {
	payload := toBlockResponse(block)

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			s.logger.Warn("dropping slow subscriber", zap.Error(err))
			s.drop(conn)
		}
	}
}

func (s *BlockStream) drop(conn *websocket.Conn) {
	s.mu.Lock()
	_, ok := s.conns[conn]
	delete(s.conns, conn)
	s.mu.Unlock()
	if ok {
		_ = conn.Close()
	}
}

func (s *BlockStream) closeAll() {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.conns = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
}
