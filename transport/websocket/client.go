package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 32
)

type client struct {
	server *Server
	conn   *websocket.Conn
	out    chan []byte

	mu     sync.RWMutex
	player entity.Identity
	closed bool
}

func newClient(server *Server, conn *websocket.Conn) *client {
	return &client{
		server: server,
		conn:   conn,
		out:    make(chan []byte, sendBuffer),
	}
}

func (that *client) identity() entity.Identity {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.player
}

func (that *client) setIdentity(player entity.Identity) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.player = player
}

func (that *client) readPump(ctx context.Context) {
	log := that.server.logger.With("method", "readPump")

	defer func() {
		that.server.unbind(that)
		that.close()
		_ = that.conn.Close()
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			that.sendError("", "Malformed message")
			continue
		}

		that.server.dispatch(ctx, that, &msg)
	}
}

func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case data, ok := <-that.out:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

var errClientClosed = errors.New("client closed")

func (that *client) send(action string, resp Response) {
	data, err := encode(action, resp)
	if err != nil {
		that.server.logger.Error("failed to encode response", "action", action, "error", err)
		return
	}

	if err = that.enqueue(data); err != nil {
		that.server.logger.Warn("dropped response", "action", action, "error", err)
	}
}

func (that *client) sendError(action, reason string) {
	that.send(action, Response{Error: reason})
}

func (that *client) enqueue(data []byte) error {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.closed {
		return errClientClosed
	}

	select {
	case that.out <- data:
		return nil
	default:
		return errors.New("send buffer is full")
	}
}

func (that *client) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.closed {
		that.closed = true
		close(that.out)
	}
}
