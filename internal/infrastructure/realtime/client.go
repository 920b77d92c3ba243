package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"github.com/darna-inc/darna/internal/shared/config"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/goroutine"
)

type ClientConfig struct {
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	SendBuffer     int
	MaxMessageSize int64
}

func NewClientConfig(cfg config.RealtimeConfig) ClientConfig {
	c := ClientConfig{
		WriteWait:      time.Duration(cfg.WriteWaitSeconds) * time.Second,
		PongWait:       time.Duration(cfg.PongWaitSeconds) * time.Second,
		PingPeriod:     time.Duration(cfg.PingPeriodSeconds) * time.Second,
		SendBuffer:     cfg.SendBuffer,
		MaxMessageSize: 8192,
	}
	if c.WriteWait <= 0 {
		c.WriteWait = 10 * time.Second
	}
	if c.PongWait <= 0 {
		c.PongWait = 60 * time.Second
	}
	if c.PingPeriod <= 0 || c.PingPeriod >= c.PongWait {
		c.PingPeriod = c.PongWait * 9 / 10
	}
	return c
}

// typingRequest is sent by a client: user_id is the peer being typed to.
type typingRequest struct {
	UserID uint `json:"user_id"`
	Status bool `json:"status"`
}

// typingNotice is what the peer receives: user_id is the one typing.
type typingNotice struct {
	UserID uint `json:"user_id"`
	Typing bool `json:"typing"`
}

// Serve binds an upgraded websocket to userID for its whole lifetime: the
// connection is registered on entry and unregistered when the socket closes.
// It blocks until the client goes away.
func (r *Registry) Serve(ctx context.Context, ws *websocket.Conn, userID uint, cfg ClientConfig) {
	conn := NewConn(userID, cfg.SendBuffer)
	if !r.Register(conn) {
		_ = ws.Close()
		return
	}

	goroutine.SafeGo(r.logger, "realtime-write-pump", func() {
		r.writePump(ws, conn, cfg)
	})
	r.readPump(ctx, ws, conn, cfg)
}

func (r *Registry) readPump(ctx context.Context, ws *websocket.Conn, conn *Conn, cfg ClientConfig) {
	defer func() {
		r.Unregister(conn)
		_ = ws.Close()
	}()

	ws.SetReadLimit(cfg.MaxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(cfg.PongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				r.logger.Warnw("realtime websocket read error", "error", err, "user_id", conn.UserID)
			}
			return
		}
		r.HandleClientFrame(ctx, conn, raw)
	}
}

func (r *Registry) writePump(ws *websocket.Conn, conn *Conn, cfg ClientConfig) {
	ticker := time.NewTicker(cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = ws.Close()
	}()

	for {
		select {
		case msg, ok := <-conn.Send:
			_ = ws.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if !ok {
				_ = ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				r.logger.Warnw("realtime websocket write error", "error", err, "user_id", conn.UserID)
				return
			}

		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// HandleClientFrame processes one inbound frame. Only typing_status is
// accepted from clients; it is relayed to the named peer.
func (r *Registry) HandleClientFrame(ctx context.Context, from *Conn, raw []byte) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		r.logger.Debugw("ignoring malformed realtime frame", "user_id", from.UserID, "error", err)
		return
	}

	switch frame.Event {
	case constants.EventTypingStatus:
		var req typingRequest
		if err := json.Unmarshal(frame.Data, &req); err != nil || req.UserID == 0 || req.UserID == from.UserID {
			return
		}
		notice := typingNotice{UserID: from.UserID, Typing: req.Status}
		if err := r.Emit(ctx, req.UserID, constants.EventTypingStatus, notice); err != nil {
			r.logger.Warnw("failed to relay typing status", "error", err, "from", from.UserID, "to", req.UserID)
		}
	default:
		r.logger.Debugw("unhandled realtime event", "event", frame.Event, "user_id", from.UserID)
	}
}
