// Package realtime tracks live websocket connections per user and pushes
// events to them.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/darna-inc/darna/internal/infrastructure/pubsub"
	"github.com/darna-inc/darna/internal/shared/biztime"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// Frame is the wire format of every message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Conn is one live client connection. Writes go through Send and are
// drained by the websocket write pump.
type Conn struct {
	ID          string
	UserID      uint
	Send        chan []byte
	ConnectedAt time.Time
	closed      atomic.Bool
}

func NewConn(userID uint, buffer int) *Conn {
	if buffer <= 0 {
		buffer = 64
	}
	return &Conn{
		ID:          uuid.NewString(),
		UserID:      userID,
		Send:        make(chan []byte, buffer),
		ConnectedAt: biztime.NowUTC(),
	}
}

// TrySend queues data without blocking. It reports false when the
// connection is closed or its buffer is full.
func (c *Conn) TrySend(data []byte) (sent bool) {
	if c.closed.Load() {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			sent = false
		}
	}()

	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

func (c *Conn) Close() {
	if c.closed.CompareAndSwap(false, true) {
		close(c.Send)
	}
}

// Bus carries envelopes to the other API instances.
type Bus interface {
	Publish(ctx context.Context, env pubsub.NotificationEnvelope) error
}

// Registry maps user ids to their live connections. A user may hold several
// connections (tabs, devices); events fan out to all of them.
type Registry struct {
	mu    sync.RWMutex
	conns map[uint]map[string]*Conn

	bus      Bus
	shutdown atomic.Bool
	logger   logger.Interface
}

func NewRegistry(logger logger.Interface) *Registry {
	return &Registry{
		conns:  make(map[uint]map[string]*Conn),
		logger: logger,
	}
}

// SetBus enables cross-instance delivery. Without a bus, Emit only reaches
// connections held by this process.
func (r *Registry) SetBus(bus Bus) {
	r.bus = bus
}

func (r *Registry) Register(conn *Conn) bool {
	if r.shutdown.Load() {
		return false
	}

	r.mu.Lock()
	byID, ok := r.conns[conn.UserID]
	if !ok {
		byID = make(map[string]*Conn)
		r.conns[conn.UserID] = byID
	}
	byID[conn.ID] = conn
	total := len(byID)
	r.mu.Unlock()

	r.logger.Infow("realtime connection registered",
		"conn_id", conn.ID,
		"user_id", conn.UserID,
		"user_connections", total,
	)
	return true
}

func (r *Registry) Unregister(conn *Conn) {
	r.mu.Lock()
	byID, ok := r.conns[conn.UserID]
	if ok {
		if _, found := byID[conn.ID]; !found {
			ok = false
		}
		delete(byID, conn.ID)
		if len(byID) == 0 {
			delete(r.conns, conn.UserID)
		}
	}
	r.mu.Unlock()

	conn.Close()
	if ok {
		r.logger.Infow("realtime connection unregistered",
			"conn_id", conn.ID,
			"user_id", conn.UserID,
		)
	}
}

// Lookup returns a snapshot of the user's connections on this instance.
func (r *Registry) Lookup(userID uint) []*Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.conns[userID]
	out := make([]*Conn, 0, len(byID))
	for _, c := range byID {
		out = append(out, c)
	}
	return out
}

func (r *Registry) ConnectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, byID := range r.conns {
		n += len(byID)
	}
	return n
}

// Emit delivers the event to the user's local connections and, when a bus is
// set, to the other instances. A user with no connection anywhere is not an
// error.
func (r *Registry) Emit(ctx context.Context, userID uint, event string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}

	r.deliver(userID, event, raw)

	if r.bus == nil {
		return nil
	}
	return r.bus.Publish(ctx, pubsub.NotificationEnvelope{
		UserID: userID,
		Event:  event,
		Data:   raw,
	})
}

// Deliver hands an envelope received from another instance to local
// connections.
func (r *Registry) Deliver(env pubsub.NotificationEnvelope) {
	r.deliver(env.UserID, env.Event, env.Data)
}

func (r *Registry) deliver(userID uint, event string, data json.RawMessage) int {
	conns := r.Lookup(userID)
	if len(conns) == 0 {
		return 0
	}

	frame, err := json.Marshal(Frame{Event: event, Data: data})
	if err != nil {
		r.logger.Errorw("failed to encode realtime frame", "event", event, "error", err)
		return 0
	}

	sent := 0
	for _, c := range conns {
		if c.TrySend(frame) {
			sent++
			continue
		}
		r.logger.Warnw("realtime send buffer full, dropping event",
			"conn_id", c.ID,
			"user_id", userID,
			"event", event,
		)
	}
	return sent
}

// Shutdown closes every connection. Safe to call more than once.
func (r *Registry) Shutdown() {
	if !r.shutdown.CompareAndSwap(false, true) {
		return
	}

	r.mu.Lock()
	for _, byID := range r.conns {
		for _, c := range byID {
			c.Close()
		}
	}
	r.conns = make(map[uint]map[string]*Conn)
	r.mu.Unlock()
}
