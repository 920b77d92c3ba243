package events

import (
	"errors"
	"fmt"
	"sync"

	"github.com/darna-inc/darna/internal/shared/logger"
)

var (
	ErrDispatcherNotRunning = errors.New("event dispatcher is not running")
	ErrDispatcherFull       = errors.New("event channel is full")
)

// InMemoryEventDispatcher queues events on a buffered channel and runs the
// subscribed handlers on a single worker goroutine.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup
	logger   logger.Interface
}

func NewInMemoryEventDispatcher(bufferSize int, logger logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}

	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
		logger:   logger,
	}
}

// Publish never blocks; a full buffer is reported as ErrDispatcherFull.
func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return ErrDispatcherNotRunning
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("%w: dropped %s", ErrDispatcherFull, event.GetEventType())
	}
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}

	d.running = true
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.processEvents()
	}()

	return nil
}

// Stop drains queued events before returning.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return ErrDispatcherNotRunning
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.handleEvent(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.handleEvent(event)
		}
	}
}

func (d *InMemoryEventDispatcher) handleEvent(event DomainEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.GetEventType()]
	d.mu.RUnlock()

	for _, h := range handlers {
		d.runHandler(h, event)
	}
}

func (d *InMemoryEventDispatcher) runHandler(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorw("event handler panicked",
				"event_type", event.GetEventType(),
				"aggregate_id", event.GetAggregateID(),
				"panic", fmt.Sprintf("%v", r),
			)
		}
	}()

	if err := h.Handle(event); err != nil {
		d.logger.Warnw("event handler failed",
			"event_type", event.GetEventType(),
			"aggregate_id", event.GetAggregateID(),
			"error", err,
		)
	}
}
