package events

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/shared/logger"
)

func TestInMemoryEventDispatcher_DeliversAndDrains(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewNop())

	var (
		mu   sync.Mutex
		seen []string
	)
	require.NoError(t, d.Subscribe("ticket.answered", HandlerFunc(func(e DomainEvent) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, e.GetAggregateID())
		return nil
	})))
	require.NoError(t, d.Subscribe("ticket.answered", HandlerFunc(func(DomainEvent) error {
		return errors.New("mail server down")
	})))

	assert.ErrorIs(t, d.Publish(NewBaseEvent("1", "ticket.answered")), ErrDispatcherNotRunning)

	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(NewBaseEvent("7", "ticket.answered")))
	require.NoError(t, d.Publish(NewBaseEvent("8", "other.event")))
	require.NoError(t, d.Stop())

	assert.Equal(t, []string{"7"}, seen)
}

func TestInMemoryEventDispatcher_PanicIsContained(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewNop())
	called := false
	require.NoError(t, d.Subscribe("x", HandlerFunc(func(DomainEvent) error { panic("boom") })))
	require.NoError(t, d.Subscribe("x", HandlerFunc(func(DomainEvent) error {
		called = true
		return nil
	})))

	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(NewBaseEvent("1", "x")))
	require.NoError(t, d.Stop())

	assert.True(t, called)
}

func TestInMemoryEventDispatcher_SubscribeValidation(t *testing.T) {
	d := NewInMemoryEventDispatcher(0, logger.NewNop())
	assert.Error(t, d.Subscribe("", HandlerFunc(func(DomainEvent) error { return nil })))
	assert.Error(t, d.Subscribe("x", nil))
}
