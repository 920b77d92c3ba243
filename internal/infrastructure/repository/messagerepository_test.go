package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/shared/logger"
)

func TestMessageRepository_InboxAndRead(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMessageRepository(gdb, logger.NewNop())
	ctx := context.Background()

	me := seedUser(t, gdb, "Me", "me@example.dz", "")
	ali := seedUser(t, gdb, "Ali", "ali@example.dz", "")
	rym := seedUser(t, gdb, "Rym", "rym@example.dz", "")

	send := func(from, to uint, body string) {
		m, err := message.NewMessage(from, to, nil, body)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, m))
	}
	send(ali, me, "salam")
	send(ali, me, "still available?")
	send(me, ali, "yes")
	send(rym, me, "price?")

	inbox, err := repo.Inbox(ctx, me, 0, 20)
	require.NoError(t, err)
	require.Len(t, inbox, 2)

	bySender := map[uint]*message.InboxEntry{}
	for _, e := range inbox {
		bySender[e.Latest.SenderID()] = e
	}
	assert.Equal(t, "still available?", bySender[ali].Latest.Content())
	assert.Equal(t, int64(2), bySender[ali].UnreadCount)
	assert.Equal(t, int64(1), bySender[rym].UnreadCount)

	conv, err := repo.Conversation(ctx, me, ali, 0, 20)
	require.NoError(t, err)
	assert.Len(t, conv, 3, "both directions are included")

	n, err := repo.MarkRead(ctx, ali, me, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.MarkRead(ctx, ali, me, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, n)
}
