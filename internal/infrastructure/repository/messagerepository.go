package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/message"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/mappers"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/db"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
	logger logger.Interface
}

func NewMessageRepository(db *gorm.DB, logger logger.Interface) message.Repository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mappers.NewMessageMapper(),
		logger: logger,
	}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, m *message.Message) error {
	model := r.mapper.ToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to store message", "error", err, "sender_id", m.SenderID())
		return fmt.Errorf("failed to store message: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *MessageRepositoryImpl) Conversation(ctx context.Context, userID, otherID uint, offset, limit int) ([]*message.Message, error) {
	var rows []*models.MessageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, otherID, otherID, userID).
		Scopes(db.Paginate(offset, limit)).
		Order("sent_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return r.toEntities(rows)
}

func (r *MessageRepositoryImpl) Inbox(ctx context.Context, receiverID uint, offset, limit int) ([]*message.InboxEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	latestIDs := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.MessageModel{}).
		Select("MAX(id)").
		Where("receiver_id = ?", receiverID).
		Group("sender_id")

	var rows []*models.MessageModel
	if err := tx.Where("id IN (?)", latestIDs).
		Scopes(db.Paginate(offset, limit)).
		Order("sent_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load inbox: %w", err)
	}
	if len(rows) == 0 {
		return []*message.InboxEntry{}, nil
	}

	senderIDs := make([]uint, len(rows))
	for i, row := range rows {
		senderIDs[i] = row.SenderID
	}

	var counts []struct {
		SenderID uint
		Unread   int64
	}
	if err := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.MessageModel{}).
		Select("sender_id, COUNT(*) AS unread").
		Where("receiver_id = ? AND read_at IS NULL AND sender_id IN ?", receiverID, senderIDs).
		Group("sender_id").
		Scan(&counts).Error; err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}
	unread := make(map[uint]int64, len(counts))
	for _, c := range counts {
		unread[c.SenderID] = c.Unread
	}

	entries := make([]*message.InboxEntry, 0, len(rows))
	for _, row := range rows {
		m, err := r.mapper.ToEntity(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &message.InboxEntry{Latest: m, UnreadCount: unread[row.SenderID]})
	}
	return entries, nil
}

func (r *MessageRepositoryImpl) MarkRead(ctx context.Context, senderID, receiverID uint, at time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.MessageModel{}).
		Where("sender_id = ? AND receiver_id = ? AND read_at IS NULL", senderID, receiverID).
		Update("read_at", at)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MessageRepositoryImpl) toEntities(rows []*models.MessageModel) ([]*message.Message, error) {
	out := make([]*message.Message, 0, len(rows))
	for _, row := range rows {
		m, err := r.mapper.ToEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
