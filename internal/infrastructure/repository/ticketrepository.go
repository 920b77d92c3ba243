package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/darna-inc/darna/internal/domain/ticket"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/mappers"
	"github.com/darna-inc/darna/internal/infrastructure/persistence/models"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/db"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.TicketRepository {
	return &TicketRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "error", err, "user_id", t.UserID())
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"replier_id":  model.ReplierID,
			"title":       model.Title,
			"description": model.Description,
			"answer":      model.Answer,
			"answer_html": model.AnswerHTML,
			"status":      model.Status,
			"answered_at": model.AnsweredAt,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "error", result.Error, "ticket_id", t.ID())
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepositoryImpl) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *TicketRepositoryImpl) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tickets := constants.TableTickets
	users := constants.TableUsers

	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
	if filter.Query != "" {
		query = query.
			Joins("LEFT JOIN " + users + " ON " + users + ".id = " + tickets + ".user_id").
			Scopes(db.Search(filter.Query,
				tickets+".title", tickets+".description", tickets+".answer",
				users+".full_name", users+".email"))
	}
	if filter.Status != nil {
		query = query.Where(tickets+".status = ?", filter.Status.String())
	}
	if filter.UserID != nil {
		query = query.Where(tickets+".user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []*models.TicketModel
	if err := query.Select(tickets + ".*").
		Scopes(db.Paginate(filter.Offset, filter.Limit)).
		Order(tickets + ".created_at DESC").
		Order(tickets + ".id DESC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	out := make([]*ticket.Ticket, 0, len(rows))
	for _, row := range rows {
		t, err := r.mapper.ToEntity(row)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, nil
}
