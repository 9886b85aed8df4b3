package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/mappers"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
)

type ReplyRepository struct {
	db     *gorm.DB
	mapper mappers.ReplyMapper
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{
		db:     db,
		mapper: mappers.NewReplyMapper(),
	}
}

func (r *ReplyRepository) Save(ctx context.Context, reply *ticket.Reply) error {
	model := r.mapper.ToModel(reply)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reply: %w", err)
	}

	return reply.SetID(model.ID)
}

func (r *ReplyRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	var found []models.ReplyModel

	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	replies := make([]*ticket.Reply, 0, len(found))
	for i := range found {
		reply, err := r.mapper.ToDomain(&found[i])
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}

	return replies, nil
}
