package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	vo "github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket/valueobjects"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (m TicketMapper) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	attachments, err := json.Marshal(t.Attachments())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attachments: %w", err)
	}

	return &models.TicketModel{
		ID:          t.ID(),
		Code:        t.Code(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Category:    t.Category(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		UserID:      t.UserID(),
		AssigneeID:  t.AssigneeID(),
		Attachments: datatypes.JSON(attachments),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}, nil
}

func (m TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	attachments := []string{}
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &attachments); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attachments: %w", err)
		}
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Code,
		model.Subject,
		model.Description,
		model.Category,
		vo.Priority(model.Priority),
		vo.Status(model.Status),
		model.UserID,
		model.AssigneeID,
		attachments,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

type ReplyMapper struct{}

func NewReplyMapper() ReplyMapper {
	return ReplyMapper{}
}

func (m ReplyMapper) ToModel(r *ticket.Reply) *models.ReplyModel {
	return &models.ReplyModel{
		ID:          r.ID(),
		TicketID:    r.TicketID(),
		UserID:      r.UserID(),
		Message:     r.Message(),
		IsFromAgent: r.IsFromAgent(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
	}
}

func (m ReplyMapper) ToDomain(model *models.ReplyModel) (*ticket.Reply, error) {
	return ticket.ReconstructReply(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Message,
		model.IsFromAgent,
		time.UnixMilli(model.CreatedAt),
	)
}
