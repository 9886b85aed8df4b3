package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	vo "github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket/valueobjects"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

// UpdateTicketCommand carries a partial ticket update; nil fields are left
// untouched. Code, owner, and creation time are never updatable.
type UpdateTicketCommand struct {
	TicketID    uint
	Subject     *string
	Description *string
	Category    *string
	Priority    *string
	Status      *string
	AssigneeID  *uint
	Attachments *[]string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*ticket.Ticket, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	if err := uc.applyChanges(existing, cmd); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", existing.ID(), "status", existing.Status().String())

	return existing, nil
}

func (uc *UpdateTicketUseCase) applyChanges(t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Subject != nil {
		if err := t.ChangeSubject(*cmd.Subject); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := t.ChangeDescription(*cmd.Description); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Category != nil {
		if err := t.ChangeCategory(*cmd.Category); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		if err := t.ChangePriority(vo.Priority(*cmd.Priority)); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		if err := t.ChangeStatus(vo.Status(*cmd.Status)); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.AssigneeID != nil {
		if err := t.AssignTo(*cmd.AssigneeID); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Attachments != nil {
		t.ReplaceAttachments(*cmd.Attachments)
	}
	return nil
}
