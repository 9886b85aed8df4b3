package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	vo "github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket/valueobjects"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

type CreateTicketCommand struct {
	Subject     string
	Description string
	Category    string
	Priority    string
	Status      string
	Attachments []string
	UserID      uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	codeGen    ticket.CodeGenerator
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	codeGen ticket.CodeGenerator,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		codeGen:    codeGen,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*ticket.Ticket, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("User ID is required")
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		priority = vo.Priority(cmd.Priority)
	}
	status := vo.StatusOpen
	if cmd.Status != "" {
		status = vo.Status(cmd.Status)
	}

	newTicket, err := ticket.NewTicket(
		cmd.Subject,
		cmd.Description,
		cmd.Category,
		priority,
		status,
		cmd.UserID,
		cmd.Attachments,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	code, err := uc.codeGen.Next(ctx)
	if err != nil {
		uc.logger.Errorw("failed to allocate ticket code", "error", err)
		return nil, errors.NewInternalError("failed to allocate ticket code")
	}
	if err := newTicket.SetCode(code); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", newTicket.ID(),
		"code", newTicket.Code(),
		"user_id", newTicket.UserID())

	return newTicket, nil
}
