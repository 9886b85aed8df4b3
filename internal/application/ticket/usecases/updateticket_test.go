package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	vo "github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket/valueobjects"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
)

func existingTicket(t *testing.T) *ticket.Ticket {
	t.Helper()

	created := time.Now().Add(-time.Hour)
	tkt, err := ticket.ReconstructTicket(
		5, "TK005", "Old subject", "Old description", "technical",
		vo.PriorityLow, vo.StatusOpen, 2, nil, nil, created, created,
	)
	require.NoError(t, err)
	return tkt
}

func TestUpdateTicketUseCase_Execute_PartialUpdate(t *testing.T) {
	tkt := existingTicket(t)

	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			assert.Equal(t, uint(5), id)
			return tkt, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = t
			return nil
		},
	}

	status := "resolved"
	assignee := uint(1)
	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   5,
		Status:     &status,
		AssigneeID: &assignee,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, vo.StatusResolved, result.Status())
	require.NotNil(t, result.AssigneeID())
	assert.Equal(t, uint(1), *result.AssigneeID())

	// Untouched fields stay as they were.
	assert.Equal(t, "Old subject", result.Subject())
	assert.Equal(t, "TK005", result.Code())
	assert.Equal(t, uint(2), result.UserID())

	// Any change refreshes the modification timestamp.
	assert.True(t, result.UpdatedAt().After(result.CreatedAt()))
}

func TestUpdateTicketUseCase_Execute_NotFound(t *testing.T) {
	useCase := NewUpdateTicketUseCase(&mockTicketRepository{}, &mockLogger{})

	subject := "New subject"
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 99,
		Subject:  &subject,
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Ticket not found", appErr.Message)
	assert.Equal(t, 404, appErr.Code)
}

func TestUpdateTicketUseCase_Execute_InvalidStatus(t *testing.T) {
	tkt := existingTicket(t)
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tkt, nil
		},
	}

	status := "pending"
	useCase := NewUpdateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 5,
		Status:   &status,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
