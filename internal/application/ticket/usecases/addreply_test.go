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

func TestAddReplyUseCase_Execute_Success(t *testing.T) {
	now := time.Now()
	owning, err := ticket.ReconstructTicket(
		3, "TK003", "Subject", "Description", "feature",
		vo.PriorityLow, vo.StatusOpen, 2, nil, nil, now, now,
	)
	require.NoError(t, err)

	mockTickets := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			assert.Equal(t, uint(3), id)
			return owning, nil
		},
	}
	mockReplies := &mockReplyRepository{
		SaveFunc: func(ctx context.Context, reply *ticket.Reply) error {
			return reply.SetID(10)
		},
	}

	useCase := NewAddReplyUseCase(mockTickets, mockReplies, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddReplyCommand{
		TicketID:    3,
		UserID:      1,
		Message:     "We're looking into it",
		IsFromAgent: true,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.ID())
	assert.Equal(t, uint(3), result.TicketID())
	assert.True(t, result.IsFromAgent())
}

func TestAddReplyUseCase_Execute_TicketNotFound(t *testing.T) {
	useCase := NewAddReplyUseCase(&mockTicketRepository{}, &mockReplyRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), AddReplyCommand{
		TicketID: 99,
		UserID:   1,
		Message:  "hello?",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Ticket not found", appErr.Message)
	assert.Equal(t, 404, appErr.Code)
}

func TestAddReplyUseCase_Execute_EmptyMessage(t *testing.T) {
	now := time.Now()
	owning, err := ticket.ReconstructTicket(
		3, "TK003", "Subject", "Description", "feature",
		vo.PriorityLow, vo.StatusOpen, 2, nil, nil, now, now,
	)
	require.NoError(t, err)

	mockTickets := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return owning, nil
		},
	}

	useCase := NewAddReplyUseCase(mockTickets, &mockReplyRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddReplyCommand{
		TicketID: 3,
		UserID:   1,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
