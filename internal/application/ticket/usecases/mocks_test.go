package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc       func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc     func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc   func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByCodeFunc func(ctx context.Context, code string) (*ticket.Ticket, error)
	ListFunc       func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByCode(ctx context.Context, code string) (*ticket.Ticket, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockReplyRepository struct {
	SaveFunc           func(ctx context.Context, reply *ticket.Reply) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Reply, error)
}

func (m *mockReplyRepository) Save(ctx context.Context, reply *ticket.Reply) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, reply)
	}
	return nil
}

func (m *mockReplyRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCodeGenerator struct {
	NextFunc func(ctx context.Context) (string, error)
}

func (m *mockCodeGenerator) Next(ctx context.Context) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return "TK001", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
