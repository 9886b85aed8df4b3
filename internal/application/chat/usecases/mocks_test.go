package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/chat"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

type mockMessageRepository struct {
	SaveFunc         func(ctx context.Context, msg *chat.Message) error
	SetResponseFunc  func(ctx context.Context, id uint, response string) error
	ListByUserIDFunc func(ctx context.Context, userID uint) ([]*chat.Message, error)
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *chat.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) SetResponse(ctx context.Context, id uint, response string) error {
	if m.SetResponseFunc != nil {
		return m.SetResponseFunc(ctx, id, response)
	}
	return nil
}

func (m *mockMessageRepository) ListByUserID(ctx context.Context, userID uint) ([]*chat.Message, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
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
