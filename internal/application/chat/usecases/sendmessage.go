package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/chat"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

type SendMessageCommand struct {
	UserID  uint
	Message string
}

type SendMessageUseCase struct {
	messageRepo chat.MessageRepository
	logger      logger.Interface
}

func NewSendMessageUseCase(
	messageRepo chat.MessageRepository,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*chat.Message, error) {
	message, err := chat.NewMessage(cmd.UserID, cmd.Message)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, message); err != nil {
		uc.logger.Errorw("failed to save chat message", "error", err)
		return nil, err
	}

	// The answer is generated synchronously and written exactly once.
	response := chat.Respond(cmd.Message)
	if err := message.SetResponse(response); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.messageRepo.SetResponse(ctx, message.ID(), response); err != nil {
		uc.logger.Errorw("failed to store chat response", "error", err, "message_id", message.ID())
		return nil, err
	}

	return message, nil
}
