package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
)

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*user.User, error)
}
