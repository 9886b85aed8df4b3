package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
)

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*user.User, error)
}

type UpdateUserExecutor interface {
	Execute(ctx context.Context, cmd UpdateUserCommand) (*user.User, error)
}
