package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.UserRepository
}

func NewGetUserUseCase(userRepo user.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*user.User, error) {
	found, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("User not found")
	}
	return found, nil
}
