package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*user.User, error) {
	found, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user by email", "error", err)
		return nil, err
	}

	// Same response whether the account is missing or the password is wrong,
	// so the endpoint cannot be used to probe for registered emails.
	if found == nil {
		return nil, errors.NewUnauthorizedError("Invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, found.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", found.ID())
		return nil, errors.NewUnauthorizedError("Invalid credentials")
	}

	return found, nil
}
