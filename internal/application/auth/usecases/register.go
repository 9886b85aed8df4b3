package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterUseCase struct {
	userRepo user.UserRepository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.UserRepository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*user.User, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user by email", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("User already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash, false)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())

	return newUser, nil
}
