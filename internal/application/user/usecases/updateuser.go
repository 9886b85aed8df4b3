package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
)

// UpdateUserCommand carries a partial profile update; nil fields are left
// untouched.
type UpdateUserCommand struct {
	UserID   uint
	Name     *string
	Email    *string
	Password *string
}

type UpdateUserUseCase struct {
	userRepo user.UserRepository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.UserRepository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	existing, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	if cmd.Name != nil {
		if err := existing.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Email != nil {
		other, err := uc.userRepo.FindByEmail(ctx, *cmd.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID() != existing.ID() {
			return nil, errors.NewConflictError("Email already in use")
		}
		if err := existing.ChangeEmail(*cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != nil {
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to process password")
		}
		if err := existing.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	return existing, nil
}
