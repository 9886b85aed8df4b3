package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
)

func TestRegisterUseCase_Execute_Success(t *testing.T) {
	var savedUser *user.User
	mockRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			if err := u.SetID(3); err != nil {
				return err
			}
			savedUser = u
			return nil
		},
	}

	useCase := NewRegisterUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), RegisterCommand{
		Name:     "Jane Doe",
		Email:    "Jane.Doe@Example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(3), result.ID())
	assert.Equal(t, "jane.doe@example.com", result.Email())
	assert.False(t, result.IsAdmin())

	require.NotNil(t, savedUser)
	assert.Equal(t, "hashed:secret123", savedUser.PasswordHash())
}

func TestRegisterUseCase_Execute_DuplicateEmail(t *testing.T) {
	existing, err := user.NewUser("John Doe", "john.doe@example.com", "hash", false)
	require.NoError(t, err)
	require.NoError(t, existing.SetID(1))

	mockRepo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}

	useCase := NewRegisterUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), RegisterCommand{
		Name:     "Another John",
		Email:    "john.doe@example.com",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, result)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "User already exists", appErr.Message)
	assert.Equal(t, 400, appErr.Code)
}

func TestRegisterUseCase_Execute_InvalidEmail(t *testing.T) {
	useCase := NewRegisterUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), RegisterCommand{
		Name:     "Jane",
		Email:    "not-an-email",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
