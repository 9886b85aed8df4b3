package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manideepv28/CustomerSupportPortal/internal/application/user/usecases"
	domain "github.com/manideepv28/CustomerSupportPortal/internal/domain/user"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/errors"
)

type mockGetUserExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetUserQuery) (*domain.User, error)
}

func (m *mockGetUserExecutor) Execute(ctx context.Context, query usecases.GetUserQuery) (*domain.User, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockUpdateUserExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateUserCommand) (*domain.User, error)
}

func (m *mockUpdateUserExecutor) Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*domain.User, error) {
	return m.ExecuteFunc(ctx, cmd)
}

func setupRouter(get usecases.GetUserExecutor, update usecases.UpdateUserExecutor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(get, update)
	router := gin.New()
	router.GET("/api/users/:id", handler.GetUser)
	router.PUT("/api/users/:id", handler.UpdateUser)
	return router
}

func sampleUser(t *testing.T) *domain.User {
	t.Helper()

	u, err := domain.NewUser("John Doe", "john.doe@example.com", "hash", false)
	require.NoError(t, err)
	require.NoError(t, u.SetID(2))
	return u
}

func TestHandler_GetUser(t *testing.T) {
	getUC := &mockGetUserExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.GetUserQuery) (*domain.User, error) {
			assert.Equal(t, uint(2), query.UserID)
			return sampleUser(t), nil
		},
	}
	router := setupRouter(getUC, &mockUpdateUserExecutor{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/2", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["id"])
	assert.Equal(t, "john.doe@example.com", body["email"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "passwordHash")
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	getUC := &mockGetUserExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.GetUserQuery) (*domain.User, error) {
			return nil, errors.NewNotFoundError("User not found")
		},
	}
	router := setupRouter(getUC, &mockUpdateUserExecutor{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/99", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "User not found", body["message"])
}

func TestHandler_UpdateUser_Partial(t *testing.T) {
	updateUC := &mockUpdateUserExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.UpdateUserCommand) (*domain.User, error) {
			assert.Equal(t, uint(2), cmd.UserID)
			require.NotNil(t, cmd.Name)
			assert.Equal(t, "Johnny Doe", *cmd.Name)
			assert.Nil(t, cmd.Email)
			assert.Nil(t, cmd.Password)

			u := sampleUser(t)
			require.NoError(t, u.Rename("Johnny Doe"))
			return u, nil
		},
	}
	router := setupRouter(&mockGetUserExecutor{}, updateUC)

	payload, err := json.Marshal(gin.H{"name": "Johnny Doe"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/2", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Johnny Doe", body["name"])
}

func TestHandler_UpdateUser_InvalidEmail(t *testing.T) {
	router := setupRouter(&mockGetUserExecutor{}, &mockUpdateUserExecutor{})

	payload, err := json.Marshal(gin.H{"email": "not-an-email"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/2", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
