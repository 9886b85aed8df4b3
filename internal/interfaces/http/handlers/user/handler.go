package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manideepv28/CustomerSupportPortal/internal/application/user/usecases"
	"github.com/manideepv28/CustomerSupportPortal/internal/interfaces/dto"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/utils"
)

type Handler struct {
	getUserUC    usecases.GetUserExecutor
	updateUserUC usecases.UpdateUserExecutor
	logger       logger.Interface
}

func NewHandler(getUserUC usecases.GetUserExecutor, updateUserUC usecases.UpdateUserExecutor) *Handler {
	return &Handler{
		getUserUC:    getUserUC,
		updateUserUC: updateUserUC,
		logger:       logger.NewLogger(),
	}
}

// UpdateUserRequest carries a partial profile update; absent fields are
// left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewUserResponse(result))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update user", "user_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID:   id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewUserResponse(result))
}
