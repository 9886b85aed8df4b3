package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manideepv28/CustomerSupportPortal/internal/application/chat/usecases"
	"github.com/manideepv28/CustomerSupportPortal/internal/interfaces/dto"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/utils"
)

type Handler struct {
	sendMessageUC usecases.SendMessageExecutor
	getHistoryUC  usecases.GetHistoryExecutor
	logger        logger.Interface
}

func NewHandler(sendMessageUC usecases.SendMessageExecutor, getHistoryUC usecases.GetHistoryExecutor) *Handler {
	return &Handler{
		sendMessageUC: sendMessageUC,
		getHistoryUC:  getHistoryUC,
		logger:        logger.NewLogger(),
	}
}

type SendMessageRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send message", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		UserID:  req.UserID,
		Message: req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewChatMessageResponse(result))
}

func (h *Handler) GetHistory(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getHistoryUC.Execute(c.Request.Context(), usecases.GetHistoryQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewChatMessageResponses(result))
}
