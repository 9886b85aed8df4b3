package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manideepv28/CustomerSupportPortal/internal/application/ticket/usecases"
	"github.com/manideepv28/CustomerSupportPortal/internal/interfaces/dto"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/utils"
)

type Handler struct {
	createTicketUC    usecases.CreateTicketExecutor
	updateTicketUC    usecases.UpdateTicketExecutor
	getTicketUC       usecases.GetTicketExecutor
	getTicketByCodeUC usecases.GetTicketByCodeExecutor
	listTicketsUC     usecases.ListTicketsExecutor
	addReplyUC        usecases.AddReplyExecutor
	listRepliesUC     usecases.ListRepliesExecutor
	logger            logger.Interface
}

func NewHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	getTicketByCodeUC usecases.GetTicketByCodeExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addReplyUC usecases.AddReplyExecutor,
	listRepliesUC usecases.ListRepliesExecutor,
) *Handler {
	return &Handler{
		createTicketUC:    createTicketUC,
		updateTicketUC:    updateTicketUC,
		getTicketUC:       getTicketUC,
		getTicketByCodeUC: getTicketByCodeUC,
		listTicketsUC:     listTicketsUC,
		addReplyUC:        addReplyUC,
		listRepliesUC:     listRepliesUC,
		logger:            logger.NewLogger(),
	}
}

type CreateTicketRequest struct {
	Subject     string   `json:"subject" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Priority    string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      string   `json:"status" binding:"omitempty,oneof=open in-progress resolved closed"`
	Attachments []string `json:"attachments"`
	UserID      uint     `json:"userId"`
}

// UpdateTicketRequest carries a partial ticket update; absent fields are
// left unchanged.
type UpdateTicketRequest struct {
	Subject     *string   `json:"subject"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Priority    *string   `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status      *string   `json:"status" binding:"omitempty,oneof=open in-progress resolved closed"`
	AssigneeID  *uint     `json:"assigneeId"`
	Attachments *[]string `json:"attachments"`
}

type AddReplyRequest struct {
	UserID      uint   `json:"userId" binding:"required"`
	Message     string `json:"message" binding:"required"`
	IsFromAgent bool   `json:"isFromAgent"`
}

func (h *Handler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
		Attachments: req.Attachments,
		UserID:      req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewTicketResponse(result))
}

func (h *Handler) UpdateTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", id, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    id,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
		AssigneeID:  req.AssigneeID,
		Attachments: req.Attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewTicketResponse(result))
}

func (h *Handler) GetTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewTicketResponse(result))
}

func (h *Handler) GetTicketByCode(c *gin.Context) {
	code := c.Param("code")

	result, err := h.getTicketByCodeUC.Execute(c.Request.Context(), usecases.GetTicketByCodeQuery{Code: code})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewTicketResponse(result))
}

func (h *Handler) ListTickets(c *gin.Context) {
	userID, err := utils.ParseOptionalUintQuery(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewTicketResponses(result))
}

func (h *Handler) AddReply(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add reply", "ticket_id", ticketID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.addReplyUC.Execute(c.Request.Context(), usecases.AddReplyCommand{
		TicketID:    ticketID,
		UserID:      req.UserID,
		Message:     req.Message,
		IsFromAgent: req.IsFromAgent,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewReplyResponse(result))
}

func (h *Handler) ListReplies(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listRepliesUC.Execute(c.Request.Context(), usecases.ListRepliesQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.NewReplyResponses(result))
}
