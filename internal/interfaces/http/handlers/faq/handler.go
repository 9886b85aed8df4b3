package faq

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manideepv28/CustomerSupportPortal/internal/application/faq/usecases"
	"github.com/manideepv28/CustomerSupportPortal/internal/interfaces/dto"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/logger"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/services/markdown"
	"github.com/manideepv28/CustomerSupportPortal/internal/shared/utils"
)

type Handler struct {
	listFAQsUC usecases.ListFAQsExecutor
	markdown   markdown.Service
	logger     logger.Interface
}

func NewHandler(listFAQsUC usecases.ListFAQsExecutor, markdownSvc markdown.Service) *Handler {
	return &Handler{
		listFAQsUC: listFAQsUC,
		markdown:   markdownSvc,
		logger:     logger.NewLogger(),
	}
}

func (h *Handler) ListFAQs(c *gin.Context) {
	query := usecases.ListFAQsQuery{
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}

	result, err := h.listFAQsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]dto.FAQResponse, 0, len(result))
	for _, f := range result {
		answerHTML, err := h.markdown.ToHTMLSanitized(f.Answer())
		if err != nil {
			h.logger.Warnw("failed to render faq answer", "faq_id", f.ID(), "error", err)
			answerHTML = ""
		}
		responses = append(responses, dto.NewFAQResponse(f, answerHTML))
	}

	utils.SuccessResponse(c, http.StatusOK, responses)
}
