package dto

import (
	"time"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/faq"
)

type FAQResponse struct {
	ID         uint      `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	AnswerHTML string    `json:"answerHtml,omitempty"`
	Category   string    `json:"category"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewFAQResponse(f *faq.FAQ, answerHTML string) FAQResponse {
	return FAQResponse{
		ID:         f.ID(),
		Question:   f.Question(),
		Answer:     f.Answer(),
		AnswerHTML: answerHTML,
		Category:   f.Category(),
		IsActive:   f.IsActive(),
		CreatedAt:  f.CreatedAt(),
	}
}
