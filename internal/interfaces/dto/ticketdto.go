package dto

import (
	"time"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket"
)

type TicketResponse struct {
	ID          uint      `json:"id"`
	TicketID    string    `json:"ticketId"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	UserID      uint      `json:"userId"`
	AssigneeID  *uint     `json:"assigneeId"`
	Attachments []string  `json:"attachments"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewTicketResponse(t *ticket.Ticket) TicketResponse {
	attachments := t.Attachments()
	if attachments == nil {
		attachments = []string{}
	}

	return TicketResponse{
		ID:          t.ID(),
		TicketID:    t.Code(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Category:    t.Category(),
		Priority:    t.Priority().String(),
		Status:      t.Status().String(),
		UserID:      t.UserID(),
		AssigneeID:  t.AssigneeID(),
		Attachments: attachments,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func NewTicketResponses(tickets []*ticket.Ticket) []TicketResponse {
	responses := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, NewTicketResponse(t))
	}
	return responses
}

type ReplyResponse struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticketId"`
	UserID      uint      `json:"userId"`
	Message     string    `json:"message"`
	IsFromAgent bool      `json:"isFromAgent"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewReplyResponse(r *ticket.Reply) ReplyResponse {
	return ReplyResponse{
		ID:          r.ID(),
		TicketID:    r.TicketID(),
		UserID:      r.UserID(),
		Message:     r.Message(),
		IsFromAgent: r.IsFromAgent(),
		CreatedAt:   r.CreatedAt(),
	}
}

func NewReplyResponses(replies []*ticket.Reply) []ReplyResponse {
	responses := make([]ReplyResponse, 0, len(replies))
	for _, r := range replies {
		responses = append(responses, NewReplyResponse(r))
	}
	return responses
}
