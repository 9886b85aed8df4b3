package ticket

import (
	"fmt"
	"time"

	vo "github.com/manideepv28/CustomerSupportPortal/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          uint
	code        string
	subject     string
	description string
	category    string
	priority    vo.Priority
	status      vo.Status
	userID      uint
	assigneeID  *uint
	attachments []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	subject string,
	description string,
	category string,
	priority vo.Priority,
	status vo.Status,
	userID uint,
	attachments []string,
) (*Ticket, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return nil, fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if len(category) == 0 {
		return nil, fmt.Errorf("category is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	if attachments == nil {
		attachments = []string{}
	}

	now := time.Now()

	return &Ticket{
		subject:     subject,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		userID:      userID,
		attachments: attachments,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	code string,
	subject string,
	description string,
	category string,
	priority vo.Priority,
	status vo.Status,
	userID uint,
	assigneeID *uint,
	attachments []string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	if attachments == nil {
		attachments = []string{}
	}

	return &Ticket{
		id:          id,
		code:        code,
		subject:     subject,
		description: description,
		category:    category,
		priority:    priority,
		status:      status,
		userID:      userID,
		assigneeID:  assigneeID,
		attachments: attachments,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Code() string {
	return t.code
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Attachments() []string {
	attachmentsCopy := make([]string, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetCode(code string) error {
	if len(t.code) > 0 {
		return fmt.Errorf("ticket code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("ticket code cannot be empty")
	}
	t.code = code
	return nil
}

func (t *Ticket) ChangeSubject(subject string) error {
	if len(subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(subject) > 200 {
		return fmt.Errorf("subject exceeds maximum length of 200 characters")
	}
	t.subject = subject
	t.touch()
	return nil
}

func (t *Ticket) ChangeDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	t.description = description
	t.touch()
	return nil
}

func (t *Ticket) ChangeCategory(category string) error {
	if len(category) == 0 {
		return fmt.Errorf("category is required")
	}
	t.category = category
	t.touch()
	return nil
}

func (t *Ticket) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	t.status = newStatus
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	t.priority = newPriority
	t.touch()
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &assigneeID
	t.touch()
	return nil
}

func (t *Ticket) Unassign() {
	t.assigneeID = nil
	t.touch()
}

func (t *Ticket) ReplaceAttachments(attachments []string) {
	if attachments == nil {
		attachments = []string{}
	}
	attachmentsCopy := make([]string, len(attachments))
	copy(attachmentsCopy, attachments)
	t.attachments = attachmentsCopy
	t.touch()
}

// touch refreshes updatedAt; every mutation goes through here so the
// timestamp is never stale relative to the record's content.
func (t *Ticket) touch() {
	t.updatedAt = time.Now()
}
