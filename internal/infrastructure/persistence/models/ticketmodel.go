package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID          uint           `gorm:"primaryKey"`
	Code        string         `gorm:"uniqueIndex;size:50;not null"`
	Subject     string         `gorm:"size:200;not null"`
	Description string         `gorm:"type:text;not null"`
	Category    string         `gorm:"size:50;not null;index"`
	Priority    string         `gorm:"size:20;not null;index"`
	Status      string         `gorm:"size:20;not null;index"`
	UserID      uint           `gorm:"not null;index"`
	AssigneeID  *uint          `gorm:"index"`
	Attachments datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type ReplyModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	Message     string `gorm:"type:text;not null"`
	IsFromAgent bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ReplyModel) TableName() string {
	return "ticket_replies"
}
