package models

type ChatMessageModel struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	Message   string  `gorm:"type:text;not null"`
	Response  *string `gorm:"type:text"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
