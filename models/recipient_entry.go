package models

import "time"

// RecipientEntry is the delivery record of one Message to one recipient.
// One row per (message, recipient) pair; read_state only ever moves
// unread -> read.
type RecipientEntry struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	MessageID   string     `json:"message_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_entry_message_recipient"`
	RecipientID string     `json:"recipient_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_entry_message_recipient"`
	IsRead      bool       `json:"read" gorm:"column:read_state;not null;default:false"`
	ReadAt      *time.Time `json:"read_at" gorm:"default:NULL"` // 允许 NULL
	CreatedAt   time.Time  `json:"created_at"`

	Message   Message `gorm:"foreignKey:MessageID;references:ID" json:"-"`
	Recipient User    `gorm:"foreignKey:RecipientID;references:ID" json:"-"`
}
