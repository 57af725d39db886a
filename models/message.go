package models

import "time"

// Message is immutable once created; there is no edit or delete path.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SenderID  string    `json:"sender_id" gorm:"type:varchar(36);index;not null"`
	Subject   string    `json:"subject"` // may be empty
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Sender User `gorm:"foreignKey:SenderID;references:ID" json:"-"`
}
