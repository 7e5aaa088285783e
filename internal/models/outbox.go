package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutboxMessage is a broker message recorded before delivery is attempted.
// Rows are deleted once the broker accepts the message.
type OutboxMessage struct {
	ID        string    `gorm:"primaryKey"`
	Topic     string    `gorm:"not null"`
	Key       string    `gorm:"index"`
	Payload   []byte    `gorm:"not null"`
	Attempts  int       `gorm:"not null;default:0"`
	LastError string
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (m *OutboxMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	return
}
