package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification stores per-user notification history.
type Notification struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	Type      string    `gorm:"type:varchar(50);not null;index"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Body      string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_notifications_user_created,priority:2"`
}

func (Notification) TableName() string {
	return "notifications"
}
