package event

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CompanyID   *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Location    string     `gorm:"type:varchar(255);not null"`
	Notes       string     `gorm:"type:varchar(500)"`
	ScheduledAt time.Time  `gorm:"not null;index"`

	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Event) TableName() string {
	return "events"
}
