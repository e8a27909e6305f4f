package todo

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Todo struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CompanyID *uuid.UUID `gorm:"type:uuid;index"`
	TaskName  string     `gorm:"type:varchar(255);not null"`
	Notes     string     `gorm:"type:varchar(500)"`
	DueDate   *time.Time
	Completed bool `gorm:"not null;default:false"`

	// SourceEventID links a reminder todo back to the event that spawned it.
	// The unique index makes reminder creation idempotent under redelivery.
	SourceEventID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_todo_source_event"`

	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Todo) TableName() string {
	return "todos"
}
