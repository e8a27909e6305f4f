package jobapplication

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobApplication struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(50);not null"`
	AppliedAt *time.Time
	Notes     string `gorm:"type:varchar(500)"`

	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
