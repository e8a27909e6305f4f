package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Company struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Industry   string    `gorm:"type:varchar(255)"`
	Notes      string    `gorm:"type:varchar(500)"`
	Status     string    `gorm:"type:varchar(20);not null;default:'エントリー前';index"`
	WebsiteURL *string   `gorm:"type:text"`
	Location   *string   `gorm:"type:varchar(10)"`

	// NextEventAt is computed by the list query (earliest upcoming event);
	// it is never written back.
	NextEventAt *time.Time `gorm:"->;-:migration" json:"-"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Company) TableName() string {
	return "companies"
}
