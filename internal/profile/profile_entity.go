package profile

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobHuntTypeNewGrad   = "new_grad"
	JobHuntTypeMidCareer = "mid_career"
)

// Profile shares its primary key with the auth user it belongs to.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	AvatarURL   *string   `gorm:"type:text"`
	JobHuntType *string   `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Profile) TableName() string {
	return "profiles"
}
