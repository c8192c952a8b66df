package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileModel struct {
	ID                 string    `gorm:"type:uuid;primary_key" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	Password           string    `gorm:"not null" json:"-"`
	Role               string    `gorm:"type:varchar(10);not null;default:'USER'" json:"role"`
	SubscriptionStatus string    `gorm:"column:subscription_status;type:varchar(10);not null;default:'INACTIVE'" json:"subscription_status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
