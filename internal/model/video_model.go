package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	VideoURL     string    `gorm:"column:video_url;not null" json:"video_url"`
	SourceType   string    `gorm:"column:source_type;type:varchar(10);not null;default:'link'" json:"source_type"`
	Duration     string    `gorm:"default:'Unknown'" json:"duration"`
	Category     string    `gorm:"index" json:"category"`
	IsPremium    bool      `gorm:"column:is_premium;default:false" json:"is_premium"`
	UserID       *string   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
