package persistent

import (
	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/model"
)

func ToVideoEntity(m *model.VideoModel) *entity.Video {
	if m == nil {
		return nil
	}

	duration := m.Duration
	if duration == "" {
		duration = "Unknown"
	}

	uploaderID := ""
	if m.UserID != nil {
		uploaderID = *m.UserID
	}

	return &entity.Video{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		ThumbnailURL: m.ThumbnailURL,
		VideoURL:     m.VideoURL,
		Source:       entity.VideoSource(m.SourceType),
		Duration:     duration,
		Category:     m.Category,
		IsPremium:    m.IsPremium,
		IsNew:        false,
		UploaderID:   uploaderID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToVideoModel(e *entity.Video) *model.VideoModel {
	if e == nil {
		return nil
	}

	var userID *string
	if e.UploaderID != "" {
		id := e.UploaderID
		userID = &id
	}

	return &model.VideoModel{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		ThumbnailURL: e.ThumbnailURL,
		VideoURL:     e.VideoURL,
		SourceType:   string(e.Source),
		Duration:     e.Duration,
		Category:     e.Category,
		IsPremium:    e.IsPremium,
		UserID:       userID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:           m.ID,
		Email:        m.Email,
		Password:     m.Password,
		Role:         entity.UserRole(m.Role),
		Subscription: entity.SubscriptionStatus(m.SubscriptionStatus),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToProfileModel(e *entity.Profile) *model.ProfileModel {
	if e == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:                 e.ID,
		Email:              e.Email,
		Password:           e.Password,
		Role:               string(e.Role),
		SubscriptionStatus: string(e.Subscription),
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
