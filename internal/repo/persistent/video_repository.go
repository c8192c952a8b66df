package persistent

import (
	"context"
	"errors"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	List(ctx context.Context) ([]*entity.Video, error)
	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*entity.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}

	if err := r.db.WithContext(ctx).Create(videoModel).Error; err != nil {
		return err
	}

	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&videoModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) List(ctx context.Context) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

// Update writes the mutable columns of a video row by id. The update asks
// the database for the affected-row count: a policy can reject the write
// silently, and a nil error with zero rows must not pass for success.
func (r *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	result := r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(map[string]interface{}{
			"title":         video.Title,
			"description":   video.Description,
			"category":      video.Category,
			"video_url":     video.VideoURL,
			"thumbnail_url": video.ThumbnailURL,
			"source_type":   string(video.Source),
			"duration":      video.Duration,
			"is_premium":    video.IsPremium,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrPolicyDenied
	}
	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VideoModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrPolicyDenied
	}
	return nil
}

func (r *videoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.VideoModel{}).Count(&count).Error
	return count, err
}

type recentVideoRow struct {
	model.VideoModel
	UploaderEmail string `gorm:"column:uploader_email"`
}

// Recent returns the newest rows with the uploader email resolved via a
// join. When the join cannot be satisfied it degrades to a flat read plus
// one bounded lookup per row, never an unbounded scan.
func (r *videoRepository) Recent(ctx context.Context, limit int) ([]*entity.Video, error) {
	var rows []recentVideoRow
	err := r.db.WithContext(ctx).Model(&model.VideoModel{}).
		Select("videos.*, profiles.email AS uploader_email").
		Joins("LEFT JOIN profiles ON profiles.id = videos.user_id").
		Order("videos.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err == nil {
		videos := make([]*entity.Video, len(rows))
		for i := range rows {
			v := ToVideoEntity(&rows[i].VideoModel)
			v.UploaderEmail = rows[i].UploaderEmail
			videos[i] = v
		}
		return videos, nil
	}

	// Join unavailable: flat read, then resolve emails row by row.
	var videoModels []model.VideoModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		v := ToVideoEntity(&videoModels[i])
		if v.UploaderID != "" {
			var profile model.ProfileModel
			if err := r.db.WithContext(ctx).Select("email").Where("id = ?", v.UploaderID).First(&profile).Error; err == nil {
				v.UploaderEmail = profile.Email
			}
		}
		videos[i] = v
	}
	return videos, nil
}
