package usecase

import (
	"context"

	"github.com/otaviobrantes/lumen/internal/catalog"
	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/policy"
	"github.com/otaviobrantes/lumen/internal/repo/persistent"
	"github.com/otaviobrantes/lumen/pkg/logger"
)

type CatalogUseCase interface {
	LoadCatalog(ctx context.Context) []*entity.Video
	DailyPick(videos []*entity.Video) *entity.Video
	GetPlayback(ctx context.Context, videoID string, session *entity.Session) (*entity.Video, bool, error)
	ListActivities() []*entity.Activity
}

type catalogUseCase struct {
	videoRepo persistent.VideoRepository
	logger    *logger.Logger
}

func NewCatalogUseCase(videoRepo persistent.VideoRepository, logger *logger.Logger) CatalogUseCase {
	return &catalogUseCase{
		videoRepo: videoRepo,
		logger:    logger,
	}
}

// LoadCatalog reads the whole videos table. An errored or empty read
// substitutes the bundled dataset: a misconfigured backend must never
// render an empty catalog.
func (uc *catalogUseCase) LoadCatalog(ctx context.Context) []*entity.Video {
	videos, err := uc.videoRepo.List(ctx)
	if err != nil {
		uc.logger.Warn("Catalog read failed, serving bundled fallback: %v", err)
		return catalog.FallbackVideos
	}
	if len(videos) == 0 {
		uc.logger.Warn("Catalog is empty, serving bundled fallback")
		return catalog.FallbackVideos
	}
	return videos
}

// DailyPick is a fixed positional selection, not a recommendation engine.
func (uc *catalogUseCase) DailyPick(videos []*entity.Video) *entity.Video {
	if len(videos) == 0 {
		return nil
	}
	if len(videos) > 2 {
		return videos[2]
	}
	return videos[0]
}

// GetPlayback resolves a video and its lock state for the given session.
// Fallback-dataset ids remain playable when the table is empty.
func (uc *catalogUseCase) GetPlayback(ctx context.Context, videoID string, session *entity.Session) (*entity.Video, bool, error) {
	video, err := uc.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		for _, fallback := range catalog.FallbackVideos {
			if fallback.ID == videoID {
				video = fallback
				err = nil
				break
			}
		}
	}
	if err != nil {
		return nil, false, errs.ErrNotFound
	}

	return video, policy.IsPlaybackLocked(*video, session), nil
}

func (uc *catalogUseCase) ListActivities() []*entity.Activity {
	return catalog.Activities
}
