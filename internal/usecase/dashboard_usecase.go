package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/repo/persistent"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	statsCacheKey = "stats:dashboard"
	statsCacheTTL = 60 * time.Second
	recentLimit   = 10
)

// Stats is the admin dashboard aggregate.
type Stats struct {
	VideoCount   int64           `json:"video_count"`
	UserCount    int64           `json:"user_count"`
	RecentVideos []*entity.Video `json:"recent_videos"`
}

// DashboardUseCase serves the staff dashboard aggregates. Refresh runs
// only after a confirmed mutation or on an explicit request, never on a
// timer.
type DashboardUseCase interface {
	GetStats(ctx context.Context) (*Stats, error)
	RefreshStats(ctx context.Context) (*Stats, error)
}

type dashboardUseCase struct {
	videoRepo   persistent.VideoRepository
	profileRepo persistent.ProfileRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewDashboardUseCase(
	videoRepo persistent.VideoRepository,
	profileRepo persistent.ProfileRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) DashboardUseCase {
	return &dashboardUseCase{
		videoRepo:   videoRepo,
		profileRepo: profileRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetStats returns the cached aggregate when fresh and recomputes it
// otherwise.
func (uc *dashboardUseCase) GetStats(ctx context.Context) (*Stats, error) {
	cached, err := uc.redisClient.Get(ctx, statsCacheKey).Result()
	if err == nil {
		var stats Stats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	return uc.RefreshStats(ctx)
}

// RefreshStats recomputes the aggregate from the database and replaces
// the cached copy.
func (uc *dashboardUseCase) RefreshStats(ctx context.Context) (*Stats, error) {
	videoCount, err := uc.videoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	userCount, err := uc.profileRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.videoRepo.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		VideoCount:   videoCount,
		UserCount:    userCount,
		RecentVideos: recent,
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := uc.redisClient.Set(ctx, statsCacheKey, data, statsCacheTTL).Err(); err != nil {
			uc.logger.Warn("Failed to cache dashboard stats: %v", err)
		}
	}

	return stats, nil
}
