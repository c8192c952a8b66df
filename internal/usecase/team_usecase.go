package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/repo/persistent"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	teamListLimit   = 50
	roleGuardTTL    = 30 * time.Second
	roleGuardPrefix = "inflight:role:"
)

// ErrRoleChangeInFlight rejects a second role change for the same user
// while the first is still running.
var ErrRoleChangeInFlight = fmt.Errorf("a role change for this user is already in progress")

// TeamUseCase manages staff membership. Only the USER and EDITOR roles are
// ever assigned through it; the ADMIN role can be neither granted nor
// revoked here.
type TeamUseCase interface {
	ListUsers(ctx context.Context, search string) ([]*entity.Profile, error)
	SetRole(ctx context.Context, userID string, role entity.UserRole) (*entity.Profile, error)
}

type teamUseCase struct {
	profileRepo persistent.ProfileRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewTeamUseCase(profileRepo persistent.ProfileRepository, redisClient *redis.Client, logger *logger.Logger) TeamUseCase {
	return &teamUseCase{
		profileRepo: profileRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *teamUseCase) ListUsers(ctx context.Context, search string) ([]*entity.Profile, error) {
	return uc.profileRepo.List(ctx, search, teamListLimit)
}

// SetRole promotes a user to EDITOR or demotes an editor back to USER.
// The update is confirmed against the affected row count, so a silently
// rejected write surfaces as a policy denial instead of a stale success.
func (uc *teamUseCase) SetRole(ctx context.Context, userID string, role entity.UserRole) (*entity.Profile, error) {
	if role != entity.RoleUser && role != entity.RoleEditor {
		return nil, errs.Validation("role")
	}

	target, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target.Role == entity.RoleAdmin {
		return nil, errs.ErrPolicyDenied
	}

	release, err := uc.acquireRoleGuard(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := uc.profileRepo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}

	target.Role = role
	return target, nil
}

// acquireRoleGuard takes the per-user guard so concurrent changes to
// different users stay independent.
func (uc *teamUseCase) acquireRoleGuard(ctx context.Context, userID string) (func(), error) {
	key := roleGuardPrefix + userID

	ok, err := uc.redisClient.SetNX(ctx, key, "1", roleGuardTTL).Result()
	if err != nil {
		uc.logger.Warn("Role guard unavailable: %v", err)
		return func() {}, nil
	}
	if !ok {
		return nil, ErrRoleChangeInFlight
	}
	return func() {
		uc.redisClient.Del(context.Background(), key)
	}, nil
}
