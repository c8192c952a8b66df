package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/repo/persistent"
	"github.com/otaviobrantes/lumen/pkg/jwt"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

func sessionKey(userID string) string {
	return fmt.Sprintf("session:%s", userID)
}

type AuthUseCase interface {
	Register(ctx context.Context, email, password string) (*entity.Session, string, error)
	Login(ctx context.Context, email, password string) (*entity.Session, string, error)
	Logout(ctx context.Context, userID string) error
	GetSession(ctx context.Context, userID string) (*entity.Session, error)
}

type authUseCase struct {
	profileRepo persistent.ProfileRepository
	jwtService  *jwt.Service
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewAuthUseCase(
	profileRepo persistent.ProfileRepository,
	jwtService *jwt.Service,
	redisClient *redis.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		profileRepo: profileRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, email, password string) (*entity.Session, string, error) {
	if len(password) < 6 {
		return nil, "", errs.Auth(errs.AuthWeakPassword)
	}

	_, err := uc.profileRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, "", errs.Auth(errs.AuthAlreadyRegistered)
	}
	if !errors.Is(err, errs.ErrNotFound) {
		uc.logger.Error("Failed to check existing profile: %v", err)
		return nil, "", errs.Auth(errs.AuthConnectivity)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	profile := &entity.Profile{
		Email:        email,
		Password:     string(hashedPassword),
		Role:         entity.RoleUser,
		Subscription: entity.SubscriptionInactive,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		uc.logger.Error("Failed to create profile: %v", err)
		return nil, "", errs.Auth(errs.AuthConnectivity)
	}

	return uc.openSession(ctx, profile)
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.Session, string, error) {
	profile, err := uc.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, "", errs.Auth(errs.AuthInvalidCredentials)
		}
		uc.logger.Error("Failed to load profile: %v", err)
		return nil, "", errs.Auth(errs.AuthConnectivity)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.Password), []byte(password)); err != nil {
		return nil, "", errs.Auth(errs.AuthInvalidCredentials)
	}

	return uc.openSession(ctx, profile)
}

// openSession issues the token and writes the session snapshot. Login and
// logout are the only writers of the snapshot; everything else reads it.
func (uc *authUseCase) openSession(ctx context.Context, profile *entity.Profile) (*entity.Session, string, error) {
	token, err := uc.jwtService.GenerateToken(profile.ID, string(profile.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	session := &entity.Session{
		ID:           profile.ID,
		Name:         profile.DisplayName(),
		Email:        profile.Email,
		Role:         profile.Role,
		Subscription: profile.Subscription,
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := uc.redisClient.Set(ctx, sessionKey(profile.ID), payload, sessionTTL).Err(); err != nil {
		uc.logger.Warn("Failed to persist session snapshot: %v", err)
	}

	return session, token, nil
}

func (uc *authUseCase) Logout(ctx context.Context, userID string) error {
	if err := uc.redisClient.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// GetSession reads the stored snapshot. On a cache miss the snapshot is
// rebuilt from the profile row so a redis restart does not log everyone
// out before their token expires.
func (uc *authUseCase) GetSession(ctx context.Context, userID string) (*entity.Session, error) {
	payload, err := uc.redisClient.Get(ctx, sessionKey(userID)).Bytes()
	if err == nil {
		var session entity.Session
		if err := json.Unmarshal(payload, &session); err == nil {
			return &session, nil
		}
	}

	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		ID:           profile.ID,
		Name:         profile.DisplayName(),
		Email:        profile.Email,
		Role:         profile.Role,
		Subscription: profile.Subscription,
	}

	if raw, err := json.Marshal(session); err == nil {
		uc.redisClient.Set(ctx, sessionKey(userID), raw, sessionTTL)
	}

	return session, nil
}
