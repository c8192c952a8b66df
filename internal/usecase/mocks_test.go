package usecase

import (
	"context"
	"io"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockVideoRepository is a mock implementation of persistent.VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *entity.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context) ([]*entity.Video, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, video *entity.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoRepository) Recent(ctx context.Context, limit int) ([]*entity.Video, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Video), args.Error(1)
}

var _ persistent.VideoRepository = (*MockVideoRepository)(nil)

// MockProfileRepository is a mock implementation of persistent.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) List(ctx context.Context, search string, limit int) ([]*entity.Profile, error) {
	args := m.Called(ctx, search, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateRole(ctx context.Context, id string, role entity.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockProfileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.ProfileRepository = (*MockProfileRepository)(nil)

// MockStorage is a mock implementation of Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeleteFile(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

var _ Storage = (*MockStorage)(nil)

// MockFrameExtractor is a mock implementation of FrameExtractor
type MockFrameExtractor struct {
	mock.Mock
}

func (m *MockFrameExtractor) CaptureFrame(ctx context.Context, source string) (string, error) {
	args := m.Called(ctx, source)
	return args.String(0), args.Error(1)
}

func (m *MockFrameExtractor) ProbeDuration(ctx context.Context, source string) (string, error) {
	args := m.Called(ctx, source)
	return args.String(0), args.Error(1)
}

var _ FrameExtractor = (*MockFrameExtractor)(nil)

// testRedis returns a client pointing at a closed port. Cache operations
// fail fast and the code paths under test degrade the way they do during
// a real outage.
func testRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}
