package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) LoadCatalog(ctx context.Context) []*entity.Video {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.Video)
}

func (m *MockCatalogUseCase) DailyPick(videos []*entity.Video) *entity.Video {
	args := m.Called(videos)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*entity.Video)
}

func (m *MockCatalogUseCase) GetPlayback(ctx context.Context, videoID string, session *entity.Session) (*entity.Video, bool, error) {
	args := m.Called(ctx, videoID, session)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*entity.Video), args.Bool(1), args.Error(2)
}

func (m *MockCatalogUseCase) ListActivities() []*entity.Activity {
	args := m.Called()
	return args.Get(0).([]*entity.Activity)
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

func TestListVideos_Success(t *testing.T) {
	mockCatalog := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockCatalog, nil, logger.New())

	router := setupTestRouter()
	router.GET("/videos", handler.ListVideos)

	videos := []*entity.Video{
		{ID: "v1", Title: "A Arca de Noé"},
		{ID: "v2", Title: "Davi e Golias"},
	}
	mockCatalog.On("LoadCatalog", mock.Anything).Return(videos)
	mockCatalog.On("DailyPick", videos).Return(videos[0])

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])
	assert.NotNil(t, response["daily_pick"])
	mockCatalog.AssertExpectations(t)
}

func TestGetPlayback_Locked(t *testing.T) {
	mockCatalog := new(MockCatalogUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewCatalogHandler(mockCatalog, mockAuth, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id/playback", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetPlayback(c)
	})

	session := &entity.Session{ID: "user-123", Role: entity.RoleUser, Subscription: entity.SubscriptionInactive}
	video := &entity.Video{ID: "v1", Title: "Premium Title", IsPremium: true}

	mockAuth.On("GetSession", mock.Anything, "user-123").Return(session, nil)
	mockCatalog.On("GetPlayback", mock.Anything, "v1", session).Return(video, true, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/v1/playback", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["locked"])
	mockCatalog.AssertExpectations(t)
	mockAuth.AssertExpectations(t)
}

func TestGetPlayback_NotFound(t *testing.T) {
	mockCatalog := new(MockCatalogUseCase)
	mockAuth := new(MockAuthUseCase)
	handler := NewCatalogHandler(mockCatalog, mockAuth, logger.New())

	router := setupTestRouter()
	router.GET("/videos/:id/playback", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.GetPlayback(c)
	})

	session := &entity.Session{ID: "user-123", Role: entity.RoleUser}
	mockAuth.On("GetSession", mock.Anything, "user-123").Return(session, nil)
	mockCatalog.On("GetPlayback", mock.Anything, "missing", session).Return(nil, false, errs.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/videos/missing/playback", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockCatalog.AssertExpectations(t)
}

func TestListActivities_Success(t *testing.T) {
	mockCatalog := new(MockCatalogUseCase)
	handler := NewCatalogHandler(mockCatalog, nil, logger.New())

	router := setupTestRouter()
	router.GET("/activities", handler.ListActivities)

	activities := []*entity.Activity{
		{ID: "a1", Title: "Desenhos para Colorir", Type: entity.ActivityColoring},
	}
	mockCatalog.On("ListActivities").Return(activities)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/activities", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(1), response["count"])
	mockCatalog.AssertExpectations(t)
}
