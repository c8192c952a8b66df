package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDashboardUseCase is a mock implementation of DashboardUseCase
type MockDashboardUseCase struct {
	mock.Mock
}

func (m *MockDashboardUseCase) GetStats(ctx context.Context) (*usecase.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Stats), args.Error(1)
}

func (m *MockDashboardUseCase) RefreshStats(ctx context.Context) (*usecase.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Stats), args.Error(1)
}

var _ usecase.DashboardUseCase = (*MockDashboardUseCase)(nil)

func TestGetStats_Success(t *testing.T) {
	mockDashboard := new(MockDashboardUseCase)
	handler := NewDashboardHandler(mockDashboard, logger.New())

	router := setupTestRouter()
	router.GET("/admin/stats", handler.GetStats)

	stats := &usecase.Stats{
		VideoCount: 12,
		UserCount:  40,
		RecentVideos: []*entity.Video{
			{ID: "v1", Title: "A Arca de Noé", UploaderEmail: "editor@example.com"},
		},
	}
	mockDashboard.On("GetStats", mock.Anything).Return(stats, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/stats", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(12), response["video_count"])
	assert.Equal(t, float64(40), response["user_count"])
	mockDashboard.AssertExpectations(t)
}
