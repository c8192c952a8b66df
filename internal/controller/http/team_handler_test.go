package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTeamUseCase is a mock implementation of TeamUseCase
type MockTeamUseCase struct {
	mock.Mock
}

func (m *MockTeamUseCase) ListUsers(ctx context.Context, search string) ([]*entity.Profile, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockTeamUseCase) SetRole(ctx context.Context, userID string, role entity.UserRole) (*entity.Profile, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

var _ usecase.TeamUseCase = (*MockTeamUseCase)(nil)

func TestListUsers_Success(t *testing.T) {
	mockTeam := new(MockTeamUseCase)
	handler := NewTeamHandler(mockTeam, new(MockDashboardUseCase), logger.New())

	router := setupTestRouter()
	router.GET("/admin/users", handler.ListUsers)

	users := []*entity.Profile{
		{ID: "u1", Email: "ana@example.com", Role: entity.RoleUser},
		{ID: "u2", Email: "bruno@example.com", Role: entity.RoleEditor},
	}
	mockTeam.On("ListUsers", mock.Anything, "ana").Return(users, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin/users?search=ana", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])
	mockTeam.AssertExpectations(t)
}

func TestSetRole_Promote(t *testing.T) {
	mockTeam := new(MockTeamUseCase)
	mockDashboard := new(MockDashboardUseCase)
	handler := NewTeamHandler(mockTeam, mockDashboard, logger.New())

	router := setupTestRouter()
	router.PUT("/admin/users/:id/role", handler.SetRole)

	updated := &entity.Profile{ID: "u1", Email: "ana@example.com", Role: entity.RoleEditor}
	mockTeam.On("SetRole", mock.Anything, "u1", entity.RoleEditor).Return(updated, nil)
	mockDashboard.On("RefreshStats", mock.Anything).Return(&usecase.Stats{}, nil)

	body := `{"role":"EDITOR"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/users/u1/role", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "EDITOR", response["role"])
	mockTeam.AssertExpectations(t)
	// The cached aggregate is recomputed after a confirmed role change.
	mockDashboard.AssertExpectations(t)
}

func TestSetRole_AdminRoleRejected(t *testing.T) {
	mockTeam := new(MockTeamUseCase)
	handler := NewTeamHandler(mockTeam, new(MockDashboardUseCase), logger.New())

	router := setupTestRouter()
	router.PUT("/admin/users/:id/role", handler.SetRole)

	// ADMIN is not an assignable role; binding rejects it before the
	// use case runs.
	body := `{"role":"ADMIN"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/users/u1/role", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockTeam.AssertNotCalled(t, "SetRole")
}

func TestSetRole_PolicyDenied(t *testing.T) {
	mockTeam := new(MockTeamUseCase)
	mockDashboard := new(MockDashboardUseCase)
	handler := NewTeamHandler(mockTeam, mockDashboard, logger.New())

	router := setupTestRouter()
	router.PUT("/admin/users/:id/role", handler.SetRole)

	mockTeam.On("SetRole", mock.Anything, "u1", entity.RoleEditor).Return(nil, errs.ErrPolicyDenied)

	body := `{"role":"EDITOR"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/admin/users/u1/role", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockTeam.AssertExpectations(t)
	mockDashboard.AssertNotCalled(t, "RefreshStats")
}
