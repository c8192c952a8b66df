package http

import (
	"net/http"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamUseCase      usecase.TeamUseCase
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewTeamHandler(teamUseCase usecase.TeamUseCase, dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *TeamHandler {
	return &TeamHandler{
		teamUseCase:      teamUseCase,
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// ListUsers godoc
// @Summary      List platform users
// @Description  List users for team management, optionally filtered by email substring.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Email filter"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *TeamHandler) ListUsers(c *gin.Context) {
	users, err := h.teamUseCase.ListUsers(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=USER EDITOR"`
}

// SetRole godoc
// @Summary      Change a user's role
// @Description  Promote a user to EDITOR or demote an editor back to USER. The ADMIN role can be neither granted nor revoked.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body SetRoleRequest true "New role"
// @Success      200  {object}  entity.Profile
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/role [put]
func (h *TeamHandler) SetRole(c *gin.Context) {
	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.teamUseCase.SetRole(c.Request.Context(), c.Param("id"), entity.UserRole(req.Role))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// A role change shifts the aggregate counts; recompute them before the
	// cached snapshot expires. The mutation result stands even if it fails.
	if _, err := h.dashboardUseCase.RefreshStats(c.Request.Context()); err != nil {
		h.logger.Warn("Dashboard refresh failed: %v", err)
	}

	c.JSON(http.StatusOK, profile)
}
