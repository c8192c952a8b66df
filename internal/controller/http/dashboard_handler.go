package http

import (
	"net/http"

	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

// GetStats godoc
// @Summary      Dashboard statistics
// @Description  Return the video count, user count and the ten most recent videos with uploader emails.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.Stats
// @Failure      403  {object}  map[string]string
// @Router       /admin/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardUseCase.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
