package http

import (
	"net/http"

	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	authUseCase    usecase.AuthUseCase
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, authUseCase usecase.AuthUseCase, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		authUseCase:    authUseCase,
		logger:         logger,
	}
}

// ListVideos godoc
// @Summary      Browse the catalog
// @Description  List all videos plus the daily featured pick. Falls back to the built-in catalog when the database is empty or unreachable.
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /videos [get]
func (h *CatalogHandler) ListVideos(c *gin.Context) {
	videos := h.catalogUseCase.LoadCatalog(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"videos":     videos,
		"daily_pick": h.catalogUseCase.DailyPick(videos),
		"count":      len(videos),
	})
}

// GetPlayback godoc
// @Summary      Resolve playback for a video
// @Description  Return the video together with its lock state for the caller. Premium titles are locked unless the caller is an admin or holds an active subscription.
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id}/playback [get]
func (h *CatalogHandler) GetPlayback(c *gin.Context) {
	videoID := c.Param("id")
	userID := c.GetString("user_id")

	session, err := h.authUseCase.GetSession(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	video, locked, err := h.catalogUseCase.GetPlayback(c.Request.Context(), videoID, session)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"video": video, "locked": locked})
}

// ListActivities godoc
// @Summary      List kids activities
// @Description  List the printable and interactive activities of the kids section.
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /activities [get]
func (h *CatalogHandler) ListActivities(c *gin.Context) {
	activities := h.catalogUseCase.ListActivities()
	c.JSON(http.StatusOK, gin.H{"activities": activities, "count": len(activities)})
}
