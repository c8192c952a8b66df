package http

import (
	"net/http"

	"github.com/otaviobrantes/lumen/internal/entity"
	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase   usecase.ContentUseCase
	dashboardUseCase usecase.DashboardUseCase
	logger           *logger.Logger
}

func NewContentHandler(contentUseCase usecase.ContentUseCase, dashboardUseCase usecase.DashboardUseCase, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentUseCase:   contentUseCase,
		dashboardUseCase: dashboardUseCase,
		logger:           logger,
	}
}

type VideoFormRequest struct {
	Title         string `form:"title"`
	Description   string `form:"description"`
	Category      string `form:"category"`
	Duration      string `form:"duration"`
	IsPremium     bool   `form:"is_premium"`
	UploadType    string `form:"upload_type" binding:"omitempty,oneof=link file"`
	ExternalLink  string `form:"external_link"`
	ThumbnailURL  string `form:"thumbnail_url"`
	AutoThumbnail bool   `form:"auto_thumbnail"`
}

func (h *ContentHandler) draftFromForm(c *gin.Context, id string) (*usecase.VideoDraft, error) {
	var req VideoFormRequest
	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}

	draft := &usecase.VideoDraft{
		ID:                    id,
		Title:                 req.Title,
		Description:           req.Description,
		Category:              req.Category,
		Duration:              req.Duration,
		IsPremium:             req.IsPremium,
		UploadType:            req.UploadType,
		ExternalLink:          req.ExternalLink,
		GeneratedThumbnailURL: req.ThumbnailURL,
		AutoThumbnail:         req.AutoThumbnail,
	}
	if draft.UploadType == "" {
		draft.UploadType = usecase.UploadTypeLink
	}

	// Both files are optional at the form level; the workflow decides
	// whether they are required.
	if file, err := c.FormFile("video"); err == nil {
		draft.VideoFile = file
	}
	if file, err := c.FormFile("thumbnail"); err == nil {
		draft.ThumbnailFile = file
	}

	return draft, nil
}

func (h *ContentHandler) sessionFromContext(c *gin.Context) *entity.Session {
	return &entity.Session{
		ID:   c.GetString("user_id"),
		Role: entity.UserRole(c.GetString("role")),
	}
}

// CreateVideo godoc
// @Summary      Publish a video
// @Description  Create a catalog entry from an external link or an uploaded file. A thumbnail is mandatory: an uploaded image, a generated cover URL, or a frame captured from the uploaded file.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        description formData string false "Description"
// @Param        category formData string true "Category"
// @Param        duration formData string false "Display duration"
// @Param        is_premium formData bool false "Premium flag"
// @Param        upload_type formData string false "Video origin (link or file)" Enums(link, file)
// @Param        external_link formData string false "External video link"
// @Param        thumbnail_url formData string false "Generated thumbnail URL"
// @Param        auto_thumbnail formData bool false "Capture the thumbnail from the uploaded file"
// @Param        video formData file false "Video file"
// @Param        thumbnail formData file false "Thumbnail image"
// @Success      201  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/videos [post]
func (h *ContentHandler) CreateVideo(c *gin.Context) {
	draft, err := h.draftFromForm(c, "")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.contentUseCase.Submit(c.Request.Context(), h.sessionFromContext(c), draft)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.refreshDashboard(c)
	c.JSON(http.StatusCreated, video)
}

// UpdateVideo godoc
// @Summary      Edit a video
// @Description  Update a catalog entry. Fields left empty keep their current values; the thumbnail is only replaced when a new one is provided.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/videos/{id} [put]
func (h *ContentHandler) UpdateVideo(c *gin.Context) {
	draft, err := h.draftFromForm(c, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.contentUseCase.Submit(c.Request.Context(), h.sessionFromContext(c), draft)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.refreshDashboard(c)
	c.JSON(http.StatusOK, video)
}

// DeleteVideo godoc
// @Summary      Delete a video
// @Description  Remove a catalog entry. The deletion is confirmed against the affected row count; a silently rejected delete reports a permission error.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Video ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/videos/{id} [delete]
func (h *ContentHandler) DeleteVideo(c *gin.Context) {
	if err := h.contentUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.refreshDashboard(c)
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

type LinkThumbnailRequest struct {
	Link string `json:"link" binding:"required"`
}

// LinkThumbnail godoc
// @Summary      Generate a thumbnail from a link
// @Description  Derive the cover image URL for an external video link without saving anything.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body LinkThumbnailRequest true "External video link"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /admin/thumbnails/link [post]
func (h *ContentHandler) LinkThumbnail(c *gin.Context) {
	var req LinkThumbnailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.contentUseCase.LinkThumbnail(req.Link)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"thumbnail_url": url})
}

// refreshDashboard recomputes the dashboard aggregate after a confirmed
// mutation. The mutation result stands even if the refresh fails.
func (h *ContentHandler) refreshDashboard(c *gin.Context) {
	if _, err := h.dashboardUseCase.RefreshStats(c.Request.Context()); err != nil {
		h.logger.Warn("Dashboard refresh failed: %v", err)
	}
}
