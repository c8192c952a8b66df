package http

import (
	"net/http"

	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantUseCase usecase.AssistantUseCase
	logger           *logger.Logger
}

func NewAssistantHandler(assistantUseCase usecase.AssistantUseCase, logger *logger.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
		logger:           logger,
	}
}

type AssistantMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// SendMessage godoc
// @Summary      Talk to the spiritual guide
// @Description  Send a message to the assistant and receive its reply. The assistant always answers; on failure it apologizes instead of erroring.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AssistantMessageRequest true "Message"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /assistant/messages [post]
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	var req AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	reply := h.assistantUseCase.SendMessage(c.Request.Context(), userID, req.Message)

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// StartSession godoc
// @Summary      Start a fresh assistant conversation
// @Description  Discard the caller's conversation; the next message starts a new one.
// @Tags         assistant
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /assistant/session [post]
func (h *AssistantHandler) StartSession(c *gin.Context) {
	h.assistantUseCase.Reset(c.GetString("user_id"))
	c.JSON(http.StatusOK, gin.H{"message": "Conversation reset"})
}
