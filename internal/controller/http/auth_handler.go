package http

import (
	"net/http"

	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      Register a new account
// @Description  Create an account with email and password. New accounts start with the USER role and an INACTIVE subscription.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Credentials"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, token, err := h.authUseCase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session, "token": token})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password and receive a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body CredentialsRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session, "token": token})
}

// Logout godoc
// @Summary      Log out
// @Description  Discard the server-side session snapshot for the caller.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.authUseCase.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetSession godoc
// @Summary      Get the current session
// @Description  Return the caller's session with role and subscription status.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Session
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := h.authUseCase.GetSession(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
