package http

import (
	"errors"
	"net/http"

	"github.com/otaviobrantes/lumen/internal/errs"
	"github.com/otaviobrantes/lumen/internal/usecase"
	"github.com/otaviobrantes/lumen/pkg/logger"

	"github.com/gin-gonic/gin"
)

// policyDeniedMessage is shown when a write was silently rejected by a
// row policy. It asks the user to re-authenticate rather than pretending
// the write succeeded.
const policyDeniedMessage = "Erro de permissão. Tente fazer login novamente."

// respondError maps domain errors to HTTP statuses. Unknown errors are
// logged and masked as a plain 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var validationErr *errs.ValidationError
	var authErr *errs.AuthError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &authErr):
		status := http.StatusUnauthorized
		switch authErr.Kind {
		case errs.AuthAlreadyRegistered:
			status = http.StatusConflict
		case errs.AuthWeakPassword:
			status = http.StatusBadRequest
		case errs.AuthConnectivity:
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": authErr.Message()})
	case errors.Is(err, errs.ErrPolicyDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": policyDeniedMessage})
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, errs.ErrInvalidLink):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrSubmissionInFlight), errors.Is(err, usecase.ErrRoleChangeInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrUpload):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrThumbnailCapture):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		log.Error("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
