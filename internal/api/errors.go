package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ev-storefront/internal/domain"
	"ev-storefront/pkg/logger"
)

// errorStatus maps a service error to its HTTP status and payload. Credential
// and persistence failures are reported without detail.
func errorStatus(err error) (int, ErrorResponse) {
	var missing *domain.MissingSelectionError
	var unknown *domain.UnknownOptionError

	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest, ErrorResponse{Error: missing.Error(), Group: string(missing.Group)}
	case errors.As(err, &unknown):
		return http.StatusBadRequest, ErrorResponse{Error: unknown.Error(), Group: string(unknown.Group), Option: unknown.Name}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Error: "No token, authorization denied"}
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized, ErrorResponse{Error: "Token is not valid"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "Product not found"}
	case errors.Is(err, domain.ErrPersistence):
		return http.StatusInternalServerError, ErrorResponse{Error: "Order failed"}
	case errors.Is(err, domain.ErrInvalidRegistration):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, ErrorResponse{Error: "Email already registered"}
	case errors.Is(err, domain.ErrInvalidLogin):
		return http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status, body := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.log.WithContext(c.Request.Context()).Error("request failed",
			logger.String("path", c.FullPath()),
			logger.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, body)
}
