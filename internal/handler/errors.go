package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-website-builder/internal/domain"
	"ai-website-builder/internal/logger"
	"ai-website-builder/internal/middleware"
)

// respondError maps service errors onto HTTP responses. Unexpected errors are
// logged and reported as "failed to <action>".
func respondError(c *gin.Context, err error, action string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  validationErr.Message,
			"fields": validationErr.Fields,
		})
	case errors.Is(err, domain.ErrWebsiteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgWebsiteNotFound})
	case errors.Is(err, domain.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgSectionNotFound})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).ErrorContext(c.Request.Context(),
			"Request failed",
			slog.String("action", action),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
	}
}
