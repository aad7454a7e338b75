package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-website-builder/internal/logger"
	"ai-website-builder/internal/metrics"
)

// RequestLogger writes one structured log line per request, tagged with the
// request ID. Server errors log at error level, client errors at warn.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := metrics.NewTimer()

		c.Next()

		status := c.Writer.Status()
		log := logger.WithRequestID(GetRequestID(c))
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("route", routeLabel(c)),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Int64("duration_ms", timer.Elapsed().Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.ErrorContext(c.Request.Context(), "Request completed", attrs...)
		case status >= http.StatusBadRequest:
			log.WarnContext(c.Request.Context(), "Request completed", attrs...)
		default:
			log.InfoContext(c.Request.Context(), "Request completed", attrs...)
		}
	}
}
