// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ai-website-builder/internal/metrics"
)

const unmatchedRoute = "unmatched"

// routeLabel returns the registered route pattern so that website ids in the
// path do not explode label cardinality.
func routeLabel(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return unmatchedRoute
}

// Metrics records request count, latency and in-flight requests per route.
// The /metrics endpoint itself is not recorded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		timer := metrics.NewTimer()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		route := routeLabel(c)
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		timer.ObserveDuration(metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route))
	}
}
