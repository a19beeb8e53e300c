package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"housing-prediction-api/internal/metrics"
)

// Metrics records request counts and latency by route
func Metrics(recorder *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		recorder.ObserveHTTP(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
