package middleware

import (
	"github.com/gin-gonic/gin"

	"housing-prediction-api/internal/models"
)

// CORS middleware sets the fixed cross-origin headers on every response.
// Preflight requests are answered by the route registered for OPTIONS.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range models.CORSHeaders() {
			c.Header(k, v)
		}
		c.Next()
	}
}

// abortWithError writes the uniform error body used by the prediction pipeline
func abortWithError(c *gin.Context, status int, message string) {
	resp := models.NewErrorResponse(status, message)
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Data(resp.StatusCode, "application/json", []byte(resp.Body))
	c.Abort()
}
