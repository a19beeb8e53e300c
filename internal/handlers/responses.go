package handlers

import (
	"github.com/gin-gonic/gin"

	"housing-prediction-api/internal/models"
)

// writeResponse copies a pipeline response onto the gin writer
func writeResponse(c *gin.Context, resp *models.Response) {
	for k, v := range resp.Headers {
		c.Header(k, v)
	}

	if resp.Body == "" {
		c.Status(resp.StatusCode)
		return
	}
	c.Data(resp.StatusCode, "application/json", []byte(resp.Body))
}
