package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController serves the liveness endpoint.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Health reports that the service is up.
func (ctrl HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
