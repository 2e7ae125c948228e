package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inspectra/utils"
)

// HealthHandler returns the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
