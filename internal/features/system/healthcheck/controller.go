package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/health", c.CheckHealth)
}

// CheckHealth
// @Summary Check system health
// @Description Pings the database and the cache and reports host memory and disk usage
// @Tags system/health
// @Produce json
// @Success 200 {object} HealthcheckResponseDTO
// @Failure 503 {object} HealthcheckResponseDTO
// @Router /system/health [get]
func (c *HealthcheckController) CheckHealth(ctx *gin.Context) {
	response := c.healthcheckService.Check()

	if response.Status != HealthStatusOk {
		ctx.JSON(http.StatusServiceUnavailable, response)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
