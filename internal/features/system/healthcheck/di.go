package system_healthcheck

import (
	"matchme/internal/cache"
	"matchme/internal/storage"
	"matchme/internal/util/logger"
)

var healthcheckService = NewHealthcheckService(storage.Ping, cache.Ping, "/", logger.GetLogger())
var healthcheckController = &HealthcheckController{
	healthcheckService,
}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
