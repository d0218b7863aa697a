package analytics

import (
	"sync"

	"matchme/internal/cache"
	"matchme/internal/config"
	projects_services "matchme/internal/features/projects/services"
	cache_utils "matchme/internal/util/cache"
	"matchme/internal/util/logger"
)

const profileViewsCachePrefix = "mm_profile_views:"

var (
	visitRepository = &VisitRepository{}

	analyticsOnce       sync.Once
	analyticsService    *AnalyticsService
	analyticsController *AnalyticsController
)

func initAnalytics() {
	analyticsOnce.Do(func() {
		env := config.GetEnv()

		analyticsService = NewAnalyticsService(
			visitRepository,
			NewProviderClient(env.AnalyticsApiURL, env.AnalyticsApiKey, env.AnalyticsApiRps),
			projects_services.GetAccessResolver(),
			cache_utils.NewCacheUtil[ProfileViewsResponseDTO](cache.GetCache(), profileViewsCachePrefix).
				WithExpiry(cache_utils.DefaultCacheExpiry),
			logger.GetLogger(),
		)

		analyticsController = &AnalyticsController{analyticsService: analyticsService}
	})
}

func GetAnalyticsService() *AnalyticsService {
	initAnalytics()
	return analyticsService
}

func GetAnalyticsController() *AnalyticsController {
	initAnalytics()
	return analyticsController
}
