package projects_services

import (
	"sync"

	"matchme/internal/cache"
	"matchme/internal/config"
	"matchme/internal/features/audit_logs"
	projects_models "matchme/internal/features/projects/models"
	projects_repositories "matchme/internal/features/projects/repositories"
	users_services "matchme/internal/features/users/services"
	cache_utils "matchme/internal/util/cache"
	"matchme/internal/util/logger"
	rate_limit "matchme/internal/util/rate_limit"
)

const projectSlugCachePrefix = "mm_project_slug:"

var (
	projectRepository    = &projects_repositories.ProjectRepository{}
	roleRepository       = &projects_repositories.RoleRepository{}
	teamMemberRepository = &projects_repositories.TeamMemberRepository{}
	favoriteRepository   = &projects_repositories.FavoriteRepository{}

	servicesOnce    sync.Once
	accessResolver  *AccessResolver
	projectService  *ProjectService
	teamService     *TeamService
	roleService     *RoleService
	favoriteService *FavoriteService
)

func initServices() {
	servicesOnce.Do(func() {
		env := config.GetEnv()
		log := logger.GetLogger()
		auditLogService := audit_logs.GetAuditLogService()

		accessResolver = NewAccessResolver(
			projectRepository,
			roleRepository,
			teamMemberRepository,
			cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), projectSlugCachePrefix),
			log,
		)

		projectService = NewProjectService(
			projectRepository,
			teamMemberRepository,
			accessResolver,
			auditLogService,
			auditLogService,
			rate_limit.NewSlidingWindowLimiter(
				cache.GetCache(),
				"slug_check",
				env.SlugCheckAttempts,
				env.SlugCheckWindow(),
			),
			SlugChangePolicy{CooldownMonths: env.SlugChangeCooldownMonths},
			log,
		)

		teamService = NewTeamService(
			teamMemberRepository,
			roleRepository,
			users_services.GetUserRepository(),
			accessResolver,
			auditLogService,
			log,
		)

		roleService = NewRoleService(roleRepository, accessResolver, auditLogService)

		favoriteService = NewFavoriteService(favoriteRepository, accessResolver, log)
	})
}

func GetAccessResolver() *AccessResolver {
	initServices()
	return accessResolver
}

func GetProjectService() *ProjectService {
	initServices()
	return projectService
}

func GetTeamService() *TeamService {
	initServices()
	return teamService
}

func GetRoleService() *RoleService {
	initServices()
	return roleService
}

func GetFavoriteService() *FavoriteService {
	initServices()
	return favoriteService
}
