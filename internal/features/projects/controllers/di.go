package projects_controllers

import (
	"sync"

	projects_services "matchme/internal/features/projects/services"
)

var (
	controllersOnce    sync.Once
	projectController  *ProjectController
	teamController     *TeamController
	roleController     *RoleController
	favoriteController *FavoriteController
)

func initControllers() {
	controllersOnce.Do(func() {
		projectController = &ProjectController{projects_services.GetProjectService()}
		teamController = &TeamController{projects_services.GetTeamService()}
		roleController = &RoleController{projects_services.GetRoleService()}
		favoriteController = &FavoriteController{projects_services.GetFavoriteService()}
	})
}

func GetProjectController() *ProjectController {
	initControllers()
	return projectController
}

func GetTeamController() *TeamController {
	initControllers()
	return teamController
}

func GetRoleController() *RoleController {
	initControllers()
	return roleController
}

func GetFavoriteController() *FavoriteController {
	initControllers()
	return favoriteController
}
