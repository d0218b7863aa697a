package users_controllers

import (
	"sync"

	users_services "matchme/internal/features/users/services"
)

var (
	userControllerOnce sync.Once
	userController     *UserController
)

func GetUserController() *UserController {
	userControllerOnce.Do(func() {
		userController = &UserController{
			userService: users_services.GetUserService(),
		}
	})

	return userController
}
