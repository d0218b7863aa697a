package users_services

import (
	"sync"

	"matchme/internal/cache"
	"matchme/internal/config"
	users_repositories "matchme/internal/features/users/repositories"
	rate_limit "matchme/internal/util/rate_limit"
)

var (
	userServiceOnce sync.Once
	userService     *UserService
	userRepository  = &users_repositories.UserRepository{}
)

func GetUserService() *UserService {
	userServiceOnce.Do(func() {
		env := config.GetEnv()

		userService = NewUserService(
			userRepository,
			env.JwtSecret,
			rate_limit.NewSlidingWindowLimiter(
				cache.GetCache(),
				"username_check",
				env.SlugCheckAttempts,
				env.SlugCheckWindow(),
			),
		)
	})

	return userService
}

func GetUserRepository() *users_repositories.UserRepository {
	return userRepository
}
