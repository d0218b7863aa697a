package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"matchme/internal/cache"
	"matchme/internal/config"
	"matchme/internal/features/analytics"
	"matchme/internal/features/audit_logs"
	notifications_controllers "matchme/internal/features/notifications/controllers"
	notifications_services "matchme/internal/features/notifications/services"
	projects_controllers "matchme/internal/features/projects/controllers"
	projects_services "matchme/internal/features/projects/services"
	system_healthcheck "matchme/internal/features/system/healthcheck"
	users_controllers "matchme/internal/features/users/controllers"
	users_middleware "matchme/internal/features/users/middleware"
	users_services "matchme/internal/features/users/services"
	cache_utils "matchme/internal/util/cache"
	env_utils "matchme/internal/util/env"
	"matchme/internal/util/logger"
	_ "matchme/swagger" // swagger docs

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MatchMe Backend API
// @version 1.0
// @description API for MatchMe
// @termsOfService http://swagger.io/terms/

// @host localhost:4005
// @BasePath /api
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.GetLogger()
	config.StartListeningForShutdownSignal()

	testCacheConnection(log)

	runMigrations(log)

	setUpDependencies()

	go generateSwaggerDocs(log)

	gin.SetMode(gin.ReleaseMode)
	ginApp := gin.Default()

	// Add GZIP compression middleware
	ginApp.Use(gzip.Gzip(
		gzip.DefaultCompression,
		// Don't compress already compressed files
		gzip.WithExcludedExtensions(
			[]string{".png", ".gif", ".jpeg", ".jpg", ".ico", ".svg", ".pdf", ".mp4"},
		),
	))

	enableCors(ginApp)
	setUpRoutes(ginApp)
	retentionWorker := runBackgroundTasks(log)

	startServerWithGracefulShutdown(log, ginApp)

	retentionWorker.Stop()
}

func startServerWithGracefulShutdown(log *slog.Logger, app *gin.Engine) {
	host := ""
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// for dev we use localhost to avoid firewall
		// requests on each run for Windows
		host = "127.0.0.1"
	}

	srv := &http.Server{
		Addr:    host + ":4005",
		Handler: app,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen:", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("Shutdown signal received")

	// The context is used to inform the server it has 10 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown:", "error", err)
	}

	log.Info("Server gracefully stopped")
}

func setUpRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Mount Swagger UI
	api.GET("/docs/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	system_healthcheck.GetHealthcheckController().RegisterRoutes(api)

	userService := users_services.GetUserService()
	userController := users_controllers.GetUserController()
	projectController := projects_controllers.GetProjectController()

	// Public routes: a session is attached when present, anonymous otherwise
	public := api.Group("")
	public.Use(users_middleware.OptionalAuthMiddleware(userService))

	userController.RegisterRoutes(public)
	projectController.RegisterPublicRoutes(public)

	// Protected routes
	protected := api.Group("")
	protected.Use(users_middleware.AuthMiddleware(userService))

	userController.RegisterProtectedRoutes(protected)
	audit_logs.GetAuditLogController().RegisterRoutes(protected)
	projectController.RegisterRoutes(protected)
	projects_controllers.GetTeamController().RegisterRoutes(protected)
	projects_controllers.GetRoleController().RegisterRoutes(protected)
	projects_controllers.GetFavoriteController().RegisterRoutes(protected)
	notifications_controllers.GetNotificationController().RegisterRoutes(protected)
	analytics.GetAnalyticsController().RegisterRoutes(protected)
}

// setUpDependencies connects features that would otherwise import each other.
func setUpDependencies() {
	notificationService := notifications_services.GetNotificationService()

	projects_services.GetTeamService().SetNotificationSender(notificationService)
	projects_services.GetFavoriteService().SetNotificationSender(notificationService)
	projects_services.GetProjectService().AddProjectDeletionListener(notificationService)
}

func runBackgroundTasks(log *slog.Logger) *notifications_services.RetentionWorker {
	log.Info("Preparing to run background tasks...")

	retentionWorker := notifications_services.GetRetentionWorker()
	if err := retentionWorker.Start(); err != nil {
		log.Error("Failed to start notification retention worker", "error", err)
		os.Exit(1)
	}

	log.Info("Background tasks started successfully")

	return retentionWorker
}

// Keep in mind: docs appear after second launch, because Swagger
// is generated into Go files. So if we changed files, we generate
// new docs, but still need to restart the server to see them.
func generateSwaggerDocs(log *slog.Logger) {
	if config.GetEnv().EnvMode == env_utils.EnvModeProduction {
		return
	}

	currentDir, err := os.Getwd()
	if err != nil {
		log.Error("Failed to get current directory", "error", err)
		return
	}

	cmd := exec.Command("swag", "init", "-d", currentDir, "-g", "cmd/main.go", "-o", "swagger")

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to generate Swagger docs", "error", err, "output", string(output))
		return
	}

	log.Info("Swagger documentation generated successfully")
}

func testCacheConnection(log *slog.Logger) {
	log.Info("Testing Valkey connection...")

	if err := cache_utils.TestCacheConnection(cache.GetCache()); err != nil {
		log.Error("Failed to connect to Valkey", "error", err)
		os.Exit(1)
	}

	log.Info("Valkey connection test successful")
}

func runMigrations(log *slog.Logger) {
	log.Info("Running database migrations...")

	cmd := exec.Command("goose", "up")
	cmd.Env = append(
		os.Environ(),
		"GOOSE_DRIVER=postgres",
		"GOOSE_DBSTRING="+config.GetEnv().DatabaseDsn,
		"GOOSE_MIGRATION_DIR=./migrations",
	)

	cmd.Dir = config.GetEnv().BackendRootPath

	output, err := cmd.CombinedOutput()
	if err != nil {
		log.Error("Failed to run migrations", "error", err, "output", string(output))
		os.Exit(1)
	}

	log.Info("Database migrations completed successfully", "output", string(output))
}

func enableCors(ginApp *gin.Engine) {
	if config.GetEnv().EnvMode == env_utils.EnvModeDevelopment {
		// Setup CORS
		ginApp.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
			AllowHeaders: []string{
				"Origin",
				"Content-Length",
				"Content-Type",
				"Authorization",
				"Accept",
				"Accept-Language",
				"Accept-Encoding",
			},
			ExposeHeaders:    []string{"Retry-After"},
			AllowCredentials: true,
		}))
	}
}
