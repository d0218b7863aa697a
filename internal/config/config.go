package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	env_utils "matchme/internal/util/env"
	"matchme/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting       bool
	DatabaseDsn     string            `env:"DATABASE_DSN"              required:"true"`
	EnvMode         env_utils.EnvMode `env:"ENV_MODE"                  required:"true"`
	BackendRootPath string            `env:"BACKEND_ROOT_PATH"`
	JwtSecret       string            `env:"JWT_SECRET"                required:"true"`
	// cache
	ValkeyHost     string `env:"VALKEY_HOST"     required:"true"`
	ValkeyPort     string `env:"VALKEY_PORT"     required:"true"`
	ValkeyUsername string `env:"VALKEY_USERNAME" required:"false"`
	ValkeyPassword string `env:"VALKEY_PASSWORD" required:"false"`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"   required:"true"`
	// analytics provider
	AnalyticsApiURL string  `env:"ANALYTICS_API_URL" required:"false"`
	AnalyticsApiKey string  `env:"ANALYTICS_API_KEY" required:"false"`
	AnalyticsApiRps float64 `env:"ANALYTICS_API_RPS" env-default:"5"`
	// product policy
	SlugCheckAttempts              int    `env:"SLUG_CHECK_ATTEMPTS"               env-default:"10"`
	SlugCheckWindowSec             int    `env:"SLUG_CHECK_WINDOW_SEC"             env-default:"60"`
	SlugChangeCooldownMonths       int    `env:"SLUG_CHANGE_COOLDOWN_MONTHS"       env-default:"1"`
	NotificationGroupableTypes     string `env:"NOTIFICATION_GROUPABLE_TYPES"      env-default:"follow"`
	NotificationSenderDisplayLimit int    `env:"NOTIFICATION_SENDER_DISPLAY_LIMIT" env-default:"3"`
	NotificationRetentionDays      int    `env:"NOTIFICATION_RETENTION_DAYS"       env-default:"90"`
	NotificationCleanupCron        string `env:"NOTIFICATION_CLEANUP_CRON"         env-default:"0 3 * * *"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func (e EnvVariables) SlugCheckWindow() time.Duration {
	return time.Duration(e.SlugCheckWindowSec) * time.Second
}

// GroupableNotificationTypes splits the comma separated setting, skipping blanks.
func (e EnvVariables) GroupableNotificationTypes() []string {
	types := make([]string, 0)
	for _, raw := range strings.Split(e.NotificationGroupableTypes, ",") {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			types = append(types, trimmed)
		}
	}

	return types
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	// .env is optional in containers where variables come from the orchestrator
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Successfully loaded .env", "path", path)
			break
		}
	}

	err = cleanenv.ReadEnv(&env)
	if err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	if env.BackendRootPath == "" {
		env.BackendRootPath = backendRoot
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}
	log.Info("ENV_MODE loaded", "mode", env.EnvMode)

	if env.SlugCheckAttempts <= 0 {
		log.Error("SLUG_CHECK_ATTEMPTS must be positive", "value", env.SlugCheckAttempts)
		os.Exit(1)
	}
	if env.SlugCheckWindowSec <= 0 {
		log.Error("SLUG_CHECK_WINDOW_SEC must be positive", "value", env.SlugCheckWindowSec)
		os.Exit(1)
	}
	if env.SlugChangeCooldownMonths < 0 {
		log.Error("SLUG_CHANGE_COOLDOWN_MONTHS must not be negative", "value", env.SlugChangeCooldownMonths)
		os.Exit(1)
	}
	if env.NotificationSenderDisplayLimit <= 0 {
		log.Error(
			"NOTIFICATION_SENDER_DISPLAY_LIMIT must be positive",
			"value", env.NotificationSenderDisplayLimit,
		)
		os.Exit(1)
	}

	if env.AnalyticsApiURL == "" {
		log.Warn("ANALYTICS_API_URL is empty, profile views will be unavailable")
	}

	log.Info("Environment variables loaded successfully!")
}
