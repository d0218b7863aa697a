package projects_services

import (
	"time"

	"matchme/internal/features/audit_logs"
	projects_testing "matchme/internal/features/projects/testing"
	users_testing "matchme/internal/features/users/testing"
	"matchme/internal/util/logger"
	test_utils "matchme/internal/util/testing"

	"github.com/google/uuid"
)

type noopAuditLogReader struct{}

func (noopAuditLogReader) GetProjectAuditLogs(
	_ uuid.UUID,
	request *audit_logs.AuditLogsQueryDTO,
) (*audit_logs.AuditLogPageDTO, error) {
	return &audit_logs.AuditLogPageDTO{Entries: []*audit_logs.AuditLogDTO{}, Limit: request.Limit}, nil
}

type testEnv struct {
	store         *projects_testing.Store
	cache         *projects_testing.MapCache
	users         *users_testing.InMemoryUserRepository
	audit         *projects_testing.AuditLogRecorder
	notifications *projects_testing.NotificationRecorder
	limiter       *test_utils.CountingLimiter
	resolver      *AccessResolver
	projects      *ProjectService
	team          *TeamService
	roles         *RoleService
	favorites     *FavoriteService
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		store:         projects_testing.NewStore(),
		cache:         projects_testing.NewMapCache(),
		users:         users_testing.NewInMemoryUserRepository(),
		audit:         &projects_testing.AuditLogRecorder{},
		notifications: &projects_testing.NotificationRecorder{},
		limiter:       test_utils.NewCountingLimiter(10),
	}

	log := logger.GetLogger()

	env.resolver = NewAccessResolver(env.store, env.store, env.store, env.cache, log)
	env.projects = NewProjectService(
		env.store,
		env.store,
		env.resolver,
		env.audit,
		noopAuditLogReader{},
		env.limiter,
		SlugChangePolicy{CooldownMonths: 1},
		log,
	)
	env.projects.now = func() time.Time { return now }

	env.team = NewTeamService(env.store, env.store, env.users, env.resolver, env.audit, log)
	env.team.SetNotificationSender(env.notifications)

	env.roles = NewRoleService(env.store, env.resolver, env.audit)

	env.favorites = NewFavoriteService(env.store, env.resolver, log)
	env.favorites.SetNotificationSender(env.notifications)

	return env
}
