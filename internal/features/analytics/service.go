package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	projects_enums "matchme/internal/features/projects/enums"
	projects_permissions "matchme/internal/features/projects/permissions"
	projects_services "matchme/internal/features/projects/services"
	users_models "matchme/internal/features/users/models"
	time_utils "matchme/internal/util/time"
	"matchme/internal/util/validation"

	"github.com/google/uuid"
)

type ProjectAccessResolver interface {
	ResolveAccessByID(projectID uuid.UUID, user *users_models.User) (*projects_services.AccessResult, error)
}

type ProfileViewsCache interface {
	Get(key string) *ProfileViewsResponseDTO
	Set(key string, item *ProfileViewsResponseDTO)
}

type AnalyticsService struct {
	visitRepository VisitStore
	provider        ProfileViewsProvider
	accessResolver  ProjectAccessResolver
	profileViews    ProfileViewsCache
	logger          *slog.Logger
}

func NewAnalyticsService(
	visitRepository VisitStore,
	provider ProfileViewsProvider,
	accessResolver ProjectAccessResolver,
	profileViews ProfileViewsCache,
	logger *slog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		visitRepository: visitRepository,
		provider:        provider,
		accessResolver:  accessResolver,
		profileViews:    profileViews,
		logger:          logger,
	}
}

func (s *AnalyticsService) GetBarList(user *users_models.User, query *VisitsQueryDTO) ([]BarListItemDTO, error) {
	dimension := Dimension(query.Type)
	if !dimension.IsValid() {
		return nil, validation.NewValidationError(validation.ErrorInvalidValue, "type", "Unsupported breakdown type")
	}

	targetID, err := s.authorize(user, query)
	if err != nil {
		return nil, err
	}

	rows, err := s.visitRepository.CountByDimension(query.Table, targetID, dimension)
	if err != nil {
		s.logger.Error("failed to count visits", slog.String("table", string(query.Table)), "error", err)
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	return BuildBarList(rows), nil
}

func (s *AnalyticsService) GetVisits(user *users_models.User, query *VisitsQueryDTO) ([]BarListItemDTO, error) {
	bucket := Bucket(query.Type)
	if !bucket.IsValid() {
		return nil, validation.NewValidationError(validation.ErrorInvalidValue, "type", "Unsupported time bucket")
	}

	targetID, err := s.authorize(user, query)
	if err != nil {
		return nil, err
	}

	rows, err := s.visitRepository.CountByBucket(query.Table, targetID, bucket)
	if err != nil {
		s.logger.Error("failed to count visits", slog.String("table", string(query.Table)), "error", err)
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}

	return BuildBarList(rows), nil
}

// authorize lets owners read their profile visits and team members with
// Analytics:view read project visits. Public read-only access is not enough.
func (s *AnalyticsService) authorize(user *users_models.User, query *VisitsQueryDTO) (uuid.UUID, error) {
	targetID, err := uuid.Parse(query.ID)
	if err != nil {
		return uuid.Nil, validation.NewValidationError(validation.ErrorInvalidFormat, "id", "Invalid id")
	}

	switch query.Table {
	case VisitTableProfile:
		if targetID != user.ID {
			return uuid.Nil, ErrAnalyticsNotFound
		}
	case VisitTableProject:
		access, err := s.accessResolver.ResolveAccessByID(targetID, user)
		if err != nil {
			return uuid.Nil, err
		}

		if access == nil ||
			access.AccessLevel == projects_enums.AccessLevelPublic ||
			!access.Can(projects_permissions.ResourceAnalytics, projects_permissions.ActionView) {
			return uuid.Nil, ErrAnalyticsNotFound
		}
	default:
		return uuid.Nil, validation.NewValidationError(validation.ErrorInvalidValue, "table", "Unsupported table")
	}

	return targetID, nil
}

// GetProfileViews proxies the analytics provider for the caller's own profile.
func (s *AnalyticsService) GetProfileViews(
	ctx context.Context,
	user *users_models.User,
	query *ProfileViewsQueryDTO,
) (*ProfileViewsResponseDTO, error) {
	dateRange, err := time_utils.ParseDateRange(query.DateRange)
	if err != nil {
		return nil, validation.NewValidationError(validation.ErrorInvalidValue, "dateRange", "Unsupported date range")
	}

	slug := strings.ToLower(strings.TrimSpace(query.Slug))
	if slug == "" || slug != strings.ToLower(user.Username) {
		return nil, ErrAnalyticsNotFound
	}

	cacheKey := slug + ":" + string(dateRange)
	if cached := s.profileViews.Get(cacheKey); cached != nil {
		return cached, nil
	}

	points, err := s.provider.GetProfileViews(ctx, slug, dateRange)
	if err != nil {
		s.logger.Error("failed to fetch profile views", slog.String("slug", slug), "error", err)
		return nil, err
	}

	response := &ProfileViewsResponseDTO{
		Slug:      slug,
		DateRange: string(dateRange),
		Points:    points,
	}
	for _, point := range points {
		response.TotalViews += point.Views
	}

	s.profileViews.Set(cacheKey, response)

	return response, nil
}
