package projects_services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"matchme/internal/features/audit_logs"
	projects_dto "matchme/internal/features/projects/dto"
	projects_interfaces "matchme/internal/features/projects/interfaces"
	projects_models "matchme/internal/features/projects/models"
	projects_permissions "matchme/internal/features/projects/permissions"
	users_models "matchme/internal/features/users/models"
	"matchme/internal/util/availability"
	"matchme/internal/util/validation"

	"github.com/google/uuid"
)

type AuditLogReader interface {
	GetProjectAuditLogs(
		projectID uuid.UUID,
		request *audit_logs.AuditLogsQueryDTO,
	) (*audit_logs.AuditLogPageDTO, error)
}

type ProjectService struct {
	projectRepository        projects_interfaces.ProjectStore
	teamMemberRepository     projects_interfaces.TeamMemberStore
	accessResolver           *AccessResolver
	auditLogWriter           projects_interfaces.AuditLogWriter
	auditLogReader           AuditLogReader
	slugChecker              *availability.Checker
	slugPolicy               SlugChangePolicy
	projectDeletionListeners []projects_interfaces.ProjectDeletionListener
	logger                   *slog.Logger
	now                      func() time.Time
}

func NewProjectService(
	projectRepository projects_interfaces.ProjectStore,
	teamMemberRepository projects_interfaces.TeamMemberStore,
	accessResolver *AccessResolver,
	auditLogWriter projects_interfaces.AuditLogWriter,
	auditLogReader AuditLogReader,
	slugLimiter availability.AttemptLimiter,
	slugPolicy SlugChangePolicy,
	logger *slog.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepository:    projectRepository,
		teamMemberRepository: teamMemberRepository,
		accessResolver:       accessResolver,
		auditLogWriter:       auditLogWriter,
		auditLogReader:       auditLogReader,
		slugChecker:          availability.NewChecker(slugLimiter, SlugRules),
		slugPolicy:           slugPolicy,
		logger:               logger,
		now:                  func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProjectService) AddProjectDeletionListener(listener projects_interfaces.ProjectDeletionListener) {
	s.projectDeletionListeners = append(s.projectDeletionListeners, listener)
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_models.Project, error) {
	slug := NormalizeSlug(request.Slug)
	if err := ValidateSlug(slug); err != nil {
		return nil, err
	}

	taken, err := s.projectRepository.IsSlugTaken(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	project := &projects_models.Project{
		ID:          uuid.New(),
		UserID:      creator.ID,
		Name:        request.Name,
		Slug:        slug,
		Description: request.Description,
		IsPublic:    request.IsPublic,
		CreatedAt:   s.now(),
	}

	if err := s.projectRepository.CreateProject(project, DefaultProjectRoles()); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// drop a cached tombstone for this slug
	s.accessResolver.InvalidateSlugs(slug)

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	return project, nil
}

func (s *ProjectService) GetUserProjects(user *users_models.User) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.projectRepository.GetProjectsForUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user projects: %w", err)
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects: projects,
	}, nil
}

// GetProject returns the caller's view of the project. user may be nil.
func (s *ProjectService) GetProject(slug string, user *users_models.User) (*AccessResult, error) {
	return s.accessResolver.RequireVisible(slug, user)
}

func (s *ProjectService) UpdateProject(
	slug string,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_models.Project, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceSettings, projects_permissions.ActionUpdate,
	)
	if err != nil {
		return nil, err
	}

	project := *access.Project
	project.Name = request.Name
	project.Description = request.Description
	project.IsPublic = request.IsPublic

	if err := s.projectRepository.UpdateProject(&project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.accessResolver.InvalidateSlugs(project.Slug)

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Name),
		&user.ID,
		&project.ID,
	)

	return &project, nil
}

func (s *ProjectService) CanDeleteProject(projectID, requesterID uuid.UUID) (DeletionDecision, error) {
	members, err := s.teamMemberRepository.GetMembersByProject(projectID)
	if err != nil {
		return DeletionDecision{}, fmt.Errorf("failed to get team members: %w", err)
	}

	return EvaluateProjectDeletion(members, requesterID), nil
}

// DeleteProject returns the blocking decision together with
// ErrProjectHasMembers when other active members remain.
func (s *ProjectService) DeleteProject(slug string, user *users_models.User) (*DeletionDecision, error) {
	access, err := s.accessResolver.RequireVisible(slug, user)
	if err != nil {
		return nil, err
	}

	if !access.IsOwner() {
		return nil, ErrOnlyOwner
	}

	project := access.Project

	decision, err := s.CanDeleteProject(project.ID, user.ID)
	if err != nil {
		return nil, err
	}

	if !decision.Allowed {
		return &decision, ErrProjectHasMembers
	}

	for _, listener := range s.projectDeletionListeners {
		if err := listener.OnBeforeProjectDeletion(project.ID); err != nil {
			s.logger.Error("project deletion listener failed", slog.String("projectId", project.ID.String()), "error", err)
			return nil, fmt.Errorf("failed to delete project: %w", err)
		}
	}

	if err := s.projectRepository.DeleteProject(project.ID); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	s.accessResolver.InvalidateSlugs(project.Slug)

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Name),
		&user.ID,
		nil,
	)

	return &decision, nil
}

func (s *ProjectService) GetSlugStatus(slug string, user *users_models.User) (*projects_dto.SlugStatusResponseDTO, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceSettings, projects_permissions.ActionView,
	)
	if err != nil {
		return nil, err
	}

	decision := s.slugPolicy.Evaluate(access.Project.SlugChangedAt, s.now())

	return &projects_dto.SlugStatusResponseDTO{
		Slug:                       access.Project.Slug,
		CanChange:                  decision.CanChange,
		NextAvailableDate:          decision.NextAvailableDate,
		NextAvailableDateFormatted: decision.NextAvailableDateFormatted,
	}, nil
}

// ChangeSlug is owner only. On cooldown it returns the decision with
// ErrSlugCooldown so callers can show the next available date.
func (s *ProjectService) ChangeSlug(
	slug string,
	newSlug string,
	user *users_models.User,
) (*projects_models.Project, *SlugChangeDecision, error) {
	access, err := s.accessResolver.RequireVisible(slug, user)
	if err != nil {
		return nil, nil, err
	}

	if !access.IsOwner() {
		return nil, nil, ErrOnlyOwner
	}

	project := *access.Project
	candidate := NormalizeSlug(newSlug)

	if err := ValidateSlug(candidate); err != nil {
		return nil, nil, err
	}

	if candidate == NormalizeSlug(project.Slug) {
		return nil, nil, validation.NewValidationError(
			validation.ErrorUnchanged,
			"slug",
			"new slug must differ from the current slug",
		)
	}

	now := s.now()
	decision := s.slugPolicy.Evaluate(project.SlugChangedAt, now)
	if !decision.CanChange {
		return nil, &decision, ErrSlugCooldown
	}

	taken, err := s.projectRepository.IsSlugTaken(candidate)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return nil, nil, ErrSlugTaken
	}

	if err := s.projectRepository.UpdateSlug(project.ID, candidate, now); err != nil {
		return nil, nil, fmt.Errorf("failed to update slug: %w", err)
	}

	oldSlug := project.Slug
	project.Slug = candidate
	project.SlugChangedAt = &now

	s.accessResolver.InvalidateSlugs(oldSlug, candidate)

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Project slug changed from %s to %s", oldSlug, candidate),
		&user.ID,
		&project.ID,
	)

	return &project, &decision, nil
}

// CheckSlugAvailability validates first so malformed candidates never count
// against the caller's limit or reach the database.
func (s *ProjectService) CheckSlugAvailability(
	ctx context.Context,
	clientIP string,
	candidate string,
) (*projects_dto.SlugAvailabilityResponseDTO, error) {
	result, err := s.slugChecker.Check(ctx, clientIP, candidate, s.projectRepository.IsSlugTaken)
	if err != nil {
		return nil, err
	}

	return &projects_dto.SlugAvailabilityResponseDTO{
		Slug:      result.Candidate,
		Available: result.Available,
	}, nil
}

func (s *ProjectService) GetProjectAuditLogs(
	slug string,
	user *users_models.User,
	request *audit_logs.AuditLogsQueryDTO,
) (*audit_logs.AuditLogPageDTO, error) {
	access, err := s.accessResolver.Require(
		slug, user, projects_permissions.ResourceSettings, projects_permissions.ActionView,
	)
	if err != nil {
		return nil, err
	}

	return s.auditLogReader.GetProjectAuditLogs(access.Project.ID, request)
}
