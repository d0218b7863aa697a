package projects_services

import (
	"fmt"
	"log/slog"

	projects_dto "matchme/internal/features/projects/dto"
	projects_interfaces "matchme/internal/features/projects/interfaces"
	projects_models "matchme/internal/features/projects/models"
	users_models "matchme/internal/features/users/models"
)

const NotificationTypeProjectFavorite = "project_favorite"

type FavoriteService struct {
	favoriteRepository projects_interfaces.FavoriteStore
	accessResolver     *AccessResolver
	notificationSender projects_interfaces.NotificationSender
	logger             *slog.Logger
}

func NewFavoriteService(
	favoriteRepository projects_interfaces.FavoriteStore,
	accessResolver *AccessResolver,
	logger *slog.Logger,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepository: favoriteRepository,
		accessResolver:     accessResolver,
		logger:             logger,
	}
}

func (s *FavoriteService) SetNotificationSender(sender projects_interfaces.NotificationSender) {
	s.notificationSender = sender
}

// AddFavorite is idempotent; the owner is notified only on the first add.
func (s *FavoriteService) AddFavorite(
	slug string,
	user *users_models.User,
) (*projects_dto.FavoriteStatusResponseDTO, error) {
	access, err := s.accessResolver.RequireVisible(slug, user)
	if err != nil {
		return nil, err
	}

	project := access.Project

	inserted, err := s.favoriteRepository.AddFavorite(user.ID, project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}

	if inserted && !project.IsOwnedBy(user.ID) && s.notificationSender != nil {
		projectID := project.ID
		if err := s.notificationSender.SendNotification(
			user.ID, project.UserID, NotificationTypeProjectFavorite, &projectID,
		); err != nil {
			s.logger.Warn("failed to send favorite notification", slog.String("projectId", project.ID.String()), "error", err)
		}
	}

	return &projects_dto.FavoriteStatusResponseDTO{ProjectID: project.ID, IsFavorite: true}, nil
}

func (s *FavoriteService) RemoveFavorite(
	slug string,
	user *users_models.User,
) (*projects_dto.FavoriteStatusResponseDTO, error) {
	access, err := s.accessResolver.RequireVisible(slug, user)
	if err != nil {
		return nil, err
	}

	if err := s.favoriteRepository.RemoveFavorite(user.ID, access.Project.ID); err != nil {
		return nil, fmt.Errorf("failed to remove favorite: %w", err)
	}

	return &projects_dto.FavoriteStatusResponseDTO{ProjectID: access.Project.ID, IsFavorite: false}, nil
}

// GetFavorites lists favorites the user can still see; projects that turned
// private or dropped the user are left out.
func (s *FavoriteService) GetFavorites(user *users_models.User) ([]*projects_models.Project, error) {
	projects, err := s.favoriteRepository.GetFavoriteProjects(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	visible := make([]*projects_models.Project, 0, len(projects))
	for _, project := range projects {
		access, err := s.accessResolver.ResolveForProject(project, user)
		if err != nil {
			return nil, err
		}

		if access != nil {
			visible = append(visible, access.Project)
		}
	}

	return visible, nil
}
