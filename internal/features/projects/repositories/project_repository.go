package projects_repositories

import (
	"errors"
	"strings"
	"time"

	projects_dto "matchme/internal/features/projects/dto"
	projects_models "matchme/internal/features/projects/models"
	"matchme/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

// CreateProject inserts the project together with its seed roles.
func (r *ProjectRepository) CreateProject(
	project *projects_models.Project,
	roles []*projects_models.ProjectRole,
) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		for _, role := range roles {
			role.ProjectID = project.ID
			if role.ID == uuid.Nil {
				role.ID = uuid.New()
			}
			if role.CreatedAt.IsZero() {
				role.CreatedAt = project.CreatedAt
			}

			if err := tx.Create(role).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetProjectBySlug(slug string) (*projects_models.Project, error) {
	var project projects_models.Project

	err := storage.GetDb().
		Where("LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) IsSlugTaken(slug string) (bool, error) {
	var count int64

	err := storage.GetDb().Model(&projects_models.Project{}).
		Where("LOWER(slug) = ?", strings.ToLower(strings.TrimSpace(slug))).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ProjectRepository) UpdateProject(project *projects_models.Project) error {
	return storage.GetDb().Model(&projects_models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"name":        project.Name,
			"description": project.Description,
			"is_public":   project.IsPublic,
		}).Error
}

func (r *ProjectRepository) UpdateSlug(projectID uuid.UUID, slug string, changedAt time.Time) error {
	return storage.GetDb().Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(map[string]any{
			"slug":            slug,
			"slug_changed_at": changedAt,
		}).Error
}

// DeleteProject removes the project and every row that only makes sense with it.
func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&projects_models.FavoriteProject{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", projectID).Delete(&projects_models.ProjectTeamMember{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", projectID).Delete(&projects_models.ProjectRole{}).Error; err != nil {
			return err
		}

		return tx.Delete(&projects_models.Project{}, projectID).Error
	})
}

// GetProjectsForUser lists owned projects and projects with an active membership.
func (r *ProjectRepository) GetProjectsForUser(userID uuid.UUID) ([]*projects_dto.ProjectListItemDTO, error) {
	results := make([]*projects_dto.ProjectListItemDTO, 0)

	err := storage.GetDb().Raw(`
		SELECT p.id, p.name, p.slug, p.is_public, p.created_at, TRUE AS is_owner, NULL AS role_name
		FROM projects p
		WHERE p.user_id = ?
		UNION ALL
		SELECT p.id, p.name, p.slug, p.is_public, p.created_at, FALSE AS is_owner, pr.name AS role_name
		FROM projects p
		JOIN project_team_members ptm ON ptm.project_id = p.id
		LEFT JOIN project_roles pr ON pr.id = ptm.role
		WHERE ptm.user_id = ? AND ptm.is_active = TRUE AND p.user_id <> ?
		ORDER BY name ASC`,
		userID, userID, userID,
	).Scan(&results).Error

	return results, err
}
