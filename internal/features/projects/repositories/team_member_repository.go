package projects_repositories

import (
	"errors"
	"time"

	projects_dto "matchme/internal/features/projects/dto"
	projects_models "matchme/internal/features/projects/models"
	"matchme/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberRepository struct{}

func (r *TeamMemberRepository) GetActiveMember(projectID, userID uuid.UUID) (*projects_models.ProjectTeamMember, error) {
	var member projects_models.ProjectTeamMember

	err := storage.GetDb().
		Where("project_id = ? AND user_id = ? AND is_active = TRUE", projectID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &member, nil
}

// GetMember returns the row for (project, user) regardless of is_active.
func (r *TeamMemberRepository) GetMember(projectID, userID uuid.UUID) (*projects_models.ProjectTeamMember, error) {
	var member projects_models.ProjectTeamMember

	err := storage.GetDb().
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Order("is_active DESC, joined_date DESC").
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &member, nil
}

func (r *TeamMemberRepository) GetMembersByProject(projectID uuid.UUID) ([]*projects_models.ProjectTeamMember, error) {
	members := make([]*projects_models.ProjectTeamMember, 0)

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("joined_date ASC").
		Find(&members).Error

	return members, err
}

func (r *TeamMemberRepository) GetActiveMembersWithProfiles(
	projectID uuid.UUID,
) ([]*projects_dto.TeamMemberResponseDTO, error) {
	members := make([]*projects_dto.TeamMemberResponseDTO, 0)

	err := storage.GetDb().
		Table("project_team_members ptm").
		Select(`ptm.id, ptm.user_id, p.username, p.display_name, ptm.role AS role_id,
			pr.name AS role_name, ptm.permission, ptm.joined_date`).
		Joins("JOIN profiles p ON ptm.user_id = p.id").
		Joins("LEFT JOIN project_roles pr ON ptm.role = pr.id").
		Where("ptm.project_id = ? AND ptm.is_active = TRUE", projectID).
		Order("ptm.joined_date ASC").
		Scan(&members).Error

	return members, err
}

func (r *TeamMemberRepository) CreateMember(member *projects_models.ProjectTeamMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	if member.JoinedDate.IsZero() {
		member.JoinedDate = time.Now().UTC()
	}

	return storage.GetDb().Create(member).Error
}

func (r *TeamMemberRepository) UpdateMember(member *projects_models.ProjectTeamMember) error {
	return storage.GetDb().Model(&projects_models.ProjectTeamMember{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"role":        member.RoleID,
			"permission":  member.Permission,
			"is_active":   member.IsActive,
			"joined_date": member.JoinedDate,
		}).Error
}
