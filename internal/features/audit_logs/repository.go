package audit_logs

import (
	"time"

	"matchme/internal/storage"

	"github.com/google/uuid"
)

type AuditLogStore interface {
	Create(auditLog *AuditLog) error
	GetByUser(userID uuid.UUID, limit, offset int, beforeDate *time.Time) ([]*AuditLogDTO, error)
	GetByProject(projectID uuid.UUID, limit, offset int, beforeDate *time.Time) ([]*AuditLogDTO, error)
	CountByUser(userID uuid.UUID, beforeDate *time.Time) (int64, error)
	CountByProject(projectID uuid.UUID, beforeDate *time.Time) (int64, error)
}

type AuditLogRepository struct{}

const selectAuditLogs = `
		SELECT
			al.id,
			al.user_id,
			al.project_id,
			al.message,
			al.created_at,
			pr.username AS actor_username,
			pr.display_name AS actor_display_name,
			p.name AS project_name,
			p.slug AS project_slug
		FROM audit_logs al
		LEFT JOIN profiles pr ON al.user_id = pr.id
		LEFT JOIN projects p ON al.project_id = p.id`

func (r *AuditLogRepository) Create(auditLog *AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) GetByUser(
	userID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLogDTO, error) {
	return r.getFiltered("al.user_id", userID, limit, offset, beforeDate)
}

func (r *AuditLogRepository) GetByProject(
	projectID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLogDTO, error) {
	return r.getFiltered("al.project_id", projectID, limit, offset, beforeDate)
}

func (r *AuditLogRepository) CountByUser(userID uuid.UUID, beforeDate *time.Time) (int64, error) {
	return r.count("user_id", userID, beforeDate)
}

func (r *AuditLogRepository) CountByProject(projectID uuid.UUID, beforeDate *time.Time) (int64, error) {
	return r.count("project_id", projectID, beforeDate)
}

// column is always one of the literals above, never user input
func (r *AuditLogRepository) getFiltered(
	column string,
	id uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLogDTO, error) {
	auditLogs := make([]*AuditLogDTO, 0)

	sql := selectAuditLogs + " WHERE " + column + " = ?"
	args := []any{id}

	if beforeDate != nil {
		sql += " AND al.created_at < ?"
		args = append(args, *beforeDate)
	}

	sql += " ORDER BY al.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	err := storage.GetDb().Raw(sql, args...).Scan(&auditLogs).Error

	return auditLogs, err
}

func (r *AuditLogRepository) count(column string, id uuid.UUID, beforeDate *time.Time) (int64, error) {
	var count int64

	query := storage.GetDb().Model(&AuditLog{}).Where(column+" = ?", id)
	if beforeDate != nil {
		query = query.Where("created_at < ?", *beforeDate)
	}

	err := query.Count(&count).Error

	return count, err
}
