package audit_logs

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	defaultAuditLogsLimit = 100
	maxAuditLogsLimit     = 1000
)

type AuditLogService struct {
	auditLogRepository AuditLogStore
	logger             *slog.Logger
}

func NewAuditLogService(repository AuditLogStore, logger *slog.Logger) *AuditLogService {
	return &AuditLogService{
		auditLogRepository: repository,
		logger:             logger,
	}
}

// WriteAuditLog never fails the caller; a write error is only logged.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	projectID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:    userID,
		ProjectID: projectID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := s.auditLogRepository.Create(auditLog)
	if err != nil {
		s.logger.Error("failed to create audit log", "error", err)
		return
	}
}

func (s *AuditLogService) GetUserAuditLogs(
	userID uuid.UUID,
	request *AuditLogsQueryDTO,
) (*AuditLogPageDTO, error) {
	normalizeRequest(request)

	auditLogs, err := s.auditLogRepository.GetByUser(userID, request.Limit, request.Offset, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get user audit logs: %w", err)
	}

	total, err := s.auditLogRepository.CountByUser(userID, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count user audit logs: %w", err)
	}

	return newPage(auditLogs, total, request), nil
}

// GetProjectAuditLogs does not check access; callers resolve it first.
func (s *AuditLogService) GetProjectAuditLogs(
	projectID uuid.UUID,
	request *AuditLogsQueryDTO,
) (*AuditLogPageDTO, error) {
	normalizeRequest(request)

	auditLogs, err := s.auditLogRepository.GetByProject(projectID, request.Limit, request.Offset, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get project audit logs: %w", err)
	}

	total, err := s.auditLogRepository.CountByProject(projectID, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to count project audit logs: %w", err)
	}

	return newPage(auditLogs, total, request), nil
}

func normalizeRequest(request *AuditLogsQueryDTO) {
	if request.Limit <= 0 {
		request.Limit = defaultAuditLogsLimit
	}
	if request.Limit > maxAuditLogsLimit {
		request.Limit = maxAuditLogsLimit
	}
	if request.Offset < 0 {
		request.Offset = 0
	}
}

func newPage(entries []*AuditLogDTO, total int64, request *AuditLogsQueryDTO) *AuditLogPageDTO {
	return &AuditLogPageDTO{
		Entries: entries,
		Total:   total,
		Limit:   request.Limit,
		Offset:  request.Offset,
		HasMore: int64(request.Offset+len(entries)) < total,
	}
}
