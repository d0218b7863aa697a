package audit_logs

import (
	"matchme/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = NewAuditLogService(auditLogRepository, logger.GetLogger())
var auditLogController = &AuditLogController{
	auditLogService: auditLogService,
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}
