package application

import (
	"time"

	"github.com/linskybing/form-platform/internal/domain/audit"
	"github.com/linskybing/form-platform/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
	Now   func() time.Time
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
		Now:   time.Now,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, int64, error) {
	logs, total, err := s.Repos.Audit.GetAuditLogs(params)
	if err != nil {
		return nil, 0, storeError("query audit logs", err)
	}
	return logs, total, nil
}

// CleanupOldLogs removes entries older than days and reports how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	cutoff := s.Now().AddDate(0, 0, -days)
	return s.Repos.Audit.DeleteAuditLogsBefore(cutoff)
}
