package system_healthcheck

import (
	"log/slog"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct {
	pingDatabase func() error
	pingCache    func() error
	diskPath     string
	logger       *slog.Logger
}

func NewHealthcheckService(
	pingDatabase func() error,
	pingCache func() error,
	diskPath string,
	logger *slog.Logger,
) *HealthcheckService {
	return &HealthcheckService{
		pingDatabase: pingDatabase,
		pingCache:    pingCache,
		diskPath:     diskPath,
		logger:       logger,
	}
}

// Check reports the service healthy only when both the database and the cache
// answer. Host stats are informational and never fail the check.
func (s *HealthcheckService) Check() *HealthcheckResponseDTO {
	response := &HealthcheckResponseDTO{
		Status:   HealthStatusOk,
		Database: s.component("database", s.pingDatabase),
		Cache:    s.component("cache", s.pingCache),
		Memory:   s.memoryUsage(),
		Disk:     s.diskUsage(),
	}

	if response.Database.Status != HealthStatusOk || response.Cache.Status != HealthStatusOk {
		response.Status = HealthStatusUnavailable
	}

	return response
}

func (s *HealthcheckService) component(name string, ping func() error) ComponentStatusDTO {
	if err := ping(); err != nil {
		s.logger.Error("healthcheck failed", slog.String("component", name), "error", err)
		return ComponentStatusDTO{Status: HealthStatusUnavailable, Error: err.Error()}
	}

	return ComponentStatusDTO{Status: HealthStatusOk}
}

func (s *HealthcheckService) memoryUsage() *UsageDTO {
	stat, err := mem.VirtualMemory()
	if err != nil {
		s.logger.Warn("failed to read memory stats", "error", err)
		return nil
	}

	return &UsageDTO{TotalBytes: stat.Total, UsedBytes: stat.Used, UsedPercent: stat.UsedPercent}
}

func (s *HealthcheckService) diskUsage() *UsageDTO {
	stat, err := disk.Usage(s.diskPath)
	if err != nil {
		s.logger.Warn("failed to read disk stats", slog.String("path", s.diskPath), "error", err)
		return nil
	}

	return &UsageDTO{TotalBytes: stat.Total, UsedBytes: stat.Used, UsedPercent: stat.UsedPercent}
}
