package system_healthcheck

type HealthStatus string

const (
	HealthStatusOk          HealthStatus = "ok"
	HealthStatusUnavailable HealthStatus = "unavailable"
)

type ComponentStatusDTO struct {
	Status HealthStatus `json:"status"`
	Error  string       `json:"error,omitempty"`
}

type UsageDTO struct {
	TotalBytes  uint64  `json:"totalBytes"`
	UsedBytes   uint64  `json:"usedBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

type HealthcheckResponseDTO struct {
	Status   HealthStatus       `json:"status"`
	Database ComponentStatusDTO `json:"database"`
	Cache    ComponentStatusDTO `json:"cache"`
	Memory   *UsageDTO          `json:"memory,omitempty"`
	Disk     *UsageDTO          `json:"disk,omitempty"`
}
