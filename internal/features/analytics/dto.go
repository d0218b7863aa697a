package analytics

type VisitsQueryDTO struct {
	ID    string     `form:"id"    binding:"required"`
	Type  string     `form:"type"  binding:"required"`
	Table VisitTable `form:"table" binding:"required"`
}

type BarListItemDTO struct {
	Label      string  `json:"label"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ProfileViewsQueryDTO struct {
	Slug      string `form:"slug"      binding:"required"`
	DateRange string `form:"dateRange"`
}

type ProfileViewPointDTO struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

type ProfileViewsResponseDTO struct {
	Slug       string                `json:"slug"`
	DateRange  string                `json:"dateRange"`
	TotalViews int64                 `json:"totalViews"`
	Points     []ProfileViewPointDTO `json:"points"`
}
