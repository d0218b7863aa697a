package analytics

type VisitTable string

const (
	VisitTableProfile VisitTable = "profile_visits"
	VisitTableProject VisitTable = "project_visits"
)

// targetColumn is the column holding the visited profile or project id.
func (t VisitTable) targetColumn() (string, bool) {
	switch t {
	case VisitTableProfile:
		return "profile_id", true
	case VisitTableProject:
		return "project_id", true
	default:
		return "", false
	}
}

func (t VisitTable) IsValid() bool {
	_, ok := t.targetColumn()
	return ok
}

type Dimension string

const (
	DimensionReferrer Dimension = "referrer"
	DimensionCountry  Dimension = "country"
	DimensionDevice   Dimension = "device"
	DimensionBrowser  Dimension = "browser"
	DimensionOS       Dimension = "os"
)

func (d Dimension) IsValid() bool {
	switch d {
	case DimensionReferrer, DimensionCountry, DimensionDevice, DimensionBrowser, DimensionOS:
		return true
	default:
		return false
	}
}

type Bucket string

const (
	BucketDay   Bucket = "day"
	BucketWeek  Bucket = "week"
	BucketMonth Bucket = "month"
)

func (b Bucket) IsValid() bool {
	switch b {
	case BucketDay, BucketWeek, BucketMonth:
		return true
	default:
		return false
	}
}

// LabelCount is one aggregated group of profile_visits or project_visits rows.
type LabelCount struct {
	Label string `gorm:"column:label"`
	Count int64  `gorm:"column:count"`
}
