package analytics

import (
	"fmt"

	"matchme/internal/storage"

	"github.com/google/uuid"
)

type VisitStore interface {
	CountByDimension(table VisitTable, targetID uuid.UUID, dimension Dimension) ([]LabelCount, error)
	CountByBucket(table VisitTable, targetID uuid.UUID, bucket Bucket) ([]LabelCount, error)
}

type VisitRepository struct{}

// Table, dimension and bucket are interpolated into SQL; callers pass only
// values that passed IsValid.
func (r *VisitRepository) CountByDimension(
	table VisitTable,
	targetID uuid.UUID,
	dimension Dimension,
) ([]LabelCount, error) {
	targetColumn, ok := table.targetColumn()
	if !ok || !dimension.IsValid() {
		return nil, fmt.Errorf("unsupported visit aggregation %s/%s", table, dimension)
	}

	query := fmt.Sprintf(`
		SELECT COALESCE(NULLIF(%[1]s, ''), '%[4]s') AS label, COUNT(*) AS count
		FROM %[2]s
		WHERE %[3]s = ?
		GROUP BY 1
		ORDER BY count DESC, label ASC`, dimension, table, targetColumn, unknownLabel)

	var rows []LabelCount
	if err := storage.GetDb().Raw(query, targetID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *VisitRepository) CountByBucket(
	table VisitTable,
	targetID uuid.UUID,
	bucket Bucket,
) ([]LabelCount, error) {
	targetColumn, ok := table.targetColumn()
	if !ok || !bucket.IsValid() {
		return nil, fmt.Errorf("unsupported visit aggregation %s/%s", table, bucket)
	}

	query := fmt.Sprintf(`
		SELECT TO_CHAR(DATE_TRUNC('%[1]s', visited_at), 'YYYY-MM-DD') AS label, COUNT(*) AS count
		FROM %[2]s
		WHERE %[3]s = ?
		GROUP BY 1
		ORDER BY 1 ASC`, bucket, table, targetColumn)

	var rows []LabelCount
	if err := storage.GetDb().Raw(query, targetID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}
