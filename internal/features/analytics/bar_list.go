package analytics

import "math"

const unknownLabel = "Unknown"

// BuildBarList converts grouped counts into bar list rows. Each percentage is
// the share of the total rounded to two decimals; an empty total yields 0.
func BuildBarList(rows []LabelCount) []BarListItemDTO {
	var total int64
	for _, row := range rows {
		total += row.Count
	}

	items := make([]BarListItemDTO, 0, len(rows))
	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = unknownLabel
		}

		items = append(items, BarListItemDTO{
			Label:      label,
			Count:      row.Count,
			Percentage: percentage(row.Count, total),
		})
	}

	return items
}

func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(float64(count)/float64(total)*10000) / 100
}
