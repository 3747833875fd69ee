// Package risk implements the risk aggregation engine: the urgency
// histogram, the revenue-at-risk ranking, and plain pagination of the raw
// risk list. All functions are pure and leave their input untouched.
package risk

import (
	"sort"

	"github.com/stockdeck/stockdeck/internal/models"
)

// DefaultTopN is the design default for the revenue ranking.
const DefaultTopN = 10

// PageSize is the fixed page size for the raw risk list. It is independent
// of the inventory view's configurable page size.
const PageSize = 10

// bucketColors follows the dashboard palette.
var bucketColors = map[string]string{
	models.UrgencyCritical: "#FF6B6B",
	models.UrgencyHigh:     "#FFA94D",
	models.UrgencyMedium:   "#4ECDC4",
	models.UrgencyLow:      "#96CEB4",
}

// BucketByUrgency counts records per known urgency bucket, matching
// case-insensitively. Buckets with zero count are omitted; emitted buckets
// follow the fixed severity order, not input order. Records with an unknown
// urgency are excluded.
func BucketByUrgency(records []models.RiskRecord) []models.UrgencyBucket {
	counts := make(map[string]int, len(models.UrgencyOrder))
	for _, rec := range records {
		if key, known := rec.UrgencyKey(); known {
			counts[key]++
		}
	}

	buckets := make([]models.UrgencyBucket, 0, len(models.UrgencyOrder))
	for _, level := range models.UrgencyOrder {
		if counts[level] == 0 {
			continue
		}
		buckets = append(buckets, models.UrgencyBucket{
			Label: level,
			Count: counts[level],
			Color: bucketColors[level],
		})
	}
	return buckets
}

// TopByRevenue returns the n records with the highest revenue at risk,
// descending. The sort is stable so records with equal revenue keep their
// relative input order.
func TopByRevenue(records []models.RiskRecord, n int) []models.RiskRecord {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]models.RiskRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RevenueAtRisk > ranked[j].RevenueAtRisk
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Page slices the raw risk list into fixed-size pages with the same
// clamping rules as the inventory view.
func Page(records []models.RiskRecord, page int) models.RiskPage {
	totalPages := (len(records) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(records) {
		start = len(records)
	}
	if end > len(records) {
		end = len(records)
	}

	return models.RiskPage{
		Items:      records[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(records),
	}
}
