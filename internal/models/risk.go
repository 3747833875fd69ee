package models

import "strings"

// Urgency bucket names in severity order. Matching against RiskRecord.Urgency
// is case-insensitive; values outside this set are preserved for display but
// never counted in the histogram.
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"
)

// UrgencyOrder is the fixed emission order for histogram buckets.
var UrgencyOrder = []string{UrgencyCritical, UrgencyHigh, UrgencyMedium, UrgencyLow}

// RiskRecord is one at-risk SKU as delivered by the gateway or by a
// structured agent reply. The set is replaced wholesale on fetch, or when
// a risk-producing agent returns a non-empty structured risk list.
type RiskRecord struct {
	SKU           string  `json:"sku"`
	Days          float64 `json:"days"`
	Shortage      float64 `json:"shortage"`
	RevenueAtRisk float64 `json:"revenue_at_risk"`
	Urgency       string  `json:"urgency"`
}

// UrgencyKey returns the lower-cased urgency and whether it maps to one of
// the four known buckets.
func (r *RiskRecord) UrgencyKey() (string, bool) {
	key := strings.ToLower(r.Urgency)
	for _, known := range UrgencyOrder {
		if key == known {
			return key, true
		}
	}
	return key, false
}

// UrgencyBucket is one histogram bar: a known urgency level with a
// non-zero count and its display color.
type UrgencyBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// RiskOverview combines the urgency histogram with the revenue ranking.
type RiskOverview struct {
	Total   int             `json:"total"`
	Buckets []UrgencyBucket `json:"buckets"`
	Top     []RiskRecord    `json:"top"`
}

// RiskPage is one fixed-size page of the raw risk list.
type RiskPage struct {
	Items      []RiskRecord `json:"items"`
	Page       int          `json:"page"`
	TotalPages int          `json:"total_pages"`
	TotalCount int          `json:"total_count"`
}
