// Package models defines data structures for StockDeck
package models

// InventoryRecord is one SKU row as delivered by the gateway's inventory
// endpoint. Base fields keep the gateway's mixed-case JSON keys; the
// risk-enrichment fields arrive snake_cased and are absent for SKUs that
// carry no stockout risk. Records are immutable once fetched and are
// replaced wholesale on each successful load.
type InventoryRecord struct {
	SKU                string  `json:"SKU"`
	Name               string  `json:"Name"`
	Category           string  `json:"Category"`
	CurrentStock       int     `json:"CurrentStock"`
	ReorderPoint       int     `json:"ReorderPoint"`
	DailySalesVelocity float64 `json:"DailySalesVelocity"`
	UnitCost           float64 `json:"UnitCost"`
	VendorID           string  `json:"VendorID"`
	VendorName         string  `json:"vendor_name,omitempty"`
	LeadTimeDays       int     `json:"LeadTimeDays"`
	DaysUntilStockout  float64 `json:"days_until_stockout,omitempty"`
	UrgencyLevel       string  `json:"urgency_level,omitempty"`
	ShortageAmount     float64 `json:"shortage_amount,omitempty"`
	RevenueAtRisk      float64 `json:"revenue_at_risk,omitempty"`
	LastUpdated        string  `json:"LastUpdated,omitempty"`
}

// LowStock reports whether the record is at or below its reorder point.
func (r *InventoryRecord) LowStock() bool {
	return r.CurrentStock <= r.ReorderPoint
}

// InventoryFilter is the filter/pagination specification applied to an
// inventory record set. The zero value of each select field means
// "match all"; Page is 1-based and clamped against the filtered total.
type InventoryFilter struct {
	Search       string `json:"search,omitempty"`
	Category     string `json:"category,omitempty"`
	VendorID     string `json:"vendor_id,omitempty"`
	Urgency      string `json:"urgency,omitempty"`
	LowStockOnly bool   `json:"low_stock_only,omitempty"`
	Page         int    `json:"page,omitempty"`
	PageSize     int    `json:"page_size,omitempty"`
}

// VendorOption is a deduplicated (id, name) pair offered as a vendor
// filter choice. Order follows first appearance in the record set.
type VendorOption struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// InventoryView is the derived, paged view over a filtered record set.
type InventoryView struct {
	Page          []InventoryRecord `json:"page"`
	TotalCount    int               `json:"total_count"`
	TotalPages    int               `json:"total_pages"`
	EffectivePage int               `json:"effective_page"`
	VendorOptions []VendorOption    `json:"vendor_options"`
}

// StatsSnapshot holds the aggregate counters from the gateway's stats
// endpoint. It is a plain holder; a failed load collapses to DefaultStats.
type StatsSnapshot struct {
	TotalSKUs       int      `json:"total_skus"`
	StockoutRisks   int      `json:"stockout_risks"`
	CriticalRisks   int      `json:"critical_risks"`
	LowStockItems   int      `json:"low_stock_items"`
	TotalCategories int      `json:"total_categories"`
	Categories      []string `json:"categories"`
}

// DefaultStats returns the zero snapshot used before the first successful
// load and after a failed one.
func DefaultStats() StatsSnapshot {
	return StatsSnapshot{Categories: []string{}}
}
