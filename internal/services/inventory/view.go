// Package inventory implements the filter/paginate engine for inventory
// records. View is a pure function: it is recomputed from the full record
// set and the current filter on every call, never cached incrementally.
package inventory

import (
	"strings"

	"github.com/stockdeck/stockdeck/internal/models"
)

// Page sizes the view accepts. An unknown page size falls back to
// DefaultPageSize.
var PageSizes = []int{20, 50, 100}

const DefaultPageSize = 20

// View applies the filter to records and returns the requested page.
// The five predicates compose conjunctively; each defaults to "match all"
// when its field is unset. Page is clamped to [1, totalPages] and an empty
// match yields an empty page, never an error.
func View(records []models.InventoryRecord, filter models.InventoryFilter) models.InventoryView {
	pageSize := normalizePageSize(filter.PageSize)

	keyword := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]models.InventoryRecord, 0, len(records))
	for _, rec := range records {
		if !matches(&rec, &filter, keyword) {
			continue
		}
		filtered = append(filtered, rec)
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return models.InventoryView{
		Page:          filtered[start:end],
		TotalCount:    len(filtered),
		TotalPages:    totalPages,
		EffectivePage: page,
		VendorOptions: VendorOptions(records),
	}
}

func matches(rec *models.InventoryRecord, filter *models.InventoryFilter, keyword string) bool {
	if keyword != "" {
		haystack := strings.ToLower(rec.SKU + " " + rec.Name + " " + rec.Category)
		if !strings.Contains(haystack, keyword) {
			return false
		}
	}
	if filter.Category != "" && rec.Category != filter.Category {
		return false
	}
	if filter.VendorID != "" && rec.VendorID != filter.VendorID {
		return false
	}
	// Urgency compares against the stored enum values, case-sensitive.
	if filter.Urgency != "" && rec.UrgencyLevel != filter.Urgency {
		return false
	}
	if filter.LowStockOnly && !rec.LowStock() {
		return false
	}
	return true
}

// VendorOptions collects the (id, name) pairs present in the record set,
// deduplicated by id. First-seen name wins and order is first-seen order.
// Records without a vendor id are skipped.
func VendorOptions(records []models.InventoryRecord) []models.VendorOption {
	seen := make(map[string]bool, len(records))
	options := make([]models.VendorOption, 0)
	for _, rec := range records {
		if rec.VendorID == "" || seen[rec.VendorID] {
			continue
		}
		seen[rec.VendorID] = true
		options = append(options, models.VendorOption{ID: rec.VendorID, Name: rec.VendorName})
	}
	return options
}

func normalizePageSize(size int) int {
	for _, allowed := range PageSizes {
		if size == allowed {
			return size
		}
	}
	return DefaultPageSize
}
