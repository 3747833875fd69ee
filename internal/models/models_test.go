package models

import "testing"

func TestLowStock(t *testing.T) {
	cases := []struct {
		stock, reorder int
		want           bool
	}{
		{5, 20, true},
		{20, 20, true},
		{21, 20, false},
		{0, 0, true},
	}
	for _, tc := range cases {
		r := InventoryRecord{CurrentStock: tc.stock, ReorderPoint: tc.reorder}
		if got := r.LowStock(); got != tc.want {
			t.Errorf("LowStock(%d, %d) = %v, want %v", tc.stock, tc.reorder, got, tc.want)
		}
	}
}

func TestUrgencyKey(t *testing.T) {
	cases := []struct {
		in    string
		key   string
		known bool
	}{
		{"CRITICAL", "critical", true},
		{"High", "high", true},
		{"low", "low", true},
		{"severe", "severe", false},
		{"", "", false},
	}
	for _, tc := range cases {
		r := RiskRecord{Urgency: tc.in}
		key, known := r.UrgencyKey()
		if key != tc.key || known != tc.known {
			t.Errorf("UrgencyKey(%q) = (%q, %v), want (%q, %v)", tc.in, key, known, tc.key, tc.known)
		}
	}
}

func TestDefaultStats(t *testing.T) {
	stats := DefaultStats()
	if stats.Categories == nil {
		t.Error("Categories must be an empty slice, not nil")
	}
	if stats.TotalSKUs != 0 {
		t.Errorf("Expected zero counters, got %d", stats.TotalSKUs)
	}
}
