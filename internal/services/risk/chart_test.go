package risk

import (
	"bytes"
	"testing"

	"github.com/stockdeck/stockdeck/internal/models"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestRenderUrgencyDonut(t *testing.T) {
	buckets := []models.UrgencyBucket{
		{Label: "critical", Count: 3, Color: "#FF6B6B"},
		{Label: "low", Count: 7, Color: "#96CEB4"},
	}

	data, err := RenderUrgencyDonut(buckets)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, pngHeader) {
		t.Error("Expected PNG output")
	}
}

func TestRenderUrgencyDonut_EmptyBuckets(t *testing.T) {
	if _, err := RenderUrgencyDonut(nil); err == nil {
		t.Error("Expected error for empty buckets")
	}
}

func TestRenderTopRevenueBar(t *testing.T) {
	records := []models.RiskRecord{
		{SKU: "SKU-001", RevenueAtRisk: 12000},
		{SKU: "A-VERY-LONG-SKU-IDENTIFIER", RevenueAtRisk: 8000},
	}

	data, err := RenderTopRevenueBar(records)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, pngHeader) {
		t.Error("Expected PNG output")
	}
}

func TestRenderTopRevenueBar_EmptyRecords(t *testing.T) {
	if _, err := RenderTopRevenueBar(nil); err == nil {
		t.Error("Expected error for empty record list")
	}
}
