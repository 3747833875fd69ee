package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stockdeck/stockdeck/internal/interfaces"
	"github.com/stockdeck/stockdeck/internal/models"
)

// --- fakeSession ---

type fakeSession struct {
	id       string
	active   string
	messages []models.ChatMessage
	pending  bool
}

func (f *fakeSession) ID() string          { return f.id }
func (f *fakeSession) ActiveAgent() string { return f.active }
func (f *fakeSession) SelectAgent(id string) error {
	f.active = id
	return nil
}
func (f *fakeSession) Submit(ctx context.Context, text string, opts interfaces.SubmitOptions) (models.ChatMessage, error) {
	return models.ChatMessage{}, nil
}
func (f *fakeSession) Messages() []models.ChatMessage       { return f.messages }
func (f *fakeSession) Pending() bool                        { return f.pending }
func (f *fakeSession) SetRoster(a []models.AgentDescriptor) {}

func TestFormatStats(t *testing.T) {
	out := formatStats(models.StatsSnapshot{
		TotalSKUs:       1200,
		StockoutRisks:   14,
		CriticalRisks:   3,
		LowStockItems:   22,
		TotalCategories: 2,
		Categories:      []string{"Electronics", "Home"},
	})

	if !strings.Contains(out, "1,200") {
		t.Error("Expected grouped SKU count")
	}
	if !strings.Contains(out, "Electronics, Home") {
		t.Error("Expected category list")
	}
}

func TestFormatAgents_MarksActive(t *testing.T) {
	agents := []models.AgentDescriptor{
		{ID: "stockout_sentinel", FriendlyName: "Stockout Sentinel"},
		{ID: "replenishment_planner", FriendlyName: "Replenishment Planner"},
	}

	out := formatAgents(agents, "replenishment_planner")

	lines := strings.Split(out, "\n")
	var sentinelLine, plannerLine string
	for _, line := range lines {
		if strings.Contains(line, "stockout_sentinel") {
			sentinelLine = line
		}
		if strings.Contains(line, "replenishment_planner") {
			plannerLine = line
		}
	}
	if !strings.Contains(plannerLine, "yes") {
		t.Errorf("Active agent not marked: %s", plannerLine)
	}
	if strings.Contains(sentinelLine, "yes") {
		t.Errorf("Inactive agent marked: %s", sentinelLine)
	}
}

func TestFormatInventoryView(t *testing.T) {
	view := models.InventoryView{
		Page: []models.InventoryRecord{
			{SKU: "SKU-001", Name: "USB-C Cable", Category: "Electronics", CurrentStock: 5, ReorderPoint: 20, UrgencyLevel: "CRITICAL", VendorName: "Acme"},
		},
		TotalCount:    45,
		TotalPages:    3,
		EffectivePage: 3,
		VendorOptions: []models.VendorOption{{ID: "V-1", Name: "Acme"}},
	}

	out := formatInventoryView(view, models.InventoryFilter{Search: "cable", LowStockOnly: true})

	if !strings.Contains(out, "page 3 of 3") {
		t.Error("Expected page position")
	}
	if !strings.Contains(out, "SKU-001") {
		t.Error("Expected row content")
	}
	if !strings.Contains(out, `search="cable"`) || !strings.Contains(out, "low-stock only") {
		t.Error("Expected active filters echoed")
	}
	if !strings.Contains(out, "Acme (V-1)") {
		t.Error("Expected vendor choices")
	}
}

func TestFormatInventoryView_Empty(t *testing.T) {
	out := formatInventoryView(models.InventoryView{TotalPages: 1, EffectivePage: 1}, models.InventoryFilter{})
	if !strings.Contains(out, "No matching items") {
		t.Error("Expected empty-state message")
	}
}

func TestFormatRiskOverview(t *testing.T) {
	overview := models.RiskOverview{
		Total: 3,
		Buckets: []models.UrgencyBucket{
			{Label: "critical", Count: 2, Color: "#FF6B6B"},
			{Label: "low", Count: 1, Color: "#96CEB4"},
		},
		Top: []models.RiskRecord{
			{SKU: "SKU-002", Days: 1.5, Shortage: 30, RevenueAtRisk: 12500, Urgency: "critical"},
		},
	}

	out := formatRiskOverview(overview)

	if !strings.Contains(out, "CRITICAL") {
		t.Error("Expected upper-cased bucket label")
	}
	if !strings.Contains(out, "$12,500.00") {
		t.Error("Expected formatted revenue")
	}
	if !strings.Contains(out, "1.5") {
		t.Error("Expected fractional days")
	}
}

func TestFormatRiskOverview_Empty(t *testing.T) {
	out := formatRiskOverview(models.RiskOverview{})
	if !strings.Contains(out, "No risk records") {
		t.Error("Expected empty-state message")
	}
}

func TestFormatRiskPage(t *testing.T) {
	page := models.RiskPage{
		Items:      []models.RiskRecord{{SKU: "SKU-003", Days: 4, RevenueAtRisk: 900, Urgency: "high"}},
		Page:       2,
		TotalPages: 5,
		TotalCount: 42,
	}

	out := formatRiskPage(page)

	if !strings.Contains(out, "page 2 of 5") {
		t.Error("Expected page position")
	}
	if !strings.Contains(out, "SKU-003") {
		t.Error("Expected row content")
	}
}

func TestFormatTranscript(t *testing.T) {
	session := &fakeSession{
		id:     "sess-1",
		active: "stockout_sentinel",
		messages: []models.ChatMessage{
			{Role: models.RoleUser, Content: "show risks"},
			{Role: models.RoleAssistant, Content: "14 SKUs at risk"},
		},
	}

	out := formatTranscript(session)

	if !strings.Contains(out, "sess-1") {
		t.Error("Expected session id")
	}
	if !strings.Contains(out, "**You:** show risks") {
		t.Error("Expected user turn")
	}
	if !strings.Contains(out, "**Agent:** 14 SKUs at risk") {
		t.Error("Expected assistant turn")
	}

	userIdx := strings.Index(out, "show risks")
	agentIdx := strings.Index(out, "14 SKUs")
	if userIdx > agentIdx {
		t.Error("Transcript must keep insertion order")
	}
}

func TestFormatTranscript_Empty(t *testing.T) {
	out := formatTranscript(&fakeSession{id: "sess-1", active: "stockout_sentinel"})
	if !strings.Contains(out, "No messages yet") {
		t.Error("Expected empty-state message")
	}
}
