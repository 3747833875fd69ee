package app

import (
	"fmt"
	"strings"

	"github.com/stockdeck/stockdeck/internal/common"
	"github.com/stockdeck/stockdeck/internal/interfaces"
	"github.com/stockdeck/stockdeck/internal/models"
)

// formatStats renders the aggregate counters as a markdown summary.
func formatStats(stats models.StatsSnapshot) string {
	var sb strings.Builder

	sb.WriteString("# Dashboard Stats\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total SKUs | %s |\n", common.FormatInt(stats.TotalSKUs)))
	sb.WriteString(fmt.Sprintf("| Stockout Risks | %s |\n", common.FormatInt(stats.StockoutRisks)))
	sb.WriteString(fmt.Sprintf("| Critical Risks | %s |\n", common.FormatInt(stats.CriticalRisks)))
	sb.WriteString(fmt.Sprintf("| Low Stock Items | %s |\n", common.FormatInt(stats.LowStockItems)))
	sb.WriteString(fmt.Sprintf("| Categories | %s |\n", common.FormatInt(stats.TotalCategories)))

	if len(stats.Categories) > 0 {
		sb.WriteString("\nActive categories: " + strings.Join(stats.Categories, ", ") + "\n")
	}

	return sb.String()
}

// formatAgents renders the roster with the active agent marked.
func formatAgents(agents []models.AgentDescriptor, activeID string) string {
	var sb strings.Builder

	sb.WriteString("# Available Agents\n\n")
	sb.WriteString("| Agent | ID | Active |\n")
	sb.WriteString("|-------|----|--------|\n")
	for _, agent := range agents {
		marker := ""
		if agent.ID == activeID {
			marker = "yes"
		}
		name := agent.FriendlyName
		if name == "" {
			name = agent.ID
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", name, agent.ID, marker))
	}

	return sb.String()
}

// formatInventoryView renders one page of the filtered inventory table.
func formatInventoryView(view models.InventoryView, filter models.InventoryFilter) string {
	var sb strings.Builder

	sb.WriteString("# Inventory\n\n")

	var active []string
	if filter.Search != "" {
		active = append(active, fmt.Sprintf("search=%q", filter.Search))
	}
	if filter.Category != "" {
		active = append(active, "category="+filter.Category)
	}
	if filter.VendorID != "" {
		active = append(active, "vendor="+filter.VendorID)
	}
	if filter.Urgency != "" {
		active = append(active, "urgency="+filter.Urgency)
	}
	if filter.LowStockOnly {
		active = append(active, "low-stock only")
	}
	if len(active) > 0 {
		sb.WriteString("Filters: " + strings.Join(active, ", ") + "\n\n")
	}

	if view.TotalCount == 0 {
		sb.WriteString("No matching items.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%s matching item(s), page %d of %d\n\n",
		common.FormatInt(view.TotalCount), view.EffectivePage, view.TotalPages))

	sb.WriteString("| SKU | Name | Category | Stock | Reorder | Urgency | Vendor |\n")
	sb.WriteString("|-----|------|----------|-------|---------|---------|--------|\n")
	for _, item := range view.Page {
		urgency := item.UrgencyLevel
		if urgency == "" {
			urgency = "-"
		}
		vendor := item.VendorName
		if vendor == "" {
			vendor = item.VendorID
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %d | %s | %s |\n",
			item.SKU, item.Name, item.Category, item.CurrentStock, item.ReorderPoint, urgency, vendor))
	}

	if len(view.VendorOptions) > 0 {
		names := make([]string, 0, len(view.VendorOptions))
		for _, v := range view.VendorOptions {
			label := v.Name
			if label == "" {
				label = v.ID
			}
			names = append(names, fmt.Sprintf("%s (%s)", label, v.ID))
		}
		sb.WriteString("\nVendor filter choices: " + strings.Join(names, ", ") + "\n")
	}

	return sb.String()
}

// formatRiskOverview renders the urgency histogram and revenue ranking.
func formatRiskOverview(overview models.RiskOverview) string {
	var sb strings.Builder

	sb.WriteString("# Risk Overview\n\n")

	if overview.Total == 0 {
		sb.WriteString("No risk records loaded. Ask the stockout sentinel or use reload_data.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%s at-risk SKU(s)\n\n", common.FormatInt(overview.Total)))

	sb.WriteString("## Urgency Distribution\n\n")
	sb.WriteString("| Level | Count |\n")
	sb.WriteString("|-------|-------|\n")
	for _, b := range overview.Buckets {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", strings.ToUpper(b.Label), b.Count))
	}

	if len(overview.Top) > 0 {
		sb.WriteString("\n## Top Revenue at Risk\n\n")
		sb.WriteString("| # | SKU | Days Left | Shortage | Revenue at Risk | Urgency |\n")
		sb.WriteString("|---|-----|-----------|----------|-----------------|---------|\n")
		for i, rec := range overview.Top {
			sb.WriteString(fmt.Sprintf("| %d | %s | %.1f | %.0f | %s | %s |\n",
				i+1, rec.SKU, rec.Days, rec.Shortage, common.FormatMoney(rec.RevenueAtRisk), rec.Urgency))
		}
	}

	return sb.String()
}

// formatRiskPage renders one page of the raw risk list.
func formatRiskPage(page models.RiskPage) string {
	var sb strings.Builder

	sb.WriteString("# Risk List\n\n")

	if page.TotalCount == 0 {
		sb.WriteString("No risk records loaded.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%s record(s), page %d of %d\n\n",
		common.FormatInt(page.TotalCount), page.Page, page.TotalPages))

	sb.WriteString("| SKU | Days Left | Shortage | Revenue at Risk | Urgency |\n")
	sb.WriteString("|-----|-----------|----------|-----------------|---------|\n")
	for _, rec := range page.Items {
		sb.WriteString(fmt.Sprintf("| %s | %.1f | %.0f | %s | %s |\n",
			rec.SKU, rec.Days, rec.Shortage, common.FormatMoney(rec.RevenueAtRisk), rec.Urgency))
	}

	return sb.String()
}

// formatTranscript renders the session transcript in insertion order.
func formatTranscript(session interfaces.ChatSession) string {
	messages := session.Messages()

	var sb strings.Builder
	sb.WriteString("# Transcript\n\n")
	sb.WriteString(fmt.Sprintf("Session: %s\nActive agent: %s\n\n", session.ID(), session.ActiveAgent()))

	if len(messages) == 0 {
		sb.WriteString("No messages yet.\n")
		return sb.String()
	}

	for _, msg := range messages {
		switch msg.Role {
		case models.RoleUser:
			sb.WriteString("**You:** " + msg.Content + "\n\n")
		default:
			sb.WriteString("**Agent:** " + msg.Content + "\n\n")
		}
	}

	if session.Pending() {
		sb.WriteString("_An invocation is still in flight._\n")
	}

	return sb.String()
}
