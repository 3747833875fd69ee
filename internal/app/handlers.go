package app

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/stockdeck/stockdeck/internal/common"
	"github.com/stockdeck/stockdeck/internal/interfaces"
	"github.com/stockdeck/stockdeck/internal/models"
	"github.com/stockdeck/stockdeck/internal/services/chat"
	"github.com/stockdeck/stockdeck/internal/services/risk"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("StockDeck Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleGetDashboardStats implements the get_dashboard_stats tool
func handleGetDashboardStats(dash interfaces.DashboardService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(formatStats(dash.Stats())), nil
	}
}

// handleListAgents implements the list_agents tool
func handleListAgents(dash interfaces.DashboardService, session interfaces.ChatSession) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		agents := dash.Agents()
		if len(agents) == 0 {
			return textResult("No agents available. Try reload_data to re-fetch the roster."), nil
		}
		return textResult(formatAgents(agents, session.ActiveAgent())), nil
	}
}

// handleViewInventory implements the view_inventory tool
func handleViewInventory(dash interfaces.DashboardService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := models.InventoryFilter{
			Search:       request.GetString("search", ""),
			Category:     request.GetString("category", ""),
			VendorID:     request.GetString("vendor_id", ""),
			Urgency:      request.GetString("urgency", ""),
			LowStockOnly: request.GetBool("low_stock_only", false),
			Page:         request.GetInt("page", 1),
			PageSize:     request.GetInt("page_size", 0),
		}

		view := dash.InventoryView(filter)
		return textResult(formatInventoryView(view, filter)), nil
	}
}

// handleRiskOverview implements the risk_overview tool
func handleRiskOverview(dash interfaces.DashboardService, defaultTopN int) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		topN := request.GetInt("top_n", defaultTopN)
		overview := dash.RiskOverview(topN)
		return textResult(formatRiskOverview(overview)), nil
	}
}

// handleRiskList implements the risk_list tool
func handleRiskList(dash interfaces.DashboardService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page := dash.RiskPage(request.GetInt("page", 1))
		return textResult(formatRiskPage(page)), nil
	}
}

// handleRiskChart implements the risk_chart tool
func handleRiskChart(dash interfaces.DashboardService, images *ImageCache, topN int, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		overview := dash.RiskOverview(topN)
		if overview.Total == 0 {
			return textResult("No risk data to chart. Try reload_data first."), nil
		}

		var urls []string

		donut, err := risk.RenderUrgencyDonut(overview.Buckets)
		if err != nil {
			logger.Error().Err(err).Msg("Donut chart render failed")
		} else {
			name, err := images.Put(ImageName("urgency"), donut)
			if err != nil {
				logger.Error().Err(err).Msg("Donut chart cache failed")
			} else {
				urls = append(urls, "Urgency distribution: "+images.FullURL(name))
			}
		}

		bar, err := risk.RenderTopRevenueBar(overview.Top)
		if err != nil {
			logger.Error().Err(err).Msg("Bar chart render failed")
		} else {
			name, err := images.Put(ImageName("revenue"), bar)
			if err != nil {
				logger.Error().Err(err).Msg("Bar chart cache failed")
			} else {
				urls = append(urls, "Revenue at risk: "+images.FullURL(name))
			}
		}

		if len(urls) == 0 {
			return errorResult("Chart rendering failed"), nil
		}

		result := "# Risk Charts\n\n"
		for _, u := range urls {
			result += "- " + u + "\n"
		}
		return textResult(result), nil
	}
}

// handleAskAgent implements the ask_agent tool
func handleAskAgent(session interfaces.ChatSession, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := request.RequireString("message")
		if err != nil || message == "" {
			return errorResult("Error: message parameter is required"), nil
		}

		agentID := request.GetString("agent", "")

		reply, err := session.Submit(ctx, message, interfaces.SubmitOptions{AgentID: agentID})
		if err != nil {
			logger.Warn().Err(err).Msg("Submit rejected")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(reply.Content), nil
	}
}

// handleQuickAction implements the quick_action tool
func handleQuickAction(session interfaces.ChatSession, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil || name == "" {
			return errorResult("Error: name parameter is required"), nil
		}

		action, ok := chat.FindQuickAction(name)
		if !ok {
			return errorResult(fmt.Sprintf("Error: unknown quick action %q", name)), nil
		}

		reply, err := session.Submit(ctx, action.Prompt, interfaces.SubmitOptions{AgentID: action.AgentID})
		if err != nil {
			logger.Warn().Err(err).Str("action", name).Msg("Quick action rejected")
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return textResult(reply.Content), nil
	}
}

// handleGetTranscript implements the get_transcript tool
func handleGetTranscript(session interfaces.ChatSession) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(formatTranscript(session)), nil
	}
}

// handleReloadData implements the reload_data tool
func handleReloadData(a *App, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source := request.GetString("source", "all")

		switch source {
		case "all":
			a.LoadData(ctx)
		case "roster":
			a.Dashboard.ReloadRoster(ctx)
			a.Session.SetRoster(a.Dashboard.Agents())
		case "risks":
			a.Dashboard.ReloadRisks(ctx)
		case "inventory":
			a.Dashboard.ReloadInventory(ctx)
		default:
			return errorResult(fmt.Sprintf("Error: unknown source %q (use all, roster, risks, or inventory)", source)), nil
		}

		logger.Info().Str("source", source).Msg("Data reloaded")

		stats := a.Dashboard.Stats()
		return textResult(fmt.Sprintf("Reloaded %s. %d SKUs, %d risk records, %d agents available.",
			source, stats.TotalSKUs, len(a.Dashboard.Risks()), len(a.Dashboard.Agents()))), nil
	}
}

// Helper functions

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
