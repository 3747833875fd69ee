package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the StockDeck server version and status. Use this to verify connectivity."),
	)
}

// createGetDashboardStatsTool returns the get_dashboard_stats tool definition
func createGetDashboardStatsTool() mcp.Tool {
	return mcp.NewTool("get_dashboard_stats",
		mcp.WithDescription("Get aggregate inventory counters: total SKUs, stockout risks, critical risks, low-stock items, and active categories."),
	)
}

// createListAgentsTool returns the list_agents tool definition
func createListAgentsTool() mcp.Tool {
	return mcp.NewTool("list_agents",
		mcp.WithDescription("List the available inventory agents and show which one is currently active."),
	)
}

// createViewInventoryTool returns the view_inventory tool definition
func createViewInventoryTool() mcp.Tool {
	return mcp.NewTool("view_inventory",
		mcp.WithDescription("View the inventory table with optional filters and pagination. All filters combine with AND; omitted filters match everything."),
		mcp.WithString("search",
			mcp.Description("Case-insensitive substring match against SKU, name, and category"),
		),
		mcp.WithString("category",
			mcp.Description("Exact category filter (e.g. 'Electronics')"),
		),
		mcp.WithString("vendor_id",
			mcp.Description("Exact vendor id filter"),
		),
		mcp.WithString("urgency",
			mcp.Description("Urgency level filter: CRITICAL, HIGH, MEDIUM, or LOW"),
		),
		mcp.WithBoolean("low_stock_only",
			mcp.Description("Only show SKUs at or below their reorder point (default: false)"),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number, clamped to the available range (default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Rows per page: 20, 50, or 100 (default: 20)"),
		),
	)
}

// createRiskOverviewTool returns the risk_overview tool definition
func createRiskOverviewTool() mcp.Tool {
	return mcp.NewTool("risk_overview",
		mcp.WithDescription("Summarize stockout risks: urgency-level histogram plus the top SKUs ranked by revenue at risk."),
		mcp.WithNumber("top_n",
			mcp.Description("How many top-revenue SKUs to include (default: 10)"),
		),
	)
}

// createRiskListTool returns the risk_list tool definition
func createRiskListTool() mcp.Tool {
	return mcp.NewTool("risk_list",
		mcp.WithDescription("List the raw stockout-risk records, 10 per page."),
		mcp.WithNumber("page",
			mcp.Description("1-based page number, clamped to the available range (default: 1)"),
		),
	)
}

// createRiskChartTool returns the risk_chart tool definition
func createRiskChartTool() mcp.Tool {
	return mcp.NewTool("risk_chart",
		mcp.WithDescription("Render the risk charts (urgency distribution donut and revenue-at-risk bar chart) as PNG images and return their URLs."),
	)
}

// createAskAgentTool returns the ask_agent tool definition
func createAskAgentTool() mcp.Tool {
	return mcp.NewTool("ask_agent",
		mcp.WithDescription("Send a message to the active inventory agent and return its reply. Replies from the stockout sentinel may refresh the risk data shown by the risk tools."),
		mcp.WithString("message",
			mcp.Required(),
			mcp.Description("The question or instruction for the agent"),
		),
		mcp.WithString("agent",
			mcp.Description("Agent id to switch to for this and subsequent messages (e.g. 'replenishment_planner')"),
		),
	)
}

// createQuickActionTool returns the quick_action tool definition
func createQuickActionTool() mcp.Tool {
	return mcp.NewTool("quick_action",
		mcp.WithDescription("Run a one-step dashboard shortcut that switches to the right agent and asks a canned question."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Shortcut name: stockout_risks, replenishment_plan, exception_scan, or clearance_advice"),
		),
	)
}

// createGetTranscriptTool returns the get_transcript tool definition
func createGetTranscriptTool() mcp.Tool {
	return mcp.NewTool("get_transcript",
		mcp.WithDescription("Show the conversation transcript for the current session."),
	)
}

// createReloadDataTool returns the reload_data tool definition
func createReloadDataTool() mcp.Tool {
	return mcp.NewTool("reload_data",
		mcp.WithDescription("Re-fetch dashboard data from the gateway. This is the only retry path; failed loads are never retried automatically."),
		mcp.WithString("source",
			mcp.Description("What to reload: all, roster, risks, or inventory (default: all)"),
		),
	)
}
