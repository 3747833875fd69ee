// Package app wires configuration, the gateway client, the dashboard and
// chat services, and the MCP tool surface into one application core shared
// by cmd/stockdeck-server.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/stockdeck/stockdeck/internal/clients/gateway"
	"github.com/stockdeck/stockdeck/internal/common"
	"github.com/stockdeck/stockdeck/internal/interfaces"
	"github.com/stockdeck/stockdeck/internal/services/chat"
	"github.com/stockdeck/stockdeck/internal/services/dashboard"
)

// App holds all initialized services, the gateway client, and the MCP
// server.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Gateway     interfaces.GatewayClient
	Dashboard   interfaces.DashboardService
	Session     interfaces.ChatSession
	Images      *ImageCache
	MCPServer   *server.MCPServer
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes the gateway client, services, and the MCP server.
// configPath may be empty, in which case the default resolution logic is
// used: STOCKDECK_CONFIG, then stockdeck.toml next to the binary, then
// config/stockdeck.toml.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("STOCKDECK_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "stockdeck.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/stockdeck.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative chart cache path to binary directory
	if config.Charts.Dir != "" && !filepath.IsAbs(config.Charts.Dir) {
		config.Charts.Dir = filepath.Join(binDir, config.Charts.Dir)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	gatewayOpts := []gateway.ClientOption{
		gateway.WithLogger(logger),
		gateway.WithRateLimit(config.Gateway.RateLimit),
		gateway.WithTimeout(config.Gateway.GetTimeout()),
	}
	if config.Gateway.APIKey != "" {
		gatewayOpts = append(gatewayOpts, gateway.WithAPIKey(config.Gateway.APIKey))
	}
	gatewayClient := gateway.NewClient(config.Gateway.BaseURL, gatewayOpts...)

	dashboardService := dashboard.NewService(gatewayClient,
		dashboard.WithLogger(logger),
		dashboard.WithFetchLimits(config.Gateway.RiskLimit, config.Gateway.InventoryLimit),
	)

	session := chat.NewSession(gatewayClient,
		chat.WithLogger(logger),
		chat.WithDefaultAgent(config.Chat.DefaultAgent),
		chat.WithRiskSink(dashboardService.ReplaceRisks),
	)

	images := NewImageCache(config.Charts.Dir, config.Server.Port, logger)

	mcpServer := server.NewMCPServer(
		"stockdeck",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:      config,
		Logger:      logger,
		Gateway:     gatewayClient,
		Dashboard:   dashboardService,
		Session:     session,
		Images:      images,
		MCPServer:   mcpServer,
		StartupTime: startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// LoadData runs the initial loads and syncs the chat session with the
// fetched roster. The first roster entry becomes the active agent, matching
// the dashboard's default selection behavior.
func (a *App) LoadData(ctx context.Context) {
	a.Dashboard.Load(ctx)

	agents := a.Dashboard.Agents()
	a.Session.SetRoster(agents)
	if len(agents) > 0 {
		if err := a.Session.SelectAgent(agents[0].ID); err != nil {
			a.Logger.Debug().Err(err).Msg("Kept current agent selection")
		}
	}
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer
	logger := a.Logger

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGetDashboardStatsTool(), handleGetDashboardStats(a.Dashboard))
	s.AddTool(createListAgentsTool(), handleListAgents(a.Dashboard, a.Session))
	s.AddTool(createViewInventoryTool(), handleViewInventory(a.Dashboard))
	s.AddTool(createRiskOverviewTool(), handleRiskOverview(a.Dashboard, a.Config.Charts.TopN))
	s.AddTool(createRiskListTool(), handleRiskList(a.Dashboard))
	s.AddTool(createRiskChartTool(), handleRiskChart(a.Dashboard, a.Images, a.Config.Charts.TopN, logger))
	s.AddTool(createAskAgentTool(), handleAskAgent(a.Session, logger))
	s.AddTool(createQuickActionTool(), handleQuickAction(a.Session, logger))
	s.AddTool(createGetTranscriptTool(), handleGetTranscript(a.Session))
	s.AddTool(createReloadDataTool(), handleReloadData(a, logger))
}
