// Package interfaces defines service contracts for StockDeck
package interfaces

import (
	"context"

	"github.com/stockdeck/stockdeck/internal/models"
)

// GatewayClient provides access to the backend agent gateway.
// Every method reports transport and protocol failures as errors; callers
// that own shared state are responsible for collapsing failures to default
// values. Missing collection fields in otherwise valid responses decode to
// empty collections, not errors.
type GatewayClient interface {
	// ListAgents retrieves the agent roster
	ListAgents(ctx context.Context) ([]models.AgentDescriptor, error)

	// GetStats retrieves the aggregate inventory counters
	GetStats(ctx context.Context) (models.StatsSnapshot, error)

	// GetRisks retrieves up to limit stockout-risk records
	GetRisks(ctx context.Context, limit int) ([]models.RiskRecord, error)

	// GetInventory retrieves inventory records, optionally narrowed by
	// query type and category
	GetInventory(ctx context.Context, opts InventoryQuery) ([]models.InventoryRecord, error)

	// InvokeAgent runs one conversational turn against an agent
	InvokeAgent(ctx context.Context, req models.InvokeRequest) (*models.AgentResponse, error)

	// Health probes gateway connectivity
	Health(ctx context.Context) error
}

// InventoryQuery narrows an inventory fetch
type InventoryQuery struct {
	QueryType string // "all", "low_stock", "stockout_risk" (default "all")
	Category  string // optional category narrowing
	Limit     int    // max records (default 100)
}
