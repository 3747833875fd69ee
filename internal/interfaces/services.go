// Package interfaces defines service contracts for StockDeck
package interfaces

import (
	"context"

	"github.com/stockdeck/stockdeck/internal/models"
)

// DashboardService owns the fetched record sets and derives the dashboard
// views from them. Derived views are recomputed from the full record set on
// every call; nothing is cached incrementally.
type DashboardService interface {
	// Load runs the initial data loads. The roster+stats, risk, and
	// inventory loads are independent; a failure in one collapses that
	// source to its default and does not affect the others.
	Load(ctx context.Context)

	// ReloadRoster re-fetches agents and stats together
	ReloadRoster(ctx context.Context)

	// ReloadRisks re-fetches the risk record set
	ReloadRisks(ctx context.Context)

	// ReloadInventory re-fetches the inventory record set
	ReloadInventory(ctx context.Context)

	// Stats returns the last successfully fetched counters
	Stats() models.StatsSnapshot

	// Agents returns the agent roster
	Agents() []models.AgentDescriptor

	// Agent looks up a roster entry by id
	Agent(id string) (models.AgentDescriptor, bool)

	// InventoryView applies the filter specification to the inventory set
	InventoryView(filter models.InventoryFilter) models.InventoryView

	// RiskOverview returns the urgency histogram and top-N revenue ranking
	RiskOverview(topN int) models.RiskOverview

	// RiskPage returns one fixed-size page of the raw risk list
	RiskPage(page int) models.RiskPage

	// Risks returns a copy of the current risk record set
	Risks() []models.RiskRecord

	// ReplaceRisks atomically replaces the risk record set. This is the
	// sink for structured risk output from chat invocations.
	ReplaceRisks(risks []models.RiskRecord)
}

// ChatSession is the conversation controller: it owns the transcript, the
// active agent selection, and the stable session identifier.
type ChatSession interface {
	// ID returns the session identifier, generated once per process
	ID() string

	// ActiveAgent returns the currently selected agent id
	ActiveAgent() string

	// SelectAgent changes the active agent. Rejected while an invocation
	// is in flight.
	SelectAgent(id string) error

	// Submit appends the user message, invokes the active agent (or the
	// override in opts), and appends the assistant reply. Returns the
	// assistant message. Rejected while another invocation is in flight.
	Submit(ctx context.Context, text string, opts SubmitOptions) (models.ChatMessage, error)

	// Messages returns a copy of the transcript in insertion order
	Messages() []models.ChatMessage

	// Pending reports whether an invocation is in flight
	Pending() bool

	// SetRoster updates the roster used for capability lookups
	SetRoster(agents []models.AgentDescriptor)
}

// SubmitOptions configures a single chat submission
type SubmitOptions struct {
	AgentID    string         // switch-and-ask override; empty keeps the active agent
	Parameters map[string]any // passed through to the gateway verbatim
}
