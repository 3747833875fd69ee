// Package dashboard owns the fetched record sets (stats, roster, risks,
// inventory) and derives the dashboard views from them.
package dashboard

import (
	"context"
	"sync"

	"github.com/stockdeck/stockdeck/internal/common"
	"github.com/stockdeck/stockdeck/internal/interfaces"
	"github.com/stockdeck/stockdeck/internal/models"
	"github.com/stockdeck/stockdeck/internal/services/inventory"
	"github.com/stockdeck/stockdeck/internal/services/risk"
)

// Service implements the DashboardService interface. Each record set is
// replaced wholesale under the mutex; views are recomputed from the full
// set on every call. Load failures collapse to defaults at this boundary
// and are never surfaced as errors to callers.
type Service struct {
	gateway interfaces.GatewayClient
	logger  *common.Logger

	riskLimit      int
	inventoryLimit int

	mu     sync.RWMutex
	stats  models.StatsSnapshot
	agents []models.AgentDescriptor
	risks  []models.RiskRecord
	items  []models.InventoryRecord
}

// Option configures the service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFetchLimits sets the risk and inventory fetch limits
func WithFetchLimits(riskLimit, inventoryLimit int) Option {
	return func(s *Service) {
		if riskLimit > 0 {
			s.riskLimit = riskLimit
		}
		if inventoryLimit > 0 {
			s.inventoryLimit = inventoryLimit
		}
	}
}

// NewService creates a dashboard service backed by the gateway client.
func NewService(gw interfaces.GatewayClient, opts ...Option) *Service {
	s := &Service{
		gateway:        gw,
		logger:         common.NewSilentLogger(),
		riskLimit:      100,
		inventoryLimit: 100,
		stats:          models.DefaultStats(),
		agents:         []models.AgentDescriptor{},
		risks:          []models.RiskRecord{},
		items:          []models.InventoryRecord{},
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load runs the three initial loads concurrently. Each load has its own
// failure domain: a failure collapses that source to its default without
// touching the others. Whole-set replacement is serialized under the
// mutex, so concurrent loads resolve last-writer-wins per source.
func (s *Service) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.ReloadRoster(ctx)
	}()
	go func() {
		defer wg.Done()
		s.ReloadRisks(ctx)
	}()
	go func() {
		defer wg.Done()
		s.ReloadInventory(ctx)
	}()
	wg.Wait()
}

// ReloadRoster re-fetches the agent roster and stats as one combined load.
// If either fetch fails both collapse together: empty roster, default stats.
func (s *Service) ReloadRoster(ctx context.Context) {
	agents, agentsErr := s.gateway.ListAgents(ctx)
	stats, statsErr := s.gateway.GetStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if agentsErr != nil || statsErr != nil {
		if agentsErr != nil {
			s.logger.Warn().Err(agentsErr).Msg("Agent roster load failed")
		}
		if statsErr != nil {
			s.logger.Warn().Err(statsErr).Msg("Stats load failed")
		}
		s.agents = []models.AgentDescriptor{}
		s.stats = models.DefaultStats()
		return
	}
	s.agents = agents
	s.stats = stats
	s.logger.Info().Int("agents", len(agents)).Int("skus", stats.TotalSKUs).Msg("Roster and stats loaded")
}

// ReloadRisks re-fetches the risk record set, collapsing failure to empty.
func (s *Service) ReloadRisks(ctx context.Context) {
	risks, err := s.gateway.GetRisks(ctx, s.riskLimit)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Risk load failed")
		risks = []models.RiskRecord{}
	}

	s.mu.Lock()
	s.risks = risks
	s.mu.Unlock()
}

// ReloadInventory re-fetches the inventory set, collapsing failure to empty.
func (s *Service) ReloadInventory(ctx context.Context) {
	items, err := s.gateway.GetInventory(ctx, interfaces.InventoryQuery{
		QueryType: "all",
		Limit:     s.inventoryLimit,
	})
	if err != nil {
		s.logger.Warn().Err(err).Msg("Inventory load failed")
		items = []models.InventoryRecord{}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Stats returns the last successfully fetched counters.
func (s *Service) Stats() models.StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// Agents returns a copy of the agent roster.
func (s *Service) Agents() []models.AgentDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AgentDescriptor, len(s.agents))
	copy(out, s.agents)
	return out
}

// Agent looks up a roster entry by id.
func (s *Service) Agent(id string) (models.AgentDescriptor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, agent := range s.agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return models.AgentDescriptor{}, false
}

// InventoryView applies the filter specification to the inventory set.
func (s *Service) InventoryView(filter models.InventoryFilter) models.InventoryView {
	s.mu.RLock()
	items := s.items
	s.mu.RUnlock()
	return inventory.View(items, filter)
}

// RiskOverview returns the urgency histogram and the top-N revenue ranking.
func (s *Service) RiskOverview(topN int) models.RiskOverview {
	s.mu.RLock()
	risks := s.risks
	s.mu.RUnlock()
	return models.RiskOverview{
		Total:   len(risks),
		Buckets: risk.BucketByUrgency(risks),
		Top:     risk.TopByRevenue(risks, topN),
	}
}

// RiskPage returns one fixed-size page of the raw risk list.
func (s *Service) RiskPage(page int) models.RiskPage {
	s.mu.RLock()
	risks := s.risks
	s.mu.RUnlock()
	return risk.Page(risks, page)
}

// Risks returns a copy of the current risk record set.
func (s *Service) Risks() []models.RiskRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RiskRecord, len(s.risks))
	copy(out, s.risks)
	return out
}

// ReplaceRisks atomically replaces the risk record set. It is the sink for
// structured risk output from chat invocations.
func (s *Service) ReplaceRisks(risks []models.RiskRecord) {
	s.mu.Lock()
	s.risks = risks
	s.mu.Unlock()
}
