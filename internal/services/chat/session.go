// Package chat implements the conversation session controller: transcript
// ownership, agent routing, and the single cross-engine side effect of
// merging structured risk output back into the dashboard.
package chat

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/stockdeck/stockdeck/internal/common"
	"github.com/stockdeck/stockdeck/internal/interfaces"
	"github.com/stockdeck/stockdeck/internal/models"
)

// FallbackReply is appended when the gateway returns no text.
const FallbackReply = "The agent returned no content."

// ErrorReply is appended when an invocation fails for any reason.
const ErrorReply = "Request failed. Check gateway connectivity and try again."

// ErrInvocationInFlight is returned when a submit or agent switch arrives
// while an earlier invocation has not resolved.
var ErrInvocationInFlight = errors.New("an agent invocation is already in flight")

// RiskSink receives replacement risk record sets produced by risk-capable
// agents.
type RiskSink func(risks []models.RiskRecord)

// Session implements the ChatSession interface. The transcript is
// append-only; messages are never reordered or deleted. At most one
// invocation is in flight at a time: pending doubles as the single-flight
// token, taken and released under the mutex.
type Session struct {
	id      string
	gateway interfaces.GatewayClient
	logger  *common.Logger
	sink    RiskSink

	mu          sync.Mutex
	activeAgent string
	agents      map[string]models.AgentDescriptor
	messages    []models.ChatMessage
	pending     bool
}

// Option configures a session
type Option func(*Session)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRiskSink sets the destination for structured risk output
func WithRiskSink(sink RiskSink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}

// WithDefaultAgent sets the initially active agent
func WithDefaultAgent(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.activeAgent = id
		}
	}
}

// NewSession creates a session with a freshly generated id. The id never
// changes for the lifetime of the session and is attached to every
// invocation so the gateway can correlate the conversation.
func NewSession(gw interfaces.GatewayClient, opts ...Option) *Session {
	s := &Session{
		id:          uuid.NewString(),
		gateway:     gw,
		logger:      common.NewSilentLogger(),
		activeAgent: models.AgentStockoutSentinel,
		agents:      make(map[string]models.AgentDescriptor),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the stable session identifier.
func (s *Session) ID() string {
	return s.id
}

// ActiveAgent returns the currently selected agent id.
func (s *Session) ActiveAgent() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeAgent
}

// Pending reports whether an invocation is in flight.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Messages returns a copy of the transcript in insertion order.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// SetRoster updates the roster used for capability lookups.
func (s *Session) SetRoster(agents []models.AgentDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = make(map[string]models.AgentDescriptor, len(agents))
	for _, agent := range agents {
		s.agents[agent.ID] = agent
	}
}

// SelectAgent changes the active agent. A request in flight is never
// interrupted by a manual switch; callers that need switch-and-ask in one
// step pass the agent via SubmitOptions instead.
func (s *Session) SelectAgent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending {
		return ErrInvocationInFlight
	}
	s.activeAgent = id
	return nil
}

// Submit runs one conversational turn: Idle -> Invoking -> Idle.
// The user message is appended before the network call resolves. An agent
// override in opts updates the active agent as part of the same transition.
// Any failure collapses to a fixed assistant error message; the transcript
// is otherwise unchanged and no retry is attempted.
func (s *Session) Submit(ctx context.Context, text string, opts interfaces.SubmitOptions) (models.ChatMessage, error) {
	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return models.ChatMessage{}, ErrInvocationInFlight
	}
	s.pending = true
	if opts.AgentID != "" && opts.AgentID != s.activeAgent {
		s.activeAgent = opts.AgentID
	}
	target := s.activeAgent
	s.messages = append(s.messages, models.ChatMessage{Role: models.RoleUser, Content: text})
	req := models.InvokeRequest{
		Agent:      target,
		Input:      text,
		SessionID:  s.id,
		Parameters: opts.Parameters,
	}
	s.mu.Unlock()

	resp, err := s.gateway.InvokeAgent(ctx, req)

	var reply models.ChatMessage
	var risks []models.RiskRecord

	s.mu.Lock()
	s.pending = false
	if err != nil {
		s.logger.Warn().Err(err).Str("agent", target).Msg("Agent invocation failed")
		reply = models.ChatMessage{Role: models.RoleAssistant, Content: ErrorReply}
	} else {
		content := resp.Text
		if content == "" {
			content = FallbackReply
		}
		reply = models.ChatMessage{Role: models.RoleAssistant, Content: content}

		if s.producesRiskUpdates(target) && resp.StructuredOutput != nil && len(resp.StructuredOutput.Risks) > 0 {
			risks = resp.StructuredOutput.Risks
		}
	}
	s.messages = append(s.messages, reply)
	s.mu.Unlock()

	// The sink runs outside the session lock; it owns its own state.
	if risks != nil && s.sink != nil {
		s.sink(risks)
		s.logger.Info().Int("count", len(risks)).Msg("Risk set replaced from agent reply")
	}

	return reply, nil
}

// producesRiskUpdates resolves the risk-update capability for an agent id.
// When the roster is unavailable the stockout sentinel keeps its capability,
// so a failed roster load does not silence risk merges. Callers hold s.mu.
func (s *Session) producesRiskUpdates(id string) bool {
	if agent, ok := s.agents[id]; ok {
		return agent.ProducesRiskUpdates
	}
	return id == models.AgentStockoutSentinel
}

// QuickAction is a one-step switch-and-ask shortcut: it targets a specific
// agent with a canned prompt without a separate agent-selection step.
type QuickAction struct {
	Name    string
	AgentID string
	Prompt  string
}

// QuickActions are the built-in dashboard shortcuts.
var QuickActions = []QuickAction{
	{Name: "stockout_risks", AgentID: models.AgentStockoutSentinel, Prompt: "Show current stockout risks"},
	{Name: "replenishment_plan", AgentID: "replenishment_planner", Prompt: "Generate a replenishment plan"},
	{Name: "exception_scan", AgentID: "exception_investigator", Prompt: "Look for data exceptions"},
	{Name: "clearance_advice", AgentID: "markdown_clearance_coach", Prompt: "Suggest markdown and clearance discounts"},
}

// FindQuickAction looks up a quick action by name.
func FindQuickAction(name string) (QuickAction, bool) {
	for _, qa := range QuickActions {
		if qa.Name == name {
			return qa, true
		}
	}
	return QuickAction{}, false
}
