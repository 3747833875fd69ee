package models

// AgentStockoutSentinel is the roster id of the agent whose structured
// replies carry risk-list updates.
const AgentStockoutSentinel = "stockout_sentinel"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// AgentDescriptor is one entry of the gateway's agent roster.
// ProducesRiskUpdates is assigned client-side when the roster is decoded:
// replies from such agents may replace the risk record set.
type AgentDescriptor struct {
	ID                  string `json:"id"`
	FriendlyName        string `json:"friendly_name"`
	Description         string `json:"description,omitempty"`
	Status              string `json:"status,omitempty"`
	ProducesRiskUpdates bool   `json:"-"`
}

// ChatMessage is one entry of the append-only conversation transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// InvokeRequest is the body of POST /agents/invoke.
type InvokeRequest struct {
	Agent      string         `json:"agent"`
	Input      string         `json:"input"`
	SessionID  string         `json:"session_id"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// StructuredOutput is the machine-readable payload accompanying an agent's
// free-text reply.
type StructuredOutput struct {
	Risks []RiskRecord `json:"risks,omitempty"`
}

// AgentResponse is the inner response object of a successful invocation.
type AgentResponse struct {
	Text             string            `json:"text"`
	Reasoning        string            `json:"reasoning,omitempty"`
	StructuredOutput *StructuredOutput `json:"structured_output,omitempty"`
}
