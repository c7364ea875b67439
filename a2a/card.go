// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

// Identity served on the agent card.
const (
	// AgentName is the display name of this agent.
	AgentName = "A2UI Go Agent"

	// AgentDescription summarizes what this agent does.
	AgentDescription = "Minimal A2A JSON-RPC agent that returns A2UI v0.8 messages."

	// AgentVersion is the version advertised on the card.
	AgentVersion = "0.1.0"
)

// AgentCapabilities declares the optional protocol features an agent
// supports. The push notification and streaming flags are always emitted
// so clients need not distinguish absent from false.
type AgentCapabilities struct {
	// PushNotifications indicates support for push notification delivery.
	PushNotifications bool `json:"pushNotifications"`
	// Streaming indicates support for streaming responses.
	Streaming bool `json:"streaming"`
	// StateTransitionHistory indicates the agent tracks task state history.
	StateTransitionHistory bool `json:"stateTransitionHistory,omitzero"`
}

// AgentSkill describes one capability advertised on the agent card.
type AgentSkill struct {
	// ID is the unique identifier of the skill.
	ID string `json:"id"`
	// Name is the display name of the skill.
	Name string `json:"name"`
	// Description optionally explains the skill.
	Description string `json:"description,omitzero"`
	// Tags classify the skill.
	Tags []string `json:"tags"`
	// Examples optionally lists example prompts.
	Examples []string `json:"examples,omitzero"`
	// InputModes optionally overrides the default input modes.
	InputModes []string `json:"inputModes,omitzero"`
	// OutputModes optionally overrides the default output modes.
	OutputModes []string `json:"outputModes,omitzero"`
}

// AgentCardSignature represents a detached JWS over the card contents,
// allowing clients to verify card provenance.
type AgentCardSignature struct {
	// Protected is the base64url-encoded protected JWS header.
	Protected string `json:"protected"`
	// Signature is the base64url-encoded signature.
	Signature string `json:"signature"`
	// Header optionally carries an unprotected header.
	Header map[string]any `json:"header,omitzero"`
}

// AgentCard represents the discovery document served from the well-known
// path, describing this agent's identity, endpoint, and capabilities.
type AgentCard struct {
	// ProtocolVersion is the A2A protocol version the agent speaks.
	ProtocolVersion string `json:"protocolVersion"`
	// Name is the display name of the agent.
	Name string `json:"name"`
	// Description summarizes what the agent does.
	Description string `json:"description"`
	// Version is the agent implementation version.
	Version string `json:"version"`
	// URL is the JSON-RPC endpoint of the agent.
	URL string `json:"url"`
	// Capabilities declares the optional protocol features supported.
	Capabilities *AgentCapabilities `json:"capabilities"`
	// DefaultInputModes lists the content modes accepted by default.
	DefaultInputModes []string `json:"defaultInputModes"`
	// DefaultOutputModes lists the content modes produced by default.
	DefaultOutputModes []string `json:"defaultOutputModes"`
	// Skills lists the capabilities advertised by the agent.
	Skills []AgentSkill `json:"skills"`
	// Signatures optionally carries detached JWS signatures over the card.
	Signatures []AgentCardSignature `json:"signatures,omitzero"`
}

// NewAgentCard builds the discovery document for an agent reachable at
// publicBaseURL. It is a pure function of its argument: the endpoint URL
// is derived by composition so the card stays consistent with the
// environment it is served from.
func NewAgentCard(publicBaseURL string) *AgentCard {
	return &AgentCard{
		ProtocolVersion:    ProtocolVersion,
		Name:               AgentName,
		Description:        AgentDescription,
		Version:            AgentVersion,
		URL:                publicBaseURL + JSONRPCPath,
		Capabilities:       &AgentCapabilities{},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []AgentSkill{
			{
				ID:   "a2ui",
				Name: "A2UI",
				Tags: []string{"a2ui"},
			},
		},
	}
}
