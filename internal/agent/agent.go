package agent

import "context"

// Fixed settings handed to the provisioning service for every agent.
const (
	DefaultName  = "Future You Agent"
	NamePrefix   = "iui26"
	LLM          = "claude-sonnet-4@20250514"
	Temperature  = 1.0
	TurnTimeout  = 20
	FirstMessage = "Hi there! I'm you from the future. I'm here to share what I've learned from the path you're on right now. Feel free to ask about anything!"
)

// Provisioner creates a conversational agent on the remote service.
type Provisioner interface {
	CreateAgent(ctx context.Context, cfg Config) (*Result, error)
}

// Config is the full agent definition submitted to a Provisioner.
type Config struct {
	Name               string             `json:"name"`
	ConversationConfig ConversationConfig `json:"conversationConfig"`
}

type ConversationConfig struct {
	Agent AgentSettings `json:"agent"`
	TTS   TTSSettings   `json:"tts"`
	Turn  TurnSettings  `json:"turn"`
}

type AgentSettings struct {
	Prompt       PromptSettings `json:"prompt"`
	FirstMessage string         `json:"firstMessage"`
}

type PromptSettings struct {
	Prompt      string  `json:"prompt"`
	LLM         string  `json:"llm"`
	Temperature float64 `json:"temperature"`
}

type TTSSettings struct {
	VoiceID string `json:"voiceId"`
}

type TurnSettings struct {
	TurnTimeout int `json:"turnTimeout"`
}

// NewConfig builds the agent definition for a validated request.
func NewConfig(req *Request) Config {
	return Config{
		Name: req.DisplayName(),
		ConversationConfig: ConversationConfig{
			Agent: AgentSettings{
				Prompt: PromptSettings{
					Prompt:      BuildPrompt(req.SystemPrompt, req.QuestionnaireData),
					LLM:         LLM,
					Temperature: Temperature,
				},
				FirstMessage: FirstMessage,
			},
			TTS:  TTSSettings{VoiceID: req.VoiceID},
			Turn: TurnSettings{TurnTimeout: TurnTimeout},
		},
	}
}

// Result is what the provisioning service returns for a created agent.
//
// The service has reported the identifier under both "agentId" and
// "agent_id", so both are carried and ID picks whichever is set.
type Result struct {
	AgentID       string `json:"agentId,omitempty"`
	LegacyAgentID string `json:"agent_id,omitempty"`
}

// ID returns the first non-empty identifier, preferring AgentID.
func (r *Result) ID() string {
	if r == nil {
		return ""
	}
	if r.AgentID != "" {
		return r.AgentID
	}
	return r.LegacyAgentID
}
