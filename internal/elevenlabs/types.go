package elevenlabs

import "futureyou/internal/agent"

type createAgentRequest struct {
	Name               string             `json:"name,omitempty"`
	ConversationConfig conversationConfig `json:"conversation_config"`
}

type conversationConfig struct {
	Agent agentConfig `json:"agent"`
	TTS   ttsConfig   `json:"tts"`
	Turn  turnConfig  `json:"turn"`
}

type agentConfig struct {
	Prompt       promptConfig `json:"prompt"`
	FirstMessage string       `json:"first_message"`
}

type promptConfig struct {
	Prompt      string  `json:"prompt"`
	LLM         string  `json:"llm"`
	Temperature float64 `json:"temperature"`
}

type ttsConfig struct {
	VoiceID string `json:"voice_id"`
}

type turnConfig struct {
	TurnTimeout int `json:"turn_timeout"`
}

func newCreateAgentRequest(cfg agent.Config) createAgentRequest {
	cc := cfg.ConversationConfig
	return createAgentRequest{
		Name: cfg.Name,
		ConversationConfig: conversationConfig{
			Agent: agentConfig{
				Prompt: promptConfig{
					Prompt:      cc.Agent.Prompt.Prompt,
					LLM:         cc.Agent.Prompt.LLM,
					Temperature: cc.Agent.Prompt.Temperature,
				},
				FirstMessage: cc.Agent.FirstMessage,
			},
			TTS:  ttsConfig{VoiceID: cc.TTS.VoiceID},
			Turn: turnConfig{TurnTimeout: cc.Turn.TurnTimeout},
		},
	}
}

type createAgentResponse struct {
	AgentID      string `json:"agent_id"`
	AgentIDCamel string `json:"agentId"`
}
