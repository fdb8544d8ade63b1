package agent

import "strings"

// Request is the body of an agent creation call.
type Request struct {
	VoiceID           string         `json:"voiceId"`
	SystemPrompt      string         `json:"systemPrompt"`
	QuestionnaireData *Questionnaire `json:"questionnaireData"`
	ProlificPID       string         `json:"prolificPid,omitempty"`
}

// Validate reports a *ValidationError when a required field is missing or
// blank. An empty questionnaire is allowed; a null one is not.
func (r *Request) Validate() error {
	if r == nil {
		return &ValidationError{Field: "request"}
	}
	switch {
	case strings.TrimSpace(r.VoiceID) == "":
		return &ValidationError{Field: "voiceId"}
	case strings.TrimSpace(r.SystemPrompt) == "":
		return &ValidationError{Field: "systemPrompt"}
	case r.QuestionnaireData == nil:
		return &ValidationError{Field: "questionnaireData"}
	}
	return nil
}

// DisplayName is the agent name shown in the provisioning service. The pid
// is used as sent; a blank one falls back to DefaultName.
func (r *Request) DisplayName() string {
	if strings.TrimSpace(r.ProlificPID) == "" {
		return DefaultName
	}
	return NamePrefix + "_" + r.ProlificPID
}
