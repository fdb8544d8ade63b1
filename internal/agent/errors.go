package agent

import "strings"

const (
	MsgRequiredFields = "Voice ID, system prompt, and questionnaire data are required"
	MsgCreateFailed   = "Failed to create agent"
)

// ValidationError is returned for requests that must not reach the
// provisioning service.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return MsgRequiredFields
}

// ProvisioningError wraps any failure reported by a Provisioner. Its
// message is the underlying error's, or MsgCreateFailed when that is blank.
type ProvisioningError struct {
	Err error
}

func (e *ProvisioningError) Error() string {
	if e.Err == nil {
		return MsgCreateFailed
	}
	msg := e.Err.Error()
	if strings.TrimSpace(msg) == "" {
		return MsgCreateFailed
	}
	return msg
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
