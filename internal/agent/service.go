package agent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"futureyou/internal/metrics"
)

// Outcome is the terminal state of one Provision call.
type Outcome string

const (
	OutcomeRejected           Outcome = "rejected"
	OutcomeCreated            Outcome = "created"
	OutcomeProvisioningFailed Outcome = "provisioning_failed"
)

// Response is the JSON envelope returned to the caller.
type Response struct {
	Success bool   `json:"success,omitempty"`
	AgentID string `json:"agentId,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Service struct {
	provisioner Provisioner
}

func NewService(provisioner Provisioner) *Service {
	return &Service{provisioner: provisioner}
}

// Prepare validates req and builds the agent definition without calling
// the provisioning service.
func (s *Service) Prepare(req *Request) (Config, error) {
	if err := req.Validate(); err != nil {
		return Config{}, err
	}
	return NewConfig(req), nil
}

// Provision validates req, creates the agent and maps the result to a
// response envelope and HTTP status code.
func (s *Service) Provision(ctx context.Context, req *Request) (Response, int) {
	cfg, err := s.Prepare(req)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			slog.Debug("agent request rejected", "field", verr.Field)
		}
		metrics.AgentProvisionTotal.WithLabelValues(string(OutcomeRejected)).Inc()
		return Response{Error: MsgRequiredFields}, http.StatusBadRequest
	}

	start := time.Now()
	result, err := s.create(ctx, cfg)
	outcome := OutcomeCreated
	if err != nil {
		outcome = OutcomeProvisioningFailed
	}
	metrics.AgentProvisionTotal.WithLabelValues(string(outcome)).Inc()
	metrics.AgentProvisionDuration.WithLabelValues(string(outcome)).Observe(time.Since(start).Seconds())

	if err != nil {
		slog.Error("agent creation failed",
			"name", cfg.Name,
			"voice_id", cfg.ConversationConfig.TTS.VoiceID,
			"error", err,
		)
		return Response{Error: err.Error()}, http.StatusInternalServerError
	}

	slog.Info("agent created",
		"name", cfg.Name,
		"voice_id", cfg.ConversationConfig.TTS.VoiceID,
		"agent_id", result.ID(),
		"duration", time.Since(start),
	)
	return Response{Success: true, AgentID: result.ID()}, http.StatusOK
}

func (s *Service) create(ctx context.Context, cfg Config) (*Result, error) {
	result, err := s.provisioner.CreateAgent(ctx, cfg)
	if err != nil {
		return nil, &ProvisioningError{Err: err}
	}
	return result, nil
}
