package agent

import (
	"context"
	"log/slog"

	"futureyou/internal/trace"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

type tracedProvisioner struct {
	Provisioner
}

// WithTrace wraps p so every CreateAgent call runs in its own span.
func WithTrace(p Provisioner) Provisioner {
	return &tracedProvisioner{Provisioner: p}
}

func (t *tracedProvisioner) CreateAgent(ctx context.Context, cfg Config) (*Result, error) {
	ctx, span := trace.Tracer().Start(ctx, "agent.provision",
		oteltrace.WithSpanKind(oteltrace.SpanKindClient),
		oteltrace.WithAttributes(
			attribute.String("agent.name", cfg.Name),
			attribute.String("agent.llm", cfg.ConversationConfig.Agent.Prompt.LLM),
			attribute.String("tts.voice_id", cfg.ConversationConfig.TTS.VoiceID),
			attribute.Int("agent.prompt_length", len(cfg.ConversationConfig.Agent.Prompt.Prompt)),
		),
	)
	defer span.End()

	sc := span.SpanContext()
	slog.Debug("provision span started", "trace_id", sc.TraceID(), "span_id", sc.SpanID())

	result, err := t.Provisioner.CreateAgent(ctx, cfg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	span.SetAttributes(attribute.String("agent.id", result.ID()))
	return result, nil
}
