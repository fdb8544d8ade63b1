package agent_test

import (
	"context"
	"errors"
	"testing"

	"futureyou/internal/agent"
	"futureyou/internal/agent/agenttest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestWithTrace_RecordsSpan(t *testing.T) {
	rec := recordSpans(t)
	cfg := agent.NewConfig(decodeRequest(t, `{"voiceId": "v1", "systemPrompt": "Hi", "questionnaireData": {"a": "b"}, "prolificPid": "P3"}`))

	result, err := agent.WithTrace(agenttest.Succeeding("agent_9")).CreateAgent(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "agent_9", result.ID())

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "agent.provision", spans[0].Name())

	a := attrs(spans[0])
	assert.Equal(t, "iui26_P3", a["agent.name"].AsString())
	assert.Equal(t, "v1", a["tts.voice_id"].AsString())
	assert.Equal(t, agent.LLM, a["agent.llm"].AsString())
	assert.Equal(t, "agent_9", a["agent.id"].AsString())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestWithTrace_RecordsError(t *testing.T) {
	rec := recordSpans(t)
	cfg := agent.NewConfig(decodeRequest(t, `{"voiceId": "v1", "systemPrompt": "Hi", "questionnaireData": {}}`))

	_, err := agent.WithTrace(agenttest.Failing(errors.New("voice not found"))).CreateAgent(context.Background(), cfg)
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "voice not found", spans[0].Status().Description)
	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
