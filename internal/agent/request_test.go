package agent

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name: "valid",
			body: `{"voiceId": "v1", "systemPrompt": "Be cheerful.", "questionnaireData": {"hobby": "chess"}}`,
		},
		{
			name: "empty questionnaire is accepted",
			body: `{"voiceId": "v1", "systemPrompt": "Be cheerful.", "questionnaireData": {}}`,
		},
		{
			name:      "missing voice id",
			body:      `{"systemPrompt": "Be cheerful.", "questionnaireData": {"hobby": "chess"}}`,
			wantField: "voiceId",
		},
		{
			name:      "blank voice id",
			body:      `{"voiceId": "  ", "systemPrompt": "Be cheerful.", "questionnaireData": {"hobby": "chess"}}`,
			wantField: "voiceId",
		},
		{
			name:      "empty system prompt",
			body:      `{"voiceId": "v1", "systemPrompt": "", "questionnaireData": {"hobby": "chess"}}`,
			wantField: "systemPrompt",
		},
		{
			name:      "missing questionnaire",
			body:      `{"voiceId": "v1", "systemPrompt": "Be cheerful."}`,
			wantField: "questionnaireData",
		},
		{
			name:      "null questionnaire",
			body:      `{"voiceId": "v1", "systemPrompt": "Be cheerful.", "questionnaireData": null}`,
			wantField: "questionnaireData",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, MsgRequiredFields, err.Error())
		})
	}
}

func TestRequest_ValidateNil(t *testing.T) {
	var req *Request
	assert.Error(t, req.Validate())
}

func TestRequest_QuestionnaireMustBeObject(t *testing.T) {
	var req Request
	err := json.Unmarshal([]byte(`{"voiceId": "v1", "systemPrompt": "x", "questionnaireData": "chess"}`), &req)
	assert.Error(t, err)
}

func TestRequest_DisplayName(t *testing.T) {
	tests := []struct {
		pid  string
		want string
	}{
		{pid: "P123", want: "iui26_P123"},
		{pid: "P1", want: "iui26_P1"},
		{pid: "", want: "Future You Agent"},
		{pid: "   ", want: "Future You Agent"},
		{pid: " P1 ", want: "iui26_ P1 "},
	}

	for _, tt := range tests {
		req := Request{ProlificPID: tt.pid}
		assert.Equal(t, tt.want, req.DisplayName(), "pid %q", tt.pid)
	}
}
