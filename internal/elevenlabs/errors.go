package elevenlabs

import (
	"encoding/json"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the API. Error is the message the API
// sent and is empty when the body carried none; StatusCode is kept for logs.
type APIError struct {
	StatusCode int
	Status     string // detail.status, e.g. "quota_exceeded"
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type errorDetail struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type validationDetail struct {
	Msg string `json:"msg"`
}

// newAPIError extracts a message from the API's error shapes:
// {"detail": {"status", "message"}}, {"detail": "..."},
// {"detail": [{"msg": ...}]} and {"message": "..."}.
func newAPIError(resp *http.Response, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	if len(body.Detail) > 0 {
		var detail errorDetail
		var text string
		var list []validationDetail
		switch {
		case json.Unmarshal(body.Detail, &detail) == nil && detail.Message != "":
			apiErr.Status = detail.Status
			apiErr.Message = detail.Message
		case json.Unmarshal(body.Detail, &text) == nil:
			apiErr.Message = text
		case json.Unmarshal(body.Detail, &list) == nil && len(list) > 0:
			msgs := make([]string, 0, len(list))
			for _, d := range list {
				if d.Msg != "" {
					msgs = append(msgs, d.Msg)
				}
			}
			apiErr.Message = strings.Join(msgs, "; ")
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = body.Message
	}
	return apiErr
}
