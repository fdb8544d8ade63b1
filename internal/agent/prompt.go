package agent

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PersonaPreamble opens every synthesized prompt.
const PersonaPreamble = "You are speaking as the user's future self from 30 years in the future (2055), looking back on your life. " +
	"Keep responses conversational, warm, and personal - speak in first person past tense as if sharing memories with your younger self. " +
	"Draw from the life highlights and slice-of-life moments in your memory to make the conversation feel authentic and reflective."

const (
	styleRule = "IMPORTANT: Respond in EXACT 1-2 SHORT, **brief**, and **simple** sentences maximum. " +
		"Don't explain everything - just share one small thought or memory at a time, as if you chatting with a friend. " +
		"Let the conversation breathe."

	GoodExampleReply = `"I remember that hackathon in 2023 so clearly. That's actually where everything changed for me."`
	BadExampleReply  = "[long paragraph explaining everything]"
)

// ResponseStyleDirective closes every synthesized prompt.
const ResponseStyleDirective = styleRule + "\n\n" +
	"Good example: " + GoodExampleReply + "\n\n" +
	"Bad example: " + BadExampleReply

// Questionnaire holds free-form answers in the order they were submitted.
type Questionnaire = orderedmap.OrderedMap[string, any]

// NewQuestionnaire returns an empty Questionnaire.
func NewQuestionnaire() *Questionnaire {
	return orderedmap.New[string, any]()
}

// BuildPrompt assembles the persona prompt. The output depends only on its
// arguments.
func BuildPrompt(systemPrompt string, answers *Questionnaire) string {
	return strings.Join([]string{
		PersonaPreamble,
		RenderQuestionnaire(answers),
		systemPrompt,
		ResponseStyleDirective,
	}, "\n\n")
}

// RenderQuestionnaire renders one "key: value" line per answer, with
// underscores in keys replaced by spaces. Answers that are null or blank
// are left out.
func RenderQuestionnaire(answers *Questionnaire) string {
	if answers == nil {
		return ""
	}

	var lines []string
	for pair := answers.Oldest(); pair != nil; pair = pair.Next() {
		value, ok := answerString(pair.Value)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		lines = append(lines, humanize(pair.Key)+": "+value)
	}
	return strings.Join(lines, "\n")
}

func humanize(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

// answerString converts a decoded JSON answer to the text shown in the
// prompt. Nested objects and arrays are rendered as compact JSON.
func answerString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(b), true
	default:
		return fmt.Sprint(val), true
	}
}
