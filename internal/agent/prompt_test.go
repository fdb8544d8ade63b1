package agent

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionnaire(t *testing.T, raw string) *Questionnaire {
	t.Helper()
	q := NewQuestionnaire()
	require.NoError(t, json.Unmarshal([]byte(raw), q))
	return q
}

func TestRenderQuestionnaire(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "blank answers are skipped",
			raw:  `{"age": "", "city": "Paris"}`,
			want: "city: Paris",
		},
		{
			name: "underscores become spaces",
			raw:  `{"favorite_memory": "first bike ride"}`,
			want: "favorite memory: first bike ride",
		},
		{
			name: "submission order is kept",
			raw:  `{"zeta": "z", "alpha": "a", "middle_name": "m"}`,
			want: "zeta: z\nalpha: a\nmiddle name: m",
		},
		{
			name: "null and whitespace-only answers are skipped",
			raw:  `{"goal": null, "fear": "   ", "hobby": "chess"}`,
			want: "hobby: chess",
		},
		{
			name: "numbers are rendered plainly",
			raw:  `{"age": 42, "gpa": 3.5, "siblings": 0}`,
			want: "age: 42\ngpa: 3.5\nsiblings: 0",
		},
		{
			name: "value is kept as sent",
			raw:  `{"city": " Paris "}`,
			want: "city:  Paris ",
		},
		{
			name: "nested values are rendered as JSON",
			raw:  `{"pets": ["cat", "dog"], "is_student": true}`,
			want: "pets: [\"cat\",\"dog\"]\nis student: true",
		},
		{
			name: "empty questionnaire",
			raw:  `{}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderQuestionnaire(questionnaire(t, tt.raw)))
		})
	}
}

func TestRenderQuestionnaire_Nil(t *testing.T) {
	assert.Equal(t, "", RenderQuestionnaire(nil))
}

func TestRenderQuestionnaire_GoValues(t *testing.T) {
	q := NewQuestionnaire()
	q.Set("dream_job", "astronaut")
	q.Set("age", 17)
	q.Set("nickname", nil)

	assert.Equal(t, "dream job: astronaut\nage: 17", RenderQuestionnaire(q))
}

func TestBuildPrompt(t *testing.T) {
	q := questionnaire(t, `{"hobby": "chess", "home_town": "Lyon"}`)

	got := BuildPrompt("Be cheerful.", q)

	want := PersonaPreamble + "\n\n" +
		"hobby: chess\nhome town: Lyon" + "\n\n" +
		"Be cheerful." + "\n\n" +
		ResponseStyleDirective
	assert.Equal(t, want, got)
}

func TestBuildPrompt_SectionOrder(t *testing.T) {
	got := BuildPrompt("FRAGMENT", questionnaire(t, `{"answer": "QUESTIONNAIRE"}`))

	preamble := strings.Index(got, PersonaPreamble)
	answers := strings.Index(got, "answer: QUESTIONNAIRE")
	fragment := strings.Index(got, "FRAGMENT")
	directive := strings.Index(got, ResponseStyleDirective)

	assert.Equal(t, 0, preamble)
	assert.Less(t, preamble, answers)
	assert.Less(t, answers, fragment)
	assert.Less(t, fragment, directive)
	assert.True(t, strings.HasSuffix(got, ResponseStyleDirective))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	raw := `{"b": "2", "a": "1", "c": 3, "d": ""}`
	first := BuildPrompt("Stay curious.", questionnaire(t, raw))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildPrompt("Stay curious.", questionnaire(t, raw)))
	}
}

func TestBuildPrompt_FragmentIsVerbatim(t *testing.T) {
	fragment := "  Mention the\tlake house.\n\nNever give advice.  "
	got := BuildPrompt(fragment, NewQuestionnaire())

	assert.Contains(t, got, "\n\n"+fragment+"\n\n")
}

func TestBuildPrompt_EmptyQuestionnaire(t *testing.T) {
	got := BuildPrompt("Be kind.", questionnaire(t, `{"age": ""}`))

	assert.Equal(t, PersonaPreamble+"\n\n\n\nBe kind.\n\n"+ResponseStyleDirective, got)
}

func TestResponseStyleDirective(t *testing.T) {
	assert.True(t, strings.HasPrefix(ResponseStyleDirective, "IMPORTANT: Respond in EXACT 1-2 SHORT"))
	assert.Contains(t, ResponseStyleDirective, "Good example: "+GoodExampleReply)
	assert.True(t, strings.HasSuffix(ResponseStyleDirective, "Bad example: "+BadExampleReply))
}

func TestPersonaPreamble(t *testing.T) {
	assert.Contains(t, PersonaPreamble, "future self")
	assert.Contains(t, PersonaPreamble, "first person past tense")
	assert.NotContains(t, PersonaPreamble, "\n")
}
