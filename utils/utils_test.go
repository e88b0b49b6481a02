package utils_test

import (
	"testing"

	"github.com/madisonbullard/mcp-server-shortcut/utils"
	"github.com/stretchr/testify/assert"
)

func Test_CleanJSON(t *testing.T) {
	expected := `{"iterationPublicId": 1}`

	tcases := []string{
		expected,
		"\n```json\n\n{\"iterationPublicId\": 1}\n\n```\n\n",
		"\n```\n{\"iterationPublicId\": 1}\n```",
		"```{\"iterationPublicId\": 1}```",
		"Here you go: {\"iterationPublicId\": 1}. Let me know!",
	}
	for _, tc := range tcases {
		assert.Equal(t, expected, string(utils.CleanJSON([]byte(tc))), tc)
	}

	assert.Equal(t, `[{"name": "a"}]`, string(utils.CleanJSON([]byte("Sure:\n```json\n[{\"name\": \"a\"}]\n```\n"))))
	assert.Equal(t, "plain string", string(utils.CleanJSON([]byte("plain string"))))
	assert.Equal(t, "{broken", string(utils.CleanJSON([]byte("x {broken"))))
}

func Test_ToJSON(t *testing.T) {
	v := map[string]any{"id": 1, "name": "Iteration 1"}
	assert.Equal(t, `{"id":1,"name":"Iteration 1"}`, utils.ToJSON(v))
	assert.Equal(t, "{\n\t\"id\": 1,\n\t\"name\": \"Iteration 1\"\n}", utils.ToJSONIndent(v))
}

func Test_Backticks(t *testing.T) {
	assert.Equal(t, "\n```json\n{\"a\": 1}\n```\n", utils.BackticksJSON(" {\"a\": 1}\n"))
}
