package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	raw := "```json\n{\"summary\": \"ok\"}\n```"
	assert.Equal(t, `{"summary": "ok"}`, CleanJSONBlock(raw))
}

func TestCleanJSONBlock_GenericFenceWithLanguageLine(t *testing.T) {
	raw := "```javascript\n{\"summary\": \"ok\"}\n```"
	assert.Equal(t, `{"summary": "ok"}`, CleanJSONBlock(raw))
}

func TestCleanJSONBlock_BareJSONUntouched(t *testing.T) {
	raw := `{"summary": "ok"}`
	assert.Equal(t, raw, CleanJSONBlock(raw))
}

func TestStripTrailingCommas(t *testing.T) {
	raw := `{"items": ["a", "b",], "nested": {"k": 1,},}`
	assert.Equal(t, `{"items": ["a", "b"], "nested": {"k": 1}}`, StripTrailingCommas(raw))
}

func TestStripTrailingCommas_LeavesValidJSONAlone(t *testing.T) {
	raw := `{"items": ["a", "b"], "k": 1}`
	assert.Equal(t, raw, StripTrailingCommas(raw))
}
