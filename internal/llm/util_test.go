package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_Plain(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanJSONBlock(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, CleanJSONBlock("  {\"a\":1}\n"))
}

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"similarity\": 0.8}\n```"
	assert.Equal(t, `{"similarity": 0.8}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_GenericFence(t *testing.T) {
	input := "```\n{\"level\": \"Mid\"}\n```"
	assert.Equal(t, `{"level": "Mid"}`, CleanJSONBlock(input))
}
