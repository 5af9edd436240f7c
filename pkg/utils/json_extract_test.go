package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/pkg/utils"
)

func TestExtractJSONBlock_JSONFence(t *testing.T) {
	raw := "Here is your itinerary:\n```json\n{\"days\":[]}\n```\nEnjoy your trip!"
	assert.Equal(t, `{"days":[]}`, utils.ExtractJSONBlock(raw))
}

func TestExtractJSONBlock_BareFence(t *testing.T) {
	raw := "```\n{\"days\":[]}\n```"
	assert.Equal(t, `{"days":[]}`, utils.ExtractJSONBlock(raw))
}

func TestExtractJSONBlock_NoFenceReturnsInputUnchanged(t *testing.T) {
	raw := ` {"days":[{"day_number":1}]} `
	assert.Equal(t, raw, utils.ExtractJSONBlock(raw))
}

func TestExtractJSONBlock_UnclosedFence(t *testing.T) {
	raw := "```json\n{\"days\":[]}"
	assert.Equal(t, `{"days":[]}`, utils.ExtractJSONBlock(raw))
}
