package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIntentsPlainArray(t *testing.T) {
	t.Parallel()

	got := decodeIntents(`[{"action":"add","itemName":"burger","quantity":2},{"action":"checkout"}]`)

	require.Len(t, got, 2)
	assert.Equal(t, OrderIntent{Action: "add", ItemName: "burger", Quantity: 2}, got[0])
	assert.Equal(t, OrderIntent{Action: "checkout"}, got[1])
}

func TestDecodeIntentsStripsSurroundingText(t *testing.T) {
	t.Parallel()

	content := "Sure! Here are the intents:\n```json\n[{\"action\":\"clear\"}]\n```\nAnything else?"
	got := decodeIntents(content)

	require.Len(t, got, 1)
	assert.Equal(t, ActionClear, got[0].Action)
}

func TestDecodeIntentsMalformedYieldsEmpty(t *testing.T) {
	t.Parallel()

	for _, content := range []string{
		"",
		"I could not find any items in the conversation.",
		`{"action":"add"}`,
		`[{"action":}`,
		"null",
	} {
		got := decodeIntents(content)
		require.NotNil(t, got)
		assert.Empty(t, got, "content: %q", content)
	}
}
