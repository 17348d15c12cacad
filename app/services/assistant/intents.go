package assistant

import (
	"encoding/json"
	"strings"
)

const (
	ActionAdd      = "add"
	ActionRemove   = "remove"
	ActionClear    = "clear"
	ActionCheckout = "checkout"
)

// OrderIntent is the wire shape the model is instructed to reply with: a
// JSON array of these, nothing else.
type OrderIntent struct {
	Action   string `json:"action"`
	ItemName string `json:"itemName,omitempty"`
	Quantity int64  `json:"quantity,omitempty"`
}

// Message is one turn-tagged entry of the running conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// decodeIntents parses a model reply into intents. Replies are routinely
// wrapped in prose or code fences, so the outermost JSON array is cut out
// first; anything that still fails to parse yields an empty list rather than
// an error.
func decodeIntents(content string) []OrderIntent {
	clean := trimJSONArray(strings.TrimSpace(content))
	if clean == "" {
		return []OrderIntent{}
	}

	var intents []OrderIntent
	if err := json.Unmarshal([]byte(clean), &intents); err != nil {
		return []OrderIntent{}
	}
	if intents == nil {
		return []OrderIntent{}
	}
	return intents
}

func trimJSONArray(content string) string {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || start > end {
		return content
	}
	return content[start : end+1]
}
