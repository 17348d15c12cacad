package assistant

import (
	"strings"

	"ElectroMart/app/core/catalog"
)

const extractSystemPrompt = `You are a shopping assistant that processes conversation messages and extracts order intents.
For each conversation, return an array of order intents in the following format:
[
  {
    "action": "add" | "remove" | "clear" | "checkout",
    "itemName": "item name" (optional),
    "quantity": number (optional, defaults to 1)
  }
]

Guidelines for processing orders:
1. When adding items, specify the quantity mentioned (default to 1 if not specified)
2. When removing items:
   - If a specific quantity is mentioned (e.g., "remove 2 burgers"), include that quantity
   - If no quantity is mentioned, remove all of that item
3. For "clear" or "checkout" actions, no itemName or quantity needed
4. Pay attention to quantity words like "all", "both", "one", "two", etc.

Only return the JSON array, no other text.
Example:
User: "Add 2 burgers and remove one coffee"
[
  {"action": "add", "itemName": "burger", "quantity": 2},
  {"action": "remove", "itemName": "coffee", "quantity": 1}
]`

// buildExtractPrompt renders the user message: the catalog as "name - $price"
// lines, then the full role-tagged transcript.
func buildExtractPrompt(transcript []Message, items []catalog.Item) string {
	var b strings.Builder
	b.WriteString("Menu Items:\n")
	b.WriteString(catalog.PromptContext(items))
	b.WriteString("\n\nConversation:\n")
	for i, msg := range transcript {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(msg.Role)
		b.WriteString(": ")
		b.WriteString(msg.Content)
	}
	b.WriteString("\n\nExtract order intents:")
	return b.String()
}
