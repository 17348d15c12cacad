package catalog

import (
	"fmt"
	"strings"
)

// Item is one purchasable catalog entry. The catalog is loaded once from
// configuration at startup and read-only from then on.
type Item struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,optional"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,optional"`
	Emoji       string  `json:"emoji,optional"`
}

// PromptContext renders the catalog as "name - $price" lines for the
// extractor prompt.
func PromptContext(items []Item) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s - $%.2f", item.Name, item.Price)
	}
	return b.String()
}
