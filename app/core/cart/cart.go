package cart

import "ElectroMart/app/core/catalog"

// Line is one row of a cart: a catalog item plus how many of it. A line with
// a quantity below 1 must never exist; the reducer removes it instead.
type Line struct {
	Item     catalog.Item `json:"item"`
	Quantity int64        `json:"quantity"`
}

// Action values an Update may carry.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionClear  = "clear"
)

// Update is a resolved cart mutation: an order intent whose item name has
// already been looked up in the catalog.
type Update struct {
	Action   string
	Item     *catalog.Item
	Quantity int64
}

// Total returns the cart total in dollars.
func Total(lines []Line) float64 {
	var sum float64
	for _, l := range lines {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}
		sum += float64(qty) * l.Item.Price
	}
	return sum
}

func indexOf(lines []Line, id string) int {
	for i, l := range lines {
		if l.Item.Id == id {
			return i
		}
	}
	return -1
}
