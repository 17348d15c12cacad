package cart

import "ElectroMart/app/core/catalog"

// The helpers below back the storefront's direct cart controls. They share
// the reducer's purity rules but not its add semantics: the add-to-cart
// button increments an existing line, while the conversational path sets it.

// Increment bumps the item's line by one, appending a fresh line at quantity
// 1 when the item is not in the cart yet.
func Increment(lines []Line, item catalog.Item) []Line {
	if i := indexOf(lines, item.Id); i >= 0 {
		next := make([]Line, len(lines))
		copy(next, lines)
		qty := next[i].Quantity
		if qty < 1 {
			qty = 1
		}
		next[i].Quantity = qty + 1
		return next
	}
	next := make([]Line, len(lines), len(lines)+1)
	copy(next, lines)
	return append(next, Line{Item: item, Quantity: 1})
}

// SetQuantity pins the item's line to the given quantity; anything below 1
// removes the line, matching the quantity stepper in the cart view.
func SetQuantity(lines []Line, id string, quantity int64) []Line {
	i := indexOf(lines, id)
	if i < 0 {
		return lines
	}
	if quantity < 1 {
		return Remove(lines, id)
	}
	next := make([]Line, len(lines))
	copy(next, lines)
	next[i].Quantity = quantity
	return next
}

// Remove drops the item's line entirely.
func Remove(lines []Line, id string) []Line {
	i := indexOf(lines, id)
	if i < 0 {
		return lines
	}
	next := make([]Line, 0, len(lines)-1)
	next = append(next, lines[:i]...)
	return append(next, lines[i+1:]...)
}
