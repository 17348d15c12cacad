package cart

// Apply maps one resolved update onto a cart and returns the new cart. It is
// pure: the input slice is never modified, and every input, however
// degenerate, yields a defined result. Updates without an item (where one is
// required) are no-ops.
//
// Note the add semantics: when the item already has a line, its quantity is
// SET to the update's quantity, not incremented. The storefront's direct
// add-to-cart control increments instead (see Increment); the two paths are
// intentionally different.
func Apply(lines []Line, update Update) []Line {
	switch update.Action {
	case ActionAdd:
		if update.Item == nil {
			return lines
		}
		qty := update.Quantity
		if qty < 1 {
			qty = 1
		}
		if i := indexOf(lines, update.Item.Id); i >= 0 {
			next := make([]Line, len(lines))
			copy(next, lines)
			next[i] = Line{Item: *update.Item, Quantity: qty}
			return next
		}
		next := make([]Line, len(lines), len(lines)+1)
		copy(next, lines)
		return append(next, Line{Item: *update.Item, Quantity: qty})

	case ActionRemove:
		if update.Item == nil {
			return lines
		}
		i := indexOf(lines, update.Item.Id)
		if i < 0 {
			return lines
		}
		current := lines[i].Quantity
		if current < 1 {
			current = 1
		}
		removeQty := update.Quantity
		if removeQty < 1 {
			// no explicit count means remove all of this item
			removeQty = current
		}
		if removeQty >= current {
			next := make([]Line, 0, len(lines)-1)
			next = append(next, lines[:i]...)
			return append(next, lines[i+1:]...)
		}
		next := make([]Line, len(lines))
		copy(next, lines)
		next[i].Quantity = current - removeQty
		return next

	case ActionClear:
		return []Line{}

	default:
		return lines
	}
}

// Reduce folds a batch of updates over the cart strictly in order, each
// update applied to the result of the previous one. Updates from a single
// conversation turn can depend on each other, so they must never be
// reordered.
func Reduce(lines []Line, updates []Update) []Line {
	for _, u := range updates {
		lines = Apply(lines, u)
	}
	return lines
}
