package cart_test

import (
	"testing"

	"ElectroMart/app/core/cart"
	"ElectroMart/app/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = catalog.Item{Id: "1", Name: "Classic Cheeseburger", Price: 6.5, Category: "Food", Emoji: "🍔"}
	coffee = catalog.Item{Id: "2", Name: "Coffee", Price: 3, Category: "Drinks", Emoji: "☕"}
)

func TestApplyClearEmptiesAnyCart(t *testing.T) {
	t.Parallel()

	carts := [][]cart.Line{
		nil,
		{},
		{{Item: burger, Quantity: 2}},
		{{Item: burger, Quantity: 1}, {Item: coffee, Quantity: 4}},
	}
	for _, c := range carts {
		got := cart.Apply(c, cart.Update{Action: cart.ActionClear})
		assert.Empty(t, got)
	}
}

func TestApplyAddAppendsNewLine(t *testing.T) {
	t.Parallel()

	current := []cart.Line{{Item: coffee, Quantity: 1}}
	got := cart.Apply(current, cart.Update{Action: cart.ActionAdd, Item: &burger, Quantity: 2})

	require.Len(t, got, 2)
	assert.Equal(t, coffee, got[0].Item)
	assert.Equal(t, burger, got[1].Item)
	assert.EqualValues(t, 2, got[1].Quantity)
}

func TestApplyAddDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	got := cart.Apply(nil, cart.Update{Action: cart.ActionAdd, Item: &burger})

	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0].Quantity)
}

func TestApplyAddOverwritesExistingQuantity(t *testing.T) {
	t.Parallel()

	current := []cart.Line{{Item: burger, Quantity: 5}}
	got := cart.Apply(current, cart.Update{Action: cart.ActionAdd, Item: &burger, Quantity: 2})

	require.Len(t, got, 1)
	// the conversational add sets the quantity, it does not sum
	assert.EqualValues(t, 2, got[0].Quantity)
}

func TestApplyAddWithoutItemIsNoop(t *testing.T) {
	t.Parallel()

	current := []cart.Line{{Item: burger, Quantity: 1}}
	got := cart.Apply(current, cart.Update{Action: cart.ActionAdd})

	assert.Equal(t, current, got)
}

func TestApplyRemovePartialQuantity(t *testing.T) {
	t.Parallel()

	current := []cart.Line{{Item: burger, Quantity: 3}}
	got := cart.Apply(current, cart.Update{Action: cart.ActionRemove, Item: &burger, Quantity: 1})

	require.Len(t, got, 1)
	assert.EqualValues(t, 2, got[0].Quantity)
}

func TestApplyRemoveAtLeastCurrentDeletesLine(t *testing.T) {
	t.Parallel()

	for _, removeQty := range []int64{3, 4, 99} {
		current := []cart.Line{{Item: burger, Quantity: 3}, {Item: coffee, Quantity: 1}}
		got := cart.Apply(current, cart.Update{Action: cart.ActionRemove, Item: &burger, Quantity: removeQty})

		require.Len(t, got, 1)
		assert.Equal(t, coffee, got[0].Item)
	}
}

func TestApplyRemoveWithoutQuantityRemovesAll(t *testing.T) {
	t.Parallel()

	current := []cart.Line{{Item: burger, Quantity: 7}}
	got := cart.Apply(current, cart.Update{Action: cart.ActionRemove, Item: &burger})

	assert.Empty(t, got)
}

func TestApplyRemoveUnknownItemIsNoop(t *testing.T) {
	t.Parallel()

	current := []cart.Line{{Item: coffee, Quantity: 1}}
	got := cart.Apply(current, cart.Update{Action: cart.ActionRemove, Item: &burger})

	assert.Equal(t, current, got)
}

func TestApplyNeverMutatesInput(t *testing.T) {
	t.Parallel()

	current := []cart.Line{{Item: burger, Quantity: 3}}
	_ = cart.Apply(current, cart.Update{Action: cart.ActionAdd, Item: &burger, Quantity: 9})
	_ = cart.Apply(current, cart.Update{Action: cart.ActionRemove, Item: &burger, Quantity: 1})
	_ = cart.Apply(current, cart.Update{Action: cart.ActionClear})

	require.Len(t, current, 1)
	assert.EqualValues(t, 3, current[0].Quantity)
}

func TestReduceAppliesInOrder(t *testing.T) {
	t.Parallel()

	updates := []cart.Update{
		{Action: cart.ActionAdd, Item: &burger, Quantity: 2},
		{Action: cart.ActionRemove, Item: &burger, Quantity: 1},
	}

	got := cart.Reduce(nil, updates)
	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0].Quantity)

	// reversed, the remove hits an empty cart and the add then sets 2
	reversed := []cart.Update{updates[1], updates[0]}
	gotReversed := cart.Reduce(nil, reversed)
	require.Len(t, gotReversed, 1)
	assert.EqualValues(t, 2, gotReversed[0].Quantity)
}

func TestTotal(t *testing.T) {
	t.Parallel()

	lines := []cart.Line{
		{Item: burger, Quantity: 2},
		{Item: coffee, Quantity: 1},
	}
	assert.InDelta(t, 16.0, cart.Total(lines), 1e-9)
	assert.Zero(t, cart.Total(nil))
}
