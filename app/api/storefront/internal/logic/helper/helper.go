package helper

import (
	"context"

	"ElectroMart/app/api/storefront/internal/types"
	corecart "ElectroMart/app/core/cart"
	"ElectroMart/app/core/catalog"
	cartdal "ElectroMart/app/dal/cart"
)

func ToCatalogItem(item catalog.Item) types.CatalogItem {
	return types.CatalogItem{
		Id:          item.Id,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Emoji:       item.Emoji,
	}
}

func ToCartLines(lines []corecart.Line) []types.CartLine {
	out := make([]types.CartLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, types.CartLine{
			Item:     ToCatalogItem(l.Item),
			Quantity: l.Quantity,
		})
	}
	return out
}

// LoadCart fetches the session cart, mapping "never seen" to an empty cart.
func LoadCart(ctx context.Context, store cartdal.Store, sessionId string) ([]corecart.Line, error) {
	lines, err := store.Get(ctx, sessionId)
	switch err {
	case nil:
		return lines, nil
	case cartdal.ErrNotFound:
		return []corecart.Line{}, nil
	default:
		return nil, err
	}
}
