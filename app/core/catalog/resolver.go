package catalog

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("catalog: item not found")

// Resolve maps a free-text item name to a catalog entry. A match is
// case-insensitive substring containment in either direction, so "burger"
// matches "Classic Cheeseburger" and an over-long spoken name still matches
// its catalog entry. The first match in catalog order wins.
func Resolve(items []Item, itemName string) (Item, error) {
	want := strings.ToLower(itemName)
	for _, item := range items {
		have := strings.ToLower(item.Name)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}
