package selection

import (
	"fmt"

	"turnify/returns"
)

// Key derives the identifier of one selectable occurrence. The
// occurrence index keeps duplicate UPC rows within one order apart, so
// the function is injective over (upc, poNumber, index) for the
// lifetime of one order listing. It is pure and recomputed on every
// render rather than stored.
func Key(upc, poNumber string, index int) string {
	return fmt.Sprintf("%s_%s_%d", upc, poNumber, index)
}

// ItemKey derives the key for a selected item, resolving the Open RA
// sentinel for items without an order reference.
func ItemKey(item returns.SelectedItem, index int) string {
	return Key(item.UPC, item.EffectivePONumber(), index)
}
