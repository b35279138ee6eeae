package selection

import (
	"sync"

	"turnify/returns"
)

// QuantityCappedWarning is shown when a requested quantity was capped
// to the available ceiling. The capped store still succeeds.
const QuantityCappedWarning = "Return Quantity cannot exceed Available"

// Detail carries the per-key editable state of one selected line. The
// single record per key keeps quantity, reason and comment together so
// removal can never orphan one of them.
type Detail struct {
	Quantity int
	Reason   string
	Comment  string
}

// Line is a snapshot of one selected occurrence together with its key
// and detail, in selection order.
type Line struct {
	Item   returns.SelectedItem
	Key    string
	Detail Detail
}

type entry struct {
	item returns.SelectedItem
	key  string
}

// Tracker owns the in-flight selection for one return-creation flow:
// the ordered selected items plus one Key -> Detail record each. All
// mutation goes through its methods; the presentation layer only reads
// snapshots.
type Tracker struct {
	mu      sync.RWMutex
	entries []entry
	details map[string]Detail
}

// NewTracker returns an empty selection.
func NewTracker() *Tracker {
	return &Tracker{details: make(map[string]Detail)}
}

// Select adds a catalog item occurrence to the selection with default
// quantity (the available ceiling) and an empty reason. Selecting an
// already-selected key overwrites and reinitializes it, so stale
// partial state cannot survive a re-select.
func (t *Tracker) Select(item returns.CatalogItem, poNumber string, index int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selectLocked(item, poNumber, index)
}

func (t *Tracker) selectLocked(item returns.CatalogItem, poNumber string, index int) {
	key := Key(item.UPC, poNumber, index)
	t.removeKeyLocked(key)
	t.entries = append(t.entries, entry{
		item: returns.SelectedItem{
			UPC:             item.UPC,
			Title:           item.Title,
			Qty:             item.Qty,
			Price:           item.Price,
			AvailableReturn: item.AvailableReturn,
			PONumber:        poNumber,
			ReturnQty:       item.AvailableReturn,
			Reason:          "",
		},
		key: key,
	})
	t.details[key] = Detail{Quantity: defaultQuantity(item.AvailableReturn)}
}

// SelectAllForOrder selects every item of one order in listing order
// as a single logical operation. Prior selections for the same order
// are replaced; selections from other orders are kept.
func (t *Tracker) SelectAllForOrder(poNumber string, items []returns.CatalogItem) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removeOrderLocked(poNumber)
	for i, item := range items {
		t.selectLocked(item, poNumber, i)
	}
}

// ReplaceWithOpenRA replaces the whole selection with a single Open RA
// item. Its detail is seeded from the submitted form values.
func (t *Tracker) ReplaceWithOpenRA(item returns.SelectedItem, comment string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = nil
	t.details = make(map[string]Detail)
	item.IsOpenRA = true
	item.PONumber = returns.OpenRAPONumber
	key := ItemKey(item, 0)
	t.entries = append(t.entries, entry{item: item, key: key})
	t.details[key] = Detail{
		Quantity: defaultQuantity(item.ReturnQty),
		Reason:   item.Reason,
		Comment:  comment,
	}
}

// Deselect removes every selected occurrence matching (upc, poNumber)
// and deletes its detail in the same critical section, so no dangling
// keys remain.
func (t *Tracker) Deselect(upc, poNumber string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.item.UPC == upc && e.item.EffectivePONumber() == poNumber {
			delete(t.details, e.key)
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
}

// RemoveOrder drops every selection belonging to one order.
func (t *Tracker) RemoveOrder(poNumber string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.removeOrderLocked(poNumber)
}

// SetQuantity stores a quantity for key, clamped to the item's
// [1, availableReturn] range. Open RA items have no upper bound. The
// returned warning is non-empty when the requested value was capped.
func (t *Tracker) SetQuantity(key string, value int) (stored int, warning string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entryLocked(key)
	if !ok {
		return 0, ""
	}
	stored = value
	if stored < 1 {
		stored = 1
	}
	if !e.item.IsOpenRA && stored > e.item.AvailableReturn {
		stored = e.item.AvailableReturn
		warning = QuantityCappedWarning
	}
	d := t.details[key]
	d.Quantity = stored
	t.details[key] = d
	return stored, warning
}

// SetReason overwrites the reason for key.
func (t *Tracker) SetReason(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entryLocked(key); !ok {
		return
	}
	d := t.details[key]
	d.Reason = value
	t.details[key] = d
}

// SetComment overwrites the comment for key.
func (t *Tracker) SetComment(key, value string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entryLocked(key); !ok {
		return
	}
	d := t.details[key]
	d.Comment = value
	t.details[key] = d
}

// Reset clears the selection and every detail. Invoked when the flow
// exits back to the catalog or the landing view, so the next
// return-creation flow starts empty.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = nil
	t.details = make(map[string]Detail)
}

// Len reports the number of selected occurrences.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// IsSelected reports whether any occurrence of (upc, poNumber) is
// selected.
func (t *Tracker) IsSelected(upc, poNumber string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.entries {
		if e.item.UPC == upc && e.item.EffectivePONumber() == poNumber {
			return true
		}
	}
	return false
}

// Detail returns the detail stored for key.
func (t *Tracker) Detail(key string) (Detail, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d, ok := t.details[key]
	return d, ok
}

// Snapshot returns the fully-settled selection: every selected line
// with its key and detail, in selection order. The decision engine
// consumes this so it can never observe a half-applied edit.
func (t *Tracker) Snapshot() []Line {
	t.mu.RLock()
	defer t.mu.RUnlock()
	lines := make([]Line, 0, len(t.entries))
	for _, e := range t.entries {
		lines = append(lines, Line{Item: e.item, Key: e.key, Detail: t.details[e.key]})
	}
	return lines
}

// HasOpenRA reports whether any selected item is an Open RA line.
func (t *Tracker) HasOpenRA() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.entries {
		if e.item.IsOpenRA {
			return true
		}
	}
	return false
}

func (t *Tracker) entryLocked(key string) (entry, bool) {
	for _, e := range t.entries {
		if e.key == key {
			return e, true
		}
	}
	return entry{}, false
}

func (t *Tracker) removeKeyLocked(key string) {
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.key == key {
			delete(t.details, e.key)
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
}

func (t *Tracker) removeOrderLocked(poNumber string) {
	kept := t.entries[:0]
	for _, e := range t.entries {
		if e.item.EffectivePONumber() == poNumber {
			delete(t.details, e.key)
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
}

func defaultQuantity(available int) int {
	if available < 1 {
		return 1
	}
	return available
}
