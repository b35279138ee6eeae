package selection

import (
	"testing"

	"turnify/returns"
)

func catalogItem(upc string, available int) returns.CatalogItem {
	return returns.CatalogItem{
		UPC:             upc,
		Title:           "Item " + upc,
		Qty:             available + 5,
		Price:           19.99,
		AvailableReturn: available,
	}
}

func TestSelect_InitializesDefaults(t *testing.T) {
	tr := NewTracker()
	tr.Select(catalogItem("U1", 12), "PO-1", 0)

	lines := tr.Snapshot()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	l := lines[0]
	if l.Item.ReturnQty != 12 {
		t.Fatalf("default return qty = %d, want available 12", l.Item.ReturnQty)
	}
	if l.Detail.Quantity != 12 || l.Detail.Reason != "" || l.Detail.Comment != "" {
		t.Fatalf("unexpected default detail: %+v", l.Detail)
	}
	if l.Key != "U1_PO-1_0" {
		t.Fatalf("unexpected key %q", l.Key)
	}
}

func TestSetQuantity_ClampsToAvailableRange(t *testing.T) {
	tr := NewTracker()
	tr.Select(catalogItem("U1", 10), "PO-1", 0)
	key := "U1_PO-1_0"

	cases := []struct {
		request int
		want    int
		capped  bool
	}{
		{-3, 1, false},
		{0, 1, false},
		{1, 1, false},
		{7, 7, false},
		{10, 10, false},
		{11, 10, true},
		{999, 10, true},
	}
	for _, c := range cases {
		stored, warning := tr.SetQuantity(key, c.request)
		if stored != c.want {
			t.Fatalf("SetQuantity(%d) stored %d, want %d", c.request, stored, c.want)
		}
		if c.capped && warning == "" {
			t.Fatalf("SetQuantity(%d) expected a cap warning", c.request)
		}
		if !c.capped && warning != "" {
			t.Fatalf("SetQuantity(%d) unexpected warning %q", c.request, warning)
		}
		if d, _ := tr.Detail(key); d.Quantity != c.want {
			t.Fatalf("detail quantity = %d after SetQuantity(%d), want %d", d.Quantity, c.request, c.want)
		}
	}
}

func TestSetQuantity_OpenRAHasNoCeiling(t *testing.T) {
	tr := NewTracker()
	tr.ReplaceWithOpenRA(returns.SelectedItem{UPC: "SKU-1", Title: "Open RA - SKU-1", ReturnQty: 2, AvailableReturn: 2, Reason: "Other"}, "details")

	key := "SKU-1_OPEN-RA_0"
	stored, warning := tr.SetQuantity(key, 40)
	if stored != 40 || warning != "" {
		t.Fatalf("open RA quantity stored %d (warning %q), want 40 with no warning", stored, warning)
	}
}

func TestDeselect_RemovesEveryOccurrenceAndDetail(t *testing.T) {
	tr := NewTracker()
	item := catalogItem("U1", 5)
	tr.SelectAllForOrder("PO-1", []returns.CatalogItem{item, item, catalogItem("U2", 3)})
	tr.Select(catalogItem("U1", 4), "PO-2", 0)

	tr.SetReason("U1_PO-1_0", "Quality Issue")
	tr.SetComment("U1_PO-1_1", "second lot")

	tr.Deselect("U1", "PO-1")

	if tr.IsSelected("U1", "PO-1") {
		t.Fatalf("U1/PO-1 still selected after deselect")
	}
	if !tr.IsSelected("U2", "PO-1") || !tr.IsSelected("U1", "PO-2") {
		t.Fatalf("deselect removed unrelated selections")
	}
	for _, key := range []string{"U1_PO-1_0", "U1_PO-1_1"} {
		if _, ok := tr.Detail(key); ok {
			t.Fatalf("detail for %s survived deselect", key)
		}
	}
}

func TestReselect_YieldsFreshDefaultState(t *testing.T) {
	tr := NewTracker()
	item := catalogItem("U1", 8)
	tr.Select(item, "PO-1", 0)
	tr.SetQuantity("U1_PO-1_0", 3)
	tr.SetReason("U1_PO-1_0", "Other")
	tr.SetComment("U1_PO-1_0", "scuffed")

	tr.Deselect("U1", "PO-1")
	tr.Select(item, "PO-1", 0)

	d, ok := tr.Detail("U1_PO-1_0")
	if !ok {
		t.Fatalf("detail missing after re-select")
	}
	if d.Quantity != 8 || d.Reason != "" || d.Comment != "" {
		t.Fatalf("re-select kept stale detail: %+v", d)
	}
}

func TestSelect_OverwritesExistingKey(t *testing.T) {
	tr := NewTracker()
	item := catalogItem("U1", 6)
	tr.Select(item, "PO-1", 0)
	tr.SetReason("U1_PO-1_0", "Wrong Size")

	tr.Select(item, "PO-1", 0)

	if tr.Len() != 1 {
		t.Fatalf("duplicate select grew the selection to %d entries", tr.Len())
	}
	if d, _ := tr.Detail("U1_PO-1_0"); d.Reason != "" {
		t.Fatalf("duplicate select kept stale reason %q", d.Reason)
	}
}

func TestSelectAllForOrder_AdditiveAcrossOrders(t *testing.T) {
	tr := NewTracker()
	tr.Select(catalogItem("A1", 5), "PO-1", 0)
	tr.SelectAllForOrder("PO-2", []returns.CatalogItem{catalogItem("B1", 2), catalogItem("B2", 3)})

	if !tr.IsSelected("A1", "PO-1") {
		t.Fatalf("select-all for PO-2 dropped PO-1 selection")
	}
	if tr.Len() != 3 {
		t.Fatalf("expected 3 selected entries, got %d", tr.Len())
	}

	// Re-running select-all for the same order replaces, not duplicates.
	tr.SelectAllForOrder("PO-2", []returns.CatalogItem{catalogItem("B1", 2), catalogItem("B2", 3)})
	if tr.Len() != 3 {
		t.Fatalf("repeated select-all duplicated entries: %d", tr.Len())
	}
}

func TestReplaceWithOpenRA_ReplacesWholeSelection(t *testing.T) {
	tr := NewTracker()
	tr.Select(catalogItem("A1", 5), "PO-1", 0)
	tr.ReplaceWithOpenRA(returns.SelectedItem{UPC: "SKU-7", Title: "Open RA - SKU-7", ReturnQty: 3, AvailableReturn: 3, Reason: "Customer Request"}, "")

	lines := tr.Snapshot()
	if len(lines) != 1 {
		t.Fatalf("expected single open RA line, got %d", len(lines))
	}
	l := lines[0]
	if !l.Item.IsOpenRA || l.Item.PONumber != returns.OpenRAPONumber {
		t.Fatalf("open RA line not normalized: %+v", l.Item)
	}
	if l.Detail.Quantity != 3 || l.Detail.Reason != "Customer Request" {
		t.Fatalf("open RA detail not seeded from form: %+v", l.Detail)
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	tr := NewTracker()
	tr.SelectAllForOrder("PO-1", []returns.CatalogItem{catalogItem("A1", 2), catalogItem("A2", 4)})
	tr.Reset()

	if tr.Len() != 0 {
		t.Fatalf("reset left %d entries", tr.Len())
	}
	if _, ok := tr.Detail("A1_PO-1_0"); ok {
		t.Fatalf("reset left detail entries behind")
	}
}
