package approval

import (
	"strings"
	"testing"
	"time"

	"turnify/returns"
	"turnify/returns/selection"
)

func testEngine() *Engine {
	return &Engine{
		Now:            func() time.Time { return time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC) },
		TrackingNumber: func() string { return "1Z999AATESTTEST00" },
	}
}

func line(upc, po string, price float64, qty int, reason string) selection.Line {
	item := returns.SelectedItem{
		UPC:      upc,
		Title:    "Item " + upc,
		Price:    price,
		PONumber: po,
	}
	return selection.Line{
		Item:   item,
		Key:    selection.ItemKey(item, 0),
		Detail: selection.Detail{Quantity: qty, Reason: reason},
	}
}

func openRALine(price float64, qty int) selection.Line {
	item := returns.SelectedItem{
		UPC:      "999888777666",
		Title:    "Untracked item",
		Price:    price,
		IsOpenRA: true,
	}
	return selection.Line{
		Item:   item,
		Key:    selection.ItemKey(item, 0),
		Detail: selection.Detail{Quantity: qty, Reason: "No PO Reference"},
	}
}

func TestDecide_HighValueNeedsManualApproval(t *testing.T) {
	rec := testEngine().Decide([]selection.Line{
		line("000123456789", "PO-1001", 600.00, 2, "Quality Issue"),
	}, 0)

	if rec.Status != returns.StatusPending {
		t.Fatalf("expected pending, got %s", rec.Status)
	}
	if !rec.ApprovalNeeded {
		t.Fatalf("expected approval needed at $%.2f", rec.TotalValue)
	}
	if rec.Approver != "" || rec.TrackingNumber != "" {
		t.Fatalf("pending record must not carry approver/tracking: %q %q", rec.Approver, rec.TrackingNumber)
	}
	if rec.Rationale != RationaleHighValue {
		t.Fatalf("unexpected rationale %q", rec.Rationale)
	}
	if rec.TotalValue != 1200.00 {
		t.Fatalf("expected total 1200.00, got %.2f", rec.TotalValue)
	}
}

func TestDecide_LowValueAutoApproves(t *testing.T) {
	rec := testEngine().Decide([]selection.Line{
		line("000123456789", "PO-1001", 150.00, 2, "Wrong Size"),
	}, 0)

	if rec.Status != returns.StatusApproved {
		t.Fatalf("expected approved, got %s", rec.Status)
	}
	if rec.ApprovalNeeded {
		t.Fatalf("approval should not be needed at $%.2f", rec.TotalValue)
	}
	if rec.Approver != AutoApprover {
		t.Fatalf("expected %q approver, got %q", AutoApprover, rec.Approver)
	}
	if rec.TrackingNumber != "1Z999AATESTTEST00" {
		t.Fatalf("expected injected tracking number, got %q", rec.TrackingNumber)
	}
	if rec.Rationale != RationaleQuick {
		t.Fatalf("unexpected rationale %q", rec.Rationale)
	}
}

func TestDecide_StandardBandKeepsAutoApproval(t *testing.T) {
	rec := testEngine().Decide([]selection.Line{
		line("000123456789", "PO-1001", 750.00, 1, "Damaged in Transit"),
	}, 0)

	if rec.Status != returns.StatusApproved || rec.ApprovalNeeded {
		t.Fatalf("expected auto-approved record, got status=%s needed=%v", rec.Status, rec.ApprovalNeeded)
	}
	if rec.Rationale != RationaleStandard {
		t.Fatalf("unexpected rationale %q", rec.Rationale)
	}
}

func TestDecide_ThresholdBoundariesAreExclusive(t *testing.T) {
	cases := []struct {
		total     float64
		status    returns.Status
		rationale string
	}{
		{500.00, returns.StatusApproved, RationaleQuick},
		{500.01, returns.StatusApproved, RationaleStandard},
		{1000.00, returns.StatusApproved, RationaleStandard},
		{1000.01, returns.StatusPending, RationaleHighValue},
	}
	for _, c := range cases {
		rec := testEngine().Decide([]selection.Line{
			line("000123456789", "PO-1001", c.total, 1, "Quality Issue"),
		}, 0)
		if rec.Status != c.status || rec.Rationale != c.rationale {
			t.Fatalf("total %.2f: got status=%s rationale=%q", c.total, rec.Status, rec.Rationale)
		}
	}
}

func TestDecide_OpenRAAlwaysPendsRegardlessOfValue(t *testing.T) {
	rec := testEngine().Decide([]selection.Line{openRALine(10.00, 1)}, 0)

	if rec.Status != returns.StatusPending || !rec.ApprovalNeeded {
		t.Fatalf("open RA must pend: status=%s needed=%v", rec.Status, rec.ApprovalNeeded)
	}
	if rec.Rationale != RationaleOpenRA {
		t.Fatalf("unexpected rationale %q", rec.Rationale)
	}
	if rec.PONumber != returns.OpenRAPONumber {
		t.Fatalf("expected %q PO, got %q", returns.OpenRAPONumber, rec.PONumber)
	}
	if rec.Approver != "" || rec.TrackingNumber != "" {
		t.Fatalf("open RA record must not carry approver/tracking")
	}
}

func TestDecide_RMANumberSequencesWithinYear(t *testing.T) {
	rec := testEngine().Decide([]selection.Line{
		line("000123456789", "PO-1001", 10.00, 1, "Quality Issue"),
	}, 7)
	if rec.RMANumber != "RMA-2024-008" {
		t.Fatalf("expected RMA-2024-008, got %s", rec.RMANumber)
	}
}

func TestDecide_FallbacksForQuantityAndReason(t *testing.T) {
	item := returns.SelectedItem{UPC: "000123456789", Title: "Widget", Price: 25.00, PONumber: "PO-1001", ReturnQty: 3}
	rec := testEngine().Decide([]selection.Line{
		{Item: item, Key: selection.ItemKey(item, 0)},
	}, 0)

	if len(rec.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(rec.Items))
	}
	if rec.Items[0].Qty != 3 {
		t.Fatalf("expected item fallback qty 3, got %d", rec.Items[0].Qty)
	}
	if rec.Items[0].Reason != returns.ReasonNotSpecified {
		t.Fatalf("expected %q reason, got %q", returns.ReasonNotSpecified, rec.Items[0].Reason)
	}
	if rec.TotalValue != 75.00 {
		t.Fatalf("expected total 75.00, got %.2f", rec.TotalValue)
	}
}

func TestDecide_RoundsTotalToCents(t *testing.T) {
	rec := testEngine().Decide([]selection.Line{
		line("000123456789", "PO-1001", 33.333, 3, "Quality Issue"),
	}, 0)
	if rec.TotalValue != 100.00 {
		t.Fatalf("expected 100.00, got %v", rec.TotalValue)
	}
}

func TestNewTrackingNumber_FormatAndUniqueness(t *testing.T) {
	a, b := NewTrackingNumber(), NewTrackingNumber()
	for _, tn := range []string{a, b} {
		if !strings.HasPrefix(tn, "1Z999AA") || len(tn) != len("1Z999AA")+10 {
			t.Fatalf("malformed tracking number %q", tn)
		}
	}
	if a == b {
		t.Fatalf("tracking numbers collided: %s", a)
	}
}
