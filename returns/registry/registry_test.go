package registry

import (
	"testing"
	"time"

	"turnify/returns"
)

func record(rma string, status returns.Status, total float64) returns.ReturnRecord {
	return returns.ReturnRecord{
		RMANumber:  rma,
		Status:     status,
		CreatedAt:  time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
		TotalValue: total,
		Items:      []returns.ReturnLine{{UPC: "000123456789", Title: "Widget", Qty: 1, Reason: "Quality Issue"}},
	}
}

func TestAppend_AssignsIDsAndPrepends(t *testing.T) {
	g := New()
	first := g.Append(record("RMA-2024-001", returns.StatusApproved, 100))
	second := g.Append(record("RMA-2024-002", returns.StatusPending, 200))

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("unexpected ids: %d, %d", first.ID, second.ID)
	}
	all := g.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].RMANumber != "RMA-2024-002" {
		t.Fatalf("listing is not most-recent-first: %s", all[0].RMANumber)
	}
	if g.Count() != 2 {
		t.Fatalf("count = %d", g.Count())
	}
}

func TestAppend_RespectsPreassignedIDs(t *testing.T) {
	g := New()
	rec := record("RMA-2024-007", returns.StatusApproved, 100)
	rec.ID = 7
	g.Append(rec)

	next := g.Append(record("RMA-2024-008", returns.StatusApproved, 50))
	if next.ID != 8 {
		t.Fatalf("expected id 8 after preassigned 7, got %d", next.ID)
	}
}

func TestQuery_ReturnsDetachedCopies(t *testing.T) {
	g := New()
	g.Append(record("RMA-2024-001", returns.StatusPending, 100))
	g.Append(record("RMA-2024-002", returns.StatusApproved, 200))

	pending := g.Query(func(r returns.ReturnRecord) bool { return r.Status == returns.StatusPending })
	if len(pending) != 1 || pending[0].RMANumber != "RMA-2024-001" {
		t.Fatalf("unexpected query result: %+v", pending)
	}

	pending[0].TotalValue = 999999
	if got, _ := g.ByRMA("RMA-2024-001"); got.TotalValue != 100 {
		t.Fatalf("query result mutated registry state: %.2f", got.TotalValue)
	}
}

func TestByIDAndByRMA(t *testing.T) {
	g := New()
	stored := g.Append(record("RMA-2024-001", returns.StatusApproved, 100))

	if got, ok := g.ByID(stored.ID); !ok || got.RMANumber != "RMA-2024-001" {
		t.Fatalf("ByID lookup failed: %v %+v", ok, got)
	}
	if _, ok := g.ByID(99); ok {
		t.Fatalf("ByID found a record that does not exist")
	}
	if got, ok := g.ByRMA("RMA-2024-001"); !ok || got.ID != stored.ID {
		t.Fatalf("ByRMA lookup failed: %v %+v", ok, got)
	}
	if _, ok := g.ByRMA("RMA-1999-001"); ok {
		t.Fatalf("ByRMA found a record that does not exist")
	}
}

func TestUpdateStatus_LegalTransitions(t *testing.T) {
	g := New()
	rec := g.Append(record("RMA-2024-001", returns.StatusPending, 100))

	approved, err := g.UpdateStatus(rec.ID, returns.StatusApproved, "Jane Admin")
	if err != nil {
		t.Fatalf("pending -> approved refused: %v", err)
	}
	if approved.Approver != "Jane Admin" {
		t.Fatalf("approver not recorded: %q", approved.Approver)
	}

	shipped, err := g.UpdateStatus(rec.ID, returns.StatusShipped, "")
	if err != nil {
		t.Fatalf("approved -> shipped refused: %v", err)
	}
	if shipped.Approver != "Jane Admin" {
		t.Fatalf("blank approver overwrote prior value: %q", shipped.Approver)
	}
}

func TestUpdateStatus_RefusesIllegalTransitions(t *testing.T) {
	g := New()
	rec := g.Append(record("RMA-2024-001", returns.StatusPending, 100))

	if _, err := g.UpdateStatus(rec.ID, returns.StatusShipped, ""); err == nil {
		t.Fatalf("pending -> shipped should be refused")
	}
	if _, err := g.UpdateStatus(rec.ID, returns.Status("lost"), ""); err == nil {
		t.Fatalf("unknown status should be refused")
	}

	rejected := g.Append(record("RMA-2024-002", returns.StatusRejected, 50))
	if _, err := g.UpdateStatus(rejected.ID, returns.StatusApproved, ""); err == nil {
		t.Fatalf("rejected records are terminal")
	}
	if _, err := g.UpdateStatus(404, returns.StatusApproved, ""); err == nil {
		t.Fatalf("missing record should be an error")
	}
}

func TestSummarize_CountsByStatus(t *testing.T) {
	g := New()
	g.Append(record("RMA-2024-001", returns.StatusPending, 100))
	g.Append(record("RMA-2024-002", returns.StatusApproved, 200))
	g.Append(record("RMA-2024-003", returns.StatusApproved, 300))
	g.Append(record("RMA-2024-004", returns.StatusShipped, 400))
	g.Append(record("RMA-2024-005", returns.StatusRejected, 500))

	s := g.Summarize()
	if s.Total != 5 || s.Pending != 1 || s.Approved != 2 || s.Shipped != 1 || s.Rejected != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.TotalValue != 1500 {
		t.Fatalf("expected total value 1500, got %.2f", s.TotalValue)
	}
}

func TestNewSeeded_DeterministicSampleSet(t *testing.T) {
	g := NewSeeded()
	if g.Count() != 50 {
		t.Fatalf("expected 50 seeded returns, got %d", g.Count())
	}

	rec, ok := g.ByRMA("RMA-2024-001")
	if !ok {
		t.Fatalf("curated record missing")
	}
	if rec.Status != returns.StatusApproved || rec.TotalValue != 562.50 {
		t.Fatalf("curated record drifted: %+v", rec)
	}

	all := g.All()
	if all[0].RMANumber != "RMA-2024-050" {
		t.Fatalf("listing should start at the newest seeded record, got %s", all[0].RMANumber)
	}
	for _, r := range all {
		if r.Status == returns.StatusShipped && r.TrackingNumber == "" {
			t.Fatalf("shipped record %s has no tracking number", r.RMANumber)
		}
		if len(r.Items) == 0 {
			t.Fatalf("seeded record %s has no lines", r.RMANumber)
		}
	}

	again := NewSeeded().All()
	if len(again) != len(all) {
		t.Fatalf("seeding is not deterministic")
	}
	for i := range all {
		if all[i].RMANumber != again[i].RMANumber || all[i].TotalValue != again[i].TotalValue {
			t.Fatalf("seeding is not deterministic at %d: %s vs %s", i, all[i].RMANumber, again[i].RMANumber)
		}
	}
}
