package flow

import (
	"testing"
	"time"

	"turnify/returns"
	"turnify/returns/approval"
	"turnify/returns/registry"
)

func testEngine() *approval.Engine {
	return &approval.Engine{
		Now:            func() time.Time { return time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC) },
		TrackingNumber: func() string { return "1Z999AATESTTEST00" },
	}
}

func selectOne(s *Session, price float64) {
	s.Selection().Select(returns.CatalogItem{
		UPC:             "000123456789",
		Title:           "Widget",
		Price:           price,
		AvailableReturn: 5,
	}, "PO-1001", 0)
}

func TestNavigate_TracksCurrentView(t *testing.T) {
	s := NewSession()
	if s.Current() != ViewLanding {
		t.Fatalf("new session should start on landing, got %s", s.Current())
	}
	s.Navigate(ViewItemSelection)
	s.Navigate(ViewReturnDetails)
	if s.Current() != ViewReturnDetails {
		t.Fatalf("current = %s", s.Current())
	}
}

func TestNavigateToReturn_CarriesPayload(t *testing.T) {
	s := NewSession()
	s.NavigateToReturn(17)
	if s.Current() != ViewReturnDetailsView {
		t.Fatalf("current = %s", s.Current())
	}
	if s.SelectedReturnID() != 17 {
		t.Fatalf("payload = %d", s.SelectedReturnID())
	}
}

func TestApprovalCheck_AppendsDecisionAfterDelay(t *testing.T) {
	s := NewSession()
	reg := registry.New()
	selectOne(s, 100.00)
	s.Selection().SetReason("000123456789_PO-1001_0", "Quality Issue")

	decided := make(chan returns.ReturnRecord, 1)
	s.StartApprovalCheck(testEngine(), reg, time.Millisecond, func(r returns.ReturnRecord) { decided <- r })

	if !s.Checking() {
		t.Fatalf("check should be pending right after start")
	}

	var rec returns.ReturnRecord
	select {
	case rec = <-decided:
	case <-time.After(time.Second):
		t.Fatalf("decision never fired")
	}

	if s.Checking() {
		t.Fatalf("check still marked pending after firing")
	}
	if reg.Count() != 1 {
		t.Fatalf("registry holds %d records", reg.Count())
	}
	if rec.Status != returns.StatusApproved || rec.RMANumber != "RMA-2024-001" {
		t.Fatalf("unexpected decision %+v", rec)
	}
	got, ok := s.Decision()
	if !ok || got.ID != rec.ID {
		t.Fatalf("session decision mismatch: %v %+v", ok, got)
	}
}

func TestNavigateAway_CancelsPendingDecision(t *testing.T) {
	s := NewSession()
	reg := registry.New()
	selectOne(s, 100.00)

	s.StartApprovalCheck(testEngine(), reg, 50*time.Millisecond, nil)
	s.Navigate(ViewReturnDetails)

	if s.Checking() {
		t.Fatalf("pending task survived navigation away")
	}
	time.Sleep(120 * time.Millisecond)
	if reg.Count() != 0 {
		t.Fatalf("cancelled decision still appended a record")
	}
}

func TestLeavingApprovalCheckForSelectionResetsOnce(t *testing.T) {
	s := NewSession()
	reg := registry.New()
	selectOne(s, 100.00)
	s.StartApprovalCheck(testEngine(), reg, time.Hour, nil)

	s.Navigate(ViewItemSelection)
	if s.Selection().Len() != 0 {
		t.Fatalf("selection not reset on approval-check -> item-selection")
	}
	if _, ok := s.Decision(); ok {
		t.Fatalf("stale decision survived reset")
	}

	// Re-arrive and leave over a non-resetting edge.
	selectOne(s, 100.00)
	s.Navigate(ViewReturnDetails)
	if s.Selection().Len() != 1 {
		t.Fatalf("non-approval edge cleared the selection")
	}
}

func TestLeavingApprovalCheckForLandingResets(t *testing.T) {
	s := NewSession()
	reg := registry.New()
	selectOne(s, 100.00)
	s.StartApprovalCheck(testEngine(), reg, time.Hour, nil)

	s.Navigate(ViewLanding)
	if s.Selection().Len() != 0 {
		t.Fatalf("selection not reset on approval-check -> landing")
	}
}

func TestApprovalCheckToDetailsKeepsSelection(t *testing.T) {
	s := NewSession()
	reg := registry.New()
	selectOne(s, 100.00)
	s.StartApprovalCheck(testEngine(), reg, time.Hour, nil)

	s.Navigate(ViewConfirmation)
	if s.Selection().Len() != 1 {
		t.Fatalf("approval-check -> confirmation must keep the selection")
	}
}

func TestLeavingSettledDecisionForLandingResets(t *testing.T) {
	s := NewSession()
	reg := registry.New()
	selectOne(s, 100.00)
	s.Selection().SetReason("000123456789_PO-1001_0", "Quality Issue")

	decided := make(chan struct{}, 1)
	s.StartApprovalCheck(testEngine(), reg, time.Millisecond, func(returns.ReturnRecord) { decided <- struct{}{} })
	select {
	case <-decided:
	case <-time.After(time.Second):
		t.Fatalf("decision never fired")
	}

	// Rendering the settled decision moves to the confirmation screen;
	// the selection must survive until the user leaves it behind.
	s.Navigate(ViewConfirmation)
	if s.Selection().Len() != 1 {
		t.Fatalf("settled decision screen cleared the selection")
	}

	s.Navigate(ViewLanding)
	if s.Selection().Len() != 0 {
		t.Fatalf("selection bled past the settled decision into landing")
	}
	if _, ok := s.Decision(); ok {
		t.Fatalf("stale decision survived leaving the approval flow")
	}

	// The next flow starts clean.
	selectOne(s, 100.00)
	if s.Selection().Len() != 1 {
		t.Fatalf("fresh selection after reset holds %d items", s.Selection().Len())
	}
}

func TestLeavingApprovalPendingForSelectionResets(t *testing.T) {
	s := NewSession()
	reg := registry.New()
	selectOne(s, 1200.00)
	s.Selection().SetReason("000123456789_PO-1001_0", "Overstock")

	decided := make(chan struct{}, 1)
	s.StartApprovalCheck(testEngine(), reg, time.Millisecond, func(returns.ReturnRecord) { decided <- struct{}{} })
	select {
	case <-decided:
	case <-time.After(time.Second):
		t.Fatalf("decision never fired")
	}

	s.Navigate(ViewApprovalPending)
	s.Navigate(ViewItemSelection)
	if s.Selection().Len() != 0 {
		t.Fatalf("selection bled past approval-pending into item-selection")
	}
	if _, ok := s.Decision(); ok {
		t.Fatalf("stale decision survived leaving the approval flow")
	}
}

func TestStaleTimerCannotResolveNewerCheck(t *testing.T) {
	s := NewSession()
	reg := registry.New()
	selectOne(s, 100.00)
	s.Selection().SetReason("000123456789_PO-1001_0", "Quality Issue")

	s.StartApprovalCheck(testEngine(), reg, time.Hour, nil)
	s.StartApprovalCheck(testEngine(), reg, time.Hour, nil)

	// A timer from the first check that lost the race to its Stop call
	// arrives with a stale generation and must not settle the second.
	s.fireDecision(1, testEngine(), reg, nil)

	if !s.Checking() {
		t.Fatalf("stale timer resolved the newer check early")
	}
	if _, ok := s.Decision(); ok {
		t.Fatalf("stale timer produced a decision")
	}
	if reg.Count() != 0 {
		t.Fatalf("stale timer appended a record")
	}
}

func TestFireSkipsEmptySelection(t *testing.T) {
	s := NewSession()
	reg := registry.New()

	decided := make(chan struct{}, 1)
	s.StartApprovalCheck(testEngine(), reg, time.Millisecond, func(returns.ReturnRecord) { decided <- struct{}{} })

	time.Sleep(50 * time.Millisecond)
	select {
	case <-decided:
		t.Fatalf("empty selection produced a decision")
	default:
	}
	if reg.Count() != 0 {
		t.Fatalf("empty selection appended a record")
	}
	if s.Checking() {
		t.Fatalf("task still pending after fire")
	}
}

func TestStore_GetCreatesPerToken(t *testing.T) {
	st := NewStore()
	a, b := st.Get("tok-a"), st.Get("tok-b")
	if a == b {
		t.Fatalf("distinct tokens shared a session")
	}
	if st.Get("tok-a") != a {
		t.Fatalf("same token did not return the same session")
	}
}

func TestStore_DropCancelsPending(t *testing.T) {
	st := NewStore()
	reg := registry.New()
	s := st.Get("tok-a")
	selectOne(s, 100.00)
	s.StartApprovalCheck(testEngine(), reg, 50*time.Millisecond, nil)

	st.Drop("tok-a")
	time.Sleep(120 * time.Millisecond)
	if reg.Count() != 0 {
		t.Fatalf("dropped session's task still appended a record")
	}
	if st.Get("tok-a") == s {
		t.Fatalf("dropped session was served again")
	}
}
