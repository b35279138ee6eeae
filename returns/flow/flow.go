// Package flow tracks the portal's named views per session and owns
// the side effects bound to view transitions: clearing the selection
// when the approval flow is abandoned, and the deferred approval
// decision.
package flow

import (
	"sync"
	"time"

	"turnify/returns"
	"turnify/returns/approval"
	"turnify/returns/registry"
	"turnify/returns/selection"
)

// View names one portal screen.
type View string

const (
	ViewLanding           View = "landing"
	ViewItemSelection     View = "item-selection"
	ViewOpenRA            View = "open-ra"
	ViewReturnDetails     View = "return-details"
	ViewApprovalCheck     View = "approval-check"
	ViewApprovalPending   View = "approval-pending"
	ViewConfirmation      View = "confirmation"
	ViewReturnsList       View = "returns-list"
	ViewAdminDashboard    View = "admin-dashboard"
	ViewReturnDetailsView View = "return-details-view"
)

// Session is the flow state of one signed-in portal session: the
// current view, the in-flight selection and, while an approval check
// runs, the deferred decision task.
type Session struct {
	mu         sync.Mutex
	current    View
	selection  *selection.Tracker
	returnID   int64
	pending    *time.Timer
	pendingGen uint64
	decision   *returns.ReturnRecord
}

// NewSession starts a session on the landing view with an empty
// selection.
func NewSession() *Session {
	return &Session{current: ViewLanding, selection: selection.NewTracker()}
}

// Selection returns the tracker owned by this flow.
func (s *Session) Selection() *selection.Tracker {
	return s.selection
}

// Current reports the view the session is on.
func (s *Session) Current() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SelectedReturnID reports the payload of the last navigation to the
// return-details-view screen.
func (s *Session) SelectedReturnID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.returnID
}

// Navigate transitions to target. Leaving approval-check cancels an
// unfired decision task; leaving the approval flow (approval-check and
// the settled confirmation/approval-pending screens) for the landing
// or item-selection view resets the selection, exactly once per such
// transition. No other edge touches selection state.
func (s *Session) Navigate(target View) {
	s.navigate(target, 0)
}

// NavigateToReturn transitions to the return-details-view screen with
// the chosen record as payload.
func (s *Session) NavigateToReturn(id int64) {
	s.navigate(ViewReturnDetailsView, id)
}

func (s *Session) navigate(target View, payload int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == ViewApprovalCheck && target != ViewApprovalCheck {
		s.cancelPendingLocked()
	}
	if inApprovalFlow(s.current) && (target == ViewLanding || target == ViewItemSelection) {
		s.selection.Reset()
		s.decision = nil
	}
	s.current = target
	if payload != 0 {
		s.returnID = payload
	}
}

// inApprovalFlow reports whether v belongs to the approval flow: the
// running check plus the settled decision screens. A flow session
// stays in this set until the user leaves the decision behind.
func inApprovalFlow(v View) bool {
	return v == ViewApprovalCheck || v == ViewConfirmation || v == ViewApprovalPending
}

// StartApprovalCheck enters the approval-check view and schedules the
// decision after delay. The decision observes the fully-settled
// selection at fire time, appends the synthesized record to reg and
// calls onDecided (may be nil). A check still pending when the view is
// left is cancelled, so no state is mutated after teardown.
func (s *Session) StartApprovalCheck(eng *approval.Engine, reg *registry.Registry, delay time.Duration, onDecided func(returns.ReturnRecord)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	s.current = ViewApprovalCheck
	s.decision = nil
	s.pendingGen++
	gen := s.pendingGen
	s.pending = time.AfterFunc(delay, func() {
		s.fireDecision(gen, eng, reg, onDecided)
	})
}

func (s *Session) fireDecision(gen uint64, eng *approval.Engine, reg *registry.Registry, onDecided func(returns.ReturnRecord)) {
	s.mu.Lock()
	if s.pending == nil || gen != s.pendingGen {
		// Cancelled, or superseded by a newer check, between fire and
		// lock acquisition.
		s.mu.Unlock()
		return
	}
	s.pending = nil
	lines := s.selection.Snapshot()
	if len(lines) == 0 {
		s.mu.Unlock()
		return
	}
	stored := reg.Append(eng.Decide(lines, reg.Count()))
	s.decision = &stored
	s.mu.Unlock()

	if onDecided != nil {
		onDecided(stored)
	}
}

// Checking reports whether a decision task is still pending.
func (s *Session) Checking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Decision returns the outcome of the last completed approval check.
func (s *Session) Decision() (returns.ReturnRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.decision == nil {
		return returns.ReturnRecord{}, false
	}
	return *s.decision, true
}

func (s *Session) cancelPendingLocked() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// Store owns the flow sessions of the portal, keyed by session token.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the flow session for token, creating it on first use.
func (st *Store) Get(token string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[token]; ok {
		return s
	}
	s := NewSession()
	st.sessions[token] = s
	return s
}

// Drop discards the flow session for token, cancelling any pending
// decision task. Called on logout.
func (st *Store) Drop(token string) {
	st.mu.Lock()
	s, ok := st.sessions[token]
	delete(st.sessions, token)
	st.mu.Unlock()
	if ok {
		s.mu.Lock()
		s.cancelPendingLocked()
		s.mu.Unlock()
	}
}
