// Package registry keeps the in-memory collection of return records.
// Records are append-only; only admin status transitions mutate them
// after registration.
package registry

import (
	"fmt"
	"sync"

	"turnify/returns"
)

// Registry stores return records most-recent-first. It assigns record
// identifiers on append and performs no deduplication; RMA uniqueness
// is owned by the decision engine's numbering scheme.
type Registry struct {
	mu      sync.RWMutex
	records []returns.ReturnRecord
	nextID  int64
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{nextID: 1}
}

// Append registers a record, assigns its identifier and prepends it so
// listings read most-recent-first. The stored record is returned.
func (g *Registry) Append(rec returns.ReturnRecord) returns.ReturnRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	if rec.ID == 0 {
		rec.ID = g.nextID
	}
	if rec.ID >= g.nextID {
		g.nextID = rec.ID + 1
	}
	g.records = append([]returns.ReturnRecord{rec}, g.records...)
	return rec
}

// Count reports the number of registered returns. The decision engine
// uses it as the prior-returns count for RMA numbering.
func (g *Registry) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.records)
}

// All returns a snapshot of every record, most-recent-first.
func (g *Registry) All() []returns.ReturnRecord {
	return g.Query(func(returns.ReturnRecord) bool { return true })
}

// Query returns the records matching pred, most-recent-first. The
// result is a copy; callers cannot mutate registry state through it.
func (g *Registry) Query(pred func(returns.ReturnRecord) bool) []returns.ReturnRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]returns.ReturnRecord, 0)
	for _, rec := range g.records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// ByID looks a record up by identifier.
func (g *Registry) ByID(id int64) (returns.ReturnRecord, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, rec := range g.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return returns.ReturnRecord{}, false
}

// ByRMA looks a record up by RMA number.
func (g *Registry) ByRMA(rma string) (returns.ReturnRecord, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, rec := range g.records {
		if rec.RMANumber == rma {
			return rec, true
		}
	}
	return returns.ReturnRecord{}, false
}

// UpdateStatus applies an admin decision to a pending or approved
// record. Legal transitions: pending -> approved/rejected and
// approved -> shipped. Everything else is refused.
func (g *Registry) UpdateStatus(id int64, status returns.Status, approver string) (returns.ReturnRecord, error) {
	if !returns.ValidStatus(status) {
		return returns.ReturnRecord{}, fmt.Errorf("unknown status %q", status)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.records {
		if g.records[i].ID != id {
			continue
		}
		if !legalTransition(g.records[i].Status, status) {
			return returns.ReturnRecord{}, fmt.Errorf("cannot move return %d from %s to %s", id, g.records[i].Status, status)
		}
		g.records[i].Status = status
		if approver != "" {
			g.records[i].Approver = approver
		}
		return g.records[i], nil
	}
	return returns.ReturnRecord{}, fmt.Errorf("return %d not found", id)
}

func legalTransition(from, to returns.Status) bool {
	switch from {
	case returns.StatusPending:
		return to == returns.StatusApproved || to == returns.StatusRejected
	case returns.StatusApproved:
		return to == returns.StatusShipped
	}
	return false
}

// Summary aggregates registry state for the dashboard views.
type Summary struct {
	Total      int
	Pending    int
	Approved   int
	Rejected   int
	Shipped    int
	TotalValue float64
}

// Summarize computes dashboard analytics over the current records.
func (g *Registry) Summarize() Summary {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var s Summary
	for _, rec := range g.records {
		s.Total++
		s.TotalValue += rec.TotalValue
		switch rec.Status {
		case returns.StatusPending:
			s.Pending++
		case returns.StatusApproved:
			s.Approved++
		case returns.StatusRejected:
			s.Rejected++
		case returns.StatusShipped:
			s.Shipped++
		}
	}
	return s
}
