// Package approval derives the automated decision for a finalized
// selection and synthesizes the resulting return record.
package approval

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"turnify/returns"
	"turnify/returns/selection"
)

// Decision thresholds, in dollars. Above the manual threshold a human
// must approve; above the standard threshold approved returns lose the
// quick-processing path.
const (
	ManualApprovalThreshold   = 1000.0
	StandardProcessingCeiling = 500.0
)

const trackingCarrierPrefix = "1Z999AA"

// Rationales shown with the decision.
const (
	RationaleOpenRA    = "Open RA returns require manual review. Our team will contact you within 24 hours."
	RationaleHighValue = "High-value return detected. Manual approval required for amounts over $1,000."
	RationaleStandard  = "Return approved with standard processing. Shipping label will be generated."
	RationaleQuick     = "Quick approval granted. Return meets all criteria for immediate processing."
)

// AutoApprover marks records that cleared the automated check.
const AutoApprover = "Auto-approved"

// Engine computes approval decisions. Now and TrackingNumber are
// injectable for tests; zero values fall back to wall clock and a
// uuid-suffixed carrier tracking id.
type Engine struct {
	Now            func() time.Time
	TrackingNumber func() string
}

// NewEngine returns an engine with production defaults.
func NewEngine() *Engine {
	return &Engine{}
}

// Decide evaluates a settled, non-empty selection against the approval
// policy and synthesizes the return record. The record identifier is
// assigned by the registry on append. Callers must reject empty
// selections before reaching the engine.
func (e *Engine) Decide(lines []selection.Line, priorReturnsCount int) returns.ReturnRecord {
	now := e.now()

	total := 0.0
	hasOpenRA := false
	items := make([]returns.ReturnLine, 0, len(lines))
	for _, l := range lines {
		qty := resolvedQty(l)
		total += l.Item.Price * float64(qty)
		if l.Item.IsOpenRA {
			hasOpenRA = true
		}
		items = append(items, returns.ReturnLine{
			UPC:     l.Item.UPC,
			Title:   l.Item.Title,
			Qty:     qty,
			Reason:  resolvedReason(l),
			Comment: l.Detail.Comment,
		})
	}
	total = roundCents(total)

	// First match wins.
	var status returns.Status
	var rationale string
	switch {
	case hasOpenRA:
		status, rationale = returns.StatusPending, RationaleOpenRA
	case total > ManualApprovalThreshold:
		status, rationale = returns.StatusPending, RationaleHighValue
	case total > StandardProcessingCeiling:
		status, rationale = returns.StatusApproved, RationaleStandard
	default:
		status, rationale = returns.StatusApproved, RationaleQuick
	}

	approvalNeeded := hasOpenRA || total > ManualApprovalThreshold
	approver := ""
	tracking := ""
	if !approvalNeeded {
		approver = AutoApprover
		tracking = e.trackingNumber()
	}

	return returns.ReturnRecord{
		RMANumber:      RMANumber(now.Year(), priorReturnsCount),
		PONumber:       recordPONumber(lines),
		Status:         status,
		CreatedAt:      now,
		TotalValue:     total,
		Items:          items,
		ApprovalNeeded: approvalNeeded,
		Approver:       approver,
		TrackingNumber: tracking,
		Rationale:      rationale,
	}
}

// RMANumber formats the RMA for the (priorCount+1)-th return of a year.
func RMANumber(year, priorCount int) string {
	return fmt.Sprintf("RMA-%d-%03d", year, priorCount+1)
}

// NewTrackingNumber synthesizes a carrier tracking id unique with
// overwhelming probability. The exact format is not a compatibility
// requirement.
func NewTrackingNumber() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return trackingCarrierPrefix + strings.ToUpper(suffix[:10])
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) trackingNumber() string {
	if e.TrackingNumber != nil {
		return e.TrackingNumber()
	}
	return NewTrackingNumber()
}

func resolvedQty(l selection.Line) int {
	if l.Detail.Quantity > 0 {
		return l.Detail.Quantity
	}
	if l.Item.ReturnQty > 0 {
		return l.Item.ReturnQty
	}
	return 1
}

func resolvedReason(l selection.Line) string {
	if strings.TrimSpace(l.Detail.Reason) != "" {
		return l.Detail.Reason
	}
	if strings.TrimSpace(l.Item.Reason) != "" {
		return l.Item.Reason
	}
	return returns.ReasonNotSpecified
}

func recordPONumber(lines []selection.Line) string {
	if len(lines) == 0 {
		return "N/A"
	}
	first := lines[0].Item
	if first.IsOpenRA {
		return returns.OpenRAPONumber
	}
	if first.PONumber != "" {
		return first.PONumber
	}
	return "N/A"
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
