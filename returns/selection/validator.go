package selection

import (
	"strings"

	"turnify/returns"
)

// Result lists every violation found in one validation pass. The flow
// is blocked from advancing while violations remain; nothing is ever
// thrown past this boundary.
type Result struct {
	// MissingReason holds lines without a reason, in selection order.
	MissingReason []Line
	// MissingComment holds lines with reason "Other" and a blank
	// comment, in selection order.
	MissingComment []Line
}

// OK reports whether progression is allowed.
func (r Result) OK() bool {
	return len(r.MissingReason) == 0 && len(r.MissingComment) == 0
}

// ErrorKeys returns the set of errored selection keys.
func (r Result) ErrorKeys() map[string]struct{} {
	keys := make(map[string]struct{}, len(r.MissingReason)+len(r.MissingComment))
	for _, l := range r.MissingReason {
		keys[l.Key] = struct{}{}
	}
	for _, l := range r.MissingComment {
		keys[l.Key] = struct{}{}
	}
	return keys
}

// ErroredOrders returns the PO numbers containing errored lines, in
// first-occurrence order. The caller expands these collapsed groups
// and scrolls the first one into view.
func (r Result) ErroredOrders() []string {
	seen := make(map[string]struct{})
	orders := make([]string, 0)
	add := func(lines []Line) {
		for _, l := range lines {
			po := l.Item.EffectivePONumber()
			if _, ok := seen[po]; ok {
				continue
			}
			seen[po] = struct{}{}
			orders = append(orders, po)
		}
	}
	add(r.MissingReason)
	add(r.MissingComment)
	return orders
}

// Validate applies the progression rules to a settled selection
// snapshot, collecting all violations rather than stopping at the
// first:
//
//  1. every selected key needs a non-empty reason;
//  2. every key with reason "Other" needs a non-blank comment.
func Validate(lines []Line) Result {
	var res Result
	for _, l := range lines {
		reason := l.Detail.Reason
		if strings.TrimSpace(reason) == "" {
			res.MissingReason = append(res.MissingReason, l)
			continue
		}
		if reason == returns.ReasonOther && strings.TrimSpace(l.Detail.Comment) == "" {
			res.MissingComment = append(res.MissingComment, l)
		}
	}
	return res
}
