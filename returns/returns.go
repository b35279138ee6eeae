// Package returns holds the shared domain types of the B2B return
// portal: catalog line items, in-flight selections and persisted
// return records.
package returns

import "time"

// OpenRAPONumber is the PO sentinel for returns submitted without an
// original order reference.
const OpenRAPONumber = "OPEN-RA"

// ReasonOther requires an accompanying comment.
const ReasonOther = "Other"

// ReasonNotSpecified is the fallback reason on persisted return lines.
const ReasonNotSpecified = "Not specified"

// Status is the lifecycle state of a return record.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusShipped  Status = "shipped"
)

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusShipped:
		return true
	}
	return false
}

// SelectionReasons are offered on the item-selection screen.
var SelectionReasons = []string{
	"Quality Issue",
	"Wrong Size",
	"Damaged in Transit",
	"Customer Changed Mind",
	"Defective Product",
	"Wrong Color",
	"Not as Described",
	"Late Delivery",
	"Duplicate Order",
	ReasonOther,
}

// OpenRAReasons are offered on the Open RA form.
var OpenRAReasons = []string{
	"Defective/Damaged",
	"Wrong Item Received",
	"No Longer Needed",
	"Quality Issues",
	"Size/Fit Issues",
	"Customer Request",
	ReasonOther,
}

// CatalogItem is one orderable line of the external catalog. Read-only
// from the portal's point of view.
type CatalogItem struct {
	UPC             string
	Title           string
	Qty             int
	Price           float64
	AvailableReturn int
}

// SelectedItem is one line the partner intends to return. Created when
// an item is ticked or an Open RA form is submitted, discarded when
// deselected or when the flow resets.
type SelectedItem struct {
	UPC             string
	Title           string
	Qty             int
	Price           float64
	AvailableReturn int
	PONumber        string
	ReturnQty       int
	Reason          string
	IsOpenRA        bool
}

// EffectivePONumber resolves the PO used in selection keys and on the
// persisted record: the item's PO, or the Open RA sentinel.
func (i SelectedItem) EffectivePONumber() string {
	if i.PONumber != "" {
		return i.PONumber
	}
	if i.IsOpenRA {
		return OpenRAPONumber
	}
	return ""
}

// ReturnLine is one persisted line of a return record.
type ReturnLine struct {
	UPC     string
	Title   string
	Qty     int
	Reason  string
	Comment string
}

// ReturnRecord is one RMA. Append-only once registered; only status
// transitions performed by admin actions mutate it afterwards.
type ReturnRecord struct {
	ID             int64
	RMANumber      string
	PONumber       string
	Status         Status
	CreatedAt      time.Time
	TotalValue     float64
	Items          []ReturnLine
	ApprovalNeeded bool
	Approver       string
	TrackingNumber string
	Rationale      string
}
