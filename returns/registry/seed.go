package registry

import (
	"fmt"
	"math"
	"time"

	"turnify/returns"
)

var seedReasons = []string{
	"Damaged during transit",
	"Wrong product received",
	"Quality issue",
	"Size mismatch",
	"Customer changed mind",
	"Defective product",
	"Wrong color received",
	"Package damaged",
}

var seedApprovers = []string{
	"John Smith (CSR)",
	"Sarah Johnson (CSR)",
	"Mike Brown (CSR)",
	"Auto-approved",
}

var seedStatuses = []returns.Status{
	returns.StatusApproved,
	returns.StatusPending,
	returns.StatusRejected,
	returns.StatusShipped,
}

// SampleReturns builds the deterministic demo data set: five curated
// records plus generated ones up to id 50. Values are derived from the
// record index so repeated runs produce identical data.
func SampleReturns() []returns.ReturnRecord {
	records := []returns.ReturnRecord{
		{
			ID: 1, RMANumber: "RMA-2024-001", PONumber: "PO-2024-001",
			Status: returns.StatusApproved, CreatedAt: seedDate(22),
			TotalValue: 562.50, ApprovalNeeded: true,
			Approver: "John Smith (CSR)", TrackingNumber: "1Z999AA1234567890",
			Items: []returns.ReturnLine{{UPC: "00012345678901", Title: "Premium Running Shoes", Qty: 5, Reason: "Damaged during transit"}},
		},
		{
			ID: 2, RMANumber: "RMA-2024-002", PONumber: "PO-2024-002",
			Status: returns.StatusPending, CreatedAt: seedDate(23),
			TotalValue: 190.00, ApprovalNeeded: true,
			Items: []returns.ReturnLine{{UPC: "00012345678905", Title: "Shoe Care Kit", Qty: 2, Reason: "Wrong product received"}},
		},
		{
			ID: 3, RMANumber: "RMA-2024-003", PONumber: "PO-2024-003",
			Status: returns.StatusApproved, CreatedAt: seedDate(24),
			TotalValue: 699.90, ApprovalNeeded: false,
			Approver: "Auto-approved", TrackingNumber: "1Z999AA2345678901",
			Items: []returns.ReturnLine{{UPC: "00012345678906", Title: "Basketball Shoes", Qty: 7, Reason: "Quality issue"}},
		},
		{
			ID: 4, RMANumber: "RMA-2024-004", PONumber: "PO-2024-004",
			Status: returns.StatusRejected, CreatedAt: seedDate(25),
			TotalValue: 149.99, ApprovalNeeded: true,
			Approver: "Sarah Johnson (CSR)",
			Items: []returns.ReturnLine{{UPC: "00012345678908", Title: "Hiking Boots", Qty: 1, Reason: "Customer changed mind"}},
		},
		{
			ID: 5, RMANumber: "RMA-2024-005", PONumber: "PO-2024-005",
			Status: returns.StatusShipped, CreatedAt: seedDate(26),
			TotalValue: 399.95, ApprovalNeeded: false,
			Approver: "Auto-approved", TrackingNumber: "1Z999AA3456789012",
			Items: []returns.ReturnLine{{UPC: "00012345678910", Title: "Slip-on Shoes", Qty: 8, Reason: "Size mismatch"}},
		},
	}

	for i := 6; i <= 50; i++ {
		status := seedStatuses[i%len(seedStatuses)]
		qty := 1 + i%10
		unitPrice := float64(50+i%50) + 49.99
		rec := returns.ReturnRecord{
			ID:             int64(i),
			RMANumber:      fmt.Sprintf("RMA-2024-%03d", i),
			PONumber:       fmt.Sprintf("PO-2024-%03d", i),
			Status:         status,
			CreatedAt:      seedDate(22 + i),
			TotalValue:     roundCents(float64(qty) * unitPrice),
			ApprovalNeeded: status == returns.StatusPending,
			Items: []returns.ReturnLine{{
				UPC:    fmt.Sprintf("000123456789%02d", i),
				Title:  fmt.Sprintf("Running Shoes Model %d", i),
				Qty:    qty,
				Reason: seedReasons[i%len(seedReasons)],
			}},
		}
		if status != returns.StatusPending {
			rec.Approver = seedApprovers[i%len(seedApprovers)]
		}
		if status == returns.StatusShipped {
			rec.TrackingNumber = fmt.Sprintf("1Z999AA%06d", 100000+i)
		}
		records = append(records, rec)
	}
	return records
}

// NewSeeded returns a registry pre-loaded with the demo data set,
// newest record first.
func NewSeeded() *Registry {
	g := New()
	for _, rec := range SampleReturns() {
		g.Append(rec)
	}
	return g
}

func seedDate(day int) time.Time {
	// Day overflow normalizes into the following months.
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
