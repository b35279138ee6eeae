package admin

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"turnify/returns"
	"turnify/returns/registry"
)

// ExportReturnsQueryHandler streams the full registry as CSV.
func ExportReturnsQueryHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="returns.csv"`)

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"rma_number", "po_number", "status", "created", "total_value", "approval_needed", "approver", "tracking_number", "items"})
		for _, rec := range reg.All() {
			_ = cw.Write([]string{
				rec.RMANumber,
				rec.PONumber,
				string(rec.Status),
				rec.CreatedAt.Format("2006-01-02"),
				fmt.Sprintf("%.2f", rec.TotalValue),
				fmt.Sprintf("%t", rec.ApprovalNeeded),
				rec.Approver,
				rec.TrackingNumber,
				fmt.Sprintf("%d", countItems(rec)),
			})
		}
		cw.Flush()
	}
}

func countItems(rec returns.ReturnRecord) int {
	total := 0
	for _, line := range rec.Items {
		total += line.Qty
	}
	return total
}
