// Package returndetails renders the review screen for an in-flight
// return and submits it for the approval check.
package returndetails

import (
	"context"
	"net/http"
	"time"

	sessioncontext "turnify/frontend/shared/context"
	"turnify/frontend/shared/nav"
	"turnify/infrastructure/audit"
	"turnify/infrastructure/sqlite"
	"turnify/returns"
	"turnify/returns/approval"
	"turnify/returns/flow"
	"turnify/returns/registry"
	selstate "turnify/returns/selection"
)

// ReturnDetailsPageData feeds the review view.
type ReturnDetailsPageData struct {
	Nav       nav.TopNavData
	Lines     []selstate.Line
	Total     float64
	HasOpenRA bool
}

// ReturnDetailsPageQueryHandler renders the review screen. An empty
// selection sends the user back to item selection.
func ReturnDetailsPageQueryHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		fs := flows.Get(session.ID)
		lines := fs.Selection().Snapshot()
		if len(lines) == 0 {
			http.Redirect(w, r, "/portal/orders", http.StatusSeeOther)
			return
		}
		fs.Navigate(flow.ViewReturnDetails)

		data := ReturnDetailsPageData{
			Nav:       nav.BuildTopNavData(session),
			Lines:     lines,
			Total:     selectionTotal(lines),
			HasOpenRA: fs.Selection().HasOpenRA(),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ReturnDetailsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render return details", http.StatusInternalServerError)
		}
	}
}

// SubmitReturnCommandHandler starts the deferred approval check and
// sends the user to the progress screen. The decision is written to
// the audit log when it fires.
func SubmitReturnCommandHandler(flows *flow.Store, eng *approval.Engine, reg *registry.Registry, db *sqlite.DB, auditSvc *audit.Service, delay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		fs := flows.Get(session.ID)
		if fs.Selection().Len() == 0 {
			http.Redirect(w, r, "/portal/orders", http.StatusSeeOther)
			return
		}

		userID := session.UserID
		fs.StartApprovalCheck(eng, reg, delay, func(rec returns.ReturnRecord) {
			// The request is gone when the timer fires.
			_ = auditSvc.Record(context.Background(), db, userID, "RETURN_DECIDED", "return", rec.RMANumber, nil, rec)
		})
		http.Redirect(w, r, "/portal/return/checking", http.StatusSeeOther)
	}
}

func selectionTotal(lines []selstate.Line) float64 {
	total := 0.0
	for _, l := range lines {
		qty := l.Detail.Quantity
		if qty < 1 {
			qty = 1
		}
		total += l.Item.Price * float64(qty)
	}
	return total
}
