// Package admin serves the CSR dashboard: pending approvals, registry
// analytics and the returns export.
package admin

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	sessioncontext "turnify/frontend/shared/context"
	"turnify/frontend/shared/nav"
	"turnify/infrastructure/audit"
	"turnify/infrastructure/sqlite"
	"turnify/returns"
	"turnify/returns/flow"
	"turnify/returns/registry"
)

// AdminPageData feeds the dashboard view.
type AdminPageData struct {
	Nav          nav.TopNavData
	Summary      registry.Summary
	Pending      []returns.ReturnRecord
	Approved     []returns.ReturnRecord
	ErrorMessage string
	Notice       string
}

// AdminPageQueryHandler renders the admin dashboard.
func AdminPageQueryHandler(flows *flow.Store, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		flows.Get(session.ID).Navigate(flow.ViewAdminDashboard)

		data := AdminPageData{
			Nav:          nav.BuildTopNavData(session),
			Summary:      reg.Summarize(),
			Pending:      reg.Query(func(rec returns.ReturnRecord) bool { return rec.Status == returns.StatusPending }),
			Approved:     reg.Query(func(rec returns.ReturnRecord) bool { return rec.Status == returns.StatusApproved }),
			ErrorMessage: r.URL.Query().Get("error"),
			Notice:       r.URL.Query().Get("notice"),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := AdminPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render admin dashboard", http.StatusInternalServerError)
		}
	}
}

// ApproveReturnCommandHandler moves a pending return to approved.
func ApproveReturnCommandHandler(reg *registry.Registry, db *sqlite.DB, auditSvc *audit.Service) http.HandlerFunc {
	return decideHandler(reg, db, auditSvc, returns.StatusApproved, "RETURN_APPROVED", "return approved")
}

// RejectReturnCommandHandler moves a pending return to rejected.
func RejectReturnCommandHandler(reg *registry.Registry, db *sqlite.DB, auditSvc *audit.Service) http.HandlerFunc {
	return decideHandler(reg, db, auditSvc, returns.StatusRejected, "RETURN_REJECTED", "return rejected")
}

// ShipReturnCommandHandler moves an approved return to shipped.
func ShipReturnCommandHandler(reg *registry.Registry, db *sqlite.DB, auditSvc *audit.Service) http.HandlerFunc {
	return decideHandler(reg, db, auditSvc, returns.StatusShipped, "RETURN_SHIPPED", "return marked shipped")
}

func decideHandler(reg *registry.Registry, db *sqlite.DB, auditSvc *audit.Service, target returns.Status, action, notice string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			redirectAdmin(w, r, url.Values{"error": {"invalid return id"}})
			return
		}

		before, found := reg.ByID(id)
		if !found {
			redirectAdmin(w, r, url.Values{"error": {"return not found"}})
			return
		}

		approver := ""
		if target == returns.StatusApproved || target == returns.StatusRejected {
			approver = session.User.Username + " (CSR)"
		}
		after, err := reg.UpdateStatus(id, target, approver)
		if err != nil {
			redirectAdmin(w, r, url.Values{"error": {err.Error()}})
			return
		}

		_ = auditSvc.Record(r.Context(), db, session.UserID, action, "return", after.RMANumber, before, after)
		redirectAdmin(w, r, url.Values{"notice": {notice + " " + after.RMANumber}})
	}
}

func redirectAdmin(w http.ResponseWriter, r *http.Request, q url.Values) {
	target := "/portal/admin"
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
