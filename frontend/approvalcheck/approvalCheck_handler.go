// Package approvalcheck serves the approval-check progress screen and
// the decision result.
package approvalcheck

import (
	"net/http"

	sessioncontext "turnify/frontend/shared/context"
	"turnify/frontend/shared/nav"
	"turnify/returns"
	"turnify/returns/flow"
)

// CheckingPageData feeds the progress view.
type CheckingPageData struct {
	Nav nav.TopNavData
}

// ResultPageData feeds the decision view.
type ResultPageData struct {
	Nav    nav.TopNavData
	Record returns.ReturnRecord
}

// CheckingPageQueryHandler renders the analysis screen while the
// deferred decision is pending; the page refreshes itself until the
// decision settles, then redirects to the result.
func CheckingPageQueryHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		fs := flows.Get(session.ID)

		if fs.Checking() {
			data := CheckingPageData{Nav: nav.BuildTopNavData(session)}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := CheckingPage(data).Render(r.Context(), w); err != nil {
				http.Error(w, "failed to render approval check", http.StatusInternalServerError)
			}
			return
		}

		if _, decided := fs.Decision(); decided {
			http.Redirect(w, r, "/portal/return/result", http.StatusSeeOther)
			return
		}
		// No check running and nothing decided: the flow was abandoned.
		http.Redirect(w, r, "/portal/orders", http.StatusSeeOther)
	}
}

// ResultPageQueryHandler renders the settled decision.
func ResultPageQueryHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		fs := flows.Get(session.ID)
		rec, decided := fs.Decision()
		if !decided {
			http.Redirect(w, r, "/portal/return/checking", http.StatusSeeOther)
			return
		}
		if rec.ApprovalNeeded {
			fs.Navigate(flow.ViewApprovalPending)
		} else {
			fs.Navigate(flow.ViewConfirmation)
		}

		data := ResultPageData{Nav: nav.BuildTopNavData(session), Record: rec}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ResultPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render decision", http.StatusInternalServerError)
		}
	}
}
