// Package landing renders the portal dashboard.
package landing

import (
	"net/http"

	sessioncontext "turnify/frontend/shared/context"
	"turnify/frontend/shared/nav"
	"turnify/returns"
	"turnify/returns/flow"
	"turnify/returns/registry"
)

const recentReturnsShown = 5

// LandingPageQueryHandler renders the dashboard with registry
// analytics and the most recent returns.
func LandingPageQueryHandler(flows *flow.Store, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		flows.Get(session.ID).Navigate(flow.ViewLanding)

		recent := reg.All()
		if len(recent) > recentReturnsShown {
			recent = recent[:recentReturnsShown]
		}

		data := LandingPageData{
			Nav:     nav.BuildTopNavData(session),
			Summary: reg.Summarize(),
			Recent:  recent,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := LandingPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		}
	}
}

// LandingPageData feeds the dashboard view.
type LandingPageData struct {
	Nav     nav.TopNavData
	Summary registry.Summary
	Recent  []returns.ReturnRecord
}
