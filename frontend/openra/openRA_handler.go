// Package openra serves the Open RA form for returns without an order
// reference.
package openra

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sessioncontext "turnify/frontend/shared/context"
	"turnify/frontend/shared/nav"
	"turnify/returns"
	"turnify/returns/flow"
)

// IdentifierTypes the form accepts for the product id.
var IdentifierTypes = []string{"upc", "custom"}

// OpenRAPageData feeds the form view.
type OpenRAPageData struct {
	Nav             nav.TopNavData
	ErrorMessage    string
	IdentifierTypes []string
	Reasons         []string
}

// OpenRAPageQueryHandler renders the Open RA form.
func OpenRAPageQueryHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		flows.Get(session.ID).Navigate(flow.ViewOpenRA)

		data := OpenRAPageData{
			Nav:             nav.BuildTopNavData(session),
			ErrorMessage:    r.URL.Query().Get("error"),
			IdentifierTypes: IdentifierTypes,
			Reasons:         returns.OpenRAReasons,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := OpenRAPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render open RA form", http.StatusInternalServerError)
		}
	}
}

// SubmitOpenRACommandHandler validates the form and replaces the whole
// selection with the single Open RA item.
func SubmitOpenRACommandHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, "invalid form data")
			return
		}

		productID := strings.TrimSpace(r.FormValue("product_id"))
		reason := strings.TrimSpace(r.FormValue("reason"))
		comment := strings.TrimSpace(r.FormValue("comment"))
		if productID == "" || reason == "" {
			redirectWithError(w, r, "please fill in all required fields")
			return
		}
		if reason == returns.ReasonOther && comment == "" {
			redirectWithError(w, r, `comments are required when return reason is "Other"`)
			return
		}

		quantity, err := strconv.Atoi(r.FormValue("quantity"))
		if err != nil || quantity < 1 {
			quantity = 1
		}

		fs := flows.Get(session.ID)
		fs.Selection().ReplaceWithOpenRA(returns.SelectedItem{
			UPC:             productID,
			Title:           "Open RA - " + productID,
			Qty:             quantity,
			Price:           0, // priced during manual review
			AvailableReturn: quantity,
			ReturnQty:       quantity,
			Reason:          reason,
		}, comment)
		fs.Navigate(flow.ViewReturnDetails)
		http.Redirect(w, r, "/portal/return/details", http.StatusSeeOther)
	}
}

func redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/portal/open-ra?error="+url.QueryEscape(message), http.StatusSeeOther)
}
