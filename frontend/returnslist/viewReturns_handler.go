// Package returnslist serves the returns listing, the per-return
// detail view and the shipping label download.
package returnslist

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	sessioncontext "turnify/frontend/shared/context"
	"turnify/frontend/shared/nav"
	"turnify/returns"
	"turnify/returns/flow"
	"turnify/returns/registry"
)

// ReturnsPageData feeds the listing view.
type ReturnsPageData struct {
	Nav     nav.TopNavData
	Query   string
	Status  string
	Records []returns.ReturnRecord
}

// ReturnDetailPageData feeds the detail view.
type ReturnDetailPageData struct {
	Nav    nav.TopNavData
	Record returns.ReturnRecord
}

// ReturnsPageQueryHandler renders the returns list with search and
// status filtering. Search matches RMA, PO or any line title or UPC.
func ReturnsPageQueryHandler(flows *flow.Store, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		flows.Get(session.ID).Navigate(flow.ViewReturnsList)

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		status := strings.TrimSpace(r.URL.Query().Get("status"))

		data := ReturnsPageData{
			Nav:     nav.BuildTopNavData(session),
			Query:   query,
			Status:  status,
			Records: FilterRecords(reg, query, status),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ReturnsPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render returns list", http.StatusInternalServerError)
		}
	}
}

// FilterRecords applies the list filters, newest first.
func FilterRecords(reg *registry.Registry, query, status string) []returns.ReturnRecord {
	needle := strings.ToLower(query)
	return reg.Query(func(rec returns.ReturnRecord) bool {
		if status != "" && string(rec.Status) != status {
			return false
		}
		if needle == "" {
			return true
		}
		if strings.Contains(strings.ToLower(rec.RMANumber), needle) ||
			strings.Contains(strings.ToLower(rec.PONumber), needle) {
			return true
		}
		for _, item := range rec.Items {
			if strings.Contains(strings.ToLower(item.Title), needle) ||
				strings.Contains(strings.ToLower(item.UPC), needle) {
				return true
			}
		}
		return false
	})
}

// ReturnDetailPageQueryHandler renders one return.
func ReturnDetailPageQueryHandler(flows *flow.Store, reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		rec, found := reg.ByID(id)
		if !found {
			http.NotFound(w, r)
			return
		}
		flows.Get(session.ID).NavigateToReturn(id)

		data := ReturnDetailPageData{Nav: nav.BuildTopNavData(session), Record: rec}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ReturnDetailPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render return", http.StatusInternalServerError)
		}
	}
}

// ReturnLabelQueryHandler streams the shipping label PDF. Labels exist
// only for returns that carry a tracking number.
func ReturnLabelQueryHandler(reg *registry.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		rec, found := reg.ByID(id)
		if !found {
			http.NotFound(w, r)
			return
		}
		if rec.TrackingNumber == "" {
			http.Error(w, "no shipping label for this return", http.StatusConflict)
			return
		}

		pdfBytes, err := renderReturnLabelPDF(rec, time.Now())
		if err != nil {
			http.Error(w, "failed to render label", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-label.pdf"`, rec.RMANumber))
		_, _ = w.Write(pdfBytes)
	}
}
