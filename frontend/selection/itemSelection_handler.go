// Package selection serves the item-selection page and its commands.
package selection

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sessioncontext "turnify/frontend/shared/context"
	"turnify/frontend/shared/nav"
	"turnify/infrastructure/catalog"
	"turnify/infrastructure/sqlite"
	"turnify/returns"
	"turnify/returns/flow"
	selstate "turnify/returns/selection"
)

// ItemSelectionPageQueryHandler renders the order catalog with the
// current selection state. Groups named in the expand parameter, and
// groups holding selected or errored lines, render expanded.
func ItemSelectionPageQueryHandler(db *sqlite.DB, flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		fs := flows.Get(session.ID)
		fs.Navigate(flow.ViewItemSelection)

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		orders, err := catalog.Search(r.Context(), db, query)
		if err != nil {
			http.Error(w, "failed to load orders", http.StatusInternalServerError)
			return
		}

		tracker := fs.Selection()
		expanded := splitCSV(r.URL.Query().Get("expand"))
		erroredKeys := make(map[string]struct{})
		for _, k := range splitCSV(r.URL.Query().Get("errk")) {
			erroredKeys[k] = struct{}{}
		}

		data := ItemSelectionPageData{
			Nav:           nav.BuildTopNavData(session),
			Query:         query,
			Groups:        buildGroups(orders, tracker, expanded, erroredKeys),
			SelectedCount: tracker.Len(),
			Warning:       r.URL.Query().Get("warning"),
			ErrorMessage:  r.URL.Query().Get("error"),
			Reasons:       returns.SelectionReasons,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ItemSelectionPage(data).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render selection page", http.StatusInternalServerError)
		}
	}
}

func buildGroups(orders []catalog.Order, tracker *selstate.Tracker, expanded []string, erroredKeys map[string]struct{}) []OrderGroup {
	expandSet := make(map[string]struct{}, len(expanded))
	for _, po := range expanded {
		expandSet[po] = struct{}{}
	}

	groups := make([]OrderGroup, 0, len(orders))
	for _, order := range orders {
		group := OrderGroup{Order: order, AllSelected: len(order.Items) > 0}
		_, group.Expanded = expandSet[order.PONumber]
		for i, item := range order.Items {
			key := selstate.Key(item.UPC, order.PONumber, i)
			detail, selected := tracker.Detail(key)
			_, errored := erroredKeys[key]
			if !selected {
				group.AllSelected = false
			}
			if selected || errored {
				group.Expanded = true
			}
			group.Lines = append(group.Lines, LineView{
				Item:     item,
				Index:    i,
				Key:      key,
				Selected: selected,
				Detail:   detail,
				Errored:  errored,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// SelectItemCommandHandler adds one catalog occurrence.
func SelectItemCommandHandler(db *sqlite.DB, flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectBack(w, r, url.Values{"error": {"invalid form data"}})
			return
		}

		poNumber := strings.TrimSpace(r.FormValue("po"))
		upc := strings.TrimSpace(r.FormValue("upc"))
		index, _ := strconv.Atoi(r.FormValue("index"))
		order, found, err := catalog.FindByPO(r.Context(), db, poNumber)
		if err != nil || !found {
			redirectBack(w, r, url.Values{"error": {"order not found"}})
			return
		}
		if index < 0 || index >= len(order.Items) || order.Items[index].UPC != upc {
			redirectBack(w, r, url.Values{"error": {"item not found on order"}})
			return
		}

		flows.Get(session.ID).Selection().Select(order.Items[index], poNumber, index)
		redirectBack(w, r, nil)
	}
}

// DeselectItemCommandHandler removes every occurrence of (upc, po).
func DeselectItemCommandHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectBack(w, r, url.Values{"error": {"invalid form data"}})
			return
		}
		flows.Get(session.ID).Selection().Deselect(
			strings.TrimSpace(r.FormValue("upc")),
			strings.TrimSpace(r.FormValue("po")),
		)
		redirectBack(w, r, nil)
	}
}

// SelectAllCommandHandler selects every line of one order.
func SelectAllCommandHandler(db *sqlite.DB, flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectBack(w, r, url.Values{"error": {"invalid form data"}})
			return
		}

		poNumber := strings.TrimSpace(r.FormValue("po"))
		order, found, err := catalog.FindByPO(r.Context(), db, poNumber)
		if err != nil || !found {
			redirectBack(w, r, url.Values{"error": {"order not found"}})
			return
		}
		flows.Get(session.ID).Selection().SelectAllForOrder(poNumber, order.Items)
		redirectBack(w, r, nil)
	}
}

// ClearOrderCommandHandler drops every selection of one order.
func ClearOrderCommandHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectBack(w, r, url.Values{"error": {"invalid form data"}})
			return
		}
		flows.Get(session.ID).Selection().RemoveOrder(strings.TrimSpace(r.FormValue("po")))
		redirectBack(w, r, nil)
	}
}

// UpdateLineCommandHandler stores quantity, reason and comment for one
// selected key. A capped quantity redirects back with a warning.
func UpdateLineCommandHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectBack(w, r, url.Values{"error": {"invalid form data"}})
			return
		}

		key := r.FormValue("key")
		tracker := flows.Get(session.ID).Selection()
		if _, selected := tracker.Detail(key); !selected {
			redirectBack(w, r, url.Values{"error": {"item is not selected"}})
			return
		}

		extra := url.Values{}
		if raw := strings.TrimSpace(r.FormValue("quantity")); raw != "" {
			qty, err := strconv.Atoi(raw)
			if err != nil {
				redirectBack(w, r, url.Values{"error": {"quantity must be a number"}})
				return
			}
			if _, warning := tracker.SetQuantity(key, qty); warning != "" {
				extra.Set("warning", warning)
			}
		}
		tracker.SetReason(key, strings.TrimSpace(r.FormValue("reason")))
		tracker.SetComment(key, strings.TrimSpace(r.FormValue("comment")))
		redirectBack(w, r, extra)
	}
}

// ContinueCommandHandler validates the selection and advances to the
// review screen. On violations it redirects back with every errored
// key and expands the groups that hold them.
func ContinueCommandHandler(flows *flow.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessioncontext.GetSessionFromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		fs := flows.Get(session.ID)
		lines := fs.Selection().Snapshot()
		if len(lines) == 0 {
			redirectBack(w, r, url.Values{"error": {"select at least one item to continue"}})
			return
		}

		result := selstate.Validate(lines)
		if !result.OK() {
			keys := make([]string, 0, len(result.ErrorKeys()))
			for _, l := range append(result.MissingReason, result.MissingComment...) {
				keys = append(keys, l.Key)
			}
			redirectBack(w, r, url.Values{
				"error":  {"complete the highlighted items before continuing"},
				"errk":   {strings.Join(keys, ",")},
				"expand": {strings.Join(result.ErroredOrders(), ",")},
			})
			return
		}

		fs.Navigate(flow.ViewReturnDetails)
		http.Redirect(w, r, "/portal/return/details", http.StatusSeeOther)
	}
}

// redirectBack returns to the selection page keeping the search query
// and expansion state submitted with the command.
func redirectBack(w http.ResponseWriter, r *http.Request, extra url.Values) {
	q := url.Values{}
	if v := strings.TrimSpace(r.FormValue("q")); v != "" {
		q.Set("q", v)
	}
	if v := strings.TrimSpace(r.FormValue("expand")); v != "" {
		q.Set("expand", v)
	}
	for k, vs := range extra {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	target := "/portal/orders"
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
