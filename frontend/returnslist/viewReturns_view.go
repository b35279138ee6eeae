package returnslist

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"turnify/frontend/shared/html"
	"turnify/frontend/shared/nav"
	"turnify/returns"
)

var statusFilters = []string{
	string(returns.StatusApproved),
	string(returns.StatusPending),
	string(returns.StatusRejected),
	string(returns.StatusShipped),
}

// ReturnsPage renders the returns list with filters.
func ReturnsPage(data ReturnsPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>View Returns</h1>`)

		b.WriteString(`<form method="GET" action="/portal/returns">`)
		b.WriteString(`<input type="text" name="q" placeholder="Search RMA, PO, UPC or title" value="` + templ.EscapeString(data.Query) + `">`)
		b.WriteString(`<select name="status"><option value="">All statuses</option>`)
		for _, status := range statusFilters {
			sel := ""
			if status == data.Status {
				sel = ` selected`
			}
			b.WriteString(`<option value="` + status + `"` + sel + `>` + status + `</option>`)
		}
		b.WriteString(`</select><button type="submit" class="secondary">Filter</button></form>`)

		if len(data.Records) == 0 {
			b.WriteString(`<p class="muted">No returns match the current filters.</p>`)
		} else {
			b.WriteString(`<table><tr><th>RMA</th><th>PO</th><th>Status</th><th>Created</th><th>Value</th><th>Tracking</th><th></th></tr>`)
			for _, rec := range data.Records {
				b.WriteString(`<tr><td>` + templ.EscapeString(rec.RMANumber) + `</td>`)
				b.WriteString(`<td>` + templ.EscapeString(rec.PONumber) + `</td>`)
				b.WriteString(`<td>` + html.StatusBadge(string(rec.Status)) + `</td>`)
				b.WriteString(`<td>` + html.Date(rec.CreatedAt) + `</td>`)
				b.WriteString(`<td>` + html.Money(rec.TotalValue) + `</td>`)
				b.WriteString(`<td>` + templ.EscapeString(rec.TrackingNumber) + `</td>`)
				b.WriteString(fmt.Sprintf(`<td><a href="/portal/returns/%d">View</a>`, rec.ID))
				if rec.TrackingNumber != "" {
					b.WriteString(fmt.Sprintf(` <a href="/portal/returns/%d/label">Label</a>`, rec.ID))
				}
				b.WriteString(`</td></tr>`)
			}
			b.WriteString(`</table>`)
		}

		b.WriteString(`</main>`)
		_, err := io.WriteString(w, html.RenderLayout("Returns - Turnify", b.String()))
		return err
	})
}

// ReturnDetailPage renders one return record.
func ReturnDetailPage(data ReturnDetailPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rec := data.Record
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>Return ` + templ.EscapeString(rec.RMANumber) + `</h1>`)

		b.WriteString(`<table>`)
		b.WriteString(`<tr><th>PO Number</th><td>` + templ.EscapeString(rec.PONumber) + `</td></tr>`)
		b.WriteString(`<tr><th>Status</th><td>` + html.StatusBadge(string(rec.Status)) + `</td></tr>`)
		b.WriteString(`<tr><th>Created</th><td>` + html.Date(rec.CreatedAt) + `</td></tr>`)
		b.WriteString(`<tr><th>Total Value</th><td>` + html.Money(rec.TotalValue) + `</td></tr>`)
		if rec.Approver != "" {
			b.WriteString(`<tr><th>Approver</th><td>` + templ.EscapeString(rec.Approver) + `</td></tr>`)
		}
		if rec.TrackingNumber != "" {
			b.WriteString(`<tr><th>Tracking</th><td>` + templ.EscapeString(rec.TrackingNumber) + `</td></tr>`)
		}
		if rec.Rationale != "" {
			b.WriteString(`<tr><th>Decision Notes</th><td>` + templ.EscapeString(rec.Rationale) + `</td></tr>`)
		}
		b.WriteString(`</table>`)

		b.WriteString(`<h2>Items</h2><table><tr><th>UPC</th><th>Title</th><th>Qty</th><th>Reason</th><th>Comment</th></tr>`)
		for _, item := range rec.Items {
			b.WriteString(`<tr><td>` + templ.EscapeString(item.UPC) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(item.Title) + `</td>`)
			b.WriteString(fmt.Sprintf(`<td>%d</td>`, item.Qty))
			b.WriteString(`<td>` + templ.EscapeString(item.Reason) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(item.Comment) + `</td></tr>`)
		}
		b.WriteString(`</table>`)

		if rec.TrackingNumber != "" {
			b.WriteString(fmt.Sprintf(`<p><a href="/portal/returns/%d/label"><button>Download Shipping Label</button></a></p>`, rec.ID))
		}
		b.WriteString(`<p><a href="/portal/returns">Back to returns</a></p>`)
		b.WriteString(`</main>`)
		_, err := io.WriteString(w, html.RenderLayout(rec.RMANumber+" - Turnify", b.String()))
		return err
	})
}
