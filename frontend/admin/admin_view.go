package admin

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

// AdminPage renders the CSR dashboard.
func AdminPage(data AdminPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>Admin Dashboard</h1>`)
		b.WriteString(`<p class="muted">Manage return approvals and view analytics</p>`)

		if data.ErrorMessage != "" {
			b.WriteString(`<p class="error">` + templ.EscapeString(data.ErrorMessage) + `</p>`)
		}
		if data.Notice != "" {
			b.WriteString(`<p>` + templ.EscapeString(data.Notice) + `</p>`)
		}

		b.WriteString(`<div class="cards">`)
		writeCard(&b, "Total", fmt.Sprintf("%d", data.Summary.Total))
		writeCard(&b, "Pending", fmt.Sprintf("%d", data.Summary.Pending))
		writeCard(&b, "Approved", fmt.Sprintf("%d", data.Summary.Approved))
		writeCard(&b, "Rejected", fmt.Sprintf("%d", data.Summary.Rejected))
		writeCard(&b, "Shipped", fmt.Sprintf("%d", data.Summary.Shipped))
		writeCard(&b, "Total Value", html.Money(data.Summary.TotalValue))
		b.WriteString(`</div>`)

		b.WriteString(fmt.Sprintf(`<h2>Pending Approvals (%d)</h2>`, len(data.Pending)))
		writeQueue(&b, data.Pending, true)

		b.WriteString(fmt.Sprintf(`<h2>Awaiting Shipment (%d)</h2>`, len(data.Approved)))
		writeQueue(&b, data.Approved, false)

		b.WriteString(`<p><a href="/portal/admin/returns/export.csv"><button class="secondary">Export Returns CSV</button></a> `)
		b.WriteString(`<a href="/portal/admin/users"><button class="secondary">Manage Users</button></a></p>`)
		b.WriteString(`</main>`)
		b.WriteString(html.CSRFFormScript())
		_, err := io.WriteString(w, html.RenderLayout("Admin - Turnify", b.String()))
		return err
	})
}

func writeQueue(b *strings.Builder, records []returns.ReturnRecord, pending bool) {
	if len(records) == 0 {
		b.WriteString(`<p class="muted">Nothing in the queue.</p>`)
		return
	}
	b.WriteString(`<table><tr><th>RMA</th><th>PO</th><th>Created</th><th>Value</th><th>Items</th><th>Actions</th></tr>`)
	for _, rec := range records {
		b.WriteString(`<tr><td><a href="/portal/returns/` + fmt.Sprintf("%d", rec.ID) + `">` + templ.EscapeString(rec.RMANumber) + `</a></td>`)
		b.WriteString(`<td>` + templ.EscapeString(rec.PONumber) + `</td>`)
		b.WriteString(`<td>` + html.Date(rec.CreatedAt) + `</td>`)
		b.WriteString(`<td>` + html.Money(rec.TotalValue) + `</td>`)
		b.WriteString(fmt.Sprintf(`<td>%d</td><td>`, len(rec.Items)))
		if pending {
			b.WriteString(actionForm(rec.ID, "approve", "Approve", ""))
			b.WriteString(actionForm(rec.ID, "reject", "Reject", "danger"))
		} else {
			b.WriteString(actionForm(rec.ID, "ship", "Mark Shipped", ""))
		}
		b.WriteString(`</td></tr>`)
	}
	b.WriteString(`</table>`)
}

func actionForm(id int64, action, label, buttonClass string) string {
	cls := ""
	if buttonClass != "" {
		cls = ` class="` + buttonClass + `"`
	}
	return fmt.Sprintf(`<form method="POST" action="/portal/admin/returns/%d/%s" class="inline"><button type="submit"%s>%s</button></form> `, id, action, cls, label)
}

func writeCard(b *strings.Builder, label, value string) {
	b.WriteString(`<div class="card"><div class="value">` + templ.EscapeString(value) + `</div><div class="muted">` + templ.EscapeString(label) + `</div></div>`)
}
