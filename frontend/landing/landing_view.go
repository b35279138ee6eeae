package landing

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"turnify/frontend/shared/html"
	"turnify/frontend/shared/nav"
)

// LandingPage renders the dashboard.
func LandingPage(data LandingPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>Returns Dashboard</h1>`)

		b.WriteString(`<div class="cards">`)
		writeCard(&b, "Total Returns", fmt.Sprintf("%d", data.Summary.Total))
		writeCard(&b, "Pending", fmt.Sprintf("%d", data.Summary.Pending))
		writeCard(&b, "Approved", fmt.Sprintf("%d", data.Summary.Approved))
		writeCard(&b, "Shipped", fmt.Sprintf("%d", data.Summary.Shipped))
		writeCard(&b, "Total Value", html.Money(data.Summary.TotalValue))
		writeCard(&b, "Avg Processing", "2.3 days")
		b.WriteString(`</div>`)

		b.WriteString(`<p><a href="/portal/orders"><button>Start a Return</button></a> `)
		b.WriteString(`<a href="/portal/open-ra"><button class="secondary">Open RA Return</button></a> `)
		b.WriteString(`<a href="/portal/returns"><button class="secondary">View Returns</button></a></p>`)

		b.WriteString(`<h2>Recent Returns</h2>`)
		if len(data.Recent) == 0 {
			b.WriteString(`<p class="muted">No returns yet.</p>`)
		} else {
			b.WriteString(`<table><tr><th>RMA</th><th>PO</th><th>Status</th><th>Created</th><th>Value</th></tr>`)
			for _, rec := range data.Recent {
				b.WriteString(`<tr><td><a href="/portal/returns/` + fmt.Sprintf("%d", rec.ID) + `">` + templ.EscapeString(rec.RMANumber) + `</a></td>`)
				b.WriteString(`<td>` + templ.EscapeString(rec.PONumber) + `</td>`)
				b.WriteString(`<td>` + html.StatusBadge(string(rec.Status)) + `</td>`)
				b.WriteString(`<td>` + html.Date(rec.CreatedAt) + `</td>`)
				b.WriteString(`<td>` + html.Money(rec.TotalValue) + `</td></tr>`)
			}
			b.WriteString(`</table>`)
		}

		b.WriteString(`</main>`)
		b.WriteString(html.CSRFFormScript())
		_, err := io.WriteString(w, html.RenderLayout("Dashboard - Turnify", b.String()))
		return err
	})
}

func writeCard(b *strings.Builder, label, value string) {
	b.WriteString(`<div class="card"><div class="value">` + templ.EscapeString(value) + `</div><div class="muted">` + templ.EscapeString(label) + `</div></div>`)
}
