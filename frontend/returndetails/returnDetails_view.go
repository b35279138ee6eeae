package returndetails

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"turnify/frontend/shared/html"
	"turnify/frontend/shared/nav"
)

// ReturnDetailsPage renders the pre-submission review screen.
func ReturnDetailsPage(data ReturnDetailsPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>Review Return</h1>`)

		if data.HasOpenRA {
			b.WriteString(`<p class="warning">Open RA return: pricing is determined during manual review.</p>`)
		}

		b.WriteString(`<table><tr><th>UPC</th><th>Title</th><th>PO</th><th>Qty</th><th>Price</th><th>Line Total</th><th>Reason</th><th>Comment</th></tr>`)
		for _, l := range data.Lines {
			qty := l.Detail.Quantity
			if qty < 1 {
				qty = 1
			}
			b.WriteString(`<tr><td>` + templ.EscapeString(l.Item.UPC) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(l.Item.Title) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(l.Item.EffectivePONumber()) + `</td>`)
			b.WriteString(fmt.Sprintf(`<td>%d</td>`, qty))
			b.WriteString(`<td>` + html.Money(l.Item.Price) + `</td>`)
			b.WriteString(`<td>` + html.Money(l.Item.Price*float64(qty)) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(l.Detail.Reason) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(l.Detail.Comment) + `</td></tr>`)
		}
		b.WriteString(`</table>`)
		b.WriteString(`<p><strong>Total: ` + html.Money(data.Total) + `</strong></p>`)

		b.WriteString(`<form method="POST" action="/portal/return/submit"><button type="submit">Submit Return</button></form>`)
		b.WriteString(`<p><a href="/portal/orders">Back to item selection</a></p>`)
		b.WriteString(`</main>`)
		b.WriteString(html.CSRFFormScript())
		_, err := io.WriteString(w, html.RenderLayout("Review Return - Turnify", b.String()))
		return err
	})
}
