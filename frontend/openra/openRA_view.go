package openra

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"turnify/frontend/shared/html"
	"turnify/frontend/shared/nav"
)

// OpenRAPage renders the Open RA form.
func OpenRAPage(data OpenRAPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>Return Without Original Order</h1>`)
		b.WriteString(`<p class="muted">Create an Open RA for items without a specific order reference</p>`)

		b.WriteString(`<h2>When to use Open RA</h2><ul>`)
		b.WriteString(`<li>Items received without a purchase order</li>`)
		b.WriteString(`<li>Long-tail returns from old orders</li>`)
		b.WriteString(`<li>Items with missing or incorrect order references</li>`)
		b.WriteString(`<li>Special circumstances requiring manual processing</li></ul>`)

		if data.ErrorMessage != "" {
			b.WriteString(`<p class="error">` + templ.EscapeString(data.ErrorMessage) + `</p>`)
		}

		b.WriteString(`<form method="POST" action="/portal/open-ra">`)
		b.WriteString(`<label>Product Identifier Type <select name="identifier_type">`)
		for _, t := range data.IdentifierTypes {
			b.WriteString(`<option value="` + templ.EscapeString(t) + `">` + templ.EscapeString(identifierLabel(t)) + `</option>`)
		}
		b.WriteString(`</select></label>`)
		b.WriteString(`<label>Product ID <input type="text" name="product_id" required></label>`)
		b.WriteString(`<label>Quantity <input type="number" name="quantity" min="1" value="1"></label>`)
		b.WriteString(`<label>Return Reason <select name="reason" required><option value="">Select a reason</option>`)
		for _, reason := range data.Reasons {
			b.WriteString(`<option value="` + templ.EscapeString(reason) + `">` + templ.EscapeString(reason) + `</option>`)
		}
		b.WriteString(`</select></label>`)
		b.WriteString(`<label>Comments <input type="text" name="comment" placeholder="Required when reason is Other"></label>`)
		b.WriteString(`<button type="submit">Continue</button> `)
		b.WriteString(`<a href="/portal"><button type="button" class="secondary">Back to Dashboard</button></a>`)
		b.WriteString(`</form></main>`)
		b.WriteString(html.CSRFFormScript())
		_, err := io.WriteString(w, html.RenderLayout("Open RA - Turnify", b.String()))
		return err
	})
}

func identifierLabel(t string) string {
	if t == "custom" {
		return "Custom ID (SKU, etc.)"
	}
	return strings.ToUpper(t)
}
