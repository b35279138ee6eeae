package approvalcheck

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

// CheckingPage renders the analysis screen. It reloads itself until
// the deferred decision settles.
func CheckingPage(data CheckingPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<meta http-equiv="refresh" content="1">`)
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>Return Approval Check</h1>`)
		b.WriteString(`<p class="muted">Turnify is analyzing your return request</p>`)
		b.WriteString(`<div class="spinner"></div>`)
		b.WriteString(`<h2>Analyzing Return Request</h2>`)
		b.WriteString(`<ul class="muted">`)
		b.WriteString(`<li>Checking return eligibility</li>`)
		b.WriteString(`<li>Validating product information</li>`)
		b.WriteString(`<li>Reviewing customer history</li>`)
		b.WriteString(`<li>Applying custom approval logic</li>`)
		b.WriteString(`</ul>`)
		b.WriteString(`<p><a href="/portal/return/details">Back to Return Details</a></p>`)
		b.WriteString(`</main>`)
		_, err := io.WriteString(w, html.RenderLayout("Approval Check - Turnify", b.String()))
		return err
	})
}

// ResultPage renders the settled decision with next steps.
func ResultPage(data ResultPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rec := data.Record
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main>`)

		if rec.ApprovalNeeded {
			b.WriteString(`<h1>Manual Review Required</h1>`)
			b.WriteString(`<p>Your return requires manual review by our team</p>`)
		} else {
			b.WriteString(`<h1>Return Approved</h1>`)
			b.WriteString(`<p>Your return has been approved and is being processed</p>`)
		}

		b.WriteString(`<h2>Recommendation</h2>`)
		b.WriteString(`<p>` + templ.EscapeString(rec.Rationale) + `</p>`)

		b.WriteString(`<table>`)
		b.WriteString(`<tr><th>RMA Number</th><td>` + templ.EscapeString(rec.RMANumber) + `</td></tr>`)
		b.WriteString(`<tr><th>PO Number</th><td>` + templ.EscapeString(rec.PONumber) + `</td></tr>`)
		b.WriteString(`<tr><th>Status</th><td>` + html.StatusBadge(string(rec.Status)) + `</td></tr>`)
		b.WriteString(`<tr><th>Total Value</th><td>` + html.Money(rec.TotalValue) + `</td></tr>`)
		if rec.TrackingNumber != "" {
			b.WriteString(`<tr><th>Tracking Number</th><td>` + templ.EscapeString(rec.TrackingNumber) + `</td></tr>`)
		}
		b.WriteString(`</table>`)

		if rec.PONumber == returns.OpenRAPONumber {
			b.WriteString(`<h2>Open RA Processing</h2><ul>`)
			b.WriteString(`<li>Manual verification of product details required</li>`)
			b.WriteString(`<li>Price validation needed</li>`)
			b.WriteString(`<li>Expected processing time: 24-48 hours</li>`)
			b.WriteString(`<li>You will receive an email with next steps</li></ul>`)
		}

		b.WriteString(`<h2>Next Steps</h2><ul>`)
		if rec.ApprovalNeeded {
			b.WriteString(`<li>Our team will review your return within 24 hours</li>`)
			b.WriteString(`<li>You'll receive an email with the decision</li>`)
			b.WriteString(`<li>Contact support if you have questions</li>`)
		} else {
			b.WriteString(`<li>Shipping label will be emailed within 1 hour</li>`)
			b.WriteString(`<li>Package your items securely</li>`)
			b.WriteString(`<li>Drop off at any authorized carrier location</li>`)
			b.WriteString(`<li>Track your return in the portal</li>`)
		}
		b.WriteString(`</ul>`)

		b.WriteString(`<h2>Return Summary</h2><table><tr><th>Title</th><th>UPC</th><th>Qty</th><th>Reason</th></tr>`)
		for _, item := range rec.Items {
			b.WriteString(`<tr><td>` + templ.EscapeString(item.Title) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(item.UPC) + `</td>`)
			b.WriteString(fmt.Sprintf(`<td>%d</td>`, item.Qty))
			b.WriteString(`<td>` + templ.EscapeString(item.Reason) + `</td></tr>`)
		}
		b.WriteString(`</table>`)

		b.WriteString(`<p><a href="/portal"><button>Return to Dashboard</button></a> `)
		b.WriteString(`<a href="/portal/returns"><button class="secondary">View Returns</button></a></p>`)
		b.WriteString(`</main>`)
		_, err := io.WriteString(w, html.RenderLayout("Decision - Turnify", b.String()))
		return err
	})
}
