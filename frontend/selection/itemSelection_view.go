package selection

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

// ItemSelectionPage renders the order catalog with selection controls.
func ItemSelectionPage(data ItemSelectionPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>Select Items to Return</h1>`)

		if data.ErrorMessage != "" {
			b.WriteString(`<p class="error">` + templ.EscapeString(data.ErrorMessage) + `</p>`)
		}
		if data.Warning != "" {
			b.WriteString(`<p class="warning">` + templ.EscapeString(data.Warning) + `</p>`)
		}

		b.WriteString(`<form method="GET" action="/portal/orders">`)
		b.WriteString(`<input type="text" name="q" placeholder="Search PO, UPC or title" value="` + templ.EscapeString(data.Query) + `">`)
		b.WriteString(`<button type="submit" class="secondary">Search</button></form>`)

		expandedCSV := expandedOrders(data.Groups)
		for _, group := range data.Groups {
			writeGroup(&b, group, data, expandedCSV)
		}

		b.WriteString(`<p>` + fmt.Sprintf("%d item(s) selected", data.SelectedCount) + `</p>`)
		b.WriteString(`<form method="POST" action="/portal/orders/continue">` + hiddenState(data.Query, expandedCSV))
		b.WriteString(`<button type="submit">Continue</button></form>`)
		b.WriteString(`<p><a href="/portal/open-ra">Return without a PO reference (Open RA)</a></p>`)
		b.WriteString(`</main>`)
		b.WriteString(html.CSRFFormScript())
		_, err := io.WriteString(w, html.RenderLayout("Select Items - Turnify", b.String()))
		return err
	})
}

func writeGroup(b *strings.Builder, group OrderGroup, data ItemSelectionPageData, expandedCSV string) {
	po := templ.EscapeString(group.Order.PONumber)
	b.WriteString(`<div class="order"><header><strong>` + po + `</strong>`)
	b.WriteString(`<span class="muted">` + html.Date(group.Order.OrderDate) + `</span>`)
	b.WriteString(`<span class="muted">` + html.Money(group.Order.Total()) + `</span>`)
	b.WriteString(`<span class="spacer"></span>`)

	if group.AllSelected {
		b.WriteString(commandForm("/portal/orders/clear-all", data.Query, expandedCSV,
			`<input type="hidden" name="po" value="`+po+`">`, "Clear all", "secondary"))
	} else {
		b.WriteString(commandForm("/portal/orders/select-all", data.Query, expandedCSV,
			`<input type="hidden" name="po" value="`+po+`">`, "Select all", "secondary"))
	}

	if group.Expanded {
		b.WriteString(`<a href="` + collapseHref(data.Query, expandedCSV, group.Order.PONumber) + `">Collapse</a>`)
	} else {
		b.WriteString(`<a href="` + expandHref(data.Query, expandedCSV, group.Order.PONumber) + `">Expand</a>`)
	}
	b.WriteString(`</header>`)

	if group.Expanded {
		b.WriteString(`<div class="lines"><table>`)
		b.WriteString(`<tr><th>UPC</th><th>Title</th><th>Price</th><th>Available</th><th></th></tr>`)
		for _, line := range group.Lines {
			writeLine(b, line, group.Order.PONumber, data, expandedCSV)
		}
		b.WriteString(`</table></div>`)
	}
	b.WriteString(`</div>`)
}

func writeLine(b *strings.Builder, line LineView, poNumber string, data ItemSelectionPageData, expandedCSV string) {
	cls := "line"
	if line.Errored {
		cls += " errored"
	}
	b.WriteString(`<tr class="` + cls + `">`)
	b.WriteString(`<td>` + templ.EscapeString(line.Item.UPC) + `</td>`)
	b.WriteString(`<td>` + templ.EscapeString(line.Item.Title) + `</td>`)
	b.WriteString(`<td>` + html.Money(line.Item.Price) + `</td>`)
	b.WriteString(fmt.Sprintf(`<td>%d</td>`, line.Item.AvailableReturn))
	b.WriteString(`<td>`)

	po := templ.EscapeString(poNumber)
	if !line.Selected {
		b.WriteString(commandForm("/portal/orders/select", data.Query, expandedCSV,
			`<input type="hidden" name="po" value="`+po+`">`+
				`<input type="hidden" name="upc" value="`+templ.EscapeString(line.Item.UPC)+`">`+
				fmt.Sprintf(`<input type="hidden" name="index" value="%d">`, line.Index),
			"Select", ""))
		b.WriteString(`</td></tr>`)
		return
	}

	b.WriteString(`<form method="POST" action="/portal/orders/update" class="inline">`)
	b.WriteString(hiddenState(data.Query, expandedCSV))
	b.WriteString(`<input type="hidden" name="key" value="` + templ.EscapeString(line.Key) + `">`)
	b.WriteString(fmt.Sprintf(`<input type="number" name="quantity" min="1" value="%d" size="4">`, line.Detail.Quantity))
	b.WriteString(`<select name="reason"><option value="">Select reason</option>`)
	for _, reason := range data.Reasons {
		sel := ""
		if reason == line.Detail.Reason {
			sel = ` selected`
		}
		b.WriteString(`<option value="` + templ.EscapeString(reason) + `"` + sel + `>` + templ.EscapeString(reason) + `</option>`)
	}
	b.WriteString(`</select>`)
	b.WriteString(`<input type="text" name="comment" placeholder="Comment` + commentHint(line.Detail.Reason) + `" value="` + templ.EscapeString(line.Detail.Comment) + `">`)
	b.WriteString(`<button type="submit" class="secondary">Update</button></form>`)

	b.WriteString(commandForm("/portal/orders/deselect", data.Query, expandedCSV,
		`<input type="hidden" name="po" value="`+po+`">`+
			`<input type="hidden" name="upc" value="`+templ.EscapeString(line.Item.UPC)+`">`,
		"Remove", "danger"))
	b.WriteString(`</td></tr>`)
}

func commentHint(reason string) string {
	if reason == returns.ReasonOther {
		return " (required)"
	}
	return ""
}

func commandForm(action, query, expandedCSV, hidden, label, buttonClass string) string {
	cls := ""
	if buttonClass != "" {
		cls = ` class="` + buttonClass + `"`
	}
	return `<form method="POST" action="` + action + `" class="inline">` +
		hiddenState(query, expandedCSV) + hidden +
		`<button type="submit"` + cls + `>` + label + `</button></form>`
}

func hiddenState(query, expandedCSV string) string {
	var b strings.Builder
	if query != "" {
		b.WriteString(`<input type="hidden" name="q" value="` + templ.EscapeString(query) + `">`)
	}
	if expandedCSV != "" {
		b.WriteString(`<input type="hidden" name="expand" value="` + templ.EscapeString(expandedCSV) + `">`)
	}
	return b.String()
}

func expandedOrders(groups []OrderGroup) string {
	pos := make([]string, 0)
	for _, g := range groups {
		if g.Expanded {
			pos = append(pos, g.Order.PONumber)
		}
	}
	return strings.Join(pos, ",")
}

func expandHref(query, expandedCSV, poNumber string) string {
	list := poNumber
	if expandedCSV != "" {
		list = expandedCSV + "," + poNumber
	}
	return selectionHref(query, list)
}

func collapseHref(query, expandedCSV, poNumber string) string {
	kept := make([]string, 0)
	for _, po := range strings.Split(expandedCSV, ",") {
		if po != "" && po != poNumber {
			kept = append(kept, po)
		}
	}
	return selectionHref(query, strings.Join(kept, ","))
}

func selectionHref(query, expandedCSV string) string {
	params := make([]string, 0, 2)
	if query != "" {
		params = append(params, "q="+templ.EscapeString(query))
	}
	if expandedCSV != "" {
		params = append(params, "expand="+templ.EscapeString(expandedCSV))
	}
	if len(params) == 0 {
		return "/portal/orders"
	}
	return "/portal/orders?" + strings.Join(params, "&")
}
