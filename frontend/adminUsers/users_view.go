package adminusers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"turnify/frontend/shared/html"
	"turnify/frontend/shared/nav"
)

// UsersListPage renders the user administration page.
func UsersListPage(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(nav.Render(data.Nav))
		b.WriteString(`<main><h1>User Administration</h1>`)

		if data.ErrorMessage != "" {
			b.WriteString(`<p class="error">` + templ.EscapeString(data.ErrorMessage) + `</p>`)
		}
		if data.Status != "" {
			b.WriteString(`<p>` + templ.EscapeString(data.Status) + `</p>`)
		}

		b.WriteString(`<table><tr><th>ID</th><th>Username</th><th>Role</th><th>Company</th></tr>`)
		for _, u := range data.Users {
			b.WriteString(fmt.Sprintf(`<tr><td>%d</td>`, u.ID))
			b.WriteString(`<td>` + templ.EscapeString(u.Username) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(u.Role) + `</td>`)
			b.WriteString(`<td>` + templ.EscapeString(u.CompanyName) + `</td></tr>`)
		}
		b.WriteString(`</table>`)

		b.WriteString(`<h2>Create User</h2>`)
		b.WriteString(`<form method="POST" action="/portal/admin/users">`)
		b.WriteString(`<label>Username <input type="text" name="username" required></label>`)
		b.WriteString(`<label>Password <input type="password" name="password" required></label>`)
		b.WriteString(`<label>Role <select name="role">`)
		b.WriteString(`<option value="partner">partner</option>`)
		b.WriteString(`<option value="csr">csr</option>`)
		b.WriteString(`<option value="admin">admin</option>`)
		b.WriteString(`</select></label>`)
		b.WriteString(`<label>Company name <input type="text" name="company_name" placeholder="required for partner"></label>`)
		b.WriteString(`<button type="submit">Create</button>`)
		b.WriteString(`</form>`)
		b.WriteString(`<p><a href="/portal/admin">Back to dashboard</a></p>`)
		b.WriteString(`</main>`)
		b.WriteString(html.CSRFFormScript())
		_, err := io.WriteString(w, html.RenderLayout("Users - Turnify", b.String()))
		return err
	})
}
