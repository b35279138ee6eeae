package nav

import (
	"strings"

	"github.com/a-h/templ"

	"turnify/models"
)

// TopNavData is shared with page renderers.
type TopNavData struct {
	Username string
	Role     string
}

func BuildTopNavData(session models.Session) TopNavData {
	return TopNavData{Username: session.User.Username, Role: session.User.Role}
}

// Render builds the top navigation bar HTML.
func Render(data TopNavData) string {
	var b strings.Builder
	b.WriteString(`<nav class="topnav"><a href="/portal"><strong>Turnify</strong></a>`)
	b.WriteString(`<a href="/portal/orders">Start Return</a>`)
	b.WriteString(`<a href="/portal/returns">View Returns</a>`)
	if data.Role == "admin" || data.Role == "csr" {
		b.WriteString(`<a href="/portal/admin">Admin</a>`)
	}
	b.WriteString(`<span class="spacer"></span>`)
	b.WriteString(`<span>` + templ.EscapeString(data.Username) + `</span>`)
	b.WriteString(`<form method="POST" action="/logout"><button type="submit" class="secondary">Logout</button></form>`)
	b.WriteString(`</nav>`)
	return b.String()
}
