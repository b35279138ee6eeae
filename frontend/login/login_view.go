package login

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"turnify/frontend/shared/html"
)

// GetLoginScreen renders the login page.
func GetLoginScreen(errorMessage string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<main class="login"><h1>Turnify Returns Portal</h1>`)
		if errorMessage != "" {
			b.WriteString(`<p class="error">` + templ.EscapeString(errorMessage) + `</p>`)
		}
		b.WriteString(`<form method="POST" action="/login">`)
		b.WriteString(`<label>Username <input type="text" name="username" autofocus></label>`)
		b.WriteString(`<label>Password <input type="password" name="password"></label>`)
		b.WriteString(`<button type="submit">Sign in</button>`)
		b.WriteString(`</form></main>`)
		b.WriteString(html.CSRFFormScript())
		_, err := io.WriteString(w, html.RenderLayout("Sign in - Turnify", b.String()))
		return err
	})
}
