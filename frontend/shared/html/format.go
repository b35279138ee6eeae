package html

import (
	"fmt"
	"time"

	"github.com/a-h/templ"
)

// Money formats a dollar amount for display.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Date formats a timestamp as its calendar date.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// StatusBadge renders a status pill.
func StatusBadge(status string) string {
	escaped := templ.EscapeString(status)
	return `<span class="badge ` + escaped + `">` + escaped + `</span>`
}
