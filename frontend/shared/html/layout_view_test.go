package html

import (
	"strings"
	"testing"
)

func TestRenderLayout(t *testing.T) {
	out := RenderLayout("Returns", "<h1>Returns</h1>")
	if !strings.Contains(out, "<title>Returns · Turnify</title>") {
		t.Fatalf("expected page title in layout, got: %s", out)
	}
	if !strings.Contains(out, "<h1>Returns</h1>") {
		t.Fatalf("expected body markup in layout, got: %s", out)
	}
	if !strings.Contains(out, `href="/assets/app.css"`) {
		t.Fatalf("expected stylesheet link in layout, got: %s", out)
	}
}
