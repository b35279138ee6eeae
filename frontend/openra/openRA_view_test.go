package openra

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"turnify/returns"
)

func TestOpenRAForm_OffersUPCAndCustomIdentifiers(t *testing.T) {
	data := OpenRAPageData{IdentifierTypes: IdentifierTypes, Reasons: returns.OpenRAReasons}

	var buf bytes.Buffer
	if err := OpenRAPage(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render open RA form: %v", err)
	}
	page := buf.String()

	if !strings.Contains(page, `<option value="upc">UPC</option>`) {
		t.Fatalf("missing upc identifier option")
	}
	if !strings.Contains(page, `<option value="custom">Custom ID (SKU, etc.)</option>`) {
		t.Fatalf("missing custom identifier option")
	}
	if strings.Contains(page, `value="sku"`) || strings.Contains(page, `value="style"`) {
		t.Fatalf("form offers identifier options beyond upc and custom")
	}
}
