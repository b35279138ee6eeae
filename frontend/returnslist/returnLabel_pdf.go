package returnslist

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"time"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"

	"turnify/returns"
)

func renderReturnLabelPDF(rec returns.ReturnRecord, printedAt time.Time) ([]byte, error) {
	if rec.TrackingNumber == "" {
		return nil, fmt.Errorf("return %s has no tracking number", rec.RMANumber)
	}

	barcodePNG, err := renderCode128PNG(rec.TrackingNumber, 1200, 260)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Return Shipping Label", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 44)
	pdf.CellFormat(0, 20, "TURNIFY RETURNS", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 52)
	pdf.CellFormat(0, 22, rec.RMANumber, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 16)
	pdf.CellFormat(0, 9, "PO: "+rec.PONumber, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 9, fmt.Sprintf("Items: %d", len(rec.Items)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 9, "Created: "+rec.CreatedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 9, "Printed: "+printedAt.Format("02/01/2006"), "", 1, "C", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := fmt.Sprintf("return-barcode-%d", rec.ID)
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	pageW, _ := pdf.GetPageSize()
	imgW := 240.0
	imgH := 56.0
	x := (pageW - imgW) / 2
	y := 112.0
	pdf.ImageOptions(imageName, x, y, imgW, imgH, false, opt, 0, "")

	pdf.SetY(y + imgH + 6)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, rec.TrackingNumber, "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	normalized := toNRGBA(scaled)
	var barcodePNG bytes.Buffer
	if err := png.Encode(&barcodePNG, normalized); err != nil {
		return nil, err
	}
	return barcodePNG.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
