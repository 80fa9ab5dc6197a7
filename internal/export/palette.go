// Package export renders the theme palettes to printable documents.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/yantradaan/yantra-daan/internal/theme"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	swatchSize   = 18.0
	rowGap       = 6.0
)

// ExportPalettePDF writes one page per resolved theme listing every palette
// slot as a colour swatch with its hex value. The page of current is marked
// as active.
func ExportPalettePDF(path string, current theme.Resolved) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("Yantra Daan theme palettes", true)

	for _, r := range []theme.Resolved{theme.ResolvedLight, theme.ResolvedDark} {
		pdf.AddPage()
		if err := renderPalettePage(pdf, r, r == current); err != nil {
			return err
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write palette pdf %s: %w", path, err)
	}
	return nil
}

// renderPalettePage draws the swatches of one palette on the current page.
func renderPalettePage(pdf *fpdf.Fpdf, r theme.Resolved, active bool) error {
	palette := theme.PaletteFor(r)
	bg, err := theme.ParseHex(palette.Background)
	if err != nil {
		return err
	}
	fg, err := theme.ParseHex(palette.Foreground)
	if err != nil {
		return err
	}

	// Header band in the palette's own background/foreground
	pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	pdf.SetTextColor(int(fg.R), int(fg.G), int(fg.B))
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s theme", r)
	if active {
		title += " (active)"
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "1", 0, "L", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	y := marginTop + headerHeight + rowGap
	for _, s := range palette.Swatches() {
		c, err := theme.ParseHex(s.Hex)
		if err != nil {
			return err
		}
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.SetDrawColor(60, 60, 60)
		pdf.SetLineWidth(0.2)
		pdf.Rect(marginLeft, y, swatchSize, swatchSize, "FD")

		pdf.SetXY(marginLeft+swatchSize+5, y+swatchSize/2-3)
		pdf.CellFormat(60, 6, s.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, s.Hex, "", 0, "L", false, 0, "")
		y += swatchSize + rowGap
	}
	return nil
}
