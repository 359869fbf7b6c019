package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

type rgb struct{ r, g, b int }

var (
	colorBlue   = rgb{59, 130, 246}
	colorGreen  = rgb{16, 185, 129}
	colorPurple = rgb{139, 92, 246}
	colorRed    = rgb{239, 68, 68}
	colorYellow = rgb{234, 179, 8}
	colorText   = rgb{31, 41, 55}
	colorMuted  = rgb{107, 114, 128}
)

const (
	pageMargin = 20.0
	lineHeight = 6.0
)

// pdfDoc wraps an A4 fpdf document with the layout helpers used by every
// document. Text passes through the cp1252 translator of the core fonts.
type pdfDoc struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	width float64
}

func (r *Renderer) newPDF(title, footer string) *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(r.now())
	pdf.SetTitle(title, true)
	pdf.SetCreator("ECRC42", true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 25)

	d := &pdfDoc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	d.width, _ = pdf.GetPageSize()
	if footer != "" {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-15)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(colorMuted.r, colorMuted.g, colorMuted.b)
			pdf.CellFormat(0, 10, d.tr(footer), "", 0, "C", false, 0, "")
		})
	}
	pdf.AddPage()
	return d
}

func (d *pdfDoc) color(c rgb) { d.pdf.SetTextColor(c.r, c.g, c.b) }

// banner draws a full-width coloured header with a centred title.
func (d *pdfDoc) banner(c rgb, title, subtitle string) {
	d.pdf.SetFillColor(c.r, c.g, c.b)
	d.pdf.Rect(0, 0, d.width, 40, "F")
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Helvetica", "B", 24)
	d.pdf.SetXY(0, 12)
	d.pdf.CellFormat(d.width, 10, d.tr(title), "", 1, "C", false, 0, "")
	if subtitle != "" {
		d.pdf.SetFont("Helvetica", "", 12)
		d.pdf.SetX(0)
		d.pdf.CellFormat(d.width, 8, d.tr(subtitle), "", 1, "C", false, 0, "")
	}
	d.pdf.SetY(55)
	d.color(colorText)
}

func (d *pdfDoc) heading(s string, size float64) {
	d.pdf.SetFont("Helvetica", "B", size)
	d.color(colorText)
	d.pdf.MultiCell(0, size*0.5, d.tr(printable(s)), "", "L", false)
	d.pdf.Ln(2)
}

func (d *pdfDoc) centered(s string, style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
	d.pdf.MultiCell(0, size*0.5, d.tr(printable(s)), "", "C", false)
}

func (d *pdfDoc) para(s string) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.MultiCell(0, lineHeight, d.tr(plain(s)), "", "L", false)
	d.pdf.Ln(1)
}

func (d *pdfDoc) bullet(s string) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.SetX(pageMargin + 4)
	d.pdf.MultiCell(0, lineHeight, d.tr("• "+printable(s)), "", "L", false)
}

// field prints a bold label followed by its value on the same line.
func (d *pdfDoc) field(label, value string) {
	if value == "" {
		return
	}
	d.pdf.SetFont("Helvetica", "B", 11)
	lw := d.pdf.GetStringWidth(d.tr(label)) + 2
	d.pdf.CellFormat(lw, lineHeight, d.tr(label), "", 0, "L", false, 0, "")
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.MultiCell(0, lineHeight, d.tr(printable(value)), "", "L", false)
}

func (d *pdfDoc) gap(h float64) { d.pdf.Ln(h) }

func (d *pdfDoc) rule() {
	y := d.pdf.GetY()
	d.pdf.SetDrawColor(colorMuted.r, colorMuted.g, colorMuted.b)
	d.pdf.Line(pageMargin, y, d.width-pageMargin, y)
	d.pdf.Ln(4)
}

func (d *pdfDoc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func categoryColor(c string) rgb {
	switch c {
	case "green":
		return colorGreen
	case "red":
		return colorRed
	default:
		return colorYellow
	}
}
