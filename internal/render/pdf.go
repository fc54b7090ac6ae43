package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/verolabs/docforge/internal/block"
)

// PDF renders block sequences into PDF documents with gofpdf. Stateless;
// each Render call owns its document.
type PDF struct{}

// NewPDF returns the PDF renderer.
func NewPDF() *PDF { return &PDF{} }

// defaultTextColor is the body text gray.
const defaultTextColor = "333333"

// lineHeight returns the leading for a given font size.
func lineHeight(size float64) float64 { return size * 1.45 }

// Render walks the blocks in order and serializes a PDF.
func (p *PDF) Render(blocks []block.Block, page block.PageConfig) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.PageWidth, Ht: page.PageHeight},
	})
	pdf.SetMargins(page.MarginLeft, page.MarginTop, page.MarginRight)
	pdf.SetAutoPageBreak(true, page.MarginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	usable := page.PageWidth - page.MarginLeft - page.MarginRight

	numbered := 0
	for i, b := range blocks {
		if b.Kind != block.KindNumberedItem {
			numbered = 0
		}
		switch b.Kind {
		case block.KindHeading:
			size := headingSize(b.Heading.Level)
			pdf.SetFont("Helvetica", "B", size)
			if err := setTextColor(pdf, page.AccentColor); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			pdf.MultiCell(usable, lineHeight(size), tr(b.Heading.Text), "", "L", false)
			pdf.Ln(4)

		case block.KindParagraph:
			if err := p.paragraph(pdf, tr, b.Paragraph, page, usable); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}

		case block.KindBulletItem:
			pdf.SetFont("Helvetica", "", bodySize)
			if err := setTextColor(pdf, defaultTextColor); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			pdf.SetX(page.MarginLeft + 14)
			pdf.MultiCell(usable-14, lineHeight(bodySize), tr("• "+b.BulletItem.Text), "", "L", false)

		case block.KindNumberedItem:
			numbered++
			pdf.SetFont("Helvetica", "", bodySize)
			if err := setTextColor(pdf, defaultTextColor); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			pdf.SetX(page.MarginLeft + 14)
			pdf.MultiCell(usable-14, lineHeight(bodySize),
				tr(fmt.Sprintf("%d. %s", numbered, b.NumberedItem.Text)), "", "L", false)

		case block.KindTable:
			if err := p.table(pdf, tr, b.Table, page, usable); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}

		case block.KindPageBreak:
			pdf.AddPage()

		case block.KindSpacer:
			pdf.Ln(b.Spacer.Height)

		case block.KindRule:
			if err := setDrawColor(pdf, b.Rule.Color); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			pdf.SetLineWidth(b.Rule.Thickness)
			y := pdf.GetY()
			pdf.Line(page.MarginLeft, y, page.PageWidth-page.MarginRight, y)
			pdf.Ln(8)

		default:
			return nil, fmt.Errorf("block %d: unknown kind %q", i, b.Kind)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *PDF) paragraph(pdf *gofpdf.Fpdf, tr func(string) string, para *block.Paragraph, page block.PageConfig, usable float64) error {
	if len(para.Runs) == 0 {
		pdf.Ln(lineHeight(bodySize))
		return nil
	}

	indent := para.IndentPts
	width := usable - indent

	// Single run: one MultiCell with native alignment and wrapping.
	if len(para.Runs) == 1 {
		run := para.Runs[0]
		size := runSize(run)
		pdf.SetFont("Helvetica", styleOf(run), size)
		if err := setTextColor(pdf, colorOf(run)); err != nil {
			return err
		}
		if run.Link != "" {
			pdf.SetX(page.MarginLeft + indent)
			pdf.WriteLinkString(lineHeight(size), tr(run.Text), run.Link)
			pdf.Ln(lineHeight(size))
			return pdfErr(pdf)
		}
		pdf.SetX(page.MarginLeft + indent)
		pdf.MultiCell(width, lineHeight(size), tr(run.Text), "", alignStr(para.Align), false)
		return pdfErr(pdf)
	}

	// Multiple runs flow on one line. Centered multi-run paragraphs are
	// positioned by measuring the total width first.
	maxSize := bodySize
	for _, run := range para.Runs {
		if s := runSize(run); s > maxSize {
			maxSize = s
		}
	}
	lh := lineHeight(maxSize)

	if para.Align == block.AlignCenter {
		var total float64
		for _, run := range para.Runs {
			pdf.SetFont("Helvetica", styleOf(run), runSize(run))
			total += pdf.GetStringWidth(tr(run.Text))
		}
		x := page.MarginLeft + (usable-total)/2
		if x < page.MarginLeft {
			x = page.MarginLeft
		}
		pdf.SetX(x)
	} else {
		pdf.SetX(page.MarginLeft + indent)
	}

	for _, run := range para.Runs {
		pdf.SetFont("Helvetica", styleOf(run), runSize(run))
		if err := setTextColor(pdf, colorOf(run)); err != nil {
			return err
		}
		if run.Link != "" {
			pdf.WriteLinkString(lh, tr(run.Text), run.Link)
		} else {
			pdf.Write(lh, tr(run.Text))
		}
	}
	pdf.Ln(lh)
	return pdfErr(pdf)
}

const cellPadding = 4.0

func (p *PDF) table(pdf *gofpdf.Fpdf, tr func(string) string, t *block.Table, page block.PageConfig, usable float64) error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("empty table")
	}
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return fmt.Errorf("table with no cells")
	}

	// Right-aligned tables (invoice totals) occupy the right half.
	tableWidth := usable
	x0 := page.MarginLeft
	if t.Align == block.AlignRight {
		tableWidth = usable / 2
		x0 = page.MarginLeft + usable/2
	}
	colWidth := tableWidth / float64(cols)
	lh := lineHeight(bodySize)

	for ri, row := range t.Rows {
		// Row height from the tallest wrapped cell.
		maxLines := 1
		for ci := 0; ci < cols; ci++ {
			text := ""
			if ci < len(row) {
				text = row[ci].Text
			}
			pdf.SetFont("Helvetica", cellStyle(t, row, ri, ci), cellSize(row, ci))
			n := len(pdf.SplitLines([]byte(tr(text)), colWidth-2*cellPadding))
			if n > maxLines {
				maxLines = n
			}
		}
		rowHeight := float64(maxLines)*lh + 2*cellPadding

		if pdf.GetY()+rowHeight > page.PageHeight-page.MarginBottom {
			pdf.AddPage()
		}
		y := pdf.GetY()

		for ci := 0; ci < cols; ci++ {
			x := x0 + float64(ci)*colWidth
			pdf.Rect(x, y, colWidth, rowHeight, "D")
			text := ""
			if ci < len(row) {
				text = row[ci].Text
			}
			pdf.SetFont("Helvetica", cellStyle(t, row, ri, ci), cellSize(row, ci))
			if err := setTextColor(pdf, defaultTextColor); err != nil {
				return err
			}
			pdf.SetXY(x+cellPadding, y+cellPadding)
			pdf.MultiCell(colWidth-2*cellPadding, lh, tr(text), "", "L", false)
		}
		pdf.SetXY(page.MarginLeft, y+rowHeight)
	}
	pdf.Ln(4)
	return pdfErr(pdf)
}

func cellStyle(t *block.Table, row []block.Cell, ri, ci int) string {
	if t.HeaderRow && ri == 0 {
		return "B"
	}
	if ci < len(row) && row[ci].Bold {
		return "B"
	}
	return ""
}

func cellSize(row []block.Cell, ci int) float64 {
	if ci < len(row) && row[ci].Size > 0 {
		return row[ci].Size
	}
	return bodySize
}

func styleOf(run block.Run) string {
	style := ""
	if run.Bold {
		style += "B"
	}
	if run.Italic {
		style += "I"
	}
	return style
}

func colorOf(run block.Run) string {
	if run.Color != "" {
		return run.Color
	}
	return defaultTextColor
}

func alignStr(a block.Alignment) string {
	switch a {
	case block.AlignCenter:
		return "C"
	case block.AlignRight:
		return "R"
	}
	return "L"
}

func setTextColor(pdf *gofpdf.Fpdf, hex string) error {
	r, g, b, err := hexRGB(hex)
	if err != nil {
		return err
	}
	pdf.SetTextColor(r, g, b)
	return nil
}

func setDrawColor(pdf *gofpdf.Fpdf, hex string) error {
	r, g, b, err := hexRGB(hex)
	if err != nil {
		return err
	}
	pdf.SetDrawColor(r, g, b)
	return nil
}

func pdfErr(pdf *gofpdf.Fpdf) error {
	if pdf.Err() {
		return pdf.Error()
	}
	return nil
}
