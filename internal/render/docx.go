package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/verolabs/docforge/internal/block"
)

// DOCX renders block sequences into Word documents. It holds no state and
// is safe for concurrent use; each Render call builds its own document.
type DOCX struct{}

// NewDOCX returns the Word renderer.
func NewDOCX() *DOCX { return &DOCX{} }

// Render walks the blocks in order and serializes a .docx archive.
func (d *DOCX) Render(blocks []block.Block, page block.PageConfig) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	numbered := 0
	for i, b := range blocks {
		if b.Kind != block.KindNumberedItem {
			numbered = 0
		}
		switch b.Kind {
		case block.KindHeading:
			p := doc.AddParagraph()
			p.AddText(b.Heading.Text).
				Size(halfPoints(headingSize(b.Heading.Level))).
				Color(page.AccentColor).
				Bold()

		case block.KindParagraph:
			p := doc.AddParagraph()
			applyJustification(p, b.Paragraph.Align)
			for _, run := range b.Paragraph.Runs {
				addRun(p, run)
			}

		case block.KindBulletItem:
			p := doc.AddParagraph()
			r := p.AddText("• " + b.BulletItem.Text)
			r.Size(halfPoints(bodySize))

		case block.KindNumberedItem:
			numbered++
			p := doc.AddParagraph()
			r := p.AddText(fmt.Sprintf("%d. %s", numbered, b.NumberedItem.Text))
			r.Size(halfPoints(bodySize))

		case block.KindTable:
			if err := d.addTable(doc, b.Table); err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}

		case block.KindPageBreak:
			doc.AddParagraph().AddPageBreaks()

		case block.KindSpacer:
			doc.AddParagraph()

		case block.KindRule:
			// Word has no flowable rule primitive; a full-width underscore
			// line keeps the visual separation.
			p := doc.AddParagraph()
			p.AddText(strings.Repeat("_", 60)).Color(b.Rule.Color)

		default:
			return nil, fmt.Errorf("block %d: unknown kind %q", i, b.Kind)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize docx: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *DOCX) addTable(doc *docx.Docx, t *block.Table) error {
	rows := len(t.Rows)
	if rows == 0 {
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

	tbl := doc.AddTable(rows, cols, 0, nil)
	for ri, row := range t.Rows {
		for ci := range row {
			cell := row[ci]
			wc := tbl.TableRows[ri].TableCells[ci]
			// Multi-line cell text becomes one paragraph per line.
			lines := strings.Split(cell.Text, "\n")
			for _, line := range lines {
				p := wc.AddParagraph()
				r := p.AddText(line)
				if cell.Bold || (t.HeaderRow && ri == 0) {
					r.Bold()
				}
				if cell.Size > 0 {
					r.Size(halfPoints(cell.Size))
				}
			}
		}
	}
	return nil
}

func addRun(p *docx.Paragraph, run block.Run) {
	r := p.AddText(run.Text)
	r.Size(halfPoints(runSize(run)))
	if run.Bold {
		r.Bold()
	}
	if run.Italic {
		r.Italic()
	}
	if run.Color != "" {
		r.Color(run.Color)
	}
}

func applyJustification(p *docx.Paragraph, align block.Alignment) {
	switch align {
	case block.AlignCenter:
		p.Justification("center")
	case block.AlignRight:
		p.Justification("end")
	}
}

// halfPoints converts a point size to the half-point string run sizes use.
func halfPoints(pt float64) string {
	return strconv.Itoa(int(pt * 2))
}
