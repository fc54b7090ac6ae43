// Package block defines the intermediate representation shared by all
// document kinds: an ordered sequence of styled content blocks produced by
// the section builders and consumed exactly once by a renderer.
package block

// Kind tags a block variant.
type Kind string

const (
	KindHeading      Kind = "heading"
	KindParagraph    Kind = "paragraph"
	KindBulletItem   Kind = "bullet_item"
	KindNumberedItem Kind = "numbered_item"
	KindTable        Kind = "table"
	KindPageBreak    Kind = "page_break"
	KindSpacer       Kind = "spacer"
	KindRule         Kind = "rule"
)

// Block is a tagged variant; exactly one of the variant pointers matching
// Kind is set. Blocks are value objects: builders create them, renderers
// read them, nobody mutates them.
type Block struct {
	Kind         Kind
	Heading      *Heading
	Paragraph    *Paragraph
	BulletItem   *ListItem
	NumberedItem *ListItem
	Table        *Table
	Spacer       *Spacer
	Rule         *Rule
}

// Heading is a section or document heading. Level 1 and 2 are the only
// levels the builders emit.
type Heading struct {
	Text  string
	Level int
}

// Alignment of a paragraph within the page.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Run is a styled span of text within a paragraph. Size is in points;
// zero means the renderer's body default. Color is a hex RGB string
// without '#', empty for default.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   float64
	Color  string
	Link   string
}

// Paragraph is an ordered sequence of runs sharing one alignment.
type Paragraph struct {
	Runs      []Run
	Align     Alignment
	IndentPts float64
}

// ListItem belongs to an implicit list: consecutive items of the same kind
// form one visual list in the rendered output.
type ListItem struct {
	Text string
}

// Cell is one table cell. Size overrides the table's default text size when
// positive (the invoice TOTAL row uses this).
type Cell struct {
	Text string
	Bold bool
	Size float64
}

// Table is a grid of cells in row-major order. Align positions the whole
// table; HeaderRow marks the first row for header styling.
type Table struct {
	Rows      [][]Cell
	Align     Alignment
	HeaderRow bool
}

// Spacer is a vertical gap. Height is in points.
type Spacer struct {
	Height float64
}

// Rule is a full-width horizontal line.
type Rule struct {
	Thickness float64
	Color     string
}

// NewHeading returns a heading block.
func NewHeading(text string, level int) Block {
	return Block{Kind: KindHeading, Heading: &Heading{Text: text, Level: level}}
}

// NewParagraph returns a left-aligned paragraph of the given runs.
func NewParagraph(runs ...Run) Block {
	return Block{Kind: KindParagraph, Paragraph: &Paragraph{Runs: runs, Align: AlignLeft}}
}

// NewText returns a left-aligned paragraph holding a single unstyled run.
func NewText(text string) Block {
	return NewParagraph(Run{Text: text})
}

// NewCentered returns a centered paragraph of the given runs.
func NewCentered(runs ...Run) Block {
	return Block{Kind: KindParagraph, Paragraph: &Paragraph{Runs: runs, Align: AlignCenter}}
}

// NewBullet returns a bullet list item.
func NewBullet(text string) Block {
	return Block{Kind: KindBulletItem, BulletItem: &ListItem{Text: text}}
}

// NewNumbered returns a numbered list item.
func NewNumbered(text string) Block {
	return Block{Kind: KindNumberedItem, NumberedItem: &ListItem{Text: text}}
}

// NewTable returns a table block.
func NewTable(rows [][]Cell, headerRow bool) Block {
	return Block{Kind: KindTable, Table: &Table{Rows: rows, Align: AlignLeft, HeaderRow: headerRow}}
}

// NewPageBreak returns a hard page boundary.
func NewPageBreak() Block {
	return Block{Kind: KindPageBreak}
}

// NewSpacer returns a vertical gap of height points.
func NewSpacer(height float64) Block {
	return Block{Kind: KindSpacer, Spacer: &Spacer{Height: height}}
}

// NewRule returns a horizontal rule.
func NewRule(thickness float64, color string) Block {
	return Block{Kind: KindRule, Rule: &Rule{Thickness: thickness, Color: color}}
}

// Text returns the concatenated text content of the block, used by tests
// and by renderers that need the flat string form.
func (b Block) Text() string {
	switch b.Kind {
	case KindHeading:
		return b.Heading.Text
	case KindParagraph:
		var s string
		for _, r := range b.Paragraph.Runs {
			s += r.Text
		}
		return s
	case KindBulletItem:
		return b.BulletItem.Text
	case KindNumberedItem:
		return b.NumberedItem.Text
	}
	return ""
}
