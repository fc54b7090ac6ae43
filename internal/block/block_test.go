package block

import "testing"

func TestConstructorsSetVariant(t *testing.T) {
	cases := []struct {
		b    Block
		kind Kind
	}{
		{NewHeading("TITLE", 1), KindHeading},
		{NewText("hello"), KindParagraph},
		{NewCentered(Run{Text: "x"}), KindParagraph},
		{NewBullet("item"), KindBulletItem},
		{NewNumbered("step"), KindNumberedItem},
		{NewTable([][]Cell{{{Text: "a"}}}, false), KindTable},
		{NewPageBreak(), KindPageBreak},
		{NewSpacer(12), KindSpacer},
		{NewRule(2, "003366"), KindRule},
	}
	for _, tc := range cases {
		if tc.b.Kind != tc.kind {
			t.Errorf("kind = %q, want %q", tc.b.Kind, tc.kind)
		}
	}
}

func TestCenteredAlignment(t *testing.T) {
	b := NewCentered(Run{Text: "x"})
	if b.Paragraph.Align != AlignCenter {
		t.Errorf("align = %q", b.Paragraph.Align)
	}
	if NewText("y").Paragraph.Align != AlignLeft {
		t.Error("NewText should be left aligned")
	}
}

func TestBlockText(t *testing.T) {
	p := NewParagraph(Run{Text: "Technologies: ", Italic: true}, Run{Text: "Go, Postgres"})
	if got := p.Text(); got != "Technologies: Go, Postgres" {
		t.Errorf("Text() = %q", got)
	}
	if got := NewHeading("SKILLS", 1).Text(); got != "SKILLS" {
		t.Errorf("heading Text() = %q", got)
	}
	if got := NewSpacer(10).Text(); got != "" {
		t.Errorf("spacer Text() = %q", got)
	}
}

func TestLetterPage(t *testing.T) {
	page := LetterPage(0.75)
	if page.PageWidth != 612 || page.PageHeight != 792 {
		t.Errorf("page size = %v x %v", page.PageWidth, page.PageHeight)
	}
	if page.MarginLeft != 54 {
		t.Errorf("margin = %v, want 0.75in in points", page.MarginLeft)
	}
	if page.AccentColor != "003366" {
		t.Errorf("accent = %q", page.AccentColor)
	}
}
