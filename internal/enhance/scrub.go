package enhance

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// markdown is a shared parser; Parse is safe for concurrent use.
var markdown = goldmark.New()

// PlainText strips markdown structure from model output: emphasis markers,
// headings, blockquotes and list bullets disappear while the text and
// paragraph boundaries survive.
func PlainText(s string) string {
	src := []byte(s)
	doc := markdown.Parser().Parse(gmtext.NewReader(src))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.Paragraph, *ast.Heading, *ast.ListItem:
			if b.Len() > 0 {
				b.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

var (
	optionHeaderRe = regexp.MustCompile(`(?m)^Option \d+[^\n]*:\s*`)
	leadingNumRe   = regexp.MustCompile(`^\d+\.\s*`)
)

// labelPrefixes are boilerplate labels models prepend despite instructions.
var labelPrefixes = []string{
	"Enhanced Description:",
	"Final Description:",
	"Professional Summary:",
	"Improved Text:",
	"Summary:",
}

// optionMarkers flag responses that returned alternatives instead of one
// answer.
var optionMarkers = []string{
	"here are",
	"here's",
	"option 1",
	"option 2",
	"option 3",
	"choose one",
	"enhanced description:",
	"final description:",
}

// ScrubLine cleans a single-answer response: markdown removed, label
// prefixes and leading bullet or number markers stripped.
func ScrubLine(s string) string {
	s = PlainText(s)
	for _, prefix := range labelPrefixes {
		s = strings.TrimSpace(strings.TrimPrefix(s, prefix))
	}
	s = strings.TrimPrefix(s, "- ")
	s = strings.TrimPrefix(s, "• ")
	s = leadingNumRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ScrubDescription cleans a project description response. When the model
// returned multiple options anyway, the first substantial paragraph that is
// not an option header is extracted.
func ScrubDescription(s string) string {
	s = PlainText(s)

	if containsAny(strings.ToLower(s), optionMarkers) {
		for _, para := range strings.Split(s, "\n\n") {
			para = strings.TrimSpace(para)
			if containsAny(strings.ToLower(para), optionMarkers) {
				continue
			}
			if len(para) > 50 {
				s = para
				break
			}
		}
	}

	s = optionHeaderRe.ReplaceAllString(s, "")
	s = leadingNumRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
