// Package compose holds the section builders: one pure function per
// document kind mapping a canonical record to an ordered block sequence.
// Layout policy (ordering, sizes, margins, boilerplate text) lives here;
// how blocks become bytes is the render package's concern.
package compose

import (
	"strings"

	"github.com/verolabs/docforge/internal/block"
)

const (
	// spacerHeight is the default vertical gap between sections, one empty
	// line at body size.
	spacerHeight = 12.0

	accentColor = block.DefaultAccent
	linkColor   = "0066CC"
	mutedColor  = "666666"
)

// joinPresent joins the non-empty parts with " | ".
func joinPresent(parts ...string) string {
	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, " | ")
}

// ResumePage is the resume page geometry: tight top/bottom margins.
func ResumePage() block.PageConfig {
	pc := block.LetterPage(0.75)
	pc.MarginTop = 0.5 * block.Inch
	pc.MarginBottom = 0.5 * block.Inch
	return pc
}

// CoverLetterPage uses standard one-inch letter margins.
func CoverLetterPage() block.PageConfig { return block.LetterPage(1) }

// ProposalPage uses standard one-inch margins.
func ProposalPage() block.PageConfig { return block.LetterPage(1) }

// InvoicePage uses 0.75-inch margins.
func InvoicePage() block.PageConfig { return block.LetterPage(0.75) }

// ContractPage uses wide side margins for legal text.
func ContractPage() block.PageConfig {
	pc := block.LetterPage(1)
	pc.MarginLeft = 1.25 * block.Inch
	pc.MarginRight = 1.25 * block.Inch
	return pc
}

// PortfolioPage uses 0.75-inch margins and the PDF font pairing.
func PortfolioPage() block.PageConfig {
	pc := block.LetterPage(0.75)
	pc.BodyFont = "Helvetica"
	pc.HeadingFont = "Helvetica"
	return pc
}
