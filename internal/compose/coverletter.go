package compose

import (
	"strings"

	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/record"
)

// CoverLetter builds the cover letter block sequence: sender block, date,
// recipient block, salutation, body paragraphs, closing. The body is split
// on blank lines only; no heading detection applies to letters.
func CoverLetter(c record.CoverLetter) []block.Block {
	c = record.ResolveCoverLetter(c)
	var blocks []block.Block

	blocks = append(blocks, block.NewParagraph(block.Run{Text: c.Name, Bold: true, Size: 12}))
	if c.Address != "" {
		blocks = append(blocks, block.NewParagraph(block.Run{Text: c.Address, Size: 10}))
	}
	if contact := joinPresent(c.Email, c.Phone); contact != "" {
		blocks = append(blocks, block.NewParagraph(block.Run{Text: contact, Size: 10}))
	}
	blocks = append(blocks, block.NewSpacer(spacerHeight))

	blocks = append(blocks,
		block.NewParagraph(block.Run{Text: c.Date, Size: 11}),
		block.NewSpacer(spacerHeight),
	)

	if c.HiringManager != "" {
		blocks = append(blocks, block.NewParagraph(block.Run{Text: c.HiringManager, Size: 11}))
	}
	blocks = append(blocks,
		block.NewParagraph(block.Run{Text: c.Company, Bold: true, Size: 11}),
		block.NewSpacer(spacerHeight),
	)

	salutation := "Dear Hiring Manager,"
	if c.HiringManager != "" {
		salutation = "Dear " + c.HiringManager + ","
	}
	blocks = append(blocks,
		block.NewParagraph(block.Run{Text: salutation, Size: 11}),
		block.NewSpacer(spacerHeight),
	)

	for _, para := range strings.Split(c.Content, "\n\n") {
		if para = strings.TrimSpace(para); para != "" {
			blocks = append(blocks, block.NewParagraph(block.Run{Text: para, Size: 11}))
		}
	}
	blocks = append(blocks, block.NewSpacer(spacerHeight))

	blocks = append(blocks,
		block.NewParagraph(block.Run{Text: "Sincerely,", Size: 11}),
		block.NewSpacer(spacerHeight),
		block.NewSpacer(spacerHeight),
		block.NewParagraph(block.Run{Text: c.Name, Bold: true, Size: 11}),
	)

	return blocks
}
