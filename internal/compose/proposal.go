package compose

import (
	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/record"
)

// defaultNextSteps closes every manually structured proposal.
var defaultNextSteps = []string{
	"Review this proposal",
	"Schedule a meeting to discuss details",
	"Sign agreement and begin work",
}

// Proposal builds the proposal block sequence: a centered title page, a page
// break, then either the segmented freeform content or the fixed manual
// section order ending in Next Steps.
func Proposal(p record.Proposal) []block.Block {
	p = record.ResolveProposal(p)
	var blocks []block.Block

	// Title page.
	blocks = append(blocks,
		block.NewCentered(block.Run{Text: p.Title, Bold: true, Size: 28, Color: accentColor}),
		block.NewSpacer(spacerHeight),
		block.NewSpacer(spacerHeight),
		block.NewCentered(block.Run{Text: "Prepared for:", Size: 14}),
		block.NewCentered(block.Run{Text: p.ClientName, Size: 14}),
		block.NewSpacer(spacerHeight),
		block.NewCentered(block.Run{Text: "Prepared by:", Size: 14}),
		block.NewCentered(block.Run{Text: p.PreparedBy, Size: 14}),
		block.NewSpacer(spacerHeight),
		block.NewCentered(block.Run{Text: p.Date, Size: 12}),
		block.NewPageBreak(),
	)

	if p.Content != "" {
		return appendSegments(blocks, p.Content, ProposalSegments, 1)
	}

	if p.ExecutiveSummary != "" {
		blocks = appendSection(blocks, "Executive Summary", p.ExecutiveSummary)
	}
	if p.ProjectOverview != "" {
		blocks = appendSection(blocks, "Project Overview", p.ProjectOverview)
	}
	if p.Scope != "" {
		blocks = appendSection(blocks, "Scope of Work", p.Scope)
	}
	if len(p.Deliverables) > 0 {
		blocks = append(blocks, block.NewHeading("Deliverables", 1))
		for _, d := range p.Deliverables {
			blocks = append(blocks, block.NewBullet(d))
		}
		blocks = append(blocks, block.NewSpacer(spacerHeight))
	}
	if p.Timeline != "" {
		blocks = appendSection(blocks, "Timeline", p.Timeline)
	}
	if p.Budget != "" {
		blocks = appendSection(blocks, "Investment", p.Budget)
	}

	blocks = append(blocks, block.NewHeading("Next Steps", 1))
	steps := p.NextSteps
	if len(steps) == 0 {
		steps = defaultNextSteps
	}
	for _, step := range steps {
		blocks = append(blocks, block.NewNumbered(step))
	}

	return blocks
}

func appendSection(blocks []block.Block, title, body string) []block.Block {
	return append(blocks,
		block.NewHeading(title, 1),
		block.NewText(body),
		block.NewSpacer(spacerHeight),
	)
}
