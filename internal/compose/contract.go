package compose

import (
	"strings"

	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/record"
)

// legalDisclaimer is fixed boilerplate appended to every contract.
const legalDisclaimer = "This document is provided as a template only and should be reviewed by a " +
	"qualified legal professional before use. The parties acknowledge that this " +
	"agreement may not be suitable for all situations and that legal advice " +
	"should be sought for specific circumstances."

const signatureLine = "__________________________________________________" // 50 underscores

// Contract builds the contract block sequence: title, date, parties
// narrative, optional effective date, segmented terms, disclaimer page,
// and a signature section for both parties.
func Contract(c record.Contract) []block.Block {
	c = record.ResolveContract(c)
	var blocks []block.Block

	blocks = append(blocks,
		block.NewCentered(block.Run{Text: strings.ToUpper(c.ContractType), Bold: true, Size: 18}),
		block.NewSpacer(spacerHeight),
		block.NewCentered(block.Run{Text: "Date: " + c.Date, Size: 11}),
		block.NewSpacer(spacerHeight),
	)

	blocks = append(blocks, block.NewHeading("PARTIES", 1))
	blocks = append(blocks, block.NewText("This Agreement is entered into between:"))
	blocks = append(blocks, partyBlocks(`Party 1 ("Provider"): `, c.Party1)...)
	blocks = append(blocks, block.NewText("AND"))
	blocks = append(blocks, partyBlocks(`Party 2 ("Client"): `, c.Party2)...)
	blocks = append(blocks, block.NewSpacer(spacerHeight))

	if c.EffectiveDate != "" {
		blocks = append(blocks,
			block.NewParagraph(block.Run{Text: "Effective Date: " + c.EffectiveDate, Bold: true}),
			block.NewSpacer(spacerHeight),
		)
	}

	if c.Terms != "" {
		blocks = appendSegments(blocks, c.Terms, ContractSegments, 2)
	}

	blocks = append(blocks,
		block.NewPageBreak(),
		block.NewHeading("LEGAL DISCLAIMER", 1),
		block.NewParagraph(block.Run{Text: legalDisclaimer, Italic: true, Size: 10}),
		block.NewSpacer(spacerHeight),
		block.NewSpacer(spacerHeight),
	)

	blocks = append(blocks, block.NewHeading("SIGNATURES", 1))
	blocks = append(blocks, signatureBlocks("Party 1 (Provider):", c.Party1.Name)...)
	blocks = append(blocks, block.NewSpacer(spacerHeight))
	blocks = append(blocks, signatureBlocks("Party 2 (Client):", c.Party2.Name)...)

	return blocks
}

func partyBlocks(label string, p record.Party) []block.Block {
	out := []block.Block{block.NewText(label + p.Name)}
	if p.Address != "" {
		out = append(out, block.NewText("Address: "+p.Address))
	}
	return out
}

func signatureBlocks(label, name string) []block.Block {
	return []block.Block{
		block.NewSpacer(spacerHeight),
		block.NewParagraph(block.Run{Text: label, Bold: true}),
		block.NewSpacer(spacerHeight),
		block.NewText(signatureLine),
		block.NewText("Signature: " + name),
		block.NewSpacer(spacerHeight),
		block.NewText(signatureLine),
		block.NewText("Date:"),
	}
}
