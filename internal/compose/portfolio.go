package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/record"
)

// timeNow is swapped in tests that pin the footer date.
var timeNow = time.Now

// Portfolio builds the portfolio block sequence for PDF export: header with
// contact links, ruled divider, then summary, skills, experience, projects,
// education and certification sections mirroring the resume policy, closed
// by a generation footer.
func Portfolio(p record.Portfolio) []block.Block {
	p = record.ResolvePortfolio(p)
	var blocks []block.Block

	blocks = append(blocks,
		block.NewCentered(block.Run{Text: p.Name, Bold: true, Size: 24, Color: accentColor}),
		block.NewCentered(block.Run{Text: p.Title, Size: 14, Color: mutedColor}),
	)

	var contact []block.Run
	appendPart := func(r block.Run) {
		if len(contact) > 0 {
			contact = append(contact, block.Run{Text: " | ", Size: 10, Color: mutedColor})
		}
		contact = append(contact, r)
	}
	if p.Contact.Email != "" {
		appendPart(block.Run{Text: p.Contact.Email, Size: 10, Color: mutedColor})
	}
	if p.Contact.Phone != "" {
		appendPart(block.Run{Text: p.Contact.Phone, Size: 10, Color: mutedColor})
	}
	if p.Contact.Website != "" {
		appendPart(block.Run{Text: p.Contact.Website, Size: 10, Color: linkColor, Link: p.Contact.Website})
	}
	if p.Contact.LinkedIn != "" {
		appendPart(block.Run{Text: "LinkedIn: " + p.Contact.LinkedIn, Size: 10, Color: mutedColor})
	}
	if len(contact) > 0 {
		blocks = append(blocks, block.NewCentered(contact...), block.NewSpacer(spacerHeight))
	}

	blocks = append(blocks,
		block.NewRule(2, accentColor),
		block.NewSpacer(spacerHeight),
	)

	if p.Bio != "" {
		blocks = append(blocks,
			block.NewHeading("PROFESSIONAL SUMMARY", 2),
			block.NewText(p.Bio),
			block.NewSpacer(spacerHeight),
		)
	}

	if !p.Skills.IsZero() {
		blocks = append(blocks, block.NewHeading("SKILLS", 2))
		blocks = append(blocks, skillBlocks(p.Skills, 11)...)
		blocks = append(blocks, block.NewSpacer(spacerHeight))
	}

	if len(p.Experience) > 0 {
		blocks = append(blocks, block.NewHeading("WORK EXPERIENCE", 2))
		for _, exp := range p.Experience {
			title := exp.Title
			if title == "" {
				title = "Position"
			}
			company := exp.Company
			if company == "" {
				company = "Company"
			}
			start := exp.StartDate
			if start == "" {
				start = "Start"
			}
			end := exp.EndDate
			if end == "" {
				end = "Present"
			}
			blocks = append(blocks, block.NewParagraph(
				block.Run{Text: title, Bold: true, Size: 11},
				block.Run{Text: " at " + company, Size: 11},
			))
			meta := start + " - " + end
			if exp.Location != "" {
				meta += " | " + exp.Location
			}
			blocks = append(blocks, block.NewParagraph(block.Run{Text: meta, Italic: true, Size: 11}))
			for _, resp := range exp.Responsibilities {
				blocks = append(blocks, block.NewBullet(resp))
			}
			blocks = append(blocks, block.NewSpacer(spacerHeight*0.75))
		}
	}

	if len(p.Projects) > 0 {
		blocks = append(blocks, block.NewHeading("PROJECTS", 2))
		for _, proj := range p.Projects {
			blocks = append(blocks, block.NewParagraph(block.Run{Text: proj.Name, Bold: true, Size: 11}))
			if proj.Description != "" {
				blocks = append(blocks, block.NewText(proj.Description))
			}
			if len(proj.Technologies) > 0 {
				blocks = append(blocks, block.NewParagraph(block.Run{
					Text: "Technologies: " + strings.Join(proj.Technologies, ", "), Italic: true, Size: 11,
				}))
			}
			if proj.URL != "" {
				blocks = append(blocks, block.NewParagraph(block.Run{
					Text: proj.URL, Size: 11, Color: linkColor, Link: proj.URL,
				}))
			}
			blocks = append(blocks, block.NewSpacer(spacerHeight*0.75))
		}
	}

	if len(p.Education) > 0 {
		blocks = append(blocks, block.NewHeading("EDUCATION", 2))
		for _, edu := range p.Education {
			degree := edu.Degree
			if degree == "" {
				degree = "Degree"
			}
			field := edu.Field
			if field == "" {
				field = "Field"
			}
			school := edu.School
			if school == "" {
				school = "School"
			}
			grad := edu.GraduationDate
			if grad == "" {
				grad = "Graduation Date"
			}
			blocks = append(blocks,
				block.NewParagraph(block.Run{Text: degree + " in " + field, Bold: true, Size: 11}),
				block.NewParagraph(block.Run{Text: school + " | " + grad, Italic: true, Size: 11}),
			)
			if edu.GPA != "" {
				blocks = append(blocks, block.NewText("GPA: "+edu.GPA))
			}
			if edu.Honors != "" {
				blocks = append(blocks, block.NewText(edu.Honors))
			}
			blocks = append(blocks, block.NewSpacer(spacerHeight*0.75))
		}
	}

	if len(p.Certifications) > 0 {
		blocks = append(blocks, block.NewHeading("CERTIFICATIONS", 2))
		for _, cert := range p.Certifications {
			name := cert.Name
			if name == "" {
				name = "Certification"
			}
			issuer := cert.Issuer
			if issuer == "" {
				issuer = "Issuer"
			}
			blocks = append(blocks, block.NewBullet(certLine(record.Certification{
				Name: name, Issuer: issuer, Date: cert.Date,
			})))
		}
	}

	blocks = append(blocks,
		block.NewSpacer(spacerHeight*3),
		block.NewRule(1, "CCCCCC"),
		block.NewCentered(block.Run{
			Text:  fmt.Sprintf("Generated on %s", timeNow().Format("January 2, 2006")),
			Size:  10,
			Color: mutedColor,
		}),
	)

	return blocks
}
