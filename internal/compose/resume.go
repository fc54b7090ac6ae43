package compose

import (
	"fmt"
	"strings"

	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/record"
)

// Resume builds the resume block sequence. Sections appear only when their
// source data is non-empty; an all-defaults record still yields the header.
func Resume(r record.Resume) []block.Block {
	r = record.ResolveResume(r)
	var blocks []block.Block

	// Header: name, contact line, optional links line.
	blocks = append(blocks, block.NewCentered(block.Run{
		Text: r.PersonalInfo.Name, Bold: true, Size: 24, Color: accentColor,
	}))
	contact := joinPresent(r.PersonalInfo.Email, r.PersonalInfo.Phone, r.PersonalInfo.Location)
	blocks = append(blocks, block.NewCentered(block.Run{Text: contact, Size: 10}))

	if r.PersonalInfo.LinkedIn != "" || r.PersonalInfo.Website != "" {
		var links []string
		if r.PersonalInfo.LinkedIn != "" {
			links = append(links, "LinkedIn: "+r.PersonalInfo.LinkedIn)
		}
		if r.PersonalInfo.Website != "" {
			links = append(links, "Portfolio: "+r.PersonalInfo.Website)
		}
		blocks = append(blocks, block.NewCentered(block.Run{
			Text: strings.Join(links, " | "), Size: 10, Color: linkColor,
		}))
	}
	blocks = append(blocks, block.NewSpacer(spacerHeight))

	if r.Summary != "" {
		blocks = append(blocks,
			block.NewHeading("PROFESSIONAL SUMMARY", 1),
			block.NewText(r.Summary),
			block.NewSpacer(spacerHeight),
		)
	}

	if len(r.Experience) > 0 {
		blocks = append(blocks, block.NewHeading("WORK EXPERIENCE", 1))
		for _, exp := range r.Experience {
			blocks = append(blocks, block.NewParagraph(block.Run{Text: exp.Title, Bold: true, Size: 12}))
			line := fmt.Sprintf("%s | %s - %s", exp.Company, exp.StartDate, exp.EndDate)
			if exp.Location != "" {
				line += " | " + exp.Location
			}
			blocks = append(blocks, block.NewParagraph(block.Run{Text: line, Italic: true, Size: 11}))
			for _, resp := range exp.Responsibilities {
				blocks = append(blocks, block.NewBullet(resp))
			}
			blocks = append(blocks, block.NewSpacer(spacerHeight))
		}
	}

	if len(r.Education) > 0 {
		blocks = append(blocks, block.NewHeading("EDUCATION", 1))
		for _, edu := range r.Education {
			blocks = append(blocks,
				block.NewParagraph(block.Run{
					Text: fmt.Sprintf("%s in %s", edu.Degree, edu.Field), Bold: true, Size: 12,
				}),
				block.NewParagraph(block.Run{
					Text: fmt.Sprintf("%s | %s", edu.School, edu.GraduationDate), Italic: true, Size: 11,
				}),
			)
			var details []string
			if edu.GPA != "" {
				details = append(details, "GPA: "+edu.GPA)
			}
			if edu.Honors != "" {
				details = append(details, edu.Honors)
			}
			if len(details) > 0 {
				p := block.NewText(strings.Join(details, " | "))
				p.Paragraph.IndentPts = 18
				blocks = append(blocks, p)
			}
			blocks = append(blocks, block.NewSpacer(spacerHeight))
		}
	}

	if !r.Skills.IsZero() {
		blocks = append(blocks, block.NewHeading("SKILLS", 1))
		blocks = append(blocks, skillBlocks(r.Skills, 11)...)
		blocks = append(blocks, block.NewSpacer(spacerHeight))
	}

	if len(r.Certifications) > 0 {
		blocks = append(blocks, block.NewHeading("CERTIFICATIONS", 1))
		for _, cert := range r.Certifications {
			blocks = append(blocks, block.NewBullet(certLine(cert)))
		}
	}

	if len(r.Projects) > 0 {
		blocks = append(blocks, block.NewHeading("PROJECTS", 1))
		for _, proj := range r.Projects {
			blocks = append(blocks, block.NewParagraph(block.Run{Text: proj.Name, Bold: true, Size: 12}))
			if proj.Description != "" {
				p := block.NewText(proj.Description)
				p.Paragraph.IndentPts = 18
				blocks = append(blocks, p)
			}
			if len(proj.Technologies) > 0 {
				p := block.NewParagraph(
					block.Run{Text: "Technologies: ", Italic: true, Size: 10},
					block.Run{Text: strings.Join(proj.Technologies, ", "), Size: 10},
				)
				p.Paragraph.IndentPts = 18
				blocks = append(blocks, p)
			}
			blocks = append(blocks, block.NewSpacer(spacerHeight))
		}
	}

	return blocks
}

// skillBlocks renders the two skills shapes: categorized entries become one
// "<category>: <skills>" paragraph per category in insertion order, a flat
// list becomes a single comma-joined paragraph.
func skillBlocks(s record.Skills, size float64) []block.Block {
	if s.Categorized() {
		out := make([]block.Block, 0, len(s.Categories))
		for _, cat := range s.Categories {
			out = append(out, block.NewParagraph(
				block.Run{Text: cat.Name + ": ", Bold: true, Size: size},
				block.Run{Text: strings.Join(cat.Skills, ", "), Size: size},
			))
		}
		return out
	}
	p := block.NewParagraph(block.Run{Text: strings.Join(s.List, ", "), Size: size})
	p.Paragraph.IndentPts = 18
	return []block.Block{p}
}

func certLine(cert record.Certification) string {
	line := fmt.Sprintf("%s - %s", cert.Name, cert.Issuer)
	if cert.Date != "" {
		line += fmt.Sprintf(" (%s)", cert.Date)
	}
	return line
}
