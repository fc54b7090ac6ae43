package enhance

import (
	"fmt"
	"strings"

	"github.com/verolabs/docforge/internal/record"
)

// toneGuides maps the cover letter tone field to a style instruction. An
// unknown tone falls back to formal.
var toneGuides = map[string]string{
	"formal":    "Professional and formal business style",
	"creative":  "Engaging and creative while remaining professional",
	"technical": "Technical and detail-oriented style",
}

// ResponsibilityPrompt rewrites one resume responsibility line. Low
// temperature and strict single-answer instructions keep the model from
// returning option lists.
func ResponsibilityPrompt(role, text string) Request {
	prompt := fmt.Sprintf(`You are a professional resume writer. Enhance the following job responsibility for a resume.

Role: %s
Original Description: %s

CRITICAL INSTRUCTIONS:
1. Write ONLY the enhanced description - NO options, NO choices, NO explanations
2. Do NOT include phrases like "Here are options" or "Choose one"
3. Write ONE final bullet point or sentence
4. Use strong action verbs (led, developed, implemented, optimized, etc.)
5. Focus on impact and measurable results when information allows
6. Keep it concise (1-2 sentences maximum)
7. Professional tone
8. Do NOT fabricate numbers or achievements not in the original
9. Write in past tense for completed roles

Write the enhanced description now (ONLY the text, nothing else):`, role, text)
	return Request{Prompt: prompt, Temperature: 0.4, MaxTokens: 2048}
}

// ProjectDescriptionPrompt rewrites a project description. The project is
// resolved first so name/title and technologies/tech aliases both work.
func ProjectDescriptionPrompt(p record.Project) Request {
	p = record.ResolveProject(p)
	tech := "Not specified"
	if len(p.Technologies) > 0 {
		tech = strings.Join(p.Technologies, ", ")
	}
	prompt := fmt.Sprintf(`You are a professional resume writer. Enhance the following project description for a resume.

Project Name: %s
Current Description: %s
Technologies Used: %s
Your Role: %s

CRITICAL INSTRUCTIONS:
1. Respond with ONLY the enhanced description text - NO options, NO choices, NO explanations
2. Do NOT include phrases like "Here are options" or "Choose one"
3. Do NOT include numbered lists or multiple versions
4. Write ONE final, polished description in 2-4 sentences
5. Use strong action verbs (developed, engineered, implemented, built)
6. Quantify impact where the original description allows
7. Highlight technical skills and problem-solving
8. Keep it professional and concise
9. Base it ONLY on information provided - do NOT invent features
10. Write in past tense if project is complete, present tense if ongoing

Write the enhanced description now (ONLY the description, nothing else):`, p.Name, p.Description, tech, p.Role)
	return Request{Prompt: prompt, Temperature: 0.4, MaxTokens: 2048}
}

// CoverLetterPrompt generates a full cover letter body from the record.
func CoverLetterPrompt(c record.CoverLetter) Request {
	tone := toneGuides[c.Tone]
	if tone == "" {
		tone = toneGuides["formal"]
	}
	name := c.Name
	if name == "" {
		name = "Applicant"
	}
	company := c.Company
	if company == "" {
		company = "the company"
	}
	position := c.Position
	if position == "" {
		position = "the position"
	}
	experience := c.Experience
	if experience == "" {
		experience = "No experience provided"
	}
	prompt := fmt.Sprintf(`Write a compelling cover letter with the following details:

Applicant Name: %s
Company: %s
Position: %s
Relevant Skills: %s
Experience Summary: %s

Tone: %s

Structure:
1. Opening paragraph: Show enthusiasm and mention how you learned about the position
2. Body paragraphs (2-3): Highlight relevant skills and experiences
3. Closing paragraph: Express interest in an interview and thank them

Requirements:
- Personalized and specific to the role
- Highlight relevant achievements
- Professional formatting
- 3-4 paragraphs
- Do not include [Date] or address placeholders

Cover Letter:`, name, company, position, strings.Join(c.Skills, ", "), experience, tone)
	return Request{Prompt: prompt, Temperature: 0.7, MaxTokens: 1500}
}

// ProposalPrompt generates a full proposal body following the fixed
// seven-section outline.
func ProposalPrompt(p record.Proposal) Request {
	client := p.ClientName
	if client == "" {
		client = "Client"
	}
	project := p.ProjectTitle
	if project == "" {
		project = "Project"
	}
	scope := p.Scope
	if scope == "" {
		scope = "Not specified"
	}
	timeline := p.Timeline
	if timeline == "" {
		timeline = "To be determined"
	}
	budget := p.Budget
	if budget == "" {
		budget = "To be discussed"
	}
	prompt := fmt.Sprintf(`Create a professional business proposal with the following details:

Client: %s
Project: %s
Scope: %s
Timeline: %s
Budget: %s
Deliverables: %s

Structure:
1. Executive Summary
2. Project Overview
3. Scope of Work
4. Deliverables
5. Timeline
6. Investment (if budget provided)
7. Next Steps

Requirements:
- Professional and persuasive
- Clear and specific
- Well-structured with sections
- Professional tone

Proposal:`, client, project, scope, timeline, budget, strings.Join(p.Deliverables, ", "))
	return Request{Prompt: prompt, Temperature: 0.6, MaxTokens: 2048}
}

// ContractTermsPrompt generates contract terms for a contract type with
// optional custom requirements.
func ContractTermsPrompt(contractType, customTerms string) Request {
	if customTerms == "" {
		customTerms = "Standard terms"
	}
	prompt := fmt.Sprintf(`Generate professional contract terms for a %s agreement.

Custom Requirements: %s

Include:
1. Scope of Services
2. Payment Terms
3. Timeline and Deadlines
4. Intellectual Property Rights
5. Confidentiality
6. Termination Clause
7. Liability and Warranties

Requirements:
- Professional legal language
- Clear and specific
- Balanced for both parties
- Industry-standard terms
- Add disclaimer that this should be reviewed by legal counsel

Contract Terms:`, contractType, customTerms)
	return Request{Prompt: prompt, Temperature: 0.4, MaxTokens: 2048}
}

// SkillsSummaryPrompt turns a skill list and experience years into a short
// professional summary.
func SkillsSummaryPrompt(skills []string, years int) Request {
	experience := "Entry-level"
	if years > 0 {
		experience = fmt.Sprintf("%d", years)
	}
	prompt := fmt.Sprintf(`You are a professional resume writer. Create a compelling professional summary.

Skills: %s
Years of Experience: %s

CRITICAL INSTRUCTIONS:
1. Write ONLY the professional summary - NO options, NO choices, NO explanations
2. Do NOT include phrases like "Here are options" or "Choose one"
3. Write ONE final professional summary in 2-3 sentences
4. Highlight key technical strengths
5. Focus on value proposition
6. Use professional tone
7. Do NOT exaggerate or fabricate experience
8. Write in third person or first person as appropriate for resume

Write the professional summary now (ONLY the summary text, nothing else):`, strings.Join(skills, ", "), experience)
	return Request{Prompt: prompt, Temperature: 0.5, MaxTokens: 300}
}

// ImprovePrompt is the general purpose text improvement prompt.
func ImprovePrompt(text, style string) Request {
	if style == "" {
		style = "professional"
	}
	prompt := fmt.Sprintf(`Improve the following text in a %s style:

Original: %s

Requirements:
- Fix grammar and spelling
- Improve clarity and flow
- Maintain original meaning
- Use appropriate vocabulary
- Keep similar length

Improved Text:`, style, text)
	return Request{Prompt: prompt, Temperature: 0.5, MaxTokens: 2048}
}
