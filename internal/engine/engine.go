// Package engine dispatches document generation: eager validation, the
// optional enhancement pass, section building, rendering, and the
// filename/MIME policy for every document kind.
package engine

import (
	"context"
	"log/slog"
	"strings"

	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/compose"
	"github.com/verolabs/docforge/internal/enhance"
	"github.com/verolabs/docforge/internal/record"
	"github.com/verolabs/docforge/internal/render"
)

// Kind identifies a document kind in the catalog.
type Kind string

const (
	KindResume      Kind = "resume"
	KindCoverLetter Kind = "cover_letter"
	KindProposal    Kind = "proposal"
	KindInvoice     Kind = "invoice"
	KindContract    Kind = "contract"
	KindPortfolio   Kind = "portfolio"
)

// MIME types of the two output formats.
const (
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEPDF  = "application/pdf"
)

// Document is a finished generation result.
type Document struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Engine ties the builders to the renderers and the enhancement capability.
type Engine struct {
	docx     render.Renderer
	pdf      render.Renderer
	enhancer *enhance.Enhancer
	logger   *slog.Logger
}

// New wires an engine. The enhancer may be nil when no text generation
// capability is configured; AI flags are then ignored and whole-content
// generation requests fail with GenerationError.
func New(docx, pdf render.Renderer, enhancer *enhance.Enhancer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{docx: docx, pdf: pdf, enhancer: enhancer, logger: logger}
}

// Resume generates a resume DOCX, optionally enhancing summary,
// responsibilities and project descriptions first.
func (e *Engine) Resume(ctx context.Context, r record.Resume) (*Document, error) {
	if r.EnhanceWithAI && e.enhancer != nil {
		e.logger.Info("enhancing resume content")
		r = e.enhancer.EnhanceResume(ctx, r)
	}
	name := r.PersonalInfo.Name
	if name == "" {
		name = "Resume"
	}
	return e.renderDocx(KindResume, compose.Resume(r), compose.ResumePage(),
		safeName(name)+"_Resume.docx")
}

// CoverLetter generates a cover letter DOCX. The body comes from
// caller-provided custom content or from the generation capability; having
// neither is a validation failure.
func (e *Engine) CoverLetter(ctx context.Context, c record.CoverLetter) (*Document, error) {
	generateAI := c.GenerateAI == nil || *c.GenerateAI
	switch {
	case generateAI && c.CustomContent == "" && c.Content == "":
		if e.enhancer == nil {
			return nil, &GenerationError{Kind: KindCoverLetter, Err: errNoGenerator}
		}
		e.logger.Info("generating cover letter content")
		content, err := e.enhancer.CoverLetterContent(ctx, c)
		if err != nil {
			return nil, &GenerationError{Kind: KindCoverLetter, Err: err}
		}
		c.Content = content
	case c.CustomContent != "" || c.Content != "":
		// Resolver folds CustomContent into Content.
	default:
		return nil, &ValidationError{
			Message: "either generate_with_ai must be true or custom_content must be provided",
		}
	}

	name := c.Name
	if name == "" {
		name = "Applicant"
	}
	company := c.Company
	if company == "" {
		company = "Company"
	}
	filename := safeName(name) + "_CoverLetter_" + safeName(company) + ".docx"
	return e.renderDocx(KindCoverLetter, compose.CoverLetter(c), compose.CoverLetterPage(), filename)
}

// Proposal generates a proposal DOCX. AI content is optional; without it
// the manual structured sections are used.
func (e *Engine) Proposal(ctx context.Context, p record.Proposal) (*Document, error) {
	generateAI := p.GenerateAI == nil || *p.GenerateAI
	if generateAI && p.CustomContent == "" && p.Content == "" && e.enhancer != nil {
		e.logger.Info("generating proposal content")
		content, err := e.enhancer.ProposalContent(ctx, p)
		if err != nil {
			return nil, &GenerationError{Kind: KindProposal, Err: err}
		}
		p.Content = content
	}

	client := p.ClientName
	if client == "" {
		client = "Client"
	}
	title := p.ProjectTitle
	if title == "" {
		title = "Proposal"
	}
	filename := "Proposal_" + safeName(client) + "_" + safeName(title) + ".docx"
	return e.renderDocx(KindProposal, compose.Proposal(p), compose.ProposalPage(), filename)
}

// Invoice generates an invoice DOCX. Items are the only required field in
// the catalog; the check runs before any other work.
func (e *Engine) Invoice(ctx context.Context, inv record.Invoice) (*Document, error) {
	if len(inv.Items) == 0 {
		return nil, &ValidationError{Message: "invoice items are required"}
	}
	number := inv.InvoiceNumber
	if number == "" {
		number = "INV-001"
	}
	filename := "Invoice_" + strings.ReplaceAll(number, "/", "-") + ".docx"
	return e.renderDocx(KindInvoice, compose.Invoice(inv), compose.InvoicePage(), filename)
}

// Contract generates a contract DOCX. Terms are caller-provided or
// AI-generated from the contract type and custom requirements.
func (e *Engine) Contract(ctx context.Context, c record.Contract) (*Document, error) {
	generateAI := c.GenerateAI == nil || *c.GenerateAI
	if generateAI && c.CustomContent == "" && c.Terms == "" && e.enhancer != nil {
		e.logger.Info("generating contract terms")
		contractType := c.ContractType
		if contractType == "" {
			contractType = "Service Agreement"
		}
		terms, err := e.enhancer.ContractTerms(ctx, contractType, c.CustomTerms)
		if err != nil {
			return nil, &GenerationError{Kind: KindContract, Err: err}
		}
		c.Terms = terms
	}

	contractType := c.ContractType
	if contractType == "" {
		contractType = "Contract"
	}
	filename := safeName(contractType) + "_Contract.docx"
	return e.renderDocx(KindContract, compose.Contract(c), compose.ContractPage(), filename)
}

// Portfolio generates the portfolio PDF, optionally enhancing bio and
// project descriptions first.
func (e *Engine) Portfolio(ctx context.Context, p record.Portfolio) (*Document, error) {
	if p.EnhanceWithAI && e.enhancer != nil {
		e.logger.Info("enhancing portfolio content")
		p = e.enhancer.EnhancePortfolio(ctx, p)
	}
	name := p.Name
	if name == "" {
		name = "Portfolio"
	}
	data, err := e.pdf.Render(compose.Portfolio(p), compose.PortfolioPage())
	if err != nil {
		return nil, &GenerationError{Kind: KindPortfolio, Err: err}
	}
	return &Document{
		Data:        data,
		Filename:    safeName(name) + "_Portfolio.pdf",
		ContentType: MIMEPDF,
	}, nil
}

func (e *Engine) renderDocx(kind Kind, blocks []block.Block, page block.PageConfig, filename string) (*Document, error) {
	data, err := e.docx.Render(blocks, page)
	if err != nil {
		return nil, &GenerationError{Kind: kind, Err: err}
	}
	return &Document{Data: data, Filename: filename, ContentType: MIMEDocx}, nil
}

// safeName replaces spaces for filesystem-safe attachment names.
func safeName(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
