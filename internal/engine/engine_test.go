package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/enhance"
	"github.com/verolabs/docforge/internal/record"
)

// stubRenderer records calls and returns canned bytes.
type stubRenderer struct {
	data   []byte
	err    error
	called int
}

func (r *stubRenderer) Render(blocks []block.Block, page block.PageConfig) ([]byte, error) {
	r.called++
	if r.err != nil {
		return nil, r.err
	}
	return r.data, nil
}

// stubGen satisfies enhance.TextGenerator.
type stubGen struct {
	text string
	err  error
}

func (s *stubGen) Generate(_ context.Context, _ enhance.Request) (string, error) {
	return s.text, s.err
}

func newTestEngine(docx, pdf *stubRenderer, gen enhance.TextGenerator) *Engine {
	var enhancer *enhance.Enhancer
	if gen != nil {
		enhancer = enhance.NewEnhancer(gen, nil)
	}
	return New(docx, pdf, enhancer, nil)
}

func boolPtr(b bool) *bool { return &b }

func TestInvoiceRequiresItems(t *testing.T) {
	docx := &stubRenderer{data: []byte("doc")}
	eng := newTestEngine(docx, &stubRenderer{}, nil)

	_, err := eng.Invoice(context.Background(), record.Invoice{})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T (%v), want *ValidationError", err, err)
	}
	if docx.called != 0 {
		t.Error("renderer must not run after validation failure")
	}
}

func TestInvoiceFilename(t *testing.T) {
	eng := newTestEngine(&stubRenderer{data: []byte("doc")}, &stubRenderer{}, nil)

	doc, err := eng.Invoice(context.Background(), record.Invoice{
		InvoiceNumber: "INV/2024/07",
		Items:         []record.LineItem{{Description: "A", Quantity: 1, Rate: 100}},
	})
	if err != nil {
		t.Fatalf("invoice: %v", err)
	}
	if doc.Filename != "Invoice_INV-2024-07.docx" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if doc.ContentType != MIMEDocx {
		t.Errorf("content type = %q", doc.ContentType)
	}
}

func TestResumeFilename(t *testing.T) {
	eng := newTestEngine(&stubRenderer{data: []byte("doc")}, &stubRenderer{}, nil)

	doc, err := eng.Resume(context.Background(), record.Resume{
		PersonalInfo: record.PersonalInfo{Name: "John Doe"},
	})
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if doc.Filename != "John_Doe_Resume.docx" {
		t.Errorf("filename = %q", doc.Filename)
	}

	doc, err = eng.Resume(context.Background(), record.Resume{})
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if doc.Filename != "Resume_Resume.docx" {
		t.Errorf("default filename = %q", doc.Filename)
	}
}

func TestCoverLetterRequiresContentSource(t *testing.T) {
	eng := newTestEngine(&stubRenderer{data: []byte("doc")}, &stubRenderer{}, nil)

	_, err := eng.CoverLetter(context.Background(), record.CoverLetter{
		GenerateAI: boolPtr(false),
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T (%v), want *ValidationError", err, err)
	}
}

func TestCoverLetterCustomContent(t *testing.T) {
	eng := newTestEngine(&stubRenderer{data: []byte("doc")}, &stubRenderer{}, nil)

	doc, err := eng.CoverLetter(context.Background(), record.CoverLetter{
		Name:          "John Doe",
		Company:       "Tech Corp",
		GenerateAI:    boolPtr(false),
		CustomContent: "Dear team, here is my letter.",
	})
	if err != nil {
		t.Fatalf("cover letter: %v", err)
	}
	if doc.Filename != "John_Doe_CoverLetter_Tech_Corp.docx" {
		t.Errorf("filename = %q", doc.Filename)
	}
}

func TestCoverLetterGeneratedContent(t *testing.T) {
	eng := newTestEngine(&stubRenderer{data: []byte("doc")}, &stubRenderer{},
		&stubGen{text: "Generated letter body."})

	doc, err := eng.CoverLetter(context.Background(), record.CoverLetter{Name: "Jane Roe"})
	if err != nil {
		t.Fatalf("cover letter: %v", err)
	}
	if !strings.HasPrefix(doc.Filename, "Jane_Roe_CoverLetter_") {
		t.Errorf("filename = %q", doc.Filename)
	}
}

func TestCoverLetterGenerationFailureIsFatal(t *testing.T) {
	eng := newTestEngine(&stubRenderer{data: []byte("doc")}, &stubRenderer{},
		&stubGen{err: errors.New("quota exceeded")})

	_, err := eng.CoverLetter(context.Background(), record.CoverLetter{})
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("got %T (%v), want *GenerationError", err, err)
	}
}

func TestProposalFilename(t *testing.T) {
	eng := newTestEngine(&stubRenderer{data: []byte("doc")}, &stubRenderer{}, nil)

	doc, err := eng.Proposal(context.Background(), record.Proposal{
		ClientName:   "ABC Company",
		ProjectTitle: "E-commerce Website",
		GenerateAI:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("proposal: %v", err)
	}
	if doc.Filename != "Proposal_ABC_Company_E-commerce_Website.docx" {
		t.Errorf("filename = %q", doc.Filename)
	}
}

func TestContractFilename(t *testing.T) {
	eng := newTestEngine(&stubRenderer{data: []byte("doc")}, &stubRenderer{}, nil)

	doc, err := eng.Contract(context.Background(), record.Contract{
		ContractType: "Freelance Service Agreement",
		GenerateAI:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("contract: %v", err)
	}
	if doc.Filename != "Freelance_Service_Agreement_Contract.docx" {
		t.Errorf("filename = %q", doc.Filename)
	}
}

func TestPortfolioUsesPDFRenderer(t *testing.T) {
	docx := &stubRenderer{data: []byte("doc")}
	pdf := &stubRenderer{data: []byte("%PDF")}
	eng := newTestEngine(docx, pdf, nil)

	doc, err := eng.Portfolio(context.Background(), record.Portfolio{Name: "John Doe"})
	if err != nil {
		t.Fatalf("portfolio: %v", err)
	}
	if doc.Filename != "John_Doe_Portfolio.pdf" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if doc.ContentType != MIMEPDF {
		t.Errorf("content type = %q", doc.ContentType)
	}
	if pdf.called != 1 || docx.called != 0 {
		t.Errorf("renderer calls pdf=%d docx=%d", pdf.called, docx.called)
	}
}

func TestRenderFailureIsGenerationError(t *testing.T) {
	eng := newTestEngine(&stubRenderer{err: errors.New("serialize failed")}, &stubRenderer{}, nil)

	_, err := eng.Resume(context.Background(), record.Resume{})
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("got %T (%v), want *GenerationError", err, err)
	}
	if gerr.Kind != KindResume {
		t.Errorf("kind = %q", gerr.Kind)
	}
}
