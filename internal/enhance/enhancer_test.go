package enhance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/verolabs/docforge/internal/record"
)

// stubGen is a deterministic TextGenerator for tests.
type stubGen struct {
	fn    func(req Request) (string, error)
	calls int
}

func (s *stubGen) Generate(_ context.Context, req Request) (string, error) {
	s.calls++
	return s.fn(req)
}

func TestEnhanceResumeFailureIsolation(t *testing.T) {
	gen := &stubGen{fn: func(req Request) (string, error) {
		if strings.Contains(req.Prompt, "Project Two") {
			return "", errors.New("model unavailable")
		}
		return "Developed a scalable platform used across many teams.", nil
	}}
	e := NewEnhancer(gen, nil)

	in := record.Resume{
		EnhanceWithAI: true,
		Projects: []record.Project{
			{Name: "Project One", Description: "original one description text"},
			{Name: "Project Two", Description: "original two description text"},
			{Name: "Project Three", Description: "original three description text"},
		},
	}
	out := e.EnhanceResume(context.Background(), in)

	want := "Developed a scalable platform used across many teams."
	if out.Projects[0].Description != want {
		t.Errorf("project one = %q, want enhanced", out.Projects[0].Description)
	}
	if out.Projects[1].Description != "original two description text" {
		t.Errorf("project two = %q, failing call must keep original", out.Projects[1].Description)
	}
	if out.Projects[2].Description != want {
		t.Errorf("project three = %q, want enhanced", out.Projects[2].Description)
	}
	// Input record must not be mutated.
	if in.Projects[0].Description != "original one description text" {
		t.Error("input record was mutated")
	}
}

func TestEnhanceResumeRejectsOptionSummary(t *testing.T) {
	gen := &stubGen{fn: func(req Request) (string, error) {
		return "Option 1: a summary. Option 2: another one entirely.", nil
	}}
	e := NewEnhancer(gen, nil)

	out := e.EnhanceResume(context.Background(), record.Resume{
		Summary: "Original summary text.",
		Skills:  record.Skills{List: []string{"Go"}},
	})
	if out.Summary != "Original summary text." {
		t.Errorf("summary = %q, option response must keep original", out.Summary)
	}
}

func TestEnhanceResumeResponsibilities(t *testing.T) {
	gen := &stubGen{fn: func(req Request) (string, error) {
		return "Led the platform migration to completion.", nil
	}}
	e := NewEnhancer(gen, nil)

	out := e.EnhanceResume(context.Background(), record.Resume{
		Experience: []record.Experience{{
			Title:            "Senior Developer",
			Responsibilities: []string{"did stuff", "other stuff"},
		}},
	})
	for i, resp := range out.Experience[0].Responsibilities {
		if resp != "Led the platform migration to completion." {
			t.Errorf("responsibility %d = %q", i, resp)
		}
	}
}

func TestEnhanceProjectDescriptionEmptyShortCircuits(t *testing.T) {
	gen := &stubGen{fn: func(req Request) (string, error) {
		t.Fatal("generator must not be called for empty description")
		return "", nil
	}}
	e := NewEnhancer(gen, nil)

	got, err := e.EnhanceProjectDescription(context.Background(), record.Project{Name: "X"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if gen.calls != 0 {
		t.Errorf("generator called %d times", gen.calls)
	}
}

func TestEnhancePortfolioBio(t *testing.T) {
	gen := &stubGen{fn: func(req Request) (string, error) {
		if strings.Contains(req.Prompt, "Improve the following text") {
			return "A polished professional bio.", nil
		}
		return "Enhanced project description with plenty of detail.", nil
	}}
	e := NewEnhancer(gen, nil)

	out := e.EnhancePortfolio(context.Background(), record.Portfolio{
		Bio: "rough bio",
		Projects: []record.Project{
			{Name: "P", Description: "rough description"},
		},
	})
	if out.Bio != "A polished professional bio." {
		t.Errorf("bio = %q", out.Bio)
	}
	if out.Projects[0].Description != "Enhanced project description with plenty of detail." {
		t.Errorf("project = %q", out.Projects[0].Description)
	}
}

func TestCoverLetterContentError(t *testing.T) {
	gen := &stubGen{fn: func(req Request) (string, error) {
		return "", errors.New("quota exceeded")
	}}
	e := NewEnhancer(gen, nil)

	_, err := e.CoverLetterContent(context.Background(), record.CoverLetter{})
	var eerr *EnhancementError
	if !errors.As(err, &eerr) {
		t.Fatalf("got %T, want *EnhancementError", err)
	}
	if eerr.Field != "cover_letter" {
		t.Errorf("field = %q", eerr.Field)
	}
}

func TestPromptParameters(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		temp float32
		max  int32
	}{
		{"responsibility", ResponsibilityPrompt("Dev", "did stuff"), 0.4, 2048},
		{"cover_letter", CoverLetterPrompt(record.CoverLetter{}), 0.7, 1500},
		{"proposal", ProposalPrompt(record.Proposal{}), 0.6, 2048},
		{"contract", ContractTermsPrompt("Service Agreement", ""), 0.4, 2048},
		{"skills_summary", SkillsSummaryPrompt([]string{"Go"}, 5), 0.5, 300},
		{"improve", ImprovePrompt("text", "professional"), 0.5, 2048},
	}
	for _, tc := range cases {
		if tc.req.Temperature != tc.temp {
			t.Errorf("%s temperature = %v, want %v", tc.name, tc.req.Temperature, tc.temp)
		}
		if tc.req.MaxTokens != tc.max {
			t.Errorf("%s max tokens = %v, want %v", tc.name, tc.req.MaxTokens, tc.max)
		}
		if tc.req.Prompt == "" {
			t.Errorf("%s prompt is empty", tc.name)
		}
	}
}

func TestCoverLetterPromptTone(t *testing.T) {
	req := CoverLetterPrompt(record.CoverLetter{Tone: "technical"})
	if !strings.Contains(req.Prompt, "Technical and detail-oriented style") {
		t.Error("technical tone guide missing")
	}
	req = CoverLetterPrompt(record.CoverLetter{Tone: "unknown"})
	if !strings.Contains(req.Prompt, "Professional and formal business style") {
		t.Error("unknown tone should fall back to formal")
	}
}

func TestProjectDescriptionPromptAliases(t *testing.T) {
	req := ProjectDescriptionPrompt(record.Project{
		Title:       "Side Project",
		Description: "desc",
		Tech:        []string{"Go", "Postgres"},
	})
	if !strings.Contains(req.Prompt, "Project Name: Side Project") {
		t.Error("title alias not resolved in prompt")
	}
	if !strings.Contains(req.Prompt, "Go, Postgres") {
		t.Error("tech alias not resolved in prompt")
	}
	if !strings.Contains(req.Prompt, "Your Role: Developer") {
		t.Error("default role missing")
	}
}
