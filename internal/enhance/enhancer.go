package enhance

import (
	"context"
	"log/slog"

	"github.com/verolabs/docforge/internal/record"
)

// Enhancer runs the per-field enrichment passes over document records.
// Every pass is failure-isolated: a failed or rejected model response is
// logged and the original field value survives.
type Enhancer struct {
	gen    TextGenerator
	logger *slog.Logger
}

// NewEnhancer wires a TextGenerator. A nil logger falls back to the default.
func NewEnhancer(gen TextGenerator, logger *slog.Logger) *Enhancer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enhancer{gen: gen, logger: logger}
}

// EnhanceResponsibility rewrites one responsibility line for a role.
func (e *Enhancer) EnhanceResponsibility(ctx context.Context, role, text string) (string, error) {
	out, err := e.gen.Generate(ctx, ResponsibilityPrompt(role, text))
	if err != nil {
		return "", &EnhancementError{Field: "responsibility", Err: err}
	}
	return ScrubLine(out), nil
}

// EnhanceProjectDescription rewrites a project description. An empty
// description short-circuits to empty rather than inventing content.
func (e *Enhancer) EnhanceProjectDescription(ctx context.Context, p record.Project) (string, error) {
	p = record.ResolveProject(p)
	if p.Description == "" {
		e.logger.Warn("project has no description, skipping enhancement", "project", p.Name)
		return "", nil
	}
	out, err := e.gen.Generate(ctx, ProjectDescriptionPrompt(p))
	if err != nil {
		return "", &EnhancementError{Field: "project_description", Err: err}
	}
	return ScrubDescription(out), nil
}

// SkillsSummary generates a professional summary from a skill list.
func (e *Enhancer) SkillsSummary(ctx context.Context, skills []string, years int) (string, error) {
	out, err := e.gen.Generate(ctx, SkillsSummaryPrompt(skills, years))
	if err != nil {
		return "", &EnhancementError{Field: "skills_summary", Err: err}
	}
	return ScrubLine(out), nil
}

// ImproveText is the general purpose improvement pass.
func (e *Enhancer) ImproveText(ctx context.Context, text, style string) (string, error) {
	out, err := e.gen.Generate(ctx, ImprovePrompt(text, style))
	if err != nil {
		return "", &EnhancementError{Field: "text", Err: err}
	}
	return ScrubLine(out), nil
}

// CoverLetterContent generates the full letter body.
func (e *Enhancer) CoverLetterContent(ctx context.Context, c record.CoverLetter) (string, error) {
	out, err := e.gen.Generate(ctx, CoverLetterPrompt(c))
	if err != nil {
		return "", &EnhancementError{Field: "cover_letter", Err: err}
	}
	return out, nil
}

// ProposalContent generates the full proposal body.
func (e *Enhancer) ProposalContent(ctx context.Context, p record.Proposal) (string, error) {
	out, err := e.gen.Generate(ctx, ProposalPrompt(p))
	if err != nil {
		return "", &EnhancementError{Field: "proposal", Err: err}
	}
	return out, nil
}

// ContractTerms generates contract terms for a contract type.
func (e *Enhancer) ContractTerms(ctx context.Context, contractType, customTerms string) (string, error) {
	out, err := e.gen.Generate(ctx, ContractTermsPrompt(contractType, customTerms))
	if err != nil {
		return "", &EnhancementError{Field: "contract_terms", Err: err}
	}
	return out, nil
}

// EnhanceResume runs the full resume pass: summary, every experience
// responsibility, every project description. The input record is not
// mutated.
func (e *Enhancer) EnhanceResume(ctx context.Context, r record.Resume) record.Resume {
	if r.Summary != "" {
		enhanced, err := e.SkillsSummary(ctx, r.Skills.Flatten(), r.YearsExperience)
		switch {
		case err != nil:
			e.logger.Warn("summary enhancement failed, keeping original", "error", err)
		case !acceptSummary(enhanced):
			e.logger.Warn("invalid summary response, keeping original")
		default:
			r.Summary = enhanced
		}
	}

	if len(r.Experience) > 0 {
		exps := make([]record.Experience, len(r.Experience))
		copy(exps, r.Experience)
		for i, exp := range exps {
			if len(exp.Responsibilities) == 0 {
				continue
			}
			resps := make([]string, len(exp.Responsibilities))
			for j, resp := range exp.Responsibilities {
				enhanced, err := e.EnhanceResponsibility(ctx, exp.Title, resp)
				if err != nil || !acceptResponsibility(enhanced) {
					if err != nil {
						e.logger.Warn("responsibility enhancement failed, keeping original", "error", err)
					}
					resps[j] = resp
					continue
				}
				resps[j] = enhanced
			}
			exps[i].Responsibilities = resps
		}
		r.Experience = exps
	}

	r.Projects = e.enhanceProjects(ctx, r.Projects, acceptProjectDescription)
	return r
}

// EnhancePortfolio runs the portfolio pass: bio plus project descriptions.
func (e *Enhancer) EnhancePortfolio(ctx context.Context, p record.Portfolio) record.Portfolio {
	if p.Bio != "" {
		improved, err := e.ImproveText(ctx, p.Bio, "professional")
		if err != nil || improved == "" {
			if err != nil {
				e.logger.Warn("bio enhancement failed, keeping original", "error", err)
			}
		} else {
			p.Bio = improved
		}
	}
	p.Projects = e.enhanceProjects(ctx, p.Projects, func(s string) bool { return s != "" })
	return p
}

func (e *Enhancer) enhanceProjects(ctx context.Context, projects []record.Project, accept func(string) bool) []record.Project {
	if len(projects) == 0 {
		return projects
	}
	out := make([]record.Project, len(projects))
	copy(out, projects)
	for i, proj := range out {
		if proj.Description == "" {
			continue
		}
		enhanced, err := e.EnhanceProjectDescription(ctx, proj)
		if err != nil || !accept(enhanced) {
			if err != nil {
				e.logger.Warn("project enhancement failed, keeping original",
					"project", proj.Name, "error", err)
			}
			continue
		}
		out[i].Description = enhanced
	}
	return out
}
