package api

import (
	"net/http"

	"github.com/verolabs/docforge/internal/record"
)

type enhanceDescriptionRequest struct {
	Text         string   `json:"text"`
	Context      string   `json:"context"`
	Role         string   `json:"role"`
	Technologies []string `json:"technologies"`
	YourRole     string   `json:"your_role"`
}

func (s *Server) handleEnhanceDescription(w http.ResponseWriter, r *http.Request) {
	var req enhanceDescriptionRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	var (
		enhanced string
		err      error
	)
	switch req.Context {
	case "resume":
		enhanced, err = s.enhancer.EnhanceResponsibility(r.Context(), req.Role, req.Text)
	case "portfolio":
		enhanced, err = s.enhancer.EnhanceProjectDescription(r.Context(), record.Project{
			Title:        req.Role,
			Description:  req.Text,
			Technologies: req.Technologies,
			Role:         req.YourRole,
		})
	default:
		enhanced, err = s.enhancer.ImproveText(r.Context(), req.Text, "professional")
	}
	if err != nil {
		s.log.Error("enhance description", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"original": req.Text,
		"enhanced": enhanced,
		"success":  true,
	})
}

type enhanceSkillsRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
}

func (s *Server) handleEnhanceSkillsSummary(w http.ResponseWriter, r *http.Request) {
	var req enhanceSkillsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Skills) == 0 {
		writeError(w, http.StatusBadRequest, "skills list is required")
		return
	}

	summary, err := s.enhancer.SkillsSummary(r.Context(), req.Skills, req.ExperienceYears)
	if err != nil {
		s.log.Error("enhance skills summary", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"skills":  req.Skills,
		"summary": summary,
		"success": true,
	})
}
