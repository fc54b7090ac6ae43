package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/verolabs/docforge/internal/config"
	"github.com/verolabs/docforge/internal/engine"
	"github.com/verolabs/docforge/internal/enhance"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Server is the HTTP API server for docforge.
type Server struct {
	router   chi.Router
	engine   *engine.Engine
	enhancer *enhance.Enhancer
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(eng *engine.Engine, enhancer *enhance.Enhancer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		engine:   eng,
		enhancer: enhancer,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Generation endpoints; bearer auth only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/generate-resume", s.handleGenerateResume)
		r.Post("/generate-cover-letter", s.handleGenerateCoverLetter)
		r.Post("/generate-proposal", s.handleGenerateProposal)
		r.Post("/generate-invoice", s.handleGenerateInvoice)
		r.Post("/generate-contract", s.handleGenerateContract)
		r.Post("/generate-portfolio-pdf", s.handleGeneratePortfolioPDF)

		r.Post("/enhance-description", s.handleEnhanceDescription)
		r.Post("/enhance-skills-summary", s.handleEnhanceSkillsSummary)
	})

	s.router = r
}
