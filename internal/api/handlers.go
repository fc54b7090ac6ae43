package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/verolabs/docforge/internal/engine"
	"github.com/verolabs/docforge/internal/record"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "docforge",
		"version":   Version,
		"timestamp": time.Now().Format(time.RFC3339),
		"endpoints": []string{
			"/generate-resume",
			"/generate-cover-letter",
			"/generate-proposal",
			"/generate-invoice",
			"/generate-contract",
			"/generate-portfolio-pdf",
			"/enhance-description",
			"/enhance-skills-summary",
		},
	})
}

func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	var rec record.Resume
	if !s.decode(w, r, &rec) {
		return
	}
	doc, err := s.engine.Resume(r.Context(), rec)
	if err != nil {
		s.writeEngineError(w, "generate resume", err)
		return
	}
	writeDocument(w, doc)
}

func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	var rec record.CoverLetter
	if !s.decode(w, r, &rec) {
		return
	}
	doc, err := s.engine.CoverLetter(r.Context(), rec)
	if err != nil {
		s.writeEngineError(w, "generate cover letter", err)
		return
	}
	writeDocument(w, doc)
}

func (s *Server) handleGenerateProposal(w http.ResponseWriter, r *http.Request) {
	var rec record.Proposal
	if !s.decode(w, r, &rec) {
		return
	}
	doc, err := s.engine.Proposal(r.Context(), rec)
	if err != nil {
		s.writeEngineError(w, "generate proposal", err)
		return
	}
	writeDocument(w, doc)
}

func (s *Server) handleGenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var rec record.Invoice
	if !s.decode(w, r, &rec) {
		return
	}
	doc, err := s.engine.Invoice(r.Context(), rec)
	if err != nil {
		s.writeEngineError(w, "generate invoice", err)
		return
	}
	writeDocument(w, doc)
}

func (s *Server) handleGenerateContract(w http.ResponseWriter, r *http.Request) {
	var rec record.Contract
	if !s.decode(w, r, &rec) {
		return
	}
	doc, err := s.engine.Contract(r.Context(), rec)
	if err != nil {
		s.writeEngineError(w, "generate contract", err)
		return
	}
	writeDocument(w, doc)
}

func (s *Server) handleGeneratePortfolioPDF(w http.ResponseWriter, r *http.Request) {
	var rec record.Portfolio
	if !s.decode(w, r, &rec) {
		return
	}
	doc, err := s.engine.Portfolio(r.Context(), rec)
	if err != nil {
		s.writeEngineError(w, "generate portfolio pdf", err)
		return
	}
	writeDocument(w, doc)
}

// decode reads the JSON body into v. An empty body or malformed JSON is a
// 400; decode writes the response itself and reports whether the handler
// should continue.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	switch {
	case errors.Is(err, io.EOF):
		writeError(w, http.StatusBadRequest, "no data provided")
		return false
	case err != nil:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid json: %v", err))
		return false
	}
	return true
}

func (s *Server) writeEngineError(w http.ResponseWriter, op string, err error) {
	var verr *engine.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Message)
		return
	}
	s.log.Error(op, "error", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeDocument(w http.ResponseWriter, doc *engine.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
