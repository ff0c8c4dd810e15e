package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/alexanderramin/neuroguard/internal/contract"
	"github.com/alexanderramin/neuroguard/internal/service"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Build(r.Context())
	if err != nil {
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, view); err != nil {
		s.logger.ErrorContext(r.Context(), "page render failed", "request_id", requestID(r.Context()), "error", err)
		http.Error(w, "page could not be rendered", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// figureResponse is returned by the figure endpoints. Figure is nil when
// the section shows a notice instead.
type figureResponse struct {
	Section string          `json:"section"`
	Figure  any             `json:"figure"`
	Notice  *noticeResponse `json:"notice,omitempty"`
}

type noticeResponse struct {
	Kind    contract.NoticeKind `json:"kind"`
	Message string              `json:"message"`
	Details []string            `json:"details,omitempty"`
}

func (s *Server) handleFigure(section string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := s.dashboard.Build(r.Context())
		if err != nil {
			http.Error(w, "request cancelled", http.StatusServiceUnavailable)
			return
		}

		sec := view.Timeline
		if section == service.SectionMap {
			sec = view.Map
		}

		resp := figureResponse{Section: section}
		status := http.StatusOK
		if sec.Figure != nil {
			resp.Figure = sec.Figure
		} else if sec.Notice != nil {
			resp.Notice = &noticeResponse{Kind: sec.Notice.Kind, Message: sec.Notice.Message, Details: sec.Notice.Details}
			if sec.Notice.Kind != contract.NoticeEmpty {
				status = http.StatusUnprocessableEntity
			}
		}
		s.writeJSON(w, r, status, resp)
	}
}

type milestoneResponse struct {
	Year    string  `json:"year"`
	Phase   string  `json:"phase"`
	Details string  `json:"details"`
	Stagger float64 `json:"stagger"`
}

type institutionResponse struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type datasetResponse struct {
	Name         string                `json:"name"`
	Years        []string              `json:"years"`
	Milestones   []milestoneResponse   `json:"milestones"`
	Institutions []institutionResponse `json:"institutions"`
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	d, err := s.dashboard.Dataset(r.Context())
	if err != nil {
		s.writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}

	resp := datasetResponse{
		Name:         d.Name,
		Years:        d.Years,
		Milestones:   make([]milestoneResponse, 0, len(d.Milestones)),
		Institutions: make([]institutionResponse, 0, len(d.Institutions)),
	}
	for _, m := range d.Milestones {
		resp.Milestones = append(resp.Milestones, milestoneResponse{Year: m.Year, Phase: m.Phase, Details: m.Details, Stagger: m.Stagger})
	}
	for _, inst := range d.Institutions {
		resp.Institutions = append(resp.Institutions, institutionResponse{Name: inst.Name, Lat: inst.Latitude, Lon: inst.Longitude})
	}
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   s.clock().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WarnContext(r.Context(), "writing response failed", "request_id", requestID(r.Context()), "error", err)
	}
}
