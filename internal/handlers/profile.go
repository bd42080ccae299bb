package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-backend/internal/profile"
)

// ProfileHandler serves the static reference data the site pages are built
// from. Everything here is read-only.
type ProfileHandler struct {
	data profile.Data
}

func NewProfileHandler(data profile.Data) *ProfileHandler {
	return &ProfileHandler{data: data}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data)
}

func (h *ProfileHandler) GetSkills(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"skills": h.data.Skills})
}

func (h *ProfileHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"projects": h.data.Projects})
}

func (h *ProfileHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	for _, p := range h.data.Projects {
		if p.Slug == slug {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Project not found", r))
}
