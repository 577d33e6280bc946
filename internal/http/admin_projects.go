package httpapi

import (
	"encoding/json"
	"net/http"

	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) AdminListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := services.ListProjects(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]ProjectCardDTO{"items": projectCards(projects)})
}

func (s *Server) AdminGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := services.GetProjectByID(s.DB, chi.URLParam(r, "projectId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projectDetail(project, true, ""))
}

func (s *Server) AdminCreateProject(w http.ResponseWriter, r *http.Request) {
	var req services.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	project, err := services.CreateProject(s.DB, s.Cache, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projectDetail(project, true, ""))
}

func (s *Server) AdminUpdateProject(w http.ResponseWriter, r *http.Request) {
	var req services.ProjectInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	project, err := services.UpdateProject(s.DB, s.Cache, chi.URLParam(r, "projectId"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, projectDetail(project, true, ""))
}

func (s *Server) AdminDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteProject(s.DB, s.Cache, chi.URLParam(r, "projectId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
