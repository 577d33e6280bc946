package httpapi

import (
	"encoding/json"
	"net/http"

	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

// Admin CRUD for the resume-shaped entities: experience, education,
// skills and certifications. Each follows the same create/update/delete
// shape as projects and posts.

func (s *Server) AdminListExperience(w http.ResponseWriter, r *http.Request) {
	entries, err := services.ListExperience(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]ExperienceDTO{"items": experienceDTOs(entries)})
}

func (s *Server) AdminGetExperience(w http.ResponseWriter, r *http.Request) {
	entry, err := services.GetExperienceByID(s.DB, chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, experienceDTO(entry))
}

func (s *Server) AdminCreateExperience(w http.ResponseWriter, r *http.Request) {
	var req services.ExperienceInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	entry, err := services.CreateExperience(s.DB, s.Cache, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, experienceDTO(entry))
}

func (s *Server) AdminUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var req services.ExperienceInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	entry, err := services.UpdateExperience(s.DB, s.Cache, chi.URLParam(r, "entryId"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, experienceDTO(entry))
}

func (s *Server) AdminDeleteExperience(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteExperience(s.DB, s.Cache, chi.URLParam(r, "entryId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) AdminListEducation(w http.ResponseWriter, r *http.Request) {
	entries, err := services.ListEducation(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]EducationDTO{"items": educationDTOs(entries)})
}

func (s *Server) AdminGetEducation(w http.ResponseWriter, r *http.Request) {
	entry, err := services.GetEducationByID(s.DB, chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, educationDTO(entry))
}

func (s *Server) AdminCreateEducation(w http.ResponseWriter, r *http.Request) {
	var req services.EducationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	entry, err := services.CreateEducation(s.DB, s.Cache, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, educationDTO(entry))
}

func (s *Server) AdminUpdateEducation(w http.ResponseWriter, r *http.Request) {
	var req services.EducationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	entry, err := services.UpdateEducation(s.DB, s.Cache, chi.URLParam(r, "entryId"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, educationDTO(entry))
}

func (s *Server) AdminDeleteEducation(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteEducation(s.DB, s.Cache, chi.URLParam(r, "entryId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) AdminListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := services.ListSkills(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]SkillDTO{"items": skillDTOs(skills)})
}

func (s *Server) AdminGetSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := services.GetSkillByID(s.DB, chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, skillDTO(skill))
}

func (s *Server) AdminCreateSkill(w http.ResponseWriter, r *http.Request) {
	var req services.SkillInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	skill, err := services.CreateSkill(s.DB, s.Cache, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, skillDTO(skill))
}

func (s *Server) AdminUpdateSkill(w http.ResponseWriter, r *http.Request) {
	var req services.SkillInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	skill, err := services.UpdateSkill(s.DB, s.Cache, chi.URLParam(r, "entryId"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, skillDTO(skill))
}

func (s *Server) AdminDeleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteSkill(s.DB, s.Cache, chi.URLParam(r, "entryId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) AdminListCertifications(w http.ResponseWriter, r *http.Request) {
	certs, err := services.ListCertifications(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]CertificationDTO{"items": certificationDTOs(certs)})
}

func (s *Server) AdminGetCertification(w http.ResponseWriter, r *http.Request) {
	cert, err := services.GetCertificationByID(s.DB, chi.URLParam(r, "entryId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, certificationDTO(cert))
}

func (s *Server) AdminCreateCertification(w http.ResponseWriter, r *http.Request) {
	var req services.CertificationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	cert, err := services.CreateCertification(s.DB, s.Cache, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, certificationDTO(cert))
}

func (s *Server) AdminUpdateCertification(w http.ResponseWriter, r *http.Request) {
	var req services.CertificationInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	cert, err := services.UpdateCertification(s.DB, s.Cache, chi.URLParam(r, "entryId"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, certificationDTO(cert))
}

func (s *Server) AdminDeleteCertification(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteCertification(s.DB, s.Cache, chi.URLParam(r, "entryId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
