package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/services"

	"github.com/google/uuid"
)

type VisitRequest struct {
	Path     *string `json:"path"`
	Referrer *string `json:"referrer"`
}

type VisitCountResponse struct {
	Total int `json:"total"`
}

func (s *Server) PublicProfile(w http.ResponseWriter, r *http.Request) {
	value, err := s.Cache.Get(services.CacheProfile, func() (interface{}, error) {
		ownerID, err := services.OwnerID(s.DB)
		if err != nil {
			return nil, err
		}
		profile, err := services.GetProfile(s.DB, ownerID)
		if err != nil {
			return nil, err
		}
		return profileDTO(profile), nil
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, value.(ProfileDTO))
}

func (s *Server) PublicExperience(w http.ResponseWriter, r *http.Request) {
	value, err := s.Cache.Get(services.CacheExperience, func() (interface{}, error) {
		entries, err := services.ListExperience(s.DB)
		if err != nil {
			return nil, err
		}
		return experienceDTOs(entries), nil
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]ExperienceDTO{"items": value.([]ExperienceDTO)})
}

func (s *Server) PublicEducation(w http.ResponseWriter, r *http.Request) {
	value, err := s.Cache.Get(services.CacheEducation, func() (interface{}, error) {
		entries, err := services.ListEducation(s.DB)
		if err != nil {
			return nil, err
		}
		return educationDTOs(entries), nil
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]EducationDTO{"items": value.([]EducationDTO)})
}

func (s *Server) PublicSkills(w http.ResponseWriter, r *http.Request) {
	value, err := s.Cache.Get(services.CacheSkills, func() (interface{}, error) {
		skills, err := services.ListSkills(s.DB)
		if err != nil {
			return nil, err
		}
		return groupSkills(skills), nil
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]SkillGroupDTO{"groups": value.([]SkillGroupDTO)})
}

func (s *Server) PublicCertifications(w http.ResponseWriter, r *http.Request) {
	value, err := s.Cache.Get(services.CacheCertifications, func() (interface{}, error) {
		certs, err := services.ListCertifications(s.DB)
		if err != nil {
			return nil, err
		}
		return certificationDTOs(certs), nil
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]CertificationDTO{"items": value.([]CertificationDTO)})
}

func (s *Server) PublicContact(w http.ResponseWriter, r *http.Request) {
	var req services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := services.CreateContactMessage(s.DB, req); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) TrackVisit(w http.ResponseWriter, r *http.Request) {
	var req VisitRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	visit := models.SiteVisit{
		ID:        uuid.NewString(),
		IPAddress: nullIfEmpty(resolveClientIP(r)),
		UserAgent: nullIfEmpty(trimString(r.Header.Get("User-Agent"), 512)),
		Path:      nullIfEmpty(trimString(ptrToString(req.Path), 255)),
		Referrer:  nullIfEmpty(trimString(ptrToString(req.Referrer), 512)),
		CreatedAt: time.Now().UTC(),
	}
	_, _ = s.DB.Exec(`
INSERT INTO site_visits (id, ip_address, user_agent, path, referrer, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
`, visit.ID, visit.IPAddress, visit.UserAgent, visit.Path, visit.Referrer, visit.CreatedAt)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) VisitCount(w http.ResponseWriter, r *http.Request) {
	var total int
	_ = s.DB.Get(&total, `SELECT count(*) FROM site_visits`)
	WriteJSON(w, http.StatusOK, VisitCountResponse{Total: total})
}

func resolveClientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return r.RemoteAddr
}

func trimString(value string, maxLen int) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}

func nullIfEmpty(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

func ptrToString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
