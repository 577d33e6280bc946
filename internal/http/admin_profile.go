package httpapi

import (
	"encoding/json"
	"net/http"

	"portfolio-backend-go/internal/services"
)

func (s *Server) AdminGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := services.GetProfile(s.DB, CurrentUserID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profileDTO(profile))
}

func (s *Server) AdminUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req services.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	profile, err := services.UpsertProfile(s.DB, s.Cache, CurrentUserID(r), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, profileDTO(profile))
}
