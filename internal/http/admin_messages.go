package httpapi

import (
	"net/http"

	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) AdminListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := services.ListContactMessages(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		items = append(items, messageDTO(m))
	}
	WriteJSON(w, http.StatusOK, map[string][]MessageDTO{"items": items})
}

func (s *Server) AdminMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := services.MarkMessageRead(s.DB, chi.URLParam(r, "messageId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) AdminDeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := services.DeleteContactMessage(s.DB, chi.URLParam(r, "messageId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
