package httpapi

import (
	"encoding/json"
	"net/http"

	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) AdminListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := services.ListPosts(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, map[string][]PostCardDTO{"items": postCards(posts)})
}

func (s *Server) AdminGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := services.GetPostByID(s.DB, chi.URLParam(r, "postId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, postDetail(post, true, ""))
}

func (s *Server) AdminCreatePost(w http.ResponseWriter, r *http.Request) {
	var req services.PostInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	post, err := services.CreatePost(s.DB, s.Cache, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, postDetail(post, true, ""))
}

func (s *Server) AdminUpdatePost(w http.ResponseWriter, r *http.Request) {
	var req services.PostInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	post, err := services.UpdatePost(s.DB, s.Cache, chi.URLParam(r, "postId"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, postDetail(post, true, ""))
}

func (s *Server) AdminDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := services.DeletePost(s.DB, s.Cache, chi.URLParam(r, "postId")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
