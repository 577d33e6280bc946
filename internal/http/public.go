package httpapi

import (
	"net/http"

	"portfolio-backend-go/internal/render"
	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func (s *Server) cachedProjectCards() ([]ProjectCardDTO, error) {
	value, err := s.Cache.Get(services.CacheProjects, func() (interface{}, error) {
		projects, err := services.ListProjects(s.DB)
		if err != nil {
			return nil, err
		}
		return projectCards(projects), nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]ProjectCardDTO), nil
}

func (s *Server) cachedPostCards() ([]PostCardDTO, error) {
	value, err := s.Cache.Get(services.CachePosts, func() (interface{}, error) {
		posts, err := services.ListPosts(s.DB)
		if err != nil {
			return nil, err
		}
		return postCards(posts), nil
	})
	if err != nil {
		return nil, err
	}
	return value.([]PostCardDTO), nil
}

func (s *Server) PublicProjects(w http.ResponseWriter, r *http.Request) {
	cards, err := s.cachedProjectCards()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	query := r.URL.Query().Get("q")
	tag := r.URL.Query().Get("tag")
	WriteJSON(w, http.StatusOK, map[string][]ProjectCardDTO{"items": filterProjects(cards, query, tag)})
}

func (s *Server) PublicProjectDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	project, err := services.GetProjectBySlug(s.DB, slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	detail := projectDetail(project, false, render.Content(project.Content))
	if cards, err := s.cachedProjectCards(); err == nil {
		detail.Related = relatedProjects(cards, detail.ProjectCardDTO)
	}
	WriteJSON(w, http.StatusOK, detail)
}

func (s *Server) PublicPosts(w http.ResponseWriter, r *http.Request) {
	cards, err := s.cachedPostCards()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	query := r.URL.Query().Get("q")
	tag := r.URL.Query().Get("tag")
	WriteJSON(w, http.StatusOK, map[string][]PostCardDTO{"items": filterPosts(cards, query, tag)})
}

func (s *Server) PublicPostDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := services.GetPostBySlug(s.DB, slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	detail := postDetail(post, false, render.Content(post.Content))
	if cards, err := s.cachedPostCards(); err == nil {
		detail.Related = relatedPosts(cards, detail.PostCardDTO)
	}
	WriteJSON(w, http.StatusOK, detail)
}
