package httpapi

import (
	"context"
	"testing"

	"portfolio-backend-go/internal/config"

	"github.com/go-chi/chi/v5"
)

func TestRouterRegistersAdminEntityRoutes(t *testing.T) {
	server := NewServer(nil, config.Config{JWTSecret: "secret", JWTIssuer: "test"})
	router, ok := server.Router(context.Background()).(chi.Router)
	if !ok {
		t.Fatal("router is not a chi.Router")
	}

	routes := []struct{ method, path string }{
		{"GET", "/api/admin/projects/abc"},
		{"GET", "/api/admin/posts/abc"},
		{"GET", "/api/admin/experience/abc"},
		{"GET", "/api/admin/education/abc"},
		{"GET", "/api/admin/skills/abc"},
		{"GET", "/api/admin/certifications/abc"},
		{"PUT", "/api/admin/experience/abc"},
		{"DELETE", "/api/admin/certifications/abc"},
		{"GET", "/api/public/projects/some-slug"},
		{"POST", "/api/media/uploads/projects"},
		{"GET", "/media/assets/abc/content"},
	}
	for _, tc := range routes {
		rctx := chi.NewRouteContext()
		if !router.Match(rctx, tc.method, tc.path) {
			t.Errorf("no route registered for %s %s", tc.method, tc.path)
		}
	}
}
