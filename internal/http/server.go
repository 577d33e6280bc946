package httpapi

import (
	"context"
	"net/http"
	"time"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB     *sqlx.DB
	Config config.Config
	Tokens services.TokenService
	Cache  *services.Listings
}

func NewServer(db *sqlx.DB, cfg config.Config) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	return &Server{
		DB:     db,
		Config: cfg,
		Tokens: tokens,
		Cache:  services.NewListings(time.Duration(cfg.CacheTTLSeconds) * time.Second),
	}
}

func (s *Server) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)
		api.Post("/auth/logout", s.Logout)

		api.Route("/me", func(me chi.Router) {
			me.Use(WithAuth(s.Tokens))
			me.Get("/", s.Me)
			me.Put("/password", s.ChangePassword)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(WithAuth(s.Tokens))

			admin.Get("/profile", s.AdminGetProfile)
			admin.Put("/profile", s.AdminUpdateProfile)

			admin.Route("/projects", func(projects chi.Router) {
				projects.Get("/", s.AdminListProjects)
				projects.Post("/", s.AdminCreateProject)
				projects.Get("/{projectId}", s.AdminGetProject)
				projects.Put("/{projectId}", s.AdminUpdateProject)
				projects.Delete("/{projectId}", s.AdminDeleteProject)
			})

			admin.Route("/posts", func(posts chi.Router) {
				posts.Get("/", s.AdminListPosts)
				posts.Post("/", s.AdminCreatePost)
				posts.Get("/{postId}", s.AdminGetPost)
				posts.Put("/{postId}", s.AdminUpdatePost)
				posts.Delete("/{postId}", s.AdminDeletePost)
			})

			admin.Route("/experience", func(experience chi.Router) {
				experience.Get("/", s.AdminListExperience)
				experience.Post("/", s.AdminCreateExperience)
				experience.Get("/{entryId}", s.AdminGetExperience)
				experience.Put("/{entryId}", s.AdminUpdateExperience)
				experience.Delete("/{entryId}", s.AdminDeleteExperience)
			})

			admin.Route("/education", func(education chi.Router) {
				education.Get("/", s.AdminListEducation)
				education.Post("/", s.AdminCreateEducation)
				education.Get("/{entryId}", s.AdminGetEducation)
				education.Put("/{entryId}", s.AdminUpdateEducation)
				education.Delete("/{entryId}", s.AdminDeleteEducation)
			})

			admin.Route("/skills", func(skills chi.Router) {
				skills.Get("/", s.AdminListSkills)
				skills.Post("/", s.AdminCreateSkill)
				skills.Get("/{entryId}", s.AdminGetSkill)
				skills.Put("/{entryId}", s.AdminUpdateSkill)
				skills.Delete("/{entryId}", s.AdminDeleteSkill)
			})

			admin.Route("/certifications", func(certs chi.Router) {
				certs.Get("/", s.AdminListCertifications)
				certs.Post("/", s.AdminCreateCertification)
				certs.Get("/{entryId}", s.AdminGetCertification)
				certs.Put("/{entryId}", s.AdminUpdateCertification)
				certs.Delete("/{entryId}", s.AdminDeleteCertification)
			})

			admin.Route("/messages", func(messages chi.Router) {
				messages.Get("/", s.AdminListMessages)
				messages.Put("/{messageId}/read", s.AdminMarkMessageRead)
				messages.Delete("/{messageId}", s.AdminDeleteMessage)
			})
		})

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/profile", s.PublicProfile)
			pub.Get("/projects", s.PublicProjects)
			pub.Get("/projects/{slug}", s.PublicProjectDetail)
			pub.Get("/posts", s.PublicPosts)
			pub.Get("/posts/{slug}", s.PublicPostDetail)
			pub.Get("/experience", s.PublicExperience)
			pub.Get("/education", s.PublicEducation)
			pub.Get("/skills", s.PublicSkills)
			pub.Get("/certifications", s.PublicCertifications)
			pub.Post("/contact", s.PublicContact)
			pub.Post("/visits", s.TrackVisit)
			pub.Get("/visits/count", s.VisitCount)
		})

		api.Route("/media", func(media chi.Router) {
			media.Use(WithAuth(s.Tokens))
			media.Post("/uploads/{bucket}", s.UploadMedia)
		})
	})

	r.Get("/media/assets/{assetId}/content", s.MediaContent)
	return r
}
