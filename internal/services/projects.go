package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ProjectInput is the admin form payload. Tags arrive as one
// comma-separated string; gallery and contributors arrive as serialized
// sub-structures and are parsed defensively.
type ProjectInput struct {
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Description     string          `json:"description"`
	Content         json.RawMessage `json:"content"`
	Tags            string          `json:"tags"`
	Featured        bool            `json:"featured"`
	RepoURL         string          `json:"repoUrl"`
	DemoURL         string          `json:"demoUrl"`
	Gallery         json.RawMessage `json:"gallery"`
	Contributors    json.RawMessage `json:"contributors"`
	Acknowledgement string          `json:"acknowledgement"`
}

func CreateProject(db *sqlx.DB, listings *Listings, in ProjectInput) (models.Project, error) {
	title, err := NormalizeRequired(in.Title, "title")
	if err != nil {
		return models.Project{}, err
	}
	slug, err := ResolveProjectSlug(db, title, in.Slug, "")
	if err != nil {
		return models.Project{}, ErrStorage("could not derive slug")
	}
	now := time.Now().UTC()
	projectID := uuid.NewString()
	_, err = db.Exec(`
INSERT INTO projects (id, title, slug, description, content, tags, featured, repo_url, demo_url, gallery, contributors, acknowledgement, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$13)
`, projectID, title, slug,
		in.Description,
		NormalizeContent(in.Content),
		mustJSON(SplitTags(in.Tags)),
		in.Featured,
		nilIfEmpty(in.RepoURL),
		nilIfEmpty(in.DemoURL),
		mustJSON(ParseImageList(in.Gallery)),
		mustJSON(ParseContributors(in.Contributors)),
		nilIfEmpty(in.Acknowledgement),
		now)
	if err != nil {
		return models.Project{}, ErrStorage("could not save project")
	}
	listings.Invalidate(CacheProjects)
	return GetProjectByID(db, projectID)
}

func UpdateProject(db *sqlx.DB, listings *Listings, id string, in ProjectInput) (models.Project, error) {
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id); err != nil {
		return models.Project{}, ErrStorage("could not load project")
	}
	if !exists {
		return models.Project{}, ErrNotFound("project not found")
	}
	title, err := NormalizeRequired(in.Title, "title")
	if err != nil {
		return models.Project{}, err
	}
	slug, err := ResolveProjectSlug(db, title, in.Slug, id)
	if err != nil {
		return models.Project{}, ErrStorage("could not derive slug")
	}
	_, err = db.Exec(`
UPDATE projects
SET title = $2, slug = $3, description = $4, content = $5, tags = $6, featured = $7,
    repo_url = $8, demo_url = $9, gallery = $10, contributors = $11, acknowledgement = $12, updated_at = $13
WHERE id = $1
`, id, title, slug,
		in.Description,
		NormalizeContent(in.Content),
		mustJSON(SplitTags(in.Tags)),
		in.Featured,
		nilIfEmpty(in.RepoURL),
		nilIfEmpty(in.DemoURL),
		mustJSON(ParseImageList(in.Gallery)),
		mustJSON(ParseContributors(in.Contributors)),
		nilIfEmpty(in.Acknowledgement),
		time.Now().UTC())
	if err != nil {
		return models.Project{}, ErrStorage("could not save project")
	}
	listings.Invalidate(CacheProjects)
	return GetProjectByID(db, id)
}

// DeleteProject is idempotent: deleting an id that is already gone is not
// an error, the only observable effect is absence.
func DeleteProject(db *sqlx.DB, listings *Listings, id string) error {
	if _, err := db.Exec(`DELETE FROM projects WHERE id = $1`, id); err != nil {
		return ErrStorage("could not delete project")
	}
	listings.Invalidate(CacheProjects)
	return nil
}

func GetProjectByID(db *sqlx.DB, id string) (models.Project, error) {
	var project models.Project
	err := db.Get(&project, `SELECT * FROM projects WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNotFound("project not found")
	}
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// GetProjectBySlug is a case-sensitive exact match used for public detail
// routing; a miss maps to a 404.
func GetProjectBySlug(db *sqlx.DB, slug string) (models.Project, error) {
	var project models.Project
	err := db.Get(&project, `SELECT * FROM projects WHERE slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNotFound("project not found")
	}
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func ListProjects(db *sqlx.DB) ([]models.Project, error) {
	projects := []models.Project{}
	err := db.Select(&projects, `SELECT * FROM projects ORDER BY created_at DESC`)
	return projects, err
}

func ProjectTags(p models.Project) []string {
	return decodeStrings(p.Tags)
}

func ProjectGallery(p models.Project) []string {
	return decodeStrings(p.Gallery)
}

func ProjectContributors(p models.Project) []Contributor {
	return decodeContributors(p.Contributors)
}
