package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostInput struct {
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Excerpt     string          `json:"excerpt"`
	Content     json.RawMessage `json:"content"`
	AuthorName  string          `json:"authorName"`
	Tags        string          `json:"tags"`
	ReadTime    string          `json:"readTime"`
	Featured    bool            `json:"featured"`
	CoverURL    string          `json:"coverUrl"`
	PublishedAt string          `json:"publishedAt"`
}

func CreatePost(db *sqlx.DB, listings *Listings, in PostInput) (models.BlogPost, error) {
	title, err := NormalizeRequired(in.Title, "title")
	if err != nil {
		return models.BlogPost{}, err
	}
	slug, err := ResolvePostSlug(db, title, in.Slug, "")
	if err != nil {
		return models.BlogPost{}, ErrStorage("could not derive slug")
	}
	now := time.Now().UTC()
	published := parsePublishedAt(in.PublishedAt)
	if published == nil {
		published = &now
	}
	postID := uuid.NewString()
	_, err = db.Exec(`
INSERT INTO blog_posts (id, title, slug, excerpt, content, author_name, tags, read_time, featured, cover_url, published_at, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$12)
`, postID, title, slug,
		in.Excerpt,
		NormalizeContent(in.Content),
		strings.TrimSpace(in.AuthorName),
		mustJSON(SplitTags(in.Tags)),
		nilIfEmpty(in.ReadTime),
		in.Featured,
		NormalizeImageRef(in.CoverURL),
		published,
		now)
	if err != nil {
		return models.BlogPost{}, ErrStorage("could not save post")
	}
	listings.Invalidate(CachePosts)
	return GetPostByID(db, postID)
}

func UpdatePost(db *sqlx.DB, listings *Listings, id string, in PostInput) (models.BlogPost, error) {
	row := struct {
		PublishedAt *time.Time `db:"published_at"`
	}{}
	if err := db.Get(&row, `SELECT published_at FROM blog_posts WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BlogPost{}, ErrNotFound("post not found")
		}
		return models.BlogPost{}, ErrStorage("could not load post")
	}
	title, err := NormalizeRequired(in.Title, "title")
	if err != nil {
		return models.BlogPost{}, err
	}
	slug, err := ResolvePostSlug(db, title, in.Slug, id)
	if err != nil {
		return models.BlogPost{}, ErrStorage("could not derive slug")
	}
	published := parsePublishedAt(in.PublishedAt)
	if published == nil {
		published = row.PublishedAt
	}
	_, err = db.Exec(`
UPDATE blog_posts
SET title = $2, slug = $3, excerpt = $4, content = $5, author_name = $6, tags = $7,
    read_time = $8, featured = $9, cover_url = $10, published_at = $11, updated_at = $12
WHERE id = $1
`, id, title, slug,
		in.Excerpt,
		NormalizeContent(in.Content),
		strings.TrimSpace(in.AuthorName),
		mustJSON(SplitTags(in.Tags)),
		nilIfEmpty(in.ReadTime),
		in.Featured,
		NormalizeImageRef(in.CoverURL),
		published,
		time.Now().UTC())
	if err != nil {
		return models.BlogPost{}, ErrStorage("could not save post")
	}
	listings.Invalidate(CachePosts)
	return GetPostByID(db, id)
}

func DeletePost(db *sqlx.DB, listings *Listings, id string) error {
	if _, err := db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id); err != nil {
		return ErrStorage("could not delete post")
	}
	listings.Invalidate(CachePosts)
	return nil
}

func GetPostByID(db *sqlx.DB, id string) (models.BlogPost, error) {
	var post models.BlogPost
	err := db.Get(&post, `SELECT * FROM blog_posts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BlogPost{}, ErrNotFound("post not found")
	}
	if err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

func GetPostBySlug(db *sqlx.DB, slug string) (models.BlogPost, error) {
	var post models.BlogPost
	err := db.Get(&post, `SELECT * FROM blog_posts WHERE slug = $1`, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BlogPost{}, ErrNotFound("post not found")
	}
	if err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

func ListPosts(db *sqlx.DB) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := db.Select(&posts, `SELECT * FROM blog_posts ORDER BY published_at DESC NULLS LAST, created_at DESC`)
	return posts, err
}

func PostTags(p models.BlogPost) []string {
	return decodeStrings(p.Tags)
}

// parsePublishedAt accepts either a date or a full RFC3339 timestamp from
// the admin form; anything else means "leave unset".
func parsePublishedAt(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			utc := parsed.UTC()
			return &utc
		}
	}
	return nil
}
