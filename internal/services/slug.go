package services

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Slugify lowercases the value, collapses every run outside [a-z0-9] into
// a single hyphen and strips edge hyphens, keeping slugs URL-safe. A value
// with nothing usable left falls back to a random identifier so slugs are
// never empty.
func Slugify(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	var b strings.Builder
	lastDash := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return uuid.NewString()
	}
	return slug
}

func ResolveProjectSlug(db *sqlx.DB, title, requested, excludeID string) (string, error) {
	return resolveSlug(db, "projects", title, requested, excludeID)
}

func ResolvePostSlug(db *sqlx.DB, title, requested, excludeID string) (string, error) {
	return resolveSlug(db, "blog_posts", title, requested, excludeID)
}

// resolveSlug derives a slug from the title when the caller left the field
// empty, then probes with -2, -3... suffixes until it is unique. excludeID
// keeps an entity's own slug valid on update.
func resolveSlug(db *sqlx.DB, table, title, requested, excludeID string) (string, error) {
	base := Slugify(requested)
	if strings.TrimSpace(requested) == "" {
		base = Slugify(title)
	}
	candidate := base
	counter := 2
	for {
		var exists bool
		err := db.Get(&exists,
			`SELECT EXISTS(SELECT 1 FROM `+table+` WHERE slug = $1 AND id::text <> $2)`,
			candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(counter)
		counter++
	}
}
