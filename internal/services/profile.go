package services

import (
	"database/sql"
	"errors"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

// ProfileInput carries the owner's General form. Pointer fields let the
// form clear a value by sending null.
type ProfileInput struct {
	FullName    *string `json:"fullName"`
	Title       *string `json:"title"`
	Bio         *string `json:"bio"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Location    *string `json:"location"`
	GithubURL   *string `json:"githubUrl"`
	LinkedinURL *string `json:"linkedinUrl"`
	AvatarURL   *string `json:"avatarUrl"`
}

// UpsertProfile writes the singleton profile row for the owner. The row is
// never deleted, only created on demand and overwritten.
func UpsertProfile(db *sqlx.DB, listings *Listings, userID string, in ProfileInput) (models.Profile, error) {
	now := time.Now().UTC()
	_, _ = db.Exec(`
INSERT INTO profiles (user_id, created_at, updated_at)
VALUES ($1,$2,$2)
ON CONFLICT (user_id) DO NOTHING
`, userID, now)
	var avatar *string
	if in.AvatarURL != nil {
		avatar = NormalizeImageRef(*in.AvatarURL)
	}
	_, err := db.Exec(`
UPDATE profiles
SET full_name = $2, title = $3, bio = $4, email = $5, phone = $6, location = $7,
    github_url = $8, linkedin_url = $9, avatar_url = $10, updated_at = $11
WHERE user_id = $1
`, userID, in.FullName, in.Title, in.Bio, in.Email, in.Phone, in.Location,
		in.GithubURL, in.LinkedinURL, avatar, now)
	if err != nil {
		return models.Profile{}, ErrStorage("could not save profile")
	}
	listings.Invalidate(CacheProfile)
	return GetProfile(db, userID)
}

func GetProfile(db *sqlx.DB, userID string) (models.Profile, error) {
	var profile models.Profile
	err := db.Get(&profile, `SELECT * FROM profiles WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrNotFound("profile not found")
	}
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
