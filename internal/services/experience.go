package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ExperienceInput struct {
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	SortOrder    int      `json:"sortOrder"`
}

// NormalizeEndDate enforces the current/end-date exclusivity: an ongoing
// position has no end date, full stop.
func NormalizeEndDate(current bool, endDate string) *string {
	if current {
		return nil
	}
	return nilIfEmpty(endDate)
}

func CreateExperience(db *sqlx.DB, listings *Listings, in ExperienceInput) (models.Experience, error) {
	jobTitle, err := NormalizeRequired(in.JobTitle, "jobTitle")
	if err != nil {
		return models.Experience{}, err
	}
	now := time.Now().UTC()
	experienceID := uuid.NewString()
	_, err = db.Exec(`
INSERT INTO experiences (id, job_title, company, location, start_date, end_date, current, description, achievements, technologies, sort_order, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$12)
`, experienceID, jobTitle,
		strings.TrimSpace(in.Company),
		nilIfEmpty(in.Location),
		strings.TrimSpace(in.StartDate),
		NormalizeEndDate(in.Current, in.EndDate),
		in.Current,
		in.Description,
		mustJSON(CleanStrings(in.Achievements)),
		mustJSON(CleanStrings(in.Technologies)),
		in.SortOrder,
		now)
	if err != nil {
		return models.Experience{}, ErrStorage("could not save experience")
	}
	listings.Invalidate(CacheExperience)
	return GetExperienceByID(db, experienceID)
}

func UpdateExperience(db *sqlx.DB, listings *Listings, id string, in ExperienceInput) (models.Experience, error) {
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM experiences WHERE id = $1)`, id); err != nil {
		return models.Experience{}, ErrStorage("could not load experience")
	}
	if !exists {
		return models.Experience{}, ErrNotFound("experience not found")
	}
	jobTitle, err := NormalizeRequired(in.JobTitle, "jobTitle")
	if err != nil {
		return models.Experience{}, err
	}
	_, err = db.Exec(`
UPDATE experiences
SET job_title = $2, company = $3, location = $4, start_date = $5, end_date = $6, current = $7,
    description = $8, achievements = $9, technologies = $10, sort_order = $11, updated_at = $12
WHERE id = $1
`, id, jobTitle,
		strings.TrimSpace(in.Company),
		nilIfEmpty(in.Location),
		strings.TrimSpace(in.StartDate),
		NormalizeEndDate(in.Current, in.EndDate),
		in.Current,
		in.Description,
		mustJSON(CleanStrings(in.Achievements)),
		mustJSON(CleanStrings(in.Technologies)),
		in.SortOrder,
		time.Now().UTC())
	if err != nil {
		return models.Experience{}, ErrStorage("could not save experience")
	}
	listings.Invalidate(CacheExperience)
	return GetExperienceByID(db, id)
}

func DeleteExperience(db *sqlx.DB, listings *Listings, id string) error {
	if _, err := db.Exec(`DELETE FROM experiences WHERE id = $1`, id); err != nil {
		return ErrStorage("could not delete experience")
	}
	listings.Invalidate(CacheExperience)
	return nil
}

func GetExperienceByID(db *sqlx.DB, id string) (models.Experience, error) {
	var experience models.Experience
	err := db.Get(&experience, `SELECT * FROM experiences WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Experience{}, ErrNotFound("experience not found")
	}
	if err != nil {
		return models.Experience{}, err
	}
	return experience, nil
}

func ListExperience(db *sqlx.DB) ([]models.Experience, error) {
	experiences := []models.Experience{}
	err := db.Select(&experiences, `SELECT * FROM experiences ORDER BY sort_order ASC, created_at ASC`)
	return experiences, err
}

func ExperienceAchievements(e models.Experience) []string {
	return decodeStrings(e.Achievements)
}

func ExperienceTechnologies(e models.Experience) []string {
	return decodeStrings(e.Technologies)
}
