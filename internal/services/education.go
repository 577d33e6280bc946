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

type EducationInput struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	StartYear   string   `json:"startYear"`
	EndYear     string   `json:"endYear"`
	Courses     []string `json:"courses"`
	SortOrder   int      `json:"sortOrder"`
}

func CreateEducation(db *sqlx.DB, listings *Listings, in EducationInput) (models.Education, error) {
	degree, err := NormalizeRequired(in.Degree, "degree")
	if err != nil {
		return models.Education{}, err
	}
	now := time.Now().UTC()
	educationID := uuid.NewString()
	_, err = db.Exec(`
INSERT INTO education (id, degree, institution, start_year, end_year, courses, sort_order, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
`, educationID, degree,
		strings.TrimSpace(in.Institution),
		nilIfEmpty(in.StartYear),
		nilIfEmpty(in.EndYear),
		mustJSON(CleanStrings(in.Courses)),
		in.SortOrder,
		now)
	if err != nil {
		return models.Education{}, ErrStorage("could not save education")
	}
	listings.Invalidate(CacheEducation)
	return GetEducationByID(db, educationID)
}

func UpdateEducation(db *sqlx.DB, listings *Listings, id string, in EducationInput) (models.Education, error) {
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM education WHERE id = $1)`, id); err != nil {
		return models.Education{}, ErrStorage("could not load education")
	}
	if !exists {
		return models.Education{}, ErrNotFound("education not found")
	}
	degree, err := NormalizeRequired(in.Degree, "degree")
	if err != nil {
		return models.Education{}, err
	}
	_, err = db.Exec(`
UPDATE education
SET degree = $2, institution = $3, start_year = $4, end_year = $5, courses = $6, sort_order = $7, updated_at = $8
WHERE id = $1
`, id, degree,
		strings.TrimSpace(in.Institution),
		nilIfEmpty(in.StartYear),
		nilIfEmpty(in.EndYear),
		mustJSON(CleanStrings(in.Courses)),
		in.SortOrder,
		time.Now().UTC())
	if err != nil {
		return models.Education{}, ErrStorage("could not save education")
	}
	listings.Invalidate(CacheEducation)
	return GetEducationByID(db, id)
}

func DeleteEducation(db *sqlx.DB, listings *Listings, id string) error {
	if _, err := db.Exec(`DELETE FROM education WHERE id = $1`, id); err != nil {
		return ErrStorage("could not delete education")
	}
	listings.Invalidate(CacheEducation)
	return nil
}

func GetEducationByID(db *sqlx.DB, id string) (models.Education, error) {
	var education models.Education
	err := db.Get(&education, `SELECT * FROM education WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Education{}, ErrNotFound("education not found")
	}
	if err != nil {
		return models.Education{}, err
	}
	return education, nil
}

func ListEducation(db *sqlx.DB) ([]models.Education, error) {
	entries := []models.Education{}
	err := db.Select(&entries, `SELECT * FROM education ORDER BY sort_order ASC, created_at ASC`)
	return entries, err
}

func EducationCourses(e models.Education) []string {
	return decodeStrings(e.Courses)
}
