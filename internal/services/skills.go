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

type SkillInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	SortOrder   int    `json:"sortOrder"`
}

func CreateSkill(db *sqlx.DB, listings *Listings, in SkillInput) (models.Skill, error) {
	name, err := NormalizeRequired(in.Name, "name")
	if err != nil {
		return models.Skill{}, err
	}
	now := time.Now().UTC()
	skillID := uuid.NewString()
	_, err = db.Exec(`
INSERT INTO skills (id, name, category, proficiency, sort_order, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$6)
`, skillID, name,
		strings.TrimSpace(in.Category),
		ClampProficiency(in.Proficiency),
		in.SortOrder,
		now)
	if err != nil {
		return models.Skill{}, ErrStorage("could not save skill")
	}
	listings.Invalidate(CacheSkills)
	return GetSkillByID(db, skillID)
}

func UpdateSkill(db *sqlx.DB, listings *Listings, id string, in SkillInput) (models.Skill, error) {
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id); err != nil {
		return models.Skill{}, ErrStorage("could not load skill")
	}
	if !exists {
		return models.Skill{}, ErrNotFound("skill not found")
	}
	name, err := NormalizeRequired(in.Name, "name")
	if err != nil {
		return models.Skill{}, err
	}
	_, err = db.Exec(`
UPDATE skills
SET name = $2, category = $3, proficiency = $4, sort_order = $5, updated_at = $6
WHERE id = $1
`, id, name,
		strings.TrimSpace(in.Category),
		ClampProficiency(in.Proficiency),
		in.SortOrder,
		time.Now().UTC())
	if err != nil {
		return models.Skill{}, ErrStorage("could not save skill")
	}
	listings.Invalidate(CacheSkills)
	return GetSkillByID(db, id)
}

func DeleteSkill(db *sqlx.DB, listings *Listings, id string) error {
	if _, err := db.Exec(`DELETE FROM skills WHERE id = $1`, id); err != nil {
		return ErrStorage("could not delete skill")
	}
	listings.Invalidate(CacheSkills)
	return nil
}

func GetSkillByID(db *sqlx.DB, id string) (models.Skill, error) {
	var skill models.Skill
	err := db.Get(&skill, `SELECT * FROM skills WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Skill{}, ErrNotFound("skill not found")
	}
	if err != nil {
		return models.Skill{}, err
	}
	return skill, nil
}

func ListSkills(db *sqlx.DB) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := db.Select(&skills, `SELECT * FROM skills ORDER BY category ASC, sort_order ASC, created_at ASC`)
	return skills, err
}
