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

type CertificationInput struct {
	Name      string `json:"name"`
	Issuer    string `json:"issuer"`
	Issued    string `json:"issued"`
	ImageURL  string `json:"imageUrl"`
	SortOrder int    `json:"sortOrder"`
}

func CreateCertification(db *sqlx.DB, listings *Listings, in CertificationInput) (models.Certification, error) {
	name, err := NormalizeRequired(in.Name, "name")
	if err != nil {
		return models.Certification{}, err
	}
	now := time.Now().UTC()
	certID := uuid.NewString()
	_, err = db.Exec(`
INSERT INTO certifications (id, name, issuer, issued, image_url, sort_order, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
`, certID, name,
		strings.TrimSpace(in.Issuer),
		nilIfEmpty(in.Issued),
		NormalizeImageRef(in.ImageURL),
		in.SortOrder,
		now)
	if err != nil {
		return models.Certification{}, ErrStorage("could not save certification")
	}
	listings.Invalidate(CacheCertifications)
	return GetCertificationByID(db, certID)
}

func UpdateCertification(db *sqlx.DB, listings *Listings, id string, in CertificationInput) (models.Certification, error) {
	var exists bool
	if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM certifications WHERE id = $1)`, id); err != nil {
		return models.Certification{}, ErrStorage("could not load certification")
	}
	if !exists {
		return models.Certification{}, ErrNotFound("certification not found")
	}
	name, err := NormalizeRequired(in.Name, "name")
	if err != nil {
		return models.Certification{}, err
	}
	_, err = db.Exec(`
UPDATE certifications
SET name = $2, issuer = $3, issued = $4, image_url = $5, sort_order = $6, updated_at = $7
WHERE id = $1
`, id, name,
		strings.TrimSpace(in.Issuer),
		nilIfEmpty(in.Issued),
		NormalizeImageRef(in.ImageURL),
		in.SortOrder,
		time.Now().UTC())
	if err != nil {
		return models.Certification{}, ErrStorage("could not save certification")
	}
	listings.Invalidate(CacheCertifications)
	return GetCertificationByID(db, id)
}

func DeleteCertification(db *sqlx.DB, listings *Listings, id string) error {
	if _, err := db.Exec(`DELETE FROM certifications WHERE id = $1`, id); err != nil {
		return ErrStorage("could not delete certification")
	}
	listings.Invalidate(CacheCertifications)
	return nil
}

func GetCertificationByID(db *sqlx.DB, id string) (models.Certification, error) {
	var cert models.Certification
	err := db.Get(&cert, `SELECT * FROM certifications WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Certification{}, ErrNotFound("certification not found")
	}
	if err != nil {
		return models.Certification{}, err
	}
	return cert, nil
}

func ListCertifications(db *sqlx.DB) ([]models.Certification, error) {
	certs := []models.Certification{}
	err := db.Select(&certs, `SELECT * FROM certifications ORDER BY sort_order ASC, created_at ASC`)
	return certs, err
}
