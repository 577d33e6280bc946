package services

import (
	"strings"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func CreateContactMessage(db *sqlx.DB, in ContactInput) error {
	name, err := NormalizeRequired(in.Name, "name")
	if err != nil {
		return err
	}
	email, err := NormalizeRequired(in.Email, "email")
	if err != nil {
		return err
	}
	body, err := NormalizeRequired(in.Body, "body")
	if err != nil {
		return err
	}
	_, err = db.Exec(`
INSERT INTO contact_messages (id, name, email, subject, body, read, created_at)
VALUES ($1,$2,$3,$4,$5,FALSE,$6)
`, uuid.NewString(), name, strings.ToLower(email), nilIfEmpty(in.Subject), body, time.Now().UTC())
	if err != nil {
		return ErrStorage("could not send message")
	}
	return nil
}

func ListContactMessages(db *sqlx.DB) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	err := db.Select(&messages, `SELECT * FROM contact_messages ORDER BY created_at DESC`)
	return messages, err
}

func MarkMessageRead(db *sqlx.DB, id string) error {
	result, err := db.Exec(`UPDATE contact_messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return ErrStorage("could not update message")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound("message not found")
	}
	return nil
}

func DeleteContactMessage(db *sqlx.DB, id string) error {
	if _, err := db.Exec(`DELETE FROM contact_messages WHERE id = $1`, id); err != nil {
		return ErrStorage("could not delete message")
	}
	return nil
}
