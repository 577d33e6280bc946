package services

import "fmt"

// ServiceError is returned as a value across the handler boundary so the
// admin UI can render it without the request crashing.
type ServiceError struct {
	Status  int
	Field   string
	Message string
}

func (e ServiceError) Error() string {
	return e.Message
}

func ErrNotFound(msg string) error {
	return ServiceError{Status: 404, Message: msg}
}

// ErrValidation names the offending field so forms can highlight it.
func ErrValidation(field, msg string) error {
	return ServiceError{Status: 400, Field: field, Message: msg}
}

func ErrBadRequest(msg string) error {
	return ServiceError{Status: 400, Message: msg}
}

func ErrUnauthorized(msg string) error {
	return ServiceError{Status: 401, Message: msg}
}

func ErrStorage(msg string) error {
	return ServiceError{Status: 500, Message: msg}
}

func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
