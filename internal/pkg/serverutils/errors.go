package serverutils

import "github.com/gofiber/fiber/v2"

// FieldErrors maps a field name to its validation messages, mirroring
// the per-field error body returned on 400s.
type FieldErrors map[string][]string

// AppError is the terminal error for a request. The error handler
// middleware turns it into the matching JSON response.
type AppError struct {
	Code   int
	Detail string
	Fields FieldErrors
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "validation failed"
}

func NewValidationError(fields FieldErrors) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Fields: fields}
}

func NewBadRequest(detail string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Detail: detail}
}

func NewUnauthorized(detail string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Detail: detail}
}

// NewNotFound covers both missing rows and rows owned by someone else,
// so a caller cannot distinguish the two.
func NewNotFound() *AppError {
	return &AppError{Code: fiber.StatusNotFound, Detail: "Not found."}
}
