package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the typed failure services return instead of panicking or
// leaking raw errors across the boundary. Code is the HTTP status the error
// handler middleware maps it to.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Taxonomy constructors. 401 responses carry a uniform message so expired and
// forged sessions are indistinguishable to the caller.

var ErrUnauthenticated = NewAppError(fiber.StatusUnauthorized, "Unauthorized")

var ErrNoFile = NewAppError(fiber.StatusBadRequest, "No file uploaded")

func NewValidationError(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func NewNotFoundError(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func NewParseError(err error) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: "Failed to parse CSV", Err: err}
}

func NewScrapeError(err error) *AppError {
	return &AppError{Code: fiber.StatusBadGateway, Message: "Failed to scrape website", Err: err}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusBadGateway, Message: message, Err: err}
}

func NewInvalidRequestError(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: "Internal server error", Err: err}
}
