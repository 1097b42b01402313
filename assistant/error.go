package assistant

import (
	"net/http"

	"github.com/hirelink/hirelink/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ASSISTANT")

// Error codes
var (
	CodeEmptyMessage = ErrRegistry.Register("EMPTY_MESSAGE", errx.TypeValidation, http.StatusBadRequest, "Message is required and must be a string")
	CodeUserNotFound = ErrRegistry.Register("USER_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "User not found")
	CodeTurnNotFound = ErrRegistry.Register("TURN_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Chat not found")
	CodeUnavailable  = ErrRegistry.Register("UNAVAILABLE", errx.TypeUnavailable, http.StatusServiceUnavailable, "Chatbot service temporarily unavailable")
)

// Helper functions
func ErrEmptyMessage() *errx.Error {
	return ErrRegistry.New(CodeEmptyMessage)
}

func ErrUserNotFound() *errx.Error {
	return ErrRegistry.New(CodeUserNotFound)
}

func ErrTurnNotFound() *errx.Error {
	return ErrRegistry.New(CodeTurnNotFound)
}

func ErrUnavailable() *errx.Error {
	return ErrRegistry.New(CodeUnavailable)
}
