package handler

import (
	"net/http"

	"github.com/kihyunnn/Texas-holdem/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodeEmptyName            = apierr.CodeEmptyName
	CodeDuplicateName        = apierr.CodeDuplicateName
	CodePlayerNotFound       = apierr.CodePlayerNotFound
	CodeGameNotFound         = apierr.CodeGameNotFound
	CodeUnknownWinner        = apierr.CodeUnknownWinner
	CodeUnknownParticipant   = apierr.CodeUnknownParticipant
	CodeDuplicateParticipant = apierr.CodeDuplicateParticipant
	CodeWinnerNotParticipant = apierr.CodeWinnerNotParticipant
	CodeInvalidAmount        = apierr.CodeInvalidAmount
	CodeInvalidScope         = apierr.CodeInvalidScope
	CodeInvalidRange         = apierr.CodeInvalidRange
	CodeSamePlayer           = apierr.CodeSamePlayer
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
