package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kihyunnn/Texas-holdem/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeEmptyName            = "EMPTY_NAME"
	CodeDuplicateName        = "DUPLICATE_NAME"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeGameNotFound         = "GAME_NOT_FOUND"
	CodeUnknownWinner        = "UNKNOWN_WINNER"
	CodeUnknownParticipant   = "UNKNOWN_PARTICIPANT"
	CodeDuplicateParticipant = "DUPLICATE_PARTICIPANT"
	CodeWinnerNotParticipant = "WINNER_NOT_PARTICIPANT"
	CodeInvalidAmount        = "INVALID_AMOUNT"
	CodeInvalidScope         = "INVALID_SCOPE"
	CodeInvalidRange         = "INVALID_RANGE"
	CodeSamePlayer           = "SAME_PLAYER"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrEmptyName):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyName, "Player name must not be empty"}}
	case errors.Is(err, model.ErrDuplicateName):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateName, "Player name already exists"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrUnknownWinner):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownWinner, "Winner does not reference an existing player"}}
	case errors.Is(err, model.ErrUnknownParticipant):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownParticipant, "Participant does not reference an existing player"}}
	case errors.Is(err, model.ErrDuplicateParticipant):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicateParticipant, "Participant listed more than once"}}
	case errors.Is(err, model.ErrWinnerNotParticipant):
		return &httpError{http.StatusBadRequest, APIError{CodeWinnerNotParticipant, "Winner must be listed among participants"}}
	case errors.Is(err, model.ErrInvalidAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidAmount, "Amount must not be negative"}}
	case errors.Is(err, model.ErrInvalidScope):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidScope, "Scope must be all, today or custom"}}
	case errors.Is(err, model.ErrInvalidRange):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRange, "Invalid date range"}}
	case errors.Is(err, model.ErrSamePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeSamePlayer, "Rivalry requires two distinct players"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
