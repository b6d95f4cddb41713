package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrEmptyName      = errors.New("player name must not be empty")
	ErrDuplicateName  = errors.New("player name already exists")

	// Game errors
	ErrGameNotFound         = errors.New("game not found")
	ErrUnknownWinner        = errors.New("winner does not reference an existing player")
	ErrUnknownParticipant   = errors.New("participant does not reference an existing player")
	ErrDuplicateParticipant = errors.New("participant listed more than once")
	ErrWinnerNotParticipant = errors.New("winner must be listed among participants")
	ErrInvalidAmount        = errors.New("amount must not be negative")

	// Scope errors
	ErrInvalidScope = errors.New("scope must be all, today or custom")
	ErrInvalidRange = errors.New("invalid date range")

	// Rivalry errors
	ErrSamePlayer = errors.New("rivalry requires two distinct players")
)
