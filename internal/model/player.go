package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is a member of the poker group. Players are immutable once
// created; the only lifecycle operation after creation is deletion.
type Player struct {
	ID        PlayerID
	Name      string
	CreatedAt time.Time
}
