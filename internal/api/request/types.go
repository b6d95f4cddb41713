package request

// CreatePlayerRequest is the request body for adding a player
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// Participant is one entry of a game's participant list
type Participant struct {
	PlayerID  string `json:"player_id"`
	BetAmount int64  `json:"bet_amount"`
}

// RecordGameRequest is the request body for recording a game.
// PotAmount is a pointer so a missing field is distinguishable from zero.
type RecordGameRequest struct {
	WinnerID     string        `json:"winner_id"`
	PotAmount    *int64        `json:"pot_amount"`
	WinningHand  string        `json:"winning_hand,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	Participants []Participant `json:"participants,omitempty"`
}
