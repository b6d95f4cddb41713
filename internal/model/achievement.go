package model

// AchievementID identifies an achievement in the fixed catalog
type AchievementID string

// Achievement is one earned badge. The evaluator recomputes the earned set
// from scratch on every call; nothing is persisted here.
type Achievement struct {
	ID          AchievementID
	Name        string
	Description string
}
