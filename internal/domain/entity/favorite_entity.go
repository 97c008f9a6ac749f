package entity

import (
	"time"
)

// Favorite is a recipe a user saved. Each favorite belongs to exactly
// one user and is only reachable through owner-scoped operations.
type Favorite struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     string    `json:"image,omitempty"`
	Link      string    `json:"link,omitempty"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
