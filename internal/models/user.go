// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered author. Authorship is the sole basis for
// mutation authorization on posts and comments.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthorInfo is the subset of user fields embedded in post and comment
// responses.
type AuthorInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// Info returns the embeddable author view of the user.
func (u *User) Info() AuthorInfo {
	return AuthorInfo{ID: u.ID, Username: u.Username, Email: u.Email}
}
