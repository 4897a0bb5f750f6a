// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered attendee
// or organizer account. Email is the login identifier and is unique as stored.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Email        string    // The login identifier; unique, case-sensitive as stored.
	Name         string    // The user's display name.
	PasswordHash string    // The bcrypt hash of the password. Never holds plaintext.
	Role         Role      // The account role: attendee ("user") or organizer ("admin").
	ImageURL     string    // Public URL of the uploaded profile image, or "" when none.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Sanitized returns the projection of the user that is safe to send to
// clients: the password hash is stripped out.
func (u *User) Sanitized() *SanitizedUser {
	return &SanitizedUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Image: u.ImageURL,
	}
}

// SanitizedUser is the client-facing view of a user record. It has no
// password hash field at all, so the hash can never leak through serialization.
type SanitizedUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
	Image string    `json:"image"`
}
