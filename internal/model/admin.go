package model

import "time"

// AdminUser is the administrative actor that signs in to manage content.
// PasswordHash is a bcrypt hash and is never serialized.
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
