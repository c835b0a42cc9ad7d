package models

import "time"

// Role is the capability level of a user account.
type Role string

const (
	// RoleUser is assigned to every self-registered account.
	RoleUser Role = "user"
	// RoleAdmin unlocks the admin-only routes.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// Credential material never leaves the server: PasswordHash is excluded from
// JSON and Password is only ever read from incoming requests.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Role is either "user" or "admin".
	Role Role `json:"role"`

	// Password is the plain-text password received at registration or login.
	// It is hashed before storage and never serialized.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash of the password. Empty for accounts
	// created through a third-party identity provider.
	PasswordHash string `json:"-"`

	// GoogleID is the "sub" claim of the Google account linked to this user.
	GoogleID string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
